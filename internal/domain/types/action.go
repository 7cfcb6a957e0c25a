package types

const (
	ActionProcessPackage = "process_package"
	ActionLoadPackages   = "load_packages"
	ActionRunTracker     = "run_tracker"
	ActionWriteMetrics   = "write_metrics"
)
