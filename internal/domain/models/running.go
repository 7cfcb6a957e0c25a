package models

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) (*Running, error) {
	t, err := newTraining(action, duration, weight, lenStep)
	if err != nil {
		return nil, err
	}
	return &Running{Training: t}, nil
}

func (r *Running) Name() string {
	return "Running"
}

func (r *Running) SpentCalories() (float64, error) {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * r.duration * minInH, nil
}

func (r *Running) Report() (Report, error) {
	return newReport(r)
}
