package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Temutjin2k/fitness-tracker/config"
	"github.com/Temutjin2k/fitness-tracker/internal/adapter/packages"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/internal/service/tracker"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
	"github.com/Temutjin2k/fitness-tracker/pkg/metrics"
)

var ErrServiceNotInitialized = errors.New("service not initialized")

type App struct {
	tracker *tracker.Service
	out     io.Writer

	cfg config.Config
	log logger.Logger
}

// NewApplication wires the tracker service; reports are written to out
func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger, out io.Writer) (*App, error) {
	if out == nil {
		return nil, errors.New("output writer is required")
	}

	app := &App{
		tracker: tracker.NewService(log, cfg.ServiceName),
		out:     out,
		cfg:     cfg,
		log:     log,
	}

	log.Debug(ctx, "application initialized", "packages_file", cfg.Packages.File)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.tracker == nil {
		return ErrServiceNotInitialized
	}

	runErr := a.run(ctx)

	if a.cfg.Metrics.TextFile != "" {
		if err := metrics.WriteTextfile(a.cfg.Metrics.TextFile); err != nil {
			mctx := wrap.WithAction(ctx, types.ActionWriteMetrics)
			a.log.Error(mctx, "failed to write metrics", err, "path", a.cfg.Metrics.TextFile)
			if runErr == nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
		}
	}

	return runErr
}

func (a *App) run(ctx context.Context) error {
	pkgs, err := a.loadPackages(ctx)
	if err != nil {
		return err
	}

	if err := a.tracker.Run(ctx, pkgs, a.out); err != nil {
		a.log.Error(wrap.ErrorCtx(ctx, err), "failed to process packages", err)
		return err
	}

	return nil
}

func (a *App) loadPackages(ctx context.Context) ([]models.Package, error) {
	if a.cfg.Packages.File == "" {
		return packages.Default(), nil
	}

	ctx = wrap.WithAction(ctx, types.ActionLoadPackages)

	pkgs, err := packages.Load(a.cfg.Packages.File)
	if err != nil {
		a.log.Error(ctx, "failed to load packages", err, "path", a.cfg.Packages.File)
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	a.log.Info(ctx, "packages loaded", "count", len(pkgs))
	return pkgs, nil
}
