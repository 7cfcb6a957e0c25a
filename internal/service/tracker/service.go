package tracker

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
	"github.com/Temutjin2k/fitness-tracker/pkg/metrics"
)

type Service struct {
	logger  logger.Logger
	service string
}

func NewService(logger logger.Logger, serviceName string) *Service {
	return &Service{
		logger:  logger,
		service: serviceName,
	}
}

// Process turns one sensor package into a training report.
func (s *Service) Process(ctx context.Context, pkg models.Package) (models.Report, error) {
	ctx = wrap.WithAction(ctx, types.ActionProcessPackage)
	ctx = wrap.WithRequestID(ctx, uuid.NewString())
	ctx = wrap.WithDiscipline(ctx, pkg.Type)

	report, err := s.process(pkg)
	metrics.RecordSession(s.service, pkg.Type, err)
	if err != nil {
		return models.Report{}, wrap.Error(ctx, err)
	}
	metrics.RecordCalories(pkg.Type, report.Calories)

	s.logger.Debug(ctx, "package processed",
		"training_type", report.TrainingType,
		"distance_km", report.Distance,
		"speed_kmh", report.Speed,
		"calories", report.Calories,
	)

	return report, nil
}

func (s *Service) process(pkg models.Package) (models.Report, error) {
	session, err := ReadPackage(pkg.Type, pkg.Data)
	if err != nil {
		return models.Report{}, fmt.Errorf("could not read package: %w", err)
	}

	report, err := session.Report()
	if err != nil {
		return models.Report{}, fmt.Errorf("could not build report: %w", err)
	}
	return report, nil
}

// Run processes packages in order and writes one message per package to w.
// It stops at the first package that fails.
func (s *Service) Run(ctx context.Context, pkgs []models.Package, w io.Writer) error {
	ctx = wrap.WithAction(ctx, types.ActionRunTracker)

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return wrap.Error(ctx, err)
		}

		report, err := s.Process(ctx, pkg)
		if err != nil {
			return fmt.Errorf("package %d (%s): %w", i, pkg.Type, err)
		}

		if _, err := fmt.Fprintln(w, report.Message()); err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not write report: %w", err))
		}
	}

	s.logger.Info(ctx, "packages processed", "count", len(pkgs))
	return nil
}
