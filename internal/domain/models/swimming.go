package models

import "github.com/Temutjin2k/fitness-tracker/internal/domain/types"

const (
	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

type Swimming struct {
	Training
	poolLength float64 // длина бассейна в метрах
	poolCount  int     // сколько раз проплыл бассейн
}

func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (*Swimming, error) {
	t, err := newTraining(action, duration, weight, swimmingLenStep)
	if err != nil {
		return nil, err
	}
	if err := positive("pool_length", poolLength); err != nil {
		return nil, err
	}
	if poolCount <= 0 {
		return nil, &types.InvalidMeasurementError{Field: "pool_count", Value: float64(poolCount), Reason: "must be positive"}
	}

	return &Swimming{
		Training:   t,
		poolLength: poolLength,
		poolCount:  poolCount,
	}, nil
}

func (s *Swimming) Name() string {
	return "Swimming"
}

func (s *Swimming) PoolLength() float64 {
	return s.poolLength
}

func (s *Swimming) PoolCount() int {
	return s.poolCount
}

// MeanSpeed is measured by the pool, the stroke count is not involved.
func (s *Swimming) MeanSpeed() float64 {
	return s.poolLength * float64(s.poolCount) / mInKm / s.duration
}

func (s *Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight, nil
}

func (s *Swimming) Report() (Report, error) {
	return newReport(s)
}
