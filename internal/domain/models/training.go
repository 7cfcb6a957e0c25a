package models

import (
	"fmt"
	"math"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

const (
	mInKm   = 1000 // метров в километре
	minInH  = 60   // минут в часе
	lenStep = 0.65 // длина шага в метрах
)

// Session is a single constructed workout. Values are computed on every call
// from the fields set at construction.
type Session interface {
	Name() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() (float64, error)
	Report() (Report, error)
}

var (
	_ Session = (*Training)(nil)
	_ Session = (*Running)(nil)
	_ Session = (*RaceWalking)(nil)
	_ Session = (*Swimming)(nil)
)

// Training holds the measurements shared by every discipline.
type Training struct {
	action   int     // количество шагов или гребков
	duration float64 // длительность в часах
	weight   float64 // вес в кг
	lenStep  float64 // длина одного действия в метрах
}

// NewTraining creates the base training. It has no calorie formula of its own.
func NewTraining(action int, duration, weight float64) (*Training, error) {
	t, err := newTraining(action, duration, weight, lenStep)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func newTraining(action int, duration, weight, step float64) (Training, error) {
	if action < 0 {
		return Training{}, &types.InvalidMeasurementError{Field: "action", Value: float64(action), Reason: "must not be negative"}
	}
	if err := positive("duration", duration); err != nil {
		return Training{}, err
	}
	if err := positive("weight", weight); err != nil {
		return Training{}, err
	}

	return Training{
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  step,
	}, nil
}

func (t *Training) Name() string {
	return "Training"
}

func (t *Training) Action() int {
	return t.action
}

func (t *Training) Duration() float64 {
	return t.duration
}

func (t *Training) Weight() float64 {
	return t.weight
}

// Distance returns the distance in km.
func (t *Training) Distance() float64 {
	return float64(t.action) * t.lenStep / mInKm
}

// MeanSpeed returns the mean speed in km/h.
func (t *Training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

func (t *Training) SpentCalories() (float64, error) {
	return 0, types.ErrNotImplemented
}

func (t *Training) Report() (Report, error) {
	return newReport(t)
}

func newReport(s Session) (Report, error) {
	calories, err := s.SpentCalories()
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", s.Name(), err)
	}

	return Report{
		TrainingType: s.Name(),
		Duration:     s.Duration(),
		Distance:     s.Distance(),
		Speed:        s.MeanSpeed(),
		Calories:     calories,
	}, nil
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &types.InvalidMeasurementError{Field: field, Value: v, Reason: "must be a positive finite number"}
	}
	return nil
}
