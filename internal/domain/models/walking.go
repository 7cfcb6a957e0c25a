package models

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

type RaceWalking struct {
	Training
	height float64 // рост в см
}

func NewRaceWalking(action int, duration, weight, height float64) (*RaceWalking, error) {
	t, err := newTraining(action, duration, weight, lenStep)
	if err != nil {
		return nil, err
	}
	if err := positive("height", height); err != nil {
		return nil, err
	}
	return &RaceWalking{Training: t, height: height}, nil
}

func (w *RaceWalking) Name() string {
	return "RaceWalking"
}

func (w *RaceWalking) Height() float64 {
	return w.height
}

// SpentCalories floors speed²/height before applying the coefficient.
// Results are kept compatible with the existing tracker output.
func (w *RaceWalking) SpentCalories() (float64, error) {
	speedPerHeight := math.Floor(math.Pow(w.MeanSpeed(), 2) / w.height)
	return (walkingCaloriesWeightMultiplier*w.weight +
		speedPerHeight*walkingSpeedHeightMultiplier*w.weight) * w.duration * minInH, nil
}

func (w *RaceWalking) Report() (Report, error) {
	return newReport(w)
}
