package tracker

import (
	"math"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

// constructor binds positional sensor values to a concrete training.
type constructor struct {
	params int
	build  func(v []float64) (models.Session, error)
}

var constructors = map[types.Discipline]constructor{
	types.Running: {
		params: 3,
		build: func(v []float64) (models.Session, error) {
			action, err := count("action", v[0])
			if err != nil {
				return nil, err
			}
			return models.NewRunning(action, v[1], v[2])
		},
	},
	types.RaceWalking: {
		params: 4,
		build: func(v []float64) (models.Session, error) {
			action, err := count("action", v[0])
			if err != nil {
				return nil, err
			}
			return models.NewRaceWalking(action, v[1], v[2], v[3])
		},
	},
	types.Swimming: {
		params: 5,
		build: func(v []float64) (models.Session, error) {
			action, err := count("action", v[0])
			if err != nil {
				return nil, err
			}
			laps, err := count("pool_count", v[4])
			if err != nil {
				return nil, err
			}
			return models.NewSwimming(action, v[1], v[2], v[3], laps)
		},
	},
}

// ReadPackage validates the tag and the number of values and builds the training.
// On error no session is returned.
func ReadPackage(workoutType string, data []float64) (models.Session, error) {
	discipline := types.Discipline(workoutType)

	c, ok := constructors[discipline]
	if !ok {
		return nil, &types.UnknownDisciplineError{Tag: workoutType, Valid: types.Disciplines()}
	}

	if len(data) != c.params {
		return nil, &types.ParamCountError{Discipline: discipline, Expected: c.params, Got: len(data)}
	}

	session, err := c.build(data)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// count converts a sensor value that must be a whole number.
func count(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, &types.InvalidMeasurementError{Field: field, Value: v, Reason: "must be a whole number"}
	}
	return int(v), nil
}
