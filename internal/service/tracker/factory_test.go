package tracker

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
)

func TestReadPackage_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		data     []float64
		wantType string
		distance float64
		speed    float64
		calories float64
	}{
		{"running", "RUN", []float64{15000, 1, 75}, "Running", 9.75, 9.75, 699.75},
		{"walking", "WLK", []float64{9000, 1, 75, 180}, "RaceWalking", 5.85, 5.85, 157.5},
		{"swimming", "SWM", []float64{720, 1, 80, 25, 40}, "Swimming", 0.9936, 1, 336},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := ReadPackage(tt.tag, tt.data)
			require.NoError(t, err)

			report, err := session.Report()
			require.NoError(t, err)

			assert.Equal(t, tt.wantType, report.TrainingType)
			assert.InDelta(t, 1.0, report.Duration, 1e-9)
			assert.InDelta(t, tt.distance, report.Distance, 1e-9)
			assert.InDelta(t, tt.speed, report.Speed, 1e-9)
			assert.InDelta(t, tt.calories, report.Calories, 1e-9)
		})
	}
}

func TestReadPackage_ConcreteTypes(t *testing.T) {
	run, err := ReadPackage("RUN", []float64{15000, 1, 75})
	require.NoError(t, err)
	assert.IsType(t, &models.Running{}, run)

	walk, err := ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	require.IsType(t, &models.RaceWalking{}, walk)
	assert.Equal(t, 180.0, walk.(*models.RaceWalking).Height())

	swim, err := ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	require.IsType(t, &models.Swimming{}, swim)
	assert.Equal(t, 25.0, swim.(*models.Swimming).PoolLength())
	assert.Equal(t, 40, swim.(*models.Swimming).PoolCount())
}

func TestReadPackage_ParamCount(t *testing.T) {
	session, err := ReadPackage("RUN", []float64{15000, 1})
	require.Nil(t, session)
	require.ErrorIs(t, err, types.ErrParamCount)

	var countErr *types.ParamCountError
	require.True(t, errors.As(err, &countErr))
	assert.Equal(t, types.Running, countErr.Discipline)
	assert.Equal(t, 3, countErr.Expected)
	assert.Equal(t, 2, countErr.Got)
}

func TestReadPackage_UnknownDiscipline(t *testing.T) {
	session, err := ReadPackage("CYC", []float64{100, 1, 70})
	require.Nil(t, session)
	require.ErrorIs(t, err, types.ErrUnknownDiscipline)

	var unknown *types.UnknownDisciplineError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "CYC", unknown.Tag)
	assert.ElementsMatch(t, []types.Discipline{types.Running, types.RaceWalking, types.Swimming}, unknown.Valid)
	assert.Contains(t, err.Error(), `"CYC"`)
	assert.Contains(t, err.Error(), "RUN, WLK, SWM")
}

func TestReadPackage_WholeCounts(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		data  []float64
		field string
	}{
		{"fractional action", "RUN", []float64{100.5, 1, 70}, "action"},
		{"nan action", "WLK", []float64{math.NaN(), 1, 70, 180}, "action"},
		{"fractional laps", "SWM", []float64{720, 1, 80, 25, 40.5}, "pool_count"},
		{"zero duration", "RUN", []float64{100, 0, 70}, "duration"},
		{"infinite weight", "SWM", []float64{720, 1, math.Inf(1), 25, 40}, "weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := ReadPackage(tt.tag, tt.data)
			require.Nil(t, session)

			var invalid *types.InvalidMeasurementError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestReadPackage_Idempotent(t *testing.T) {
	data := []float64{720, 1, 80, 25, 40}

	first, err := ReadPackage("SWM", data)
	require.NoError(t, err)
	second, err := ReadPackage("SWM", data)
	require.NoError(t, err)

	r1, err := first.Report()
	require.NoError(t, err)
	r2, err := second.Report()
	require.NoError(t, err)

	assert.Equal(t, r1.Message(), r2.Message())
}

func TestReadPackage_RejectsUnknownTags(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tag := rapid.StringMatching(`[A-Za-z]{0,6}`).Filter(func(s string) bool {
			return !types.Discipline(s).IsValid()
		}).Draw(rt, "tag")
		n := rapid.IntRange(0, 7).Draw(rt, "n")

		session, err := ReadPackage(tag, make([]float64, n))
		assert.Nil(rt, session)
		assert.ErrorIs(rt, err, types.ErrUnknownDiscipline)
	})
}

func TestReadPackage_RejectsWrongArity(t *testing.T) {
	arity := map[types.Discipline]int{
		types.Running:     3,
		types.RaceWalking: 4,
		types.Swimming:    5,
	}

	rapid.Check(t, func(rt *rapid.T) {
		d := rapid.SampledFrom(types.Disciplines()).Draw(rt, "discipline")
		n := rapid.IntRange(0, 10).Filter(func(n int) bool { return n != arity[d] }).Draw(rt, "n")

		data := make([]float64, n)
		for i := range data {
			data[i] = 1
		}

		session, err := ReadPackage(d.String(), data)
		assert.Nil(rt, session)

		var countErr *types.ParamCountError
		if assert.True(rt, errors.As(err, &countErr)) {
			assert.Equal(rt, arity[d], countErr.Expected)
			assert.Equal(rt, n, countErr.Got)
		}
	})
}
