package vitals

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-monitor/internal/metrics"
)

func newTestEvaluator() (*Evaluator, *metrics.Registry) {
	reg := metrics.NewRegistry()
	return NewEvaluator(DefaultTable(), reg), reg
}

func TestEvaluate_Classification(t *testing.T) {
	eval, _ := newTestEvaluator()

	cases := []struct {
		name      string
		parameter Parameter
		value     float64
		status    Status
	}{
		{"low heart rate", HeartRate, 55, StatusLow},
		{"normal heart rate", HeartRate, 72, StatusNormal},
		{"high heart rate", HeartRate, 110, StatusHigh},
		{"overweight bmi", BMI, 27.5, StatusOverweight},
		{"obese bmi", BMI, 31, StatusObese},
		{"underweight bmi", BMI, 17, StatusUnderweight},
		{"normal oxygen", OxygenLevel, 96, StatusNormal},
		{"low oxygen", OxygenLevel, 93, StatusLow},
		{"critical oxygen", OxygenLevel, 88, StatusCritical},
		{"full oxygen", OxygenLevel, 100, StatusNormal},
		{"elevated blood pressure", BloodPressure, 135, StatusElevated},
		{"high blood pressure", BloodPressure, 150, StatusHigh},
		{"low blood sugar", BloodSugar, 60, StatusLow},
		{"critical blood sugar", BloodSugar, 220, StatusCritical},
		{"short sleep", SleepHours, 5, StatusLow},
		{"no sleep", SleepHours, 0, StatusLow},
		{"low water", WaterIntake, 1.5, StatusLow},
		{"normal water", WaterIntake, 2.5, StatusNormal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := eval.Evaluate(tc.parameter, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.status, res.Status)
			assert.NotEmpty(t, res.Suggestion)
			assert.Equal(t, tc.parameter, res.Parameter)
		})
	}
}

func TestEvaluate_HalfOpenBoundaries(t *testing.T) {
	eval, _ := newTestEvaluator()

	// A value exactly at a threshold belongs to the band above it.
	cases := []struct {
		parameter Parameter
		value     float64
		status    Status
	}{
		{HeartRate, 60, StatusNormal}, // lower bound of Normal, not Low
		{HeartRate, 100, StatusHigh},  // upper bound of Normal is exclusive
		{BMI, 18.5, StatusNormal},
		{BMI, 25, StatusOverweight},
		{BMI, 30, StatusObese},
		{OxygenLevel, 95, StatusNormal},
		{OxygenLevel, 90, StatusLow},
		{BloodPressure, 120, StatusElevated},
		{BloodPressure, 140, StatusHigh},
		{SleepHours, 7, StatusNormal},
		{SleepHours, 9, StatusHigh},
	}

	for _, tc := range cases {
		res, err := eval.Evaluate(tc.parameter, tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.status, res.Status,
			"%s = %g should be %s", tc.parameter, tc.value, tc.status)
	}
}

func TestEvaluate_InvalidInput(t *testing.T) {
	eval, reg := newTestEvaluator()

	t.Run("unknown parameter", func(t *testing.T) {
		_, err := eval.Evaluate(Parameter("pulse_ox"), 50)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative non-negative parameter", func(t *testing.T) {
		_, err := eval.Evaluate(SleepHours, -1)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = eval.Evaluate(WaterIntake, -0.5)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("outside plausible limits", func(t *testing.T) {
		_, err := eval.Evaluate(OxygenLevel, 105)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = eval.Evaluate(HeartRate, 400)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-finite values", func(t *testing.T) {
		_, err := eval.Evaluate(BMI, math.NaN())
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = eval.Evaluate(BMI, math.Inf(1))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	snap := reg.Snapshot()
	assert.Equal(t, snap[string(metrics.ReadingsTotal)], snap[string(metrics.ReadingsInvalidTotal)],
		"every reading above was invalid")
}

func TestEvaluateRaw(t *testing.T) {
	eval, _ := newTestEvaluator()

	t.Run("numeric text", func(t *testing.T) {
		res, err := eval.EvaluateRaw(HeartRate, " 72 ")
		require.NoError(t, err)
		assert.Equal(t, StatusNormal, res.Status)
		assert.Equal(t, 72.0, res.Value)
	})

	t.Run("non-numeric text", func(t *testing.T) {
		_, err := eval.EvaluateRaw(BloodSugar, "abc")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := eval.EvaluateRaw(BloodSugar, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestEvaluate_Idempotent(t *testing.T) {
	eval, _ := newTestEvaluator()

	first, err := eval.Evaluate(HeartRate, 55)
	require.NoError(t, err)

	second, err := eval.Evaluate(HeartRate, 55)
	require.NoError(t, err)

	assert.Equal(t, first, second, "evaluation must not depend on hidden state")
}

func TestEvaluate_Metrics(t *testing.T) {
	eval, reg := newTestEvaluator()

	_, _ = eval.Evaluate(HeartRate, 72)   // normal
	_, _ = eval.Evaluate(HeartRate, 110)  // warning alert
	_, _ = eval.Evaluate(OxygenLevel, 85) // critical alert
	_, _ = eval.EvaluateRaw(BMI, "oops")  // invalid

	snap := reg.Snapshot()
	assert.Equal(t, int64(4), snap[string(metrics.ReadingsTotal)])
	assert.Equal(t, int64(1), snap[string(metrics.ReadingsInvalidTotal)])
	assert.Equal(t, int64(2), snap[string(metrics.AlertsTotal)])
	assert.Equal(t, int64(1), snap[string(metrics.AlertsCriticalTotal)])
}
