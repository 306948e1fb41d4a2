package vitals

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"health-monitor/internal/metrics"
)

// ErrInvalidInput is a sentinel error for readings that cannot be
// evaluated: non-numeric text, unknown parameters, or values outside
// the physically plausible limits. It is wrapped with context using
// fmt.Errorf, so callers should test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Result is the outcome of evaluating a single reading.
type Result struct {
	Parameter  Parameter `json:"parameter"`
	Value      float64   `json:"value"`
	Status     Status    `json:"status"`
	Severity   Severity  `json:"-"`
	Suggestion string    `json:"suggestion"`
}

// Abnormal reports whether the result should raise an alert.
func (r Result) Abnormal() bool {
	return r.Severity != SeverityOK
}

// Evaluator classifies readings against a threshold table.
//
// Evaluation is pure: the same (parameter, value) pair always yields
// the same result. The registry only accumulates counters.
type Evaluator struct {
	table   Table
	metrics *metrics.Registry
}

// NewEvaluator creates an evaluator over the given table.
func NewEvaluator(table Table, reg *metrics.Registry) *Evaluator {
	return &Evaluator{
		table:   table,
		metrics: reg,
	}
}

// Evaluate maps a numeric reading to its status band.
//
// Rules:
//   - unknown parameter, NaN or Inf values are rejected
//   - values outside the parameter's plausibility limits are rejected
//     (this covers negative values for non-negative quantities)
//   - otherwise the first band whose upper bound exceeds the value wins
func (e *Evaluator) Evaluate(p Parameter, value float64) (Result, error) {
	e.metrics.Inc(metrics.ReadingsTotal)

	rng, ok := e.table[p]
	if !ok {
		e.metrics.Inc(metrics.ReadingsInvalidTotal)
		return Result{}, fmt.Errorf("%w: unknown parameter %q", ErrInvalidInput, string(p))
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		e.metrics.Inc(metrics.ReadingsInvalidTotal)
		return Result{}, fmt.Errorf("%w: %s value is not a finite number", ErrInvalidInput, p.Label())
	}

	if value < rng.Limits.Min || value > rng.Limits.Max {
		e.metrics.Inc(metrics.ReadingsInvalidTotal)
		return Result{}, fmt.Errorf("%w: %s value %g outside plausible range %g-%g",
			ErrInvalidInput, p.Label(), value, rng.Limits.Min, rng.Limits.Max)
	}

	for _, band := range rng.Bands {
		if value < band.Upper {
			res := Result{
				Parameter:  p,
				Value:      value,
				Status:     band.Status,
				Severity:   band.Severity,
				Suggestion: band.Suggestion,
			}
			if res.Abnormal() {
				e.metrics.Inc(metrics.AlertsTotal)
				if res.Severity == SeverityCritical {
					e.metrics.Inc(metrics.AlertsCriticalTotal)
				}
			}
			return res, nil
		}
	}

	// Unreachable with a validated table: the last band is +Inf.
	e.metrics.Inc(metrics.ReadingsInvalidTotal)
	return Result{}, fmt.Errorf("%w: %s value %g matched no band", ErrInvalidInput, p.Label(), value)
}

// EvaluateRaw parses raw text as a number and evaluates it.
// Text that does not parse is an invalid input, never a health status.
func (e *Evaluator) EvaluateRaw(p Parameter, raw string) (Result, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		e.metrics.Inc(metrics.ReadingsTotal)
		e.metrics.Inc(metrics.ReadingsInvalidTotal)
		return Result{}, fmt.Errorf("%w: %s reading %q is not a number", ErrInvalidInput, p.Label(), raw)
	}
	return e.Evaluate(p, value)
}
