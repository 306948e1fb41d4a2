package vitals

import "math"

// Status is the categorical outcome of evaluating a reading.
// Categories are parameter-specific; see DefaultTable for which
// parameter uses which.
type Status string

const (
	StatusLow         Status = "Low"
	StatusNormal      Status = "Normal"
	StatusElevated    Status = "Elevated"
	StatusHigh        Status = "High"
	StatusCritical    Status = "Critical"
	StatusUnderweight Status = "Underweight"
	StatusOverweight  Status = "Overweight"
	StatusObese       Status = "Obese"
)

// Severity drives escalation of the overall report status.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityCritical
)

// Band is one category in a parameter's range table.
//
// Upper is the exclusive upper bound of the band; the first band whose
// Upper exceeds the value wins. The last band of every table has
// Upper = +Inf so that every in-limits value matches exactly one band.
type Band struct {
	Upper      float64
	Status     Status
	Severity   Severity
	Suggestion string
}

// Limits bound the physically plausible values for a parameter.
// A value outside [Min, Max] is rejected as invalid input rather than
// classified as a health status.
type Limits struct {
	Min float64
	Max float64
}

// Range holds the full evaluation rule set for one parameter.
type Range struct {
	Limits Limits
	Bands  []Band
}

// Table maps each parameter to its range rules.
type Table map[Parameter]Range

// DefaultTable returns the built-in threshold tables.
//
// Normal ranges follow common clinical reference values: systolic BP
// 90-120 mmHg, resting heart rate 60-100 bpm, post-meal blood sugar
// 70-140 mg/dL, BMI 18.5-25, SpO2 >= 95%, sleep 7-9 hrs, water 2-4 L.
// All bounds are half-open (upper exclusive).
func DefaultTable() Table {
	inf := math.Inf(1)
	return Table{
		BloodPressure: {
			Limits: Limits{Min: 50, Max: 250},
			Bands: []Band{
				{Upper: 90, Status: StatusLow, Severity: SeverityWarning,
					Suggestion: "Low blood pressure; hydrate and rest, consult a doctor if dizzy"},
				{Upper: 120, Status: StatusNormal, Severity: SeverityOK,
					Suggestion: "Blood pressure is in the healthy range"},
				{Upper: 140, Status: StatusElevated, Severity: SeverityWarning,
					Suggestion: "Slightly elevated; reduce salt intake and monitor regularly"},
				{Upper: inf, Status: StatusHigh, Severity: SeverityCritical,
					Suggestion: "High blood pressure; consult a doctor"},
			},
		},
		HeartRate: {
			Limits: Limits{Min: 30, Max: 250},
			Bands: []Band{
				{Upper: 60, Status: StatusLow, Severity: SeverityWarning,
					Suggestion: "Resting heart rate is low; consult a doctor if you feel faint"},
				{Upper: 100, Status: StatusNormal, Severity: SeverityOK,
					Suggestion: "Heart rate is in the healthy range"},
				{Upper: inf, Status: StatusHigh, Severity: SeverityWarning,
					Suggestion: "Elevated resting heart rate; rest and re-measure"},
			},
		},
		BloodSugar: {
			Limits: Limits{Min: 40, Max: 400},
			Bands: []Band{
				{Upper: 70, Status: StatusLow, Severity: SeverityWarning,
					Suggestion: "Low blood sugar; eat something and re-check"},
				{Upper: 140, Status: StatusNormal, Severity: SeverityOK,
					Suggestion: "Blood sugar is in the healthy range"},
				{Upper: 200, Status: StatusHigh, Severity: SeverityWarning,
					Suggestion: "High blood sugar; watch your diet and re-test"},
				{Upper: inf, Status: StatusCritical, Severity: SeverityCritical,
					Suggestion: "Very high blood sugar; consult a doctor promptly"},
			},
		},
		BMI: {
			Limits: Limits{Min: 10, Max: 60},
			Bands: []Band{
				{Upper: 18.5, Status: StatusUnderweight, Severity: SeverityWarning,
					Suggestion: "Underweight; consider a calorie-rich balanced diet"},
				{Upper: 25, Status: StatusNormal, Severity: SeverityOK,
					Suggestion: "BMI is in the healthy range"},
				{Upper: 30, Status: StatusOverweight, Severity: SeverityWarning,
					Suggestion: "Overweight; regular exercise and diet adjustments help"},
				{Upper: inf, Status: StatusObese, Severity: SeverityCritical,
					Suggestion: "Obese range; consult a doctor about a weight plan"},
			},
		},
		OxygenLevel: {
			Limits: Limits{Min: 50, Max: 100},
			Bands: []Band{
				{Upper: 90, Status: StatusCritical, Severity: SeverityCritical,
					Suggestion: "Dangerously low oxygen; seek medical help immediately"},
				{Upper: 95, Status: StatusLow, Severity: SeverityWarning,
					Suggestion: "Oxygen below normal; re-measure and consult a doctor if it persists"},
				{Upper: inf, Status: StatusNormal, Severity: SeverityOK,
					Suggestion: "Oxygen saturation is in the healthy range"},
			},
		},
		SleepHours: {
			Limits: Limits{Min: 0, Max: 24},
			Bands: []Band{
				{Upper: 7, Status: StatusLow, Severity: SeverityWarning,
					Suggestion: "Not enough sleep; aim for 7-9 hours"},
				{Upper: 9, Status: StatusNormal, Severity: SeverityOK,
					Suggestion: "Sleep duration is in the healthy range"},
				{Upper: inf, Status: StatusHigh, Severity: SeverityWarning,
					Suggestion: "Oversleeping regularly; check sleep quality"},
			},
		},
		WaterIntake: {
			Limits: Limits{Min: 0, Max: 10},
			Bands: []Band{
				{Upper: 2, Status: StatusLow, Severity: SeverityWarning,
					Suggestion: "Drink more water; 2-4 liters daily is recommended"},
				{Upper: 4, Status: StatusNormal, Severity: SeverityOK,
					Suggestion: "Water intake is in the healthy range"},
				{Upper: inf, Status: StatusHigh, Severity: SeverityWarning,
					Suggestion: "Unusually high water intake; spread it through the day"},
			},
		},
	}
}
