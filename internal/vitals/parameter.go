package vitals

// Parameter is a strongly typed identifier for one monitored health metric.
type Parameter string

const (
	BloodPressure Parameter = "blood_pressure" // systolic, mmHg
	HeartRate     Parameter = "heart_rate"     // resting, beats per minute
	BloodSugar    Parameter = "blood_sugar"    // post-meal, mg/dL
	BMI           Parameter = "bmi"
	OxygenLevel   Parameter = "oxygen_level" // SpO2, percent
	SleepHours    Parameter = "sleep_hours"  // hours per day
	WaterIntake   Parameter = "water_intake" // liters per day
)

// Order is the fixed order in which readings are collected and reported.
var Order = []Parameter{
	BloodPressure,
	HeartRate,
	BloodSugar,
	BMI,
	OxygenLevel,
	SleepHours,
	WaterIntake,
}

// units maps each parameter to the unit its value is expressed in.
var units = map[Parameter]string{
	BloodPressure: "mmHg",
	HeartRate:     "bpm",
	BloodSugar:    "mg/dL",
	BMI:           "",
	OxygenLevel:   "%",
	SleepHours:    "hrs",
	WaterIntake:   "L",
}

// labels maps each parameter to its human-readable name.
var labels = map[Parameter]string{
	BloodPressure: "Blood Pressure",
	HeartRate:     "Heart Rate",
	BloodSugar:    "Blood Sugar",
	BMI:           "BMI",
	OxygenLevel:   "Oxygen Level",
	SleepHours:    "Sleep Hours",
	WaterIntake:   "Water Intake",
}

// Known reports whether p is one of the seven monitored parameters.
func (p Parameter) Known() bool {
	_, ok := labels[p]
	return ok
}

// Unit returns the measurement unit, empty for unitless parameters (BMI).
func (p Parameter) Unit() string {
	return units[p]
}

// Label returns the human-readable parameter name.
func (p Parameter) Label() string {
	if l, ok := labels[p]; ok {
		return l
	}
	return string(p)
}
