package input

import "health-monitor/internal/vitals"

// SampleReadings returns the built-in demo data set.
// Most values are deliberately abnormal so a demo run shows the full
// alerting path without typing anything.
func SampleReadings() []Raw {
	return []Raw{
		{Parameter: vitals.BloodPressure, Value: "135"},
		{Parameter: vitals.HeartRate, Value: "110"},
		{Parameter: vitals.BloodSugar, Value: "180"},
		{Parameter: vitals.BMI, Value: "27.5"},
		{Parameter: vitals.OxygenLevel, Value: "92"},
		{Parameter: vitals.SleepHours, Value: "5"},
		{Parameter: vitals.WaterIntake, Value: "1.5"},
	}
}
