// Package input collects raw readings before evaluation: interactive
// prompts over an injected reader, batch parameter=value lists, and the
// built-in sample data set.
package input

import (
	"bufio"
	"fmt"
	"io"

	"health-monitor/internal/vitals"
)

// Raw is a reading as supplied by the user, before numeric parsing.
type Raw struct {
	Parameter vitals.Parameter
	Value     string
}

// prompts show the accepted range so users know what the tool expects.
var prompts = map[vitals.Parameter]string{
	vitals.BloodPressure: "Enter Systolic Blood Pressure in mmHg (50-250): ",
	vitals.HeartRate:     "Enter Heart Rate in bpm (30-250): ",
	vitals.BloodSugar:    "Enter Blood Sugar in mg/dL (40-400): ",
	vitals.BMI:           "Enter BMI (10-60): ",
	vitals.OxygenLevel:   "Enter Oxygen Level in % (50-100): ",
	vitals.SleepHours:    "Enter Sleep Hours (0-24): ",
	vitals.WaterIntake:   "Enter Water Intake in Liters (0-10): ",
}

// Collector reads one line of input per parameter from an injected
// source, writing the prompt to out first. Injecting both ends keeps
// interactive collection fully testable.
type Collector struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewCollector creates a collector over the given reader and writer.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Next prompts for the given parameter and returns the raw line typed.
// io.EOF is returned when the input source is exhausted.
func (c *Collector) Next(p vitals.Parameter) (Raw, error) {
	fmt.Fprint(c.out, prompts[p])

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return Raw{}, err
		}
		return Raw{}, io.EOF
	}

	return Raw{Parameter: p, Value: c.in.Text()}, nil
}
