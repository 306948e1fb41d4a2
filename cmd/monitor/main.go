package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"health-monitor/internal/config"
	"health-monitor/internal/input"
	"health-monitor/internal/journal"
	"health-monitor/internal/logging"
	"health-monitor/internal/metrics"
	"health-monitor/internal/report"
	"health-monitor/internal/session"
	"health-monitor/internal/vitals"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	demo := flag.Bool("demo", false, "evaluate the built-in sample readings instead of prompting")
	batch := flag.String("batch", "", "comma-separated parameter=value readings, e.g. heart_rate=72,bmi=23.4")
	flag.Parse()

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Logger
	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	// Threshold tables
	table, err := cfg.Table()
	if err != nil {
		logger.Fatal("invalid threshold configuration", zap.Error(err))
	}

	// Metrics, journal, evaluator, session
	reg := metrics.NewRegistry()
	jrnl := journal.New(cfg.Journal.MaxEvents)
	evaluator := vitals.NewEvaluator(table, reg)
	sess := session.New(reg)

	out := os.Stdout

	// process evaluates one raw reading and prints its status line.
	// Invalid input is reported and the run moves on to the next
	// parameter; it never aborts the run.
	process := func(raw input.Raw) {
		res, err := evaluator.EvaluateRaw(raw.Parameter, raw.Value)
		if err != nil {
			fmt.Fprintf(out, " ! %s\n", err)
			sess.Reject(raw.Parameter, err.Error())
			jrnl.Append(journal.InputRejected, raw.Parameter, err.Error())
			logger.Warn("reading rejected",
				zap.String("parameter", string(raw.Parameter)),
				zap.Error(err),
			)
			return
		}

		unit := res.Parameter.Unit()
		if unit != "" {
			unit = " " + unit
		}
		fmt.Fprintf(out, " - %s: %g%s -> %s (%s)\n",
			res.Parameter.Label(), res.Value, unit, res.Status, res.Suggestion)

		sess.Record(res)
		if res.Abnormal() {
			jrnl.Append(journal.AlertRaised, res.Parameter,
				fmt.Sprintf("%s %s: %g%s", res.Parameter.Label(), res.Status, res.Value, unit))
		} else {
			jrnl.Append(journal.ReadingRecorded, res.Parameter, string(res.Status))
		}
	}

	fmt.Fprintln(out, "Health Monitoring & Alert System")

	switch {
	case *demo:
		fmt.Fprintln(out, "\nUsing built-in sample data:")
		for _, raw := range input.SampleReadings() {
			process(raw)
		}
	case *batch != "":
		raws, problems := input.ParseBatch(*batch)
		fmt.Fprintln(out)
		for _, pr := range problems {
			fmt.Fprintf(out, " ! skipped %q: %s\n", pr.Entry, pr.Reason)
			jrnl.Append(journal.InputRejected, "", pr.Reason)
			logger.Warn("batch entry skipped",
				zap.String("entry", pr.Entry),
				zap.String("reason", pr.Reason),
			)
		}
		for _, raw := range raws {
			process(raw)
		}
	default:
		fmt.Fprintln(out)
		collector := input.NewCollector(os.Stdin, out)
		for _, p := range vitals.Order {
			raw, err := collector.Next(p)
			if errors.Is(err, io.EOF) {
				logger.Warn("input ended before all parameters were read")
				break
			}
			if err != nil {
				logger.Fatal("reading input failed", zap.Error(err))
			}
			process(raw)
		}
	}

	// Final report
	rep := report.NewAnalyzer(sess, jrnl).Analyze()
	if err := report.Render(out, rep); err != nil {
		logger.Fatal("rendering report failed", zap.Error(err))
	}

	logger.Info("run complete",
		zap.String("report_id", rep.ID),
		zap.String("overall", string(rep.Overall)),
		zap.Int("evaluated", rep.Evaluated),
		zap.Int("rejected", len(rep.Rejected)),
		zap.Any("counters", reg.Snapshot()),
	)
}
