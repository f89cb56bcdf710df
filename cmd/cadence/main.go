// Command cadence inspects recurring schedules: for every schedule defined in
// a YAML file it reports the occurrence immediately before and after a
// reference instant, plus the occurrences inside the enumeration window. It
// computes timestamps only; it never stores schedules or runs anything.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dukerupert/cadence/internal/config"
	"github.com/dukerupert/cadence/internal/logging"
	"github.com/dukerupert/cadence/internal/schedule"
	"github.com/dukerupert/cadence/internal/schedulefile"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "path to the cadence config file")
	schedulesPath := flag.String("schedules", "", "path to the schedule definitions (overrides config)")
	at := flag.String("at", "", "reference instant, e.g. 2011-01-10 or '2011-01-10 19:22:00' (default now)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cadence: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)
	if *schedulesPath != "" {
		cfg.SchedulesPath = *schedulesPath
	}
	schedule.DefaultHorizonMonths = cfg.HorizonMonths

	ref := time.Now()
	if *at != "" {
		ref, err = parseRef(*at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cadence: %v\n", err)
			os.Exit(1)
		}
	}

	named, err := schedulefile.Load(cfg.SchedulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cadence: %v\n", err)
		os.Exit(1)
	}
	if len(named) == 0 {
		slog.Warn("no schedules defined", "path", cfg.SchedulesPath)
		return
	}
	slog.Debug("loaded schedules", "path", cfg.SchedulesPath, "count", len(named))

	const stamp = "2006-01-02 15:04:05"
	for i, n := range named {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s: %s\n", n.Name, schedule.Render(n.Schedule.Summary(cfg.DateLayout)))
		if prev, ok := n.Schedule.PrevStep(ref); ok {
			fmt.Printf("  prev: %s\n", prev.Format(stamp))
		} else {
			fmt.Printf("  prev: none\n")
		}
		if next, ok := n.Schedule.NextStep(ref); ok {
			fmt.Printf("  next: %s\n", next.Format(stamp))
		} else {
			fmt.Printf("  next: none\n")
		}
		fmt.Printf("  upcoming:\n")
		count := 0
		for step := range n.Schedule.Steps(ref, ref.AddDate(0, cfg.HorizonMonths, 0)) {
			fmt.Printf("    %s\n", step.Format(stamp))
			count++
		}
		if count == 0 {
			fmt.Printf("    (none within %d months)\n", cfg.HorizonMonths)
		}
	}
}

func parseRef(value string) (time.Time, error) {
	layouts := []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized reference instant %q", value)
}
