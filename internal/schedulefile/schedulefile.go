// Package schedulefile reads schedule definitions from YAML documents. It is
// the file-format boundary around the schedule engine: parsing and timestamp
// normalization happen here, while all semantic validation stays in the
// schedule factory so callers get its aggregated field-level errors.
package schedulefile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dukerupert/cadence/internal/schedule"
)

// document is the top-level YAML shape.
type document struct {
	Schedules []Entry `yaml:"schedules"`
}

// Entry is one raw schedule definition as written in the file.
type Entry struct {
	Name     string        `yaml:"name"`
	Repeat   string        `yaml:"repeat"`
	Start    string        `yaml:"start"`
	End      string        `yaml:"end"`
	Interval int           `yaml:"interval"`
	Days     []int         `yaml:"days"`
	Weekdays []string      `yaml:"weekdays"` // weekly only: mon..sun, alternative to days
	Weeks    map[int][]int `yaml:"weeks"`
}

// Named pairs a constructed schedule with its name from the file.
type Named struct {
	Name     string
	Schedule *schedule.Schedule
}

// timeLayouts are the accepted timestamp formats, tried in order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Load reads and constructs every schedule in the YAML file at path.
func Load(path string) ([]Named, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedules from %s: %w", path, err)
	}
	return Parse(data)
}

// Parse constructs every schedule in a YAML document. The first invalid entry
// stops parsing; its error carries the entry name and the factory's full list
// of violations.
func Parse(data []byte) ([]Named, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schedules: %w", err)
	}
	named := make([]Named, 0, len(doc.Schedules))
	for i, entry := range doc.Schedules {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("schedule %d", i+1)
		}
		s, err := build(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		named = append(named, Named{Name: name, Schedule: s})
	}
	return named, nil
}

func build(entry Entry) (*schedule.Schedule, error) {
	def := schedule.Definition{
		Repeat:   schedule.Kind(entry.Repeat),
		Interval: entry.Interval,
		Days:     entry.Days,
		Weeks:    entry.Weeks,
	}
	var err error
	if entry.Start != "" {
		if def.Start, err = parseTime(entry.Start); err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
	}
	if entry.End != "" {
		if def.End, err = parseTime(entry.End); err != nil {
			return nil, fmt.Errorf("end: %w", err)
		}
	}
	if len(entry.Weekdays) > 0 {
		days, err := schedule.ParseWeekdays(entry.Weekdays)
		if err != nil {
			return nil, err
		}
		def.Days = append(def.Days, days...)
	}
	return schedule.New(def)
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
