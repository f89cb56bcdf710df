package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Definition carries the raw construction parameters for any schedule kind.
// It is the factory's input and maps directly onto external formats such as
// the YAML schedule files read by embedders.
type Definition struct {
	Repeat   Kind
	Start    time.Time
	End      time.Time // zero for open-ended
	Interval int
	Days     []int
	Weeks    map[int][]int
}

// New validates def and constructs the corresponding Schedule. It does not
// stop at the first problem: every violation across all fields is collected
// and returned as a single *ValidationError.
func New(def Definition) (*Schedule, error) {
	errs := &ValidationError{}
	if def.Start.IsZero() {
		errs.addField("start", nil, ReasonUndefined)
	}
	known := def.Repeat == KindOnce || def.Repeat == KindDaily ||
		def.Repeat == KindWeekly || def.Repeat == KindMonthly || def.Repeat == KindYearly
	if !known {
		errs.addField("repeat", string(def.Repeat), ReasonUnknown)
	}
	if known && def.Repeat != KindOnce {
		switch {
		case def.Interval == 0:
			errs.addField("interval", nil, ReasonUndefined)
		case def.Interval < 0:
			errs.addField("interval", def.Interval, ReasonInvalidRange)
		}
	}
	var weeks map[int][]int
	switch def.Repeat {
	case KindWeekly:
		if len(def.Days) == 0 {
			errs.addField("days", nil, ReasonUndefined)
		}
		for _, d := range def.Days {
			if d < 0 || d > 6 {
				errs.addField("days", d, ReasonInvalidDay)
			}
		}
	case KindMonthly:
		var hasWeeks bool
		weeks, hasWeeks = cleanWeeks(def.Weeks, errs)
		if !hasWeeks && len(def.Days) == 0 {
			errs.addField("days", nil, ReasonUndefined)
		}
		for _, d := range def.Days {
			if d < 1 || d > 31 {
				errs.addField("days", d, ReasonInvalidDay)
			}
		}
	case KindYearly:
		if len(def.Days) == 0 {
			errs.addField("days", nil, ReasonUndefined)
		}
		for _, d := range def.Days {
			if d < 1 || d > 366 {
				errs.addField("days", d, ReasonInvalidDay)
			}
		}
	}
	if err := errs.or(); err != nil {
		return nil, err
	}

	s := &Schedule{
		kind:     def.Repeat,
		start:    def.Start,
		end:      def.End,
		interval: def.Interval,
	}
	switch def.Repeat {
	case KindOnce:
		s.end = def.Start
		s.interval = 1
		s.days = []int{0}
		s.cal = dayCalendar{}
	case KindDaily:
		s.days = []int{0}
		s.cal = dayCalendar{}
	case KindWeekly:
		s.days = sortedInts(def.Days)
		s.cal = weekCalendar{}
	case KindMonthly:
		s.days = sortedInts(def.Days)
		s.weeks = weeks
		s.cal = monthCalendar{}
	case KindYearly:
		s.days = sortedInts(def.Days)
		s.cal = yearCalendar{}
	}
	return s, nil
}

// cleanWeeks normalizes monthly week rules, recording violations for keys
// outside 1..5 and weekdays outside 0..6. hasWeeks reports whether at least
// one valid rule survived, which stands in for a day list.
func cleanWeeks(weeks map[int][]int, errs *ValidationError) (map[int][]int, bool) {
	if len(weeks) == 0 {
		return nil, false
	}
	clean := make(map[int][]int)
	hasWeeks := false
	for _, k := range sortedKeys(weeks) {
		if k < 1 || k > 5 {
			errs.addField("weeks", k, ReasonInvalidWeek)
			continue
		}
		for _, wd := range sortedInts(weeks[k]) {
			if wd < 0 || wd > 6 {
				errs.addField("weeks", wd, ReasonInvalidDay)
				continue
			}
			hasWeeks = true
			clean[k] = append(clean[k], wd)
		}
	}
	if !hasWeeks {
		return nil, false
	}
	return clean, true
}

func sortedKeys(m map[int][]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Once returns a one-shot schedule firing exactly at the given instant.
func Once(at time.Time) (*Schedule, error) {
	return New(Definition{Repeat: KindOnce, Start: at})
}

// Daily returns a schedule firing every interval days from start. A zero end
// leaves the schedule open-ended.
func Daily(start, end time.Time, interval int) (*Schedule, error) {
	return New(Definition{Repeat: KindDaily, Start: start, End: end, Interval: interval})
}

// Weekly returns a schedule firing on the named weekdays (mon, tue, wed, thu,
// fri, sat, sun) every interval weeks.
func Weekly(weekdays []string, start, end time.Time, interval int) (*Schedule, error) {
	days, err := ParseWeekdays(weekdays)
	if err != nil {
		return nil, err
	}
	return New(Definition{Repeat: KindWeekly, Start: start, End: end, Interval: interval, Days: days})
}

// Monthly returns a schedule firing on the given days of the month and/or
// week rules every interval months.
func Monthly(days []int, start, end time.Time, interval int, weeks map[int][]int) (*Schedule, error) {
	return New(Definition{Repeat: KindMonthly, Start: start, End: end, Interval: interval, Days: days, Weeks: weeks})
}

// Yearly returns a schedule firing on the given days of the year (1..366)
// every interval years.
func Yearly(days []int, start, end time.Time, interval int) (*Schedule, error) {
	return New(Definition{Repeat: KindYearly, Start: start, End: end, Interval: interval, Days: days})
}

var weekdayNames = map[string]int{
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
}

// ParseWeekdays maps three-letter weekday names to Monday-0 day indices,
// preserving order. Unknown names yield a *ConstructionError.
func ParseWeekdays(names []string) ([]int, error) {
	days := make([]int, 0, len(names))
	for _, name := range names {
		d, ok := weekdayNames[name]
		if !ok {
			return nil, &ConstructionError{Kind: KindWeekly, Msg: fmt.Sprintf("unknown day of week: %s", name)}
		}
		days = append(days, d)
	}
	return days, nil
}
