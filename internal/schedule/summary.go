package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Fragment is one piece of a schedule summary. Format is either literal text
// or an fmt format string for Args. Fragments stay separate so an external
// renderer can translate each phrase before joining.
type Fragment struct {
	Format string
	Args   []any
}

func (f Fragment) String() string {
	if len(f.Args) == 0 {
		return f.Format
	}
	return fmt.Sprintf(f.Format, f.Args...)
}

// Render joins fragments into a plain untranslated string.
func Render(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.String())
	}
	return b.String()
}

// DayNames are the weekday names used in summaries, indexed Monday=0.
var DayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var weekOrdinals = [5]string{"first", "second", "third", "fourth", "last"}

// Summary describes the schedule as ordered localizable fragments. layout is
// a Go time layout for the start/end dates; empty means 2006-01-02.
func (s *Schedule) Summary(layout string) []Fragment {
	if layout == "" {
		layout = "2006-01-02"
	}
	switch s.kind {
	case KindOnce:
		return []Fragment{{Format: "once on %s", Args: []any{s.start.Format(layout)}}}
	case KindDaily:
		frags := []Fragment{every("day", "every %d days", s.interval), lit(" ")}
		return append(frags, s.boundsFragment(layout))
	case KindWeekly:
		frags := []Fragment{every("week", "every %d weeks", s.interval), lit(" "), lit("on [days]"), lit(" ")}
		names := make([]string, len(s.days))
		for i, d := range s.days {
			names[i] = DayNames[d]
		}
		frags = append(frags, listFragments(names)...)
		return append(frags, s.boundsFragment(layout))
	case KindMonthly:
		frags := []Fragment{every("month", "every %d months", s.interval), lit(" "), lit("on [days]"), lit(" ")}
		if len(s.days) > 0 {
			frags = append(frags, listFragments(itoas(s.days))...)
		}
		for i, ordinal := range weekOrdinals {
			weekdays := s.weeks[i+1]
			if len(weekdays) == 0 {
				continue
			}
			frags = append(frags, lit(ordinal), lit(" "))
			for _, wd := range weekdays {
				frags = append(frags, lit(DayNames[wd]), lit(" "))
			}
		}
		return append(frags, s.boundsFragment(layout))
	case KindYearly:
		frags := []Fragment{every("year", "every %d years", s.interval), lit(" "), lit("on [days]"), lit(" ")}
		frags = append(frags, listFragments(itoas(s.days))...)
		return append(frags, s.boundsFragment(layout))
	}
	return nil
}

func (s *Schedule) boundsFragment(layout string) Fragment {
	if !s.end.IsZero() {
		return Fragment{Format: "from %s to %s", Args: []any{s.start.Format(layout), s.end.Format(layout)}}
	}
	return Fragment{Format: "from %s to forever", Args: []any{s.start.Format(layout)}}
}

func every(unit, plural string, interval int) Fragment {
	if interval == 1 {
		return lit("every " + unit)
	}
	return Fragment{Format: plural, Args: []any{interval}}
}

// listFragments renders "a b & c " with an ampersand before the final item.
func listFragments(items []string) []Fragment {
	var frags []Fragment
	if len(items) > 1 {
		for _, it := range items[:len(items)-1] {
			frags = append(frags, lit(it), lit(" "))
		}
		frags = append(frags, lit("&"), lit(" "))
	}
	return append(frags, lit(items[len(items)-1]), lit(" "))
}

func itoas(ns []int) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = strconv.Itoa(n)
	}
	return out
}

func lit(s string) Fragment {
	return Fragment{Format: s}
}
