// Package schedule computes occurrence instants for declaratively defined
// recurring calendar events.
//
// A Schedule is an immutable value describing one of five recurrence kinds
// (once, daily, weekly, monthly, yearly). Once constructed it can be queried
// concurrently without synchronization: every query is a pure function of the
// schedule and the supplied instant.
//
// Terminology: a *period* is the smallest repeating calendar unit of a kind
// (day, week, month, year). An *interval* is a span of Interval consecutive
// periods anchored on the period containing the schedule's start. A schedule
// fires only on its selected day positions within each interval's first
// period, always at the start instant's time of day.
package schedule

import (
	"sort"
	"time"
)

// Kind identifies a schedule's recurrence type.
type Kind string

const (
	KindOnce    Kind = "once"
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindYearly  Kind = "yearly"
)

// Schedule is an immutable recurring-event definition. Construct one through
// New or the kind-specific constructors; querying a Schedule assembled by
// other means has undefined behavior.
type Schedule struct {
	kind     Kind
	start    time.Time
	end      time.Time // zero means open-ended
	interval int
	days     []int         // sorted day positions within a period
	weeks    map[int][]int // monthly only: week ordinal (1..5, 5=last) -> weekdays (0=Monday)
	cal      calendar
}

// Kind returns the recurrence kind.
func (s *Schedule) Kind() Kind { return s.kind }

// Start returns the schedule's anchor instant. Its time of day is the time of
// day of every occurrence.
func (s *Schedule) Start() time.Time { return s.start }

// End returns the schedule's end bound. ok is false for open-ended schedules.
// A once schedule ends at its own start.
func (s *Schedule) End() (end time.Time, ok bool) {
	return s.end, !s.end.IsZero()
}

// Interval returns the number of periods spanned by one interval.
func (s *Schedule) Interval() int { return s.interval }

// Weeks returns a copy of the monthly week rules, or nil for other kinds.
func (s *Schedule) Weeks() map[int][]int {
	if len(s.weeks) == 0 {
		return nil
	}
	out := make(map[int][]int, len(s.weeks))
	for k, v := range s.weeks {
		out[k] = append([]int(nil), v...)
	}
	return out
}

// Days returns the sorted day positions on which the schedule fires within
// the period containing ref. Only monthly schedules vary by ref (week rules
// resolve against ref's month); other kinds return a constant list. A zero
// ref means now.
func (s *Schedule) Days(ref time.Time) []int {
	return append([]int(nil), s.dayList(ref)...)
}

// dayList is the engine-facing day list. Callers must not mutate the result.
func (s *Schedule) dayList(ref time.Time) []int {
	if s.kind == KindMonthly {
		return s.monthDays(ref)
	}
	return s.days
}

// sortedInts copies and sorts a day list so Schedule values never alias
// caller-owned slices.
func sortedInts(days []int) []int {
	out := append([]int(nil), days...)
	sort.Ints(out)
	return out
}
