package schedule

import (
	"iter"
	"time"
)

// DefaultHorizonMonths bounds Steps enumeration for open-ended schedules when
// no explicit upper bound is supplied. Callers needing a different horizon can
// either change it process-wide or simply pass an explicit bound.
var DefaultHorizonMonths = 3

// intervalStart returns the start of the interval containing ts. Intervals
// are laid out on a grid of Interval periods anchored at the period
// containing the schedule start; floored modulo keeps instants before the
// start on the same grid.
func (s *Schedule) intervalStart(ts time.Time) time.Time {
	anchor := s.cal.startOfPeriod(s.start)
	elapsed := s.cal.periodsBetween(anchor, s.cal.startOfPeriod(ts))
	return s.cal.addPeriods(anchor, elapsed-floorMod(elapsed, s.interval))
}

func (s *Schedule) nextInterval(ts time.Time) time.Time {
	return s.cal.addPeriods(s.intervalStart(ts), s.interval)
}

func (s *Schedule) prevInterval(ts time.Time) time.Time {
	return s.cal.addPeriods(s.intervalStart(ts), -s.interval)
}

// NextStep returns the occurrence strictly after ts. If ts falls exactly on
// an occurrence the following one is returned. A zero ts means now. ok is
// false when no occurrence follows ts (past the end bound, or a once schedule
// already reached).
func (s *Schedule) NextStep(ts time.Time) (step time.Time, ok bool) {
	if ts.IsZero() {
		ts = time.Now()
	}
	return s.next(ts)
}

func (s *Schedule) next(ts time.Time) (time.Time, bool) {
	interval := s.intervalStart(ts)
	tsPeriod := s.cal.startOfPeriod(ts)
	day := s.cal.periodDay(ts)
	days := s.dayList(ts)
	// Past the firing time on this day: the day itself is spent. This is
	// what makes the search strict when ts sits exactly on an occurrence.
	if clockOf(ts) >= clockOf(s.start) {
		day++
	}
	var stepDay time.Time
	switch {
	case interval.Before(tsPeriod):
		// ts lies in a period beyond the interval's day-list span.
		stepDay = s.dayOn(s.nextInterval(ts), days[0])
	case day > days[len(days)-1]:
		stepDay = s.dayOn(s.nextInterval(ts), days[0])
	case day <= days[0]:
		stepDay = s.dayOn(interval, days[0])
	default:
		d := days[len(days)-1]
		for _, c := range days {
			if day <= c {
				d = c
				break
			}
		}
		stepDay = s.dayOn(interval, d)
	}
	step := combine(stepDay, s.start)
	if !s.end.IsZero() && step.After(s.end) {
		return time.Time{}, false
	}
	if step.Before(s.start) {
		// Queried before the schedule begins; restart from just before
		// start to land on the true first occurrence.
		return s.next(s.start.Add(-time.Second))
	}
	return step, true
}

// PrevStep returns the occurrence strictly before ts. If ts falls exactly on
// an occurrence the preceding one is returned. A zero ts means now. ok is
// false when no occurrence precedes ts.
func (s *Schedule) PrevStep(ts time.Time) (step time.Time, ok bool) {
	if ts.IsZero() {
		ts = time.Now()
	}
	return s.prev(ts)
}

func (s *Schedule) prev(ts time.Time) (time.Time, bool) {
	interval := s.intervalStart(ts)
	tsPeriod := s.cal.startOfPeriod(ts)
	day := s.cal.periodDay(ts)
	days := s.dayList(ts)
	// At or before the firing time on this day: too early for this day's
	// occurrence, so look from the day before.
	if clockOf(ts) <= clockOf(s.start) {
		day--
	}
	var stepDay time.Time
	switch {
	case interval.Before(tsPeriod):
		// ts lies past the interval's day-list span, so the answer is
		// the interval's own last day.
		stepDay = s.dayOn(interval, days[len(days)-1])
	case day < days[0]:
		stepDay = s.dayOn(s.prevInterval(ts), days[len(days)-1])
	case day >= days[len(days)-1]:
		stepDay = s.dayOn(interval, days[len(days)-1])
	default:
		d := days[0]
		for i := len(days) - 1; i >= 0; i-- {
			if days[i] <= day {
				d = days[i]
				break
			}
		}
		stepDay = s.dayOn(interval, d)
	}
	step := combine(stepDay, s.start)
	if step.Before(s.start) {
		return time.Time{}, false
	}
	if !s.end.IsZero() && step.After(s.end) {
		if ref := s.end.Add(time.Second); ts.After(ref) {
			// Queried after the schedule has ended; clamp to the true
			// last occurrence by restarting from just past the end.
			return s.prev(ref)
		}
		// A sub-second end bound can leave the candidate inside
		// (end, end+1s]. The final occurrence is the one before it,
		// at least a full day earlier.
		return s.prev(step)
	}
	return step, true
}

// dayOn places a day-list entry on the calendar relative to an interval
// start. Day positions past the period's length roll over: a monthly day 31
// in February lands in March.
func (s *Schedule) dayOn(interval time.Time, day int) time.Time {
	return interval.AddDate(0, 0, s.cal.dayOffset(day))
}

// FirstStep returns the schedule's earliest occurrence.
func (s *Schedule) FirstStep() (time.Time, bool) {
	return s.next(s.start.Add(-time.Second))
}

// LastStep returns the schedule's final occurrence. Open-ended schedules have
// none.
func (s *Schedule) LastStep() (time.Time, bool) {
	if s.end.IsZero() {
		return time.Time{}, false
	}
	return s.prev(s.end.Add(time.Second))
}

// Steps returns a lazy, finite sequence of the occurrences in (after, before].
// A zero after defaults to just before the schedule start; a zero before
// defaults to the end bound, or for open-ended schedules to the start
// advanced by DefaultHorizonMonths. Each call yields an independent sequence;
// callers may stop iterating at any point.
func (s *Schedule) Steps(after, before time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if after.IsZero() {
			after = s.start.Add(-time.Second)
		}
		if before.IsZero() {
			if !s.end.IsZero() {
				before = s.end.Add(time.Second)
			} else {
				before = s.start.AddDate(0, DefaultHorizonMonths, 0)
			}
		}
		for cur := after; ; {
			step, ok := s.next(cur)
			if !ok || step.After(before) {
				return
			}
			if !yield(step) {
				return
			}
			cur = step
		}
	}
}
