package schedule

import (
	"sort"
	"time"
)

// monthDays resolves the concrete day-of-month numbers a monthly schedule
// fires on in ref's month: the explicit day list unioned with the days
// selected by week rules. Week ordinals 1..4 pick the Nth occurrence of a
// weekday; ordinal 5 picks the last occurrence, which is found within the
// final 7 days of the month regardless of how the weeks fall. A zero ref
// means now.
func (s *Schedule) monthDays(ref time.Time) []int {
	if len(s.weeks) == 0 {
		return s.days
	}
	if ref.IsZero() {
		ref = time.Now()
	}
	set := make(map[int]struct{}, len(s.days))
	for _, d := range s.days {
		set[d] = struct{}{}
	}
	year, month := ref.Year(), ref.Month()
	first := weekdayMon0(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	length := daysInMonth(year, month)
	lastWeek := length - 6
	weekday := first
	ordinal := 0
	for dom := 1; dom <= length; dom++ {
		if weekday == first {
			ordinal++
		}
		if ordinal != 5 && weekContains(s.weeks[ordinal], weekday) {
			set[dom] = struct{}{}
		}
		if dom >= lastWeek && weekContains(s.weeks[5], weekday) {
			set[dom] = struct{}{}
		}
		weekday = (weekday + 1) % 7
	}
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

func weekContains(weekdays []int, weekday int) bool {
	for _, w := range weekdays {
		if w == weekday {
			return true
		}
	}
	return false
}
