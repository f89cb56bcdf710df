package schedule

import (
	"testing"
	"time"
)

func TestMonthDaysByWeek(t *testing.T) {
	tests := []struct {
		name  string
		days  []int
		weeks map[int][]int
		ref   time.Time
		want  []int
	}{
		{name: "first saturday and second tuesday, feb 2014",
			weeks: map[int][]int{1: {5}, 2: {1}}, ref: dt(2014, 2, 1, 0, 0, 0), want: []int{1, 11}},
		{name: "first saturday and second tuesday, jan 2014",
			weeks: map[int][]int{1: {5}, 2: {1}}, ref: dt(2014, 1, 1, 0, 0, 0), want: []int{4, 14}},
		{name: "fourth friday, feb 2014",
			weeks: map[int][]int{4: {4}}, ref: dt(2014, 2, 1, 0, 0, 0), want: []int{28}},
		{name: "fourth friday, jan 2014",
			weeks: map[int][]int{4: {4}}, ref: dt(2014, 1, 1, 0, 0, 0), want: []int{24}},
		{name: "fourth friday, jan 2015",
			weeks: map[int][]int{4: {4}}, ref: dt(2015, 1, 1, 0, 0, 0), want: []int{23}},
		{name: "last friday, feb 2014",
			weeks: map[int][]int{5: {4}}, ref: dt(2014, 2, 1, 0, 0, 0), want: []int{28}},
		{name: "last friday, jan 2014",
			weeks: map[int][]int{5: {4}}, ref: dt(2014, 1, 1, 0, 0, 0), want: []int{31}},
		{name: "last friday, jan 2015",
			weeks: map[int][]int{5: {4}}, ref: dt(2015, 1, 1, 0, 0, 0), want: []int{30}},
		{name: "fourth and last monday coincide",
			weeks: map[int][]int{4: {0}, 5: {0}}, ref: dt(2014, 2, 1, 0, 0, 0), want: []int{24}},
		{name: "explicit days merge with week rules",
			days: []int{1, 15}, weeks: map[int][]int{5: {4}}, ref: dt(2014, 1, 1, 0, 0, 0), want: []int{1, 15, 31}},
		{name: "explicit day duplicated by week rule collapses",
			days: []int{31}, weeks: map[int][]int{5: {4}}, ref: dt(2014, 1, 1, 0, 0, 0), want: []int{31}},
	}
	for _, tt := range tests {
		s := mustMonthly(t, tt.days, dt(2014, 2, 1, 0, 0, 0), 1, tt.weeks)
		got := s.Days(tt.ref)
		if !equalInts(got, tt.want) {
			t.Errorf("%s: Days(%v) = %v, want %v", tt.name, tt.ref.Format("2006-01"), got, tt.want)
		}
	}
}

// The "last weekday" rule must land on exactly one day inside the final week,
// whatever the month length.
func TestMonthDaysLastWeekdayEveryMonthLength(t *testing.T) {
	months := []time.Time{
		dt(2014, 2, 1, 0, 0, 0), // 28 days
		dt(2016, 2, 1, 0, 0, 0), // 29 days
		dt(2014, 4, 1, 0, 0, 0), // 30 days
		dt(2014, 1, 1, 0, 0, 0), // 31 days
	}
	for wd := 0; wd < 7; wd++ {
		s := mustMonthly(t, nil, dt(2014, 1, 1, 0, 0, 0), 1, map[int][]int{5: {wd}})
		for _, ref := range months {
			got := s.Days(ref)
			if len(got) != 1 {
				t.Fatalf("weekday %d %v: Days = %v, want exactly one day", wd, ref.Format("2006-01"), got)
			}
			length := daysInMonth(ref.Year(), ref.Month())
			if got[0] < length-6 || got[0] > length {
				t.Errorf("weekday %d %v: day %d outside final week of %d-day month", wd, ref.Format("2006-01"), got[0], length)
			}
			fired := time.Date(ref.Year(), ref.Month(), got[0], 0, 0, 0, 0, time.UTC)
			if weekdayMon0(fired) != wd {
				t.Errorf("weekday %d %v: day %d is weekday %d", wd, ref.Format("2006-01"), got[0], weekdayMon0(fired))
			}
		}
	}
}

func TestDaysConstantForOtherKinds(t *testing.T) {
	daily := mustDaily(t, dt(2011, 1, 1, 0, 0, 0), time.Time{}, 1)
	if got := daily.Days(time.Time{}); !equalInts(got, []int{0}) {
		t.Errorf("daily Days() = %v, want [0]", got)
	}
	weekly := mustWeekly(t, []string{"fri", "mon"}, dt(2011, 1, 1, 0, 0, 0), time.Time{}, 1)
	if got := weekly.Days(dt(2011, 6, 1, 0, 0, 0)); !equalInts(got, []int{0, 4}) {
		t.Errorf("weekly Days() = %v, want [0 4]", got)
	}
	yearly := mustYearly(t, []int{99, 1, 321}, dt(2011, 1, 1, 0, 0, 0), 1)
	if got := yearly.Days(time.Time{}); !equalInts(got, []int{1, 99, 321}) {
		t.Errorf("yearly Days() = %v, want sorted input", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
