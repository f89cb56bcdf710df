package schedule

import "time"

// calendar is the per-kind period arithmetic the step engine is written
// against: truncation to period start, a timestamp's day position within its
// period, the 0-based offset of a day-list entry from period start, and
// counting/stepping whole periods. Implementations are stateless.
type calendar interface {
	startOfPeriod(t time.Time) time.Time
	periodDay(t time.Time) int
	dayOffset(day int) int
	periodsBetween(a, b time.Time) int
	addPeriods(t time.Time, n int) time.Time
}

type dayCalendar struct{}

func (dayCalendar) startOfPeriod(t time.Time) time.Time { return startOfDay(t) }

// Once and daily schedules have a single implicit day position.
func (dayCalendar) periodDay(t time.Time) int { return 0 }

func (dayCalendar) dayOffset(day int) int { return day }

func (dayCalendar) periodsBetween(a, b time.Time) int { return daysBetween(a, b) }

func (dayCalendar) addPeriods(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }

type weekCalendar struct{}

func (weekCalendar) startOfPeriod(t time.Time) time.Time { return startOfWeek(t) }

func (weekCalendar) periodDay(t time.Time) int { return weekdayMon0(t) }

func (weekCalendar) dayOffset(day int) int { return day }

func (weekCalendar) periodsBetween(a, b time.Time) int { return daysBetween(a, b) / 7 }

func (weekCalendar) addPeriods(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) }

type monthCalendar struct{}

func (monthCalendar) startOfPeriod(t time.Time) time.Time { return startOfMonth(t) }

func (monthCalendar) periodDay(t time.Time) int { return t.Day() }

// Day-of-month is 1-based; date arithmetic wants an offset from month start.
func (monthCalendar) dayOffset(day int) int { return day - 1 }

func (monthCalendar) periodsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func (monthCalendar) addPeriods(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) }

type yearCalendar struct{}

func (yearCalendar) startOfPeriod(t time.Time) time.Time { return startOfYear(t) }

func (yearCalendar) periodDay(t time.Time) int { return t.YearDay() }

func (yearCalendar) dayOffset(day int) int { return day - 1 }

func (yearCalendar) periodsBetween(a, b time.Time) int { return b.Year() - a.Year() }

func (yearCalendar) addPeriods(t time.Time, n int) time.Time { return t.AddDate(n, 0, 0) }

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek truncates to the preceding (or same) Monday at midnight.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -weekdayMon0(t))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// weekdayMon0 maps time.Weekday (Sunday=0) to the Monday=0 convention the
// day lists use.
func weekdayMon0(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// daysBetween counts calendar days from a's date to b's date. Both are
// converted to UTC-midnight day numbers so that DST transitions in the
// instants' location cannot skew the count.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// clockOf is the wall-clock time of day, used to decide whether a reference
// instant is before or past the schedule's firing time on a given day.
func clockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// combine pairs a computed calendar date with the schedule's time of day.
func combine(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(),
		day.Location())
}

// floorMod always returns a value in [0, n), unlike Go's % for negative
// operands. Interval math needs this when the reference instant precedes the
// schedule start.
func floorMod(x, n int) int {
	return ((x % n) + n) % n
}
