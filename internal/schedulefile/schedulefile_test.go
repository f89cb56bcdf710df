package schedulefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/cadence/internal/schedule"
)

const sampleDoc = `
schedules:
  - name: standup
    repeat: weekly
    start: 2011-01-03 09:30:00
    weekdays: [mon, wed, fri]
    interval: 1
  - name: rent
    repeat: monthly
    start: "2011-01-01"
    days: [1]
    interval: 1
  - name: retro
    repeat: monthly
    start: 2011-01-01
    interval: 1
    weeks:
      5: [4]
`

func TestParseDocument(t *testing.T) {
	named, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(named) != 3 {
		t.Fatalf("Parse returned %d schedules, want 3", len(named))
	}

	standup := named[0]
	if standup.Name != "standup" || standup.Schedule.Kind() != schedule.KindWeekly {
		t.Errorf("schedule[0] = %s %s, want weekly standup", standup.Name, standup.Schedule.Kind())
	}
	wantStart := time.Date(2011, 1, 3, 9, 30, 0, 0, time.Local)
	if !standup.Schedule.Start().Equal(wantStart) {
		t.Errorf("standup start = %v, want %v", standup.Schedule.Start(), wantStart)
	}
	if days := standup.Schedule.Days(time.Time{}); len(days) != 3 || days[0] != 0 || days[2] != 4 {
		t.Errorf("standup days = %v, want [0 2 4]", days)
	}

	if named[1].Schedule.Kind() != schedule.KindMonthly {
		t.Errorf("schedule[1] kind = %s, want monthly", named[1].Schedule.Kind())
	}

	retro := named[2].Schedule
	lastFriday := retro.Days(time.Date(2014, 1, 1, 0, 0, 0, 0, time.Local))
	if len(lastFriday) != 1 || lastFriday[0] != 31 {
		t.Errorf("retro days for 2014-01 = %v, want [31]", lastFriday)
	}
}

func TestParseSurfacesAggregatedValidation(t *testing.T) {
	doc := `
schedules:
  - name: broken
    repeat: weekly
    start: 2011-01-03
    interval: 1
    days: [7, 8]
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("Parse should fail on out-of-range weekdays")
	}
	var verr *schedule.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v (%T) should wrap *schedule.ValidationError", err, err)
	}
	if len(verr.Violations) != 2 {
		t.Errorf("violations = %v, want both bad days reported", verr.Violations)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q should name the entry", err)
	}
}

func TestParseRejectsBadTimestampAndWeekday(t *testing.T) {
	if _, err := Parse([]byte("schedules:\n  - repeat: daily\n    start: tomorrow\n    interval: 1\n")); err == nil {
		t.Error("Parse should reject unrecognized timestamps")
	}
	doc := "schedules:\n  - repeat: weekly\n    start: 2011-01-03\n    interval: 1\n    weekdays: [monday]\n"
	_, err := Parse([]byte(doc))
	var cerr *schedule.ConstructionError
	if !errors.As(err, &cerr) {
		t.Errorf("error %v (%T) should wrap *schedule.ConstructionError", err, err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.yaml")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	named, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(named) != 3 {
		t.Errorf("Load returned %d schedules, want 3", len(named))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail on a missing file")
	}
}
