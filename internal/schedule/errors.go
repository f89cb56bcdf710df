package schedule

import (
	"fmt"
	"strings"
)

// Reason classifies a single validation violation.
type Reason string

const (
	ReasonUndefined    Reason = "undefined"
	ReasonUnknown      Reason = "unknown"
	ReasonInvalidWeek  Reason = "invalid week"
	ReasonInvalidDay   Reason = "invalid day"
	ReasonInvalidRange Reason = "invalid range"
)

// Violation is one field-level problem found while validating schedule input.
// Value is nil when the field was missing rather than malformed.
type Violation struct {
	Field  string
	Value  any
	Reason Reason
}

func (v Violation) String() string {
	if v.Value == nil {
		return fmt.Sprintf("%s : %s", v.Field, v.Reason)
	}
	return fmt.Sprintf("%s = %v : %s", v.Field, v.Value, v.Reason)
}

// ValidationError aggregates every violation found in one factory call, so a
// caller fixing input sees all problems at once instead of one per attempt.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return strings.Join(msgs, " | ")
}

// addField records a violation. Pass a nil value for missing fields.
func (e *ValidationError) addField(field string, value any, reason Reason) {
	e.Violations = append(e.Violations, Violation{Field: field, Value: value, Reason: reason})
}

// or returns the aggregate as an error only when something was recorded.
func (e *ValidationError) or() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

// ConstructionError reports a single invariant breach from a kind-specific
// constructor used outside the aggregating factory, such as an unknown
// weekday name.
type ConstructionError struct {
	Kind Kind
	Msg  string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s schedule: %s", e.Kind, e.Msg)
}
