package stats

import (
	"fmt"
	"time"
)

// Date layouts accepted across the upstream collections. Stored dates are
// calendar dates with no timezone; comparisons use the parsed value as-is.
var dateLayouts = []string{"2006/01/02", "2006-01-02"}

// ParseDate parses a calendar-date string in any accepted layout.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// RecordID returns the document id injected by the record source, or ""
// when absent.
func (r Record) RecordID() string {
	id, _ := r["id"].(string)
	return id
}

// Date extracts and parses the record's date field.
func (r Record) Date(field string) (time.Time, error) {
	raw, ok := r[field].(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: field %q is not a string", ErrInvalidDate, field)
	}
	return ParseDate(raw)
}

// Number coerces a document value to float64. JSON decoding yields float64
// for all numbers, but hand-entered documents occasionally carry ints.
func (r Record) Number(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// String returns the record's field as a string, or "" when absent or of
// another type.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Participant is one staff entry on a record. Hours and Transport are set
// only when the sub-record carries its own value; nil means the event-level
// value applies, subject to the dataset's allocation policy. Some
// collections mix the two (per-participant hours, shared transport).
type Participant struct {
	Name      string
	Hours     *float64
	Transport *float64
}

// participant sub-record keys vary per collection
var (
	subRecordNameKeys  = []string{"name", "identifier"}
	subRecordHoursKeys = []string{"hours", "hoursWorked", "hrs_worked"}
)

// Participants extracts the record's participant entries. Both upstream
// shapes are supported: a plain list of names, and a list of sub-records
// with per-participant hours/transport. A missing or malformed field
// returns ok=false; such records are skipped with a warning upstream.
func (r Record) Participants(field string) (entries []Participant, ok bool) {
	raw, present := r[field]
	if !present {
		return nil, false
	}
	list, isList := raw.([]any)
	if !isList {
		return nil, false
	}

	entries = make([]Participant, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case string:
			entries = append(entries, Participant{Name: v})
		case map[string]any:
			p, valid := subRecordParticipant(v)
			if !valid {
				// one bad element poisons the whole list, matching the
				// all-or-nothing skip upstream applies to malformed docs
				return nil, false
			}
			entries = append(entries, p)
		default:
			return nil, false
		}
	}
	return entries, true
}

func subRecordParticipant(m map[string]any) (Participant, bool) {
	var p Participant
	for _, key := range subRecordNameKeys {
		if name, isStr := m[key].(string); isStr && name != "" {
			p.Name = name
			break
		}
	}
	if p.Name == "" {
		return Participant{}, false
	}
	for _, key := range subRecordHoursKeys {
		if _, present := m[key]; present {
			hours := Record(m).Number(key)
			p.Hours = &hours
			break
		}
	}
	if _, present := m["transport"]; present {
		transport := Record(m).Number("transport")
		p.Transport = &transport
	}
	return p, true
}
