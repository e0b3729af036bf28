package stats

import (
	"strings"
	"time"
)

// Record is one raw event document as returned by the record source.
// Field names and value shapes vary per dataset; adapters in this package
// extract the pieces the aggregation needs.
type Record map[string]any

// Normalizer maps a raw staff identifier to its canonical grouping key.
// Two spellings of the same person must normalize to an identical key.
type Normalizer func(string) string

// DefaultNormalizer lowercases and trims the identifier. This matches the
// inconsistent casing observed in the upstream collections.
func DefaultNormalizer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AllocationPolicy controls how event-level hours/transport values are
// credited when an event lists multiple participants.
type AllocationPolicy string

const (
	// AllocationSharedFullValue credits the full event-level value to every
	// listed participant. This is the historical behavior and the default.
	AllocationSharedFullValue AllocationPolicy = "shared_full_value"

	// AllocationSplitEvenly divides the event-level value by the number of
	// listed participants.
	AllocationSplitEvenly AllocationPolicy = "split_evenly"

	// AllocationPerParticipant credits only values carried on the
	// participant sub-record itself; event-level values contribute nothing.
	AllocationPerParticipant AllocationPolicy = "per_participant"
)

// DatasetSpec describes where a dataset keeps its date, participants,
// hours, and transport values, plus the roster and allocation policy to
// aggregate it under.
type DatasetSpec struct {
	Name              string
	DateField         string
	ParticipantsField string
	HoursField        string
	TransportField    string

	// Roster fixes the identity universe and its order. Nil means the
	// universe is derived from the records observed, in first-seen order.
	Roster []string

	Policy AllocationPolicy
}

// Window is an inclusive calendar-date range. Dates are timezone-naive:
// only year, month, and day participate in comparisons.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// PeriodStatistics is one aggregated row per staff identity for a queried
// window. GrossEarnings and NetEarnings are always derived from
// (HourlyRate, TotalHours, TotalTransport) and nothing else.
type PeriodStatistics struct {
	Identity       string  `json:"identity"`
	DisplayName    string  `json:"display_name"`
	TotalHours     float64 `json:"total_hours"`
	TotalEvents    int     `json:"total_events"`
	TotalTransport float64 `json:"total_transport"`
	HourlyRate     float64 `json:"hourly_rate"`
	GrossEarnings  float64 `json:"gross_earnings"`
	NetEarnings    float64 `json:"net_earnings"`
}

// Recompute refreshes the derived pay fields from the row's own values.
func (p *PeriodStatistics) Recompute() {
	p.GrossEarnings = p.HourlyRate * p.TotalHours
	p.NetEarnings = p.GrossEarnings - p.TotalTransport
}

// SkippedRecord reports a record dropped during aggregation for data
// quality reasons. Skips are warnings, never fatal.
type SkippedRecord struct {
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

// WindowStatistics is the published result of one window query.
type WindowStatistics struct {
	Dataset   string             `json:"dataset"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Sequence  uint64             `json:"sequence"`
	Rows      []PeriodStatistics `json:"rows"`
	Warnings  []SkippedRecord    `json:"warnings,omitempty"`
	Empty     bool               `json:"empty"`
}

// Clone returns a deep copy so published snapshots cannot be mutated by
// callers.
func (ws *WindowStatistics) Clone() *WindowStatistics {
	if ws == nil {
		return nil
	}
	out := *ws
	out.Rows = make([]PeriodStatistics, len(ws.Rows))
	copy(out.Rows, ws.Rows)
	out.Warnings = make([]SkippedRecord, len(ws.Warnings))
	copy(out.Warnings, ws.Warnings)
	return &out
}
