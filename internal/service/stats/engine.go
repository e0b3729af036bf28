package stats

import (
	"sort"
	"strings"

	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
)

// Engine performs the date-window filtering, grouping, and summation that
// every dashboard view shares. It is pure: the output depends only on the
// records, the dataset spec, and the window.
type Engine struct {
	normalize stats.Normalizer
}

func NewEngine(normalize stats.Normalizer) *Engine {
	if normalize == nil {
		normalize = stats.DefaultNormalizer
	}
	return &Engine{normalize: normalize}
}

type survivingRecord struct {
	record       stats.Record
	participants []stats.Participant
}

type identity struct {
	key     string
	display string
}

// Aggregate produces one statistics row per staff identity for the window.
// Records with unparseable dates or malformed participant lists are
// reported as warnings and skipped; records outside the window are dropped
// quietly since the source-side filter is known to be unreliable. Hourly
// rate and the derived pay fields start at zero on every fresh aggregation.
func (e *Engine) Aggregate(records []stats.Record, spec stats.DatasetSpec, window stats.Window) ([]stats.PeriodStatistics, []stats.SkippedRecord) {
	warnings := []stats.SkippedRecord{}

	var kept []survivingRecord
	for _, rec := range records {
		date, err := rec.Date(spec.DateField)
		if err != nil {
			warnings = append(warnings, stats.SkippedRecord{
				RecordID: rec.RecordID(),
				Reason:   "unparseable date",
			})
			continue
		}
		if !window.Contains(date) {
			continue
		}
		participants, ok := rec.Participants(spec.ParticipantsField)
		if !ok {
			warnings = append(warnings, stats.SkippedRecord{
				RecordID: rec.RecordID(),
				Reason:   "participants field is missing or malformed",
			})
			continue
		}
		kept = append(kept, survivingRecord{record: rec, participants: participants})
	}

	universe := e.identityUniverse(spec.Roster, kept)

	rows := make([]stats.PeriodStatistics, 0, len(universe))
	for _, id := range universe {
		row := stats.PeriodStatistics{
			Identity:    id.key,
			DisplayName: id.display,
		}
		for _, s := range kept {
			for _, p := range s.participants {
				if e.normalize(p.Name) != id.key {
					continue
				}
				row.TotalHours += contribution(p.Hours, s.record.Number(spec.HoursField), len(s.participants), spec.Policy)
				row.TotalTransport += contribution(p.Transport, s.record.Number(spec.TransportField), len(s.participants), spec.Policy)
				row.TotalEvents++
				break // a duplicate listing counts once per record
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a := strings.ToLower(rows[i].DisplayName)
		b := strings.ToLower(rows[j].DisplayName)
		return a < b
	})

	return rows, warnings
}

// identityUniverse fixes the output row set: the injected roster in roster
// order, or the normalized union of observed participants in first-seen
// order.
func (e *Engine) identityUniverse(roster []string, kept []survivingRecord) []identity {
	var universe []identity
	if roster != nil {
		for _, name := range roster {
			universe = append(universe, identity{
				key:     e.normalize(name),
				display: strings.TrimSpace(name),
			})
		}
		return universe
	}

	seen := make(map[string]bool)
	for _, s := range kept {
		for _, p := range s.participants {
			key := e.normalize(p.Name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			universe = append(universe, identity{
				key:     key,
				display: strings.TrimSpace(p.Name),
			})
		}
	}
	return universe
}

// contribution resolves one participant's share of a record value. A value
// carried on the sub-record itself always wins; otherwise the event-level
// value is allocated per policy. Shared values are historically credited in
// full to every participant; correcting that is a policy switch, not a
// rewrite.
func contribution(own *float64, eventValue float64, participantCount int, policy stats.AllocationPolicy) float64 {
	if own != nil {
		return *own
	}
	switch policy {
	case stats.AllocationPerParticipant:
		return 0
	case stats.AllocationSplitEvenly:
		if participantCount == 0 {
			return 0
		}
		return eventValue / float64(participantCount)
	default:
		return eventValue
	}
}
