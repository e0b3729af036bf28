package stats

// Dataset names known to the back office. They mirror the upstream
// collections one-to-one.
const (
	DatasetSignatureWaiters = "signature_waiters"
	DatasetCasualWaiters    = "casual_waiters"
	DatasetStaffedEvents    = "staffed_events"
	DatasetCasualStaffed    = "casual_staffed"
	DatasetSteps            = "steps"
)

// DefaultDatasets builds the dataset registry. The roster is injected by
// the caller (from configuration) rather than baked in here, so the fixed
// waiter list lives in exactly one place.
func DefaultDatasets(roster []string) map[string]DatasetSpec {
	return map[string]DatasetSpec{
		DatasetSignatureWaiters: {
			Name:              DatasetSignatureWaiters,
			DateField:         "date",
			ParticipantsField: "waiters",
			HoursField:        "hrs_worked",
			TransportField:    "transport",
			Roster:            roster,
			Policy:            AllocationSharedFullValue,
		},
		DatasetCasualWaiters: {
			Name:              DatasetCasualWaiters,
			DateField:         "date",
			ParticipantsField: "cas_waiters",
			HoursField:        "hrs_worked",
			TransportField:    "transport",
			Policy:            AllocationSharedFullValue,
		},
		DatasetStaffedEvents: {
			Name:              DatasetStaffedEvents,
			DateField:         "date",
			ParticipantsField: "waiters",
			HoursField:        "hrs_worked",
			TransportField:    "transport",
			Policy:            AllocationPerParticipant,
		},
		DatasetCasualStaffed: {
			Name:              DatasetCasualStaffed,
			DateField:         "date",
			ParticipantsField: "cas_waiters",
			HoursField:        "hrs_worked",
			TransportField:    "transport",
			Policy:            AllocationSharedFullValue,
		},
	}
}
