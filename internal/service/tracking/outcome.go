package tracking

// Outcome is the result of relaying a single record.
type Outcome string

// Record outcomes.
const (
	OutcomeStored  Outcome = "stored"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Summary aggregates the outcomes of one batch.
type Summary struct {
	Received int
	Stored   int
	Skipped  int
	Failed   int
}

// Add counts one record with outcome o.
func (s *Summary) Add(o Outcome) {
	s.Received++
	switch o {
	case OutcomeStored:
		s.Stored++
	case OutcomeSkipped:
		s.Skipped++
	default:
		s.Failed++
	}
}
