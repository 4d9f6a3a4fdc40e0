package application

import (
	"time"

	"github.com/placedly/backend/pkg/kernel"
)

// Outcome represents the triage state of an application. The storage
// schema keeps two independent booleans for historical reasons; the
// domain only ever sees this enum, so a record that is both selected and
// rejected cannot be constructed here.
type Outcome string

const (
	OutcomePending  Outcome = "PENDING"
	OutcomeSelected Outcome = "SELECTED"
	OutcomeRejected Outcome = "REJECTED"
)

// IsValid reports whether the outcome is one of the known states.
func (o Outcome) IsValid() bool {
	return o == OutcomePending || o == OutcomeSelected || o == OutcomeRejected
}

// IsDecided reports whether the outcome is terminal.
func (o Outcome) IsDecided() bool {
	return o == OutcomeSelected || o == OutcomeRejected
}

// OutcomeFromFlags maps the stored flag pair onto the enum. The second
// return value reports the both-flags-set hazard so callers can log it;
// such records are read as rejected rather than dropped.
func OutcomeFromFlags(selected, rejected bool) (Outcome, bool) {
	switch {
	case selected && rejected:
		return OutcomeRejected, true
	case rejected:
		return OutcomeRejected, false
	case selected:
		return OutcomeSelected, false
	default:
		return OutcomePending, false
	}
}

// Flags returns the stored representation of the outcome. Exactly one
// flag is set for decided outcomes, neither for pending.
func (o Outcome) Flags() (selected, rejected bool) {
	return o == OutcomeSelected, o == OutcomeRejected
}

type Application struct {
	ID          kernel.ApplicationID `json:"id"`
	PostingID   kernel.PostingID     `json:"posting_id"`
	ApplicantID kernel.ApplicantID   `json:"applicant_id,omitempty"`
	Name        string               `json:"name"`
	Email       kernel.Email         `json:"email"`
	Phone       string               `json:"phone,omitempty"`
	Gender      string               `json:"gender,omitempty"`
	ResumeID    kernel.BlobID        `json:"resume_id,omitempty"`
	SubmittedAt *time.Time           `json:"submitted_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	Outcome     Outcome              `json:"outcome"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPending checks if the application has not been decided yet
func (a *Application) IsPending() bool {
	return !a.Outcome.IsDecided()
}

// HasResume checks if a resume blob is attached
func (a *Application) HasResume() bool {
	return !a.ResumeID.IsEmpty()
}

// EffectiveTime returns the timestamp used for ordering: the explicit
// submission time when present, the record creation time otherwise, and
// the zero time (oldest) when neither is set. Missing timestamps are
// never an error.
func (a *Application) EffectiveTime() time.Time {
	if a.SubmittedAt != nil {
		return *a.SubmittedAt
	}
	return a.CreatedAt
}
