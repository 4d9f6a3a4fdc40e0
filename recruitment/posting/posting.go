package posting

import (
	"time"

	"github.com/placedly/backend/pkg/kernel"
)

// Kind distinguishes the two posting collections. Jobs and internships
// share one shape and differ only in where they are stored.
type Kind string

const (
	KindJob        Kind = "JOB"
	KindInternship Kind = "INTERNSHIP"
)

// IsValid reports whether the kind is one of the known posting kinds.
func (k Kind) IsValid() bool {
	return k == KindJob || k == KindInternship
}

type Posting struct {
	ID          kernel.PostingID    `json:"id"`
	Kind        Kind                `json:"kind"`
	Title       kernel.PostingTitle `json:"title"`
	CompanyName kernel.CompanyName  `json:"company_name"`
	PostedBy    kernel.RecruiterID  `json:"posted_by,omitempty"`
	ExpiresAt   *time.Time          `json:"expires_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// IsExpired reports whether the posting's deadline has passed. Expired
// postings are removed by an external cleanup job; the triage engine
// still serves them until that happens.
func (p *Posting) IsExpired() bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(time.Now())
}
