package premium

import (
	"github.com/placedly/backend/pkg/kernel"
)

// Membership is the cross-service fact "this person has premium status".
// It is owned by the applicant-side service and read-only here.
type Membership struct {
	MemberID kernel.MemberID `json:"member_id"`
	Email    kernel.Email    `json:"email"`
	ResumeID kernel.BlobID   `json:"resume_id,omitempty"`
}

// Index is a lookup over the full membership projection. An application
// is premium when its applicant id is a known member id OR its normalized
// email is a known member email; either match is sufficient because not
// all applications carry a resolvable applicant id.
type Index struct {
	ids    map[string]struct{}
	emails map[string]struct{}
}

// NewIndex builds an index from the membership projection. A nil or empty
// slice yields the empty index, under which no one is premium.
func NewIndex(members []Membership) Index {
	idx := Index{
		ids:    make(map[string]struct{}, len(members)),
		emails: make(map[string]struct{}, len(members)),
	}
	for _, m := range members {
		if m.MemberID.String() != "" {
			idx.ids[m.MemberID.String()] = struct{}{}
		}
		if email := m.Email.Normalized(); !email.IsEmpty() {
			idx.emails[email.String()] = struct{}{}
		}
	}
	return idx
}

// IsPremium classifies one applicant.
func (i Index) IsPremium(applicantID kernel.ApplicantID, email kernel.Email) bool {
	if !applicantID.IsEmpty() {
		if _, ok := i.ids[applicantID.String()]; ok {
			return true
		}
	}
	if normalized := email.Normalized(); !normalized.IsEmpty() {
		if _, ok := i.emails[normalized.String()]; ok {
			return true
		}
	}
	return false
}

// Size returns the number of distinct member ids in the index.
func (i Index) Size() int { return len(i.ids) }
