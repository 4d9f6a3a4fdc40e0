package application

import (
	"time"

	"github.com/placedly/backend/pkg/kernel"
)

// ApplicantResponse is one entry of the ordered applicant list. Premium
// is derived from the membership cross-reference at request time and is
// never persisted on the application record.
type ApplicantResponse struct {
	ID          kernel.ApplicationID `json:"id"`
	ApplicantID kernel.ApplicantID   `json:"applicantId,omitempty"`
	Name        string               `json:"name"`
	Email       kernel.Email         `json:"email"`
	Phone       string               `json:"phone,omitempty"`
	Gender      string               `json:"gender,omitempty"`
	ResumeID    kernel.BlobID        `json:"resumeId,omitempty"`
	Status      Outcome              `json:"status"`
	Premium     bool                 `json:"premium"`
	SubmittedAt *time.Time           `json:"submittedAt,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ApplicantListResponse is the listing endpoint payload.
type ApplicantListResponse struct {
	Success            bool                `json:"success"`
	Applicants         []ApplicantResponse `json:"applicants"`
	PostingTitle       kernel.PostingTitle `json:"postingTitle"`
	PostingCompanyName kernel.CompanyName  `json:"postingCompanyName"`
	PostingID          kernel.PostingID    `json:"postingId"`
}

// TransitionResponse is the select/reject endpoint payload.
type TransitionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
