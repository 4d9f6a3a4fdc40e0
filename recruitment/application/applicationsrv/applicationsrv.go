package applicationsrv

import (
	"context"
	"errors"
	"io"

	"github.com/placedly/backend/pkg/blobx"
	"github.com/placedly/backend/pkg/errx"
	"github.com/placedly/backend/pkg/kernel"
	"github.com/placedly/backend/recruitment/application"
	"github.com/placedly/backend/recruitment/posting"
	"github.com/placedly/backend/recruitment/premium/premiumsrv"
)

// ApplicationService provides the applicant triage operations for
// recruiters: review-ordered listings, select/reject decisions and
// resume downloads.
type ApplicationService struct {
	applicationRepo application.Repository
	postingRepo     posting.Repository
	premiumDir      *premiumsrv.Directory
	blobStore       blobx.Store
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	postingRepo posting.Repository,
	premiumDir *premiumsrv.Directory,
	blobStore blobx.Store,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
		premiumDir:      premiumDir,
		blobStore:       blobStore,
	}
}

// ListApplicantsForPosting returns every applicant for a posting in
// review order, annotated with premium standing and the posting's
// headline fields.
func (s *ApplicationService) ListApplicantsForPosting(ctx context.Context, kind posting.Kind, postingID kernel.PostingID) (*application.ApplicantListResponse, error) {
	postingEntity, err := s.postingRepo.GetByID(ctx, kind, postingID)
	if err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.ListByPosting(ctx, postingID)
	if err != nil {
		var appErr *errx.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	// Premium standing is decorative relative to the listing itself:
	// the snapshot degrades to an empty index when the directory is
	// unreachable, so the listing still succeeds with everyone standard.
	idx := s.premiumDir.Snapshot(ctx)
	isPremium := func(a *application.Application) bool {
		return idx.IsPremium(a.ApplicantID, a.Email)
	}

	ordered := application.OrderForReview(apps, isPremium)

	responses := make([]application.ApplicantResponse, 0, len(ordered))
	for i := range ordered {
		a := &ordered[i]
		responses = append(responses, application.ApplicantResponse{
			ID:          a.ID,
			ApplicantID: a.ApplicantID,
			Name:        a.Name,
			Email:       a.Email,
			Phone:       a.Phone,
			Gender:      a.Gender,
			ResumeID:    a.ResumeID,
			Status:      a.Outcome,
			Premium:     isPremium(a),
			SubmittedAt: a.SubmittedAt,
			CreatedAt:   a.CreatedAt,
		})
	}

	return &application.ApplicantListResponse{
		Success:            true,
		Applicants:         responses,
		PostingTitle:       postingEntity.Title,
		PostingCompanyName: postingEntity.CompanyName,
		PostingID:          postingEntity.ID,
	}, nil
}

// Transition records a select or reject decision for an application.
// The posting id scopes the update: an application id that belongs to
// another posting is treated as not found. Re-applying the same
// decision succeeds, and a decided application may be flipped to the
// other decision.
func (s *ApplicationService) Transition(ctx context.Context, postingID kernel.PostingID, applicationID kernel.ApplicationID, outcome application.Outcome) (*application.Application, error) {
	if !outcome.IsDecided() {
		return nil, application.ErrInvalidOutcome().WithDetail("outcome", string(outcome))
	}

	updated, err := s.applicationRepo.SetOutcome(ctx, applicationID, postingID, outcome)
	if err != nil {
		var appErr *errx.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errx.Wrap(err, "failed to update application outcome", errx.TypeInternal)
	}
	return updated, nil
}

// StreamResume opens a resume blob for download. Malformed ids are
// rejected before the store is touched, so a bad request never costs a
// round trip or surfaces as a store failure.
func (s *ApplicationService) StreamResume(ctx context.Context, resumeID kernel.BlobID) (*blobx.Metadata, io.ReadCloser, error) {
	if !resumeID.IsValid() {
		return nil, nil, application.ErrInvalidResumeID().WithDetail("resume_id", resumeID.String())
	}

	meta, stream, err := s.blobStore.Open(ctx, resumeID.String())
	if err != nil {
		switch {
		case errors.Is(err, blobx.ErrNotFound):
			return nil, nil, application.ErrResumeNotFound().WithDetail("resume_id", resumeID.String())
		case errors.Is(err, blobx.ErrInvalidID):
			return nil, nil, application.ErrInvalidResumeID().WithDetail("resume_id", resumeID.String())
		}
		var appErr *errx.Error
		if errors.As(err, &appErr) {
			return nil, nil, appErr
		}
		return nil, nil, errx.Wrap(err, "failed to open resume", errx.TypeExternal)
	}
	return meta, stream, nil
}
