package applicationsrv_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/placedly/backend/pkg/blobx"
	"github.com/placedly/backend/pkg/errx"
	"github.com/placedly/backend/pkg/kernel"
	"github.com/placedly/backend/recruitment/application"
	"github.com/placedly/backend/recruitment/application/applicationsrv"
	"github.com/placedly/backend/recruitment/posting"
	"github.com/placedly/backend/recruitment/premium"
	"github.com/placedly/backend/recruitment/premium/premiumsrv"
)

const postingHex = "65f2a1b3c4d5e6f708192a3b"

// ============================================================================
// Fakes
// ============================================================================

type fakeApplicationRepo struct {
	apps    []application.Application
	listErr error

	setID      kernel.ApplicationID
	setPosting kernel.PostingID
	setOutcome application.Outcome
	setCalls   int
	setErr     error
}

func (f *fakeApplicationRepo) ListByPosting(ctx context.Context, postingID kernel.PostingID) ([]application.Application, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.apps, nil
}

func (f *fakeApplicationRepo) SetOutcome(ctx context.Context, id kernel.ApplicationID, postingID kernel.PostingID, outcome application.Outcome) (*application.Application, error) {
	f.setCalls++
	f.setID = id
	f.setPosting = postingID
	f.setOutcome = outcome
	if f.setErr != nil {
		return nil, f.setErr
	}
	return &application.Application{ID: id, PostingID: postingID, Outcome: outcome}, nil
}

type fakePostingRepo struct {
	posting *posting.Posting
	err     error
}

func (f *fakePostingRepo) GetByID(ctx context.Context, kind posting.Kind, id kernel.PostingID) (*posting.Posting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posting, nil
}

type fakeMemberRepo struct {
	members []premium.Membership
	err     error
}

func (f *fakeMemberRepo) ListAll(ctx context.Context) ([]premium.Membership, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

type fakeBlobStore struct {
	meta  *blobx.Metadata
	body  string
	err   error
	calls int
}

func (f *fakeBlobStore) Open(ctx context.Context, id string) (*blobx.Metadata, io.ReadCloser, error) {
	f.calls++
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.meta, io.NopCloser(strings.NewReader(f.body)), nil
}

func newService(appRepo *fakeApplicationRepo, postingRepo *fakePostingRepo, memberRepo *fakeMemberRepo, blobs *fakeBlobStore) *applicationsrv.ApplicationService {
	return applicationsrv.NewApplicationService(
		appRepo,
		postingRepo,
		premiumsrv.NewDirectory(memberRepo),
		blobs,
	)
}

func testPosting() *posting.Posting {
	return &posting.Posting{
		ID:          kernel.PostingID(postingHex),
		Kind:        posting.KindJob,
		Title:       "Backend Engineer",
		CompanyName: "Placedly",
	}
}

func ts(day int) *time.Time {
	t := time.Date(2025, 5, day, 8, 0, 0, 0, time.UTC)
	return &t
}

// ============================================================================
// ListApplicantsForPosting
// ============================================================================

func TestListApplicants_OrderAndAnnotations(t *testing.T) {
	appRepo := &fakeApplicationRepo{apps: []application.Application{
		{ID: "sel-premium", ApplicantID: "member-1", Outcome: application.OutcomeSelected, SubmittedAt: ts(9)},
		{ID: "pending-standard", Email: "plain@example.com", Outcome: application.OutcomePending, SubmittedAt: ts(8)},
		{ID: "pending-premium", Email: "gold@example.com", Outcome: application.OutcomePending, SubmittedAt: ts(1)},
		{ID: "rej-standard", Outcome: application.OutcomeRejected, SubmittedAt: ts(7)},
	}}
	memberRepo := &fakeMemberRepo{members: []premium.Membership{
		{MemberID: "member-1"},
		{Email: "gold@example.com"},
	}}
	svc := newService(appRepo, &fakePostingRepo{posting: testPosting()}, memberRepo, &fakeBlobStore{})

	resp, err := svc.ListApplicantsForPosting(context.Background(), posting.KindJob, kernel.PostingID(postingHex))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Success {
		t.Error("response should report success")
	}
	if resp.PostingTitle != "Backend Engineer" || resp.PostingCompanyName != "Placedly" {
		t.Errorf("posting header = %q / %q", resp.PostingTitle, resp.PostingCompanyName)
	}
	if resp.PostingID != kernel.PostingID(postingHex) {
		t.Errorf("posting id = %s", resp.PostingID)
	}

	wantOrder := []string{"pending-premium", "pending-standard", "sel-premium", "rej-standard"}
	if len(resp.Applicants) != len(wantOrder) {
		t.Fatalf("got %d applicants, want %d", len(resp.Applicants), len(wantOrder))
	}
	for i, id := range wantOrder {
		if resp.Applicants[i].ID.String() != id {
			t.Fatalf("position %d = %s, want %s", i, resp.Applicants[i].ID, id)
		}
	}

	if !resp.Applicants[0].Premium || !resp.Applicants[2].Premium {
		t.Error("premium applicants not annotated")
	}
	if resp.Applicants[1].Premium || resp.Applicants[3].Premium {
		t.Error("standard applicants annotated as premium")
	}
}

func TestListApplicants_PostingNotFound(t *testing.T) {
	svc := newService(
		&fakeApplicationRepo{},
		&fakePostingRepo{err: posting.ErrPostingNotFound()},
		&fakeMemberRepo{},
		&fakeBlobStore{},
	)

	_, err := svc.ListApplicantsForPosting(context.Background(), posting.KindJob, "missing")
	if !errx.IsType(err, errx.TypeNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListApplicants_EmptyPosting(t *testing.T) {
	svc := newService(&fakeApplicationRepo{}, &fakePostingRepo{posting: testPosting()}, &fakeMemberRepo{}, &fakeBlobStore{})

	resp, err := svc.ListApplicantsForPosting(context.Background(), posting.KindJob, kernel.PostingID(postingHex))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Applicants) != 0 {
		t.Errorf("got %d applicants for an empty posting", len(resp.Applicants))
	}
	if !resp.Success {
		t.Error("empty listing should still report success")
	}
}

// When the membership projection is unreachable the listing still
// succeeds with every applicant classified standard.
func TestListApplicants_PremiumStoreDown(t *testing.T) {
	appRepo := &fakeApplicationRepo{apps: []application.Application{
		{ID: "a", ApplicantID: "member-1", Outcome: application.OutcomePending, SubmittedAt: ts(2)},
		{ID: "b", Email: "gold@example.com", Outcome: application.OutcomePending, SubmittedAt: ts(3)},
	}}
	memberRepo := &fakeMemberRepo{err: errors.New("connection refused")}
	svc := newService(appRepo, &fakePostingRepo{posting: testPosting()}, memberRepo, &fakeBlobStore{})

	resp, err := svc.ListApplicantsForPosting(context.Background(), posting.KindJob, kernel.PostingID(postingHex))
	if err != nil {
		t.Fatalf("listing should degrade, got error: %v", err)
	}
	for _, a := range resp.Applicants {
		if a.Premium {
			t.Errorf("applicant %s classified premium with the roster down", a.ID)
		}
	}
}

func TestListApplicants_ApplicationStoreDown(t *testing.T) {
	appRepo := &fakeApplicationRepo{listErr: errors.New("connection refused")}
	svc := newService(appRepo, &fakePostingRepo{posting: testPosting()}, &fakeMemberRepo{}, &fakeBlobStore{})

	_, err := svc.ListApplicantsForPosting(context.Background(), posting.KindJob, kernel.PostingID(postingHex))
	if err == nil {
		t.Fatal("application store failure must fail the listing")
	}
}

// ============================================================================
// Transition
// ============================================================================

func TestTransition_Select(t *testing.T) {
	appRepo := &fakeApplicationRepo{}
	svc := newService(appRepo, &fakePostingRepo{posting: testPosting()}, &fakeMemberRepo{}, &fakeBlobStore{})

	updated, err := svc.Transition(context.Background(), kernel.PostingID(postingHex), "app-1", application.OutcomeSelected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Outcome != application.OutcomeSelected {
		t.Errorf("outcome = %s", updated.Outcome)
	}
	if appRepo.setID != "app-1" || appRepo.setPosting != kernel.PostingID(postingHex) {
		t.Errorf("repo called with (%s, %s)", appRepo.setID, appRepo.setPosting)
	}
}

func TestTransition_RejectsPending(t *testing.T) {
	appRepo := &fakeApplicationRepo{}
	svc := newService(appRepo, &fakePostingRepo{posting: testPosting()}, &fakeMemberRepo{}, &fakeBlobStore{})

	_, err := svc.Transition(context.Background(), kernel.PostingID(postingHex), "app-1", application.OutcomePending)
	if !errx.IsType(err, errx.TypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appRepo.setCalls != 0 {
		t.Error("repository must not be called for an invalid outcome")
	}
}

func TestTransition_WrongPosting(t *testing.T) {
	appRepo := &fakeApplicationRepo{setErr: application.ErrApplicationNotFound()}
	svc := newService(appRepo, &fakePostingRepo{posting: testPosting()}, &fakeMemberRepo{}, &fakeBlobStore{})

	_, err := svc.Transition(context.Background(), "other-posting", "app-1", application.OutcomeRejected)
	if !errx.IsType(err, errx.TypeNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

// Re-applying a decision and flipping between decisions both go straight
// to the repository; the service imposes no state machine beyond
// rejecting PENDING as a target.
func TestTransition_RepeatAndFlip(t *testing.T) {
	appRepo := &fakeApplicationRepo{}
	svc := newService(appRepo, &fakePostingRepo{posting: testPosting()}, &fakeMemberRepo{}, &fakeBlobStore{})

	for _, outcome := range []application.Outcome{
		application.OutcomeSelected,
		application.OutcomeSelected,
		application.OutcomeRejected,
	} {
		if _, err := svc.Transition(context.Background(), kernel.PostingID(postingHex), "app-1", outcome); err != nil {
			t.Fatalf("transition to %s failed: %v", outcome, err)
		}
	}
	if appRepo.setCalls != 3 {
		t.Errorf("repo called %d times, want 3", appRepo.setCalls)
	}
	if appRepo.setOutcome != application.OutcomeRejected {
		t.Errorf("final outcome = %s", appRepo.setOutcome)
	}
}

// ============================================================================
// StreamResume
// ============================================================================

func TestStreamResume(t *testing.T) {
	blobs := &fakeBlobStore{
		meta: &blobx.Metadata{
			ID:          postingHex,
			Filename:    "resume.pdf",
			ContentType: "application/pdf",
			Length:      11,
		},
		body: "pdf content",
	}
	svc := newService(&fakeApplicationRepo{}, &fakePostingRepo{}, &fakeMemberRepo{}, blobs)

	meta, stream, err := svc.StreamResume(context.Background(), kernel.BlobID(postingHex))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stream.Close()

	if meta.Filename != "resume.pdf" || meta.ContentType != "application/pdf" {
		t.Errorf("metadata = %+v", meta)
	}
	body, err := io.ReadAll(stream)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "pdf content" {
		t.Errorf("body = %q", body)
	}
}

func TestStreamResume_MalformedID(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := newService(&fakeApplicationRepo{}, &fakePostingRepo{}, &fakeMemberRepo{}, blobs)

	_, _, err := svc.StreamResume(context.Background(), "not-a-hex-id")
	if !errx.IsType(err, errx.TypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if blobs.calls != 0 {
		t.Error("store must not be touched for a malformed id")
	}
}

func TestStreamResume_NotFound(t *testing.T) {
	blobs := &fakeBlobStore{err: blobx.ErrNotFound}
	svc := newService(&fakeApplicationRepo{}, &fakePostingRepo{}, &fakeMemberRepo{}, blobs)

	_, _, err := svc.StreamResume(context.Background(), kernel.BlobID(postingHex))
	if !errx.IsType(err, errx.TypeNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestStreamResume_StoreUnavailable(t *testing.T) {
	unavailable := errx.Wrap(errors.New("connection refused"), "applicant store unreachable", errx.TypeUnavailable)
	blobs := &fakeBlobStore{err: unavailable}
	svc := newService(&fakeApplicationRepo{}, &fakePostingRepo{}, &fakeMemberRepo{}, blobs)

	_, _, err := svc.StreamResume(context.Background(), kernel.BlobID(postingHex))
	if !errx.IsType(err, errx.TypeUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}
