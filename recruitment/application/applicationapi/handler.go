package applicationapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/placedly/backend/pkg/kernel"
	"github.com/placedly/backend/recruitment/application"
	"github.com/placedly/backend/recruitment/application/applicationsrv"
	"github.com/placedly/backend/recruitment/posting"
)

// Handlers provides HTTP handlers for applicant triage operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListJobApplicants lists applicants for a job in review order
// GET /api/recruiter/jobs/:id/applicants
func (h *Handlers) ListJobApplicants(c *fiber.Ctx) error {
	return h.listApplicants(c, posting.KindJob)
}

// ListInternshipApplicants lists applicants for an internship in review order
// GET /api/recruiter/internships/:id/applicants
func (h *Handlers) ListInternshipApplicants(c *fiber.Ctx) error {
	return h.listApplicants(c, posting.KindInternship)
}

func (h *Handlers) listApplicants(c *fiber.Ctx, kind posting.Kind) error {
	postingID := kernel.PostingID(c.Params("id"))
	if postingID.IsEmpty() {
		return posting.ErrPostingNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.ListApplicantsForPosting(c.Context(), kind, postingID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SelectJobApplication marks a job application as selected
// POST /api/recruiter/jobs/:postingId/applications/:applicationId/select
func (h *Handlers) SelectJobApplication(c *fiber.Ctx) error {
	return h.transition(c, application.OutcomeSelected)
}

// RejectJobApplication marks a job application as rejected
// POST /api/recruiter/jobs/:postingId/applications/:applicationId/reject
func (h *Handlers) RejectJobApplication(c *fiber.Ctx) error {
	return h.transition(c, application.OutcomeRejected)
}

// SelectInternshipApplication marks an internship application as selected
// POST /api/recruiter/internships/:postingId/applications/:applicationId/select
func (h *Handlers) SelectInternshipApplication(c *fiber.Ctx) error {
	return h.transition(c, application.OutcomeSelected)
}

// RejectInternshipApplication marks an internship application as rejected
// POST /api/recruiter/internships/:postingId/applications/:applicationId/reject
func (h *Handlers) RejectInternshipApplication(c *fiber.Ctx) error {
	return h.transition(c, application.OutcomeRejected)
}

func (h *Handlers) transition(c *fiber.Ctx, outcome application.Outcome) error {
	postingID := kernel.PostingID(c.Params("postingId"))
	applicationID := kernel.ApplicationID(c.Params("applicationId"))
	if postingID.IsEmpty() || applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if _, err := h.service.Transition(c.Context(), postingID, applicationID, outcome); err != nil {
		return err
	}

	message := "Application selected successfully"
	if outcome == application.OutcomeRejected {
		message = "Application rejected successfully"
	}
	return c.JSON(application.TransitionResponse{
		Success: true,
		Message: message,
	})
}

// DownloadResume streams a resume blob to the client
// GET /api/recruiter/jobs/resumes/:id
// GET /api/recruiter/internships/resumes/:id
func (h *Handlers) DownloadResume(c *fiber.Ctx) error {
	resumeID := kernel.BlobID(c.Params("id"))
	if resumeID.IsEmpty() {
		return application.ErrInvalidResumeID().WithDetail("id", "missing or empty")
	}

	meta, stream, err := h.service.StreamResume(c.Context(), resumeID)
	if err != nil {
		return err
	}
	// fasthttp closes the body stream after the response is written.

	c.Set(fiber.HeaderContentType, meta.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", meta.Filename))
	return c.SendStream(stream, int(meta.Length))
}

// RegisterRoutes registers all applicant triage routes. The resume
// routes are registered before the parameterized applicant routes so
// "resumes" is never captured as a posting id.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/recruiter", authMiddleware)

	api.Get("/jobs/resumes/:id", handlers.DownloadResume)
	api.Get("/internships/resumes/:id", handlers.DownloadResume)

	api.Get("/jobs/:id/applicants", handlers.ListJobApplicants)
	api.Get("/internships/:id/applicants", handlers.ListInternshipApplicants)

	api.Post("/jobs/:postingId/applications/:applicationId/select", handlers.SelectJobApplication)
	api.Post("/jobs/:postingId/applications/:applicationId/reject", handlers.RejectJobApplication)
	api.Post("/internships/:postingId/applications/:applicationId/select", handlers.SelectInternshipApplication)
	api.Post("/internships/:postingId/applications/:applicationId/reject", handlers.RejectInternshipApplication)
}
