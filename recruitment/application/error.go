package application

import (
	"net/http"

	"github.com/placedly/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeInvalidOutcome      = ErrRegistry.Register("INVALID_OUTCOME", errx.TypeValidation, http.StatusBadRequest, "Invalid outcome")
	CodeInvalidResumeID     = ErrRegistry.Register("INVALID_RESUME_ID", errx.TypeValidation, http.StatusBadRequest, "Invalid resume id")
	CodeResumeNotFound      = ErrRegistry.Register("RESUME_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrInvalidOutcome() *errx.Error {
	return ErrRegistry.New(CodeInvalidOutcome)
}

func ErrInvalidResumeID() *errx.Error {
	return ErrRegistry.New(CodeInvalidResumeID)
}

func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}
