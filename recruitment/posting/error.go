package posting

import (
	"net/http"

	"github.com/placedly/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("POSTING")

// Error codes
var (
	CodePostingNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Posting not found")
	CodeInvalidKind     = ErrRegistry.Register("INVALID_KIND", errx.TypeValidation, http.StatusBadRequest, "Invalid posting kind")
)

// Helper functions
func ErrPostingNotFound() *errx.Error {
	return ErrRegistry.New(CodePostingNotFound)
}

func ErrInvalidKind() *errx.Error {
	return ErrRegistry.New(CodeInvalidKind)
}
