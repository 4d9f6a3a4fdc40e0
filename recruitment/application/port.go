package application

import (
	"context"

	"github.com/placedly/backend/pkg/kernel"
)

type Repository interface {
	// ListByPosting resolves every application referencing the posting,
	// tolerating the legacy reference encodings (see the reconciler in
	// applicationinfra). An empty result is not an error.
	ListByPosting(ctx context.Context, postingID kernel.PostingID) ([]Application, error)

	// SetOutcome applies a terminal outcome with a single conditional
	// update matched on both the application id and the posting
	// reference, and returns the updated record. No match is NotFound.
	SetOutcome(ctx context.Context, id kernel.ApplicationID, postingID kernel.PostingID, outcome Outcome) (*Application, error)
}
