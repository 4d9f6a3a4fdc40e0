package posting

import (
	"context"

	"github.com/placedly/backend/pkg/kernel"
)

type Repository interface {
	// GetByID retrieves a posting of the given kind by its canonical id
	GetByID(ctx context.Context, kind Kind, id kernel.PostingID) (*Posting, error)
}
