package premium

import "context"

type Repository interface {
	// ListAll loads the entire membership projection. The dataset is
	// assumed small enough to load wholesale; there is no filtered query.
	ListAll(ctx context.Context) ([]Membership, error)
}
