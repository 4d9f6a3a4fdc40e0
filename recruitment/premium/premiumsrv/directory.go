package premiumsrv

import (
	"context"

	"github.com/placedly/backend/pkg/logx"
	"github.com/placedly/backend/recruitment/premium"
)

// Directory provides the premium classification snapshot used during
// triage. Premium data is best-effort by contract: the two stores are
// independently consistent and never joined transactionally, so a failed
// load degrades to "no one is premium" instead of failing the request.
type Directory struct {
	repo premium.Repository
}

// NewDirectory creates a new premium directory.
func NewDirectory(repo premium.Repository) *Directory {
	return &Directory{repo: repo}
}

// Snapshot loads the current membership projection as a lookup index.
// It never fails; load errors are logged and yield the empty index.
func (d *Directory) Snapshot(ctx context.Context) premium.Index {
	members, err := d.repo.ListAll(ctx)
	if err != nil {
		logx.Warnf("premium membership unavailable, classifying all applicants as standard: %v", err)
		return premium.NewIndex(nil)
	}
	return premium.NewIndex(members)
}
