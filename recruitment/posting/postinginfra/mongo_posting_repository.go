package postinginfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/placedly/backend/internal/docstore"
	"github.com/placedly/backend/pkg/kernel"
	"github.com/placedly/backend/recruitment/posting"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	jobsCollection        = "jobs"
	internshipsCollection = "internships"
)

// MongoPostingRepository implements posting.Repository over the primary
// document store.
type MongoPostingRepository struct {
	primary *docstore.Handle
}

// NewMongoPostingRepository creates a new posting repository.
func NewMongoPostingRepository(primary *docstore.Handle) *MongoPostingRepository {
	return &MongoPostingRepository{primary: primary}
}

// ============================================================================
// Database Model
// ============================================================================

type postingModel struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	CompanyName string             `bson:"companyName"`
	PostedBy    string             `bson:"postedBy,omitempty"`
	ExpiresAt   *time.Time         `bson:"expiresAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty"`
}

// toEntity converts database model to domain entity
func (m *postingModel) toEntity(kind posting.Kind) *posting.Posting {
	return &posting.Posting{
		ID:          kernel.PostingID(m.ID.Hex()),
		Kind:        kind,
		Title:       kernel.PostingTitle(m.Title),
		CompanyName: kernel.CompanyName(m.CompanyName),
		PostedBy:    kernel.RecruiterID(m.PostedBy),
		ExpiresAt:   m.ExpiresAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// GetByID retrieves a posting by its canonical object-id string.
func (r *MongoPostingRepository) GetByID(ctx context.Context, kind posting.Kind, id kernel.PostingID) (*posting.Posting, error) {
	coll, err := r.collectionFor(kind)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		// Postings are always keyed by object ids, so a malformed id
		// cannot name an existing posting.
		return nil, posting.ErrPostingNotFound().WithDetail("posting_id", id.String())
	}

	var model postingModel
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, posting.ErrPostingNotFound().WithDetail("posting_id", id.String())
		}
		return nil, fmt.Errorf("failed to get posting by id: %w", err)
	}

	return model.toEntity(kind), nil
}

func (r *MongoPostingRepository) collectionFor(kind posting.Kind) (*mongo.Collection, error) {
	switch kind {
	case posting.KindJob:
		return r.primary.Collection(jobsCollection), nil
	case posting.KindInternship:
		return r.primary.Collection(internshipsCollection), nil
	default:
		return nil, posting.ErrInvalidKind().WithDetail("kind", string(kind))
	}
}
