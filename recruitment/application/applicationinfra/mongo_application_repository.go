package applicationinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/placedly/backend/internal/docstore"
	"github.com/placedly/backend/pkg/kernel"
	"github.com/placedly/backend/pkg/logx"
	"github.com/placedly/backend/recruitment/application"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const applicationsCollection = "applications"

// MongoApplicationRepository implements application.Repository over the
// applicant store.
type MongoApplicationRepository struct {
	store *docstore.Resolver

	// fullScan enables the last-resort collection scan for references
	// that match no indexed candidate form. It is O(all applications)
	// and exists only until the stored references are normalized.
	fullScan bool
}

// NewMongoApplicationRepository creates a new application repository.
func NewMongoApplicationRepository(store *docstore.Resolver, fullScan bool) *MongoApplicationRepository {
	return &MongoApplicationRepository{store: store, fullScan: fullScan}
}

// ============================================================================
// Database Model
// ============================================================================

type applicationModel struct {
	ID          primitive.ObjectID  `bson:"_id"`
	ApplicantID string              `bson:"applicantId,omitempty"`
	PostingRef  any                 `bson:"postingId"`
	Name        string              `bson:"name"`
	Email       string              `bson:"email"`
	Phone       string              `bson:"phone,omitempty"`
	Gender      string              `bson:"gender,omitempty"`
	ResumeID    *primitive.ObjectID `bson:"resumeId,omitempty"`
	SubmittedAt *time.Time          `bson:"appliedAt,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt,omitempty"`
	IsSelected  bool                `bson:"isSelected"`
	IsRejected  bool                `bson:"isRejected"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() application.Application {
	outcome, hazard := application.OutcomeFromFlags(m.IsSelected, m.IsRejected)
	if hazard {
		logx.Warnf("application %s has both selected and rejected set, reading as rejected", m.ID.Hex())
	}

	entity := application.Application{
		ID:          kernel.ApplicationID(m.ID.Hex()),
		PostingID:   kernel.PostingID(referenceString(m.PostingRef)),
		ApplicantID: kernel.ApplicantID(m.ApplicantID),
		Name:        m.Name,
		Email:       kernel.Email(m.Email),
		Phone:       m.Phone,
		Gender:      m.Gender,
		SubmittedAt: m.SubmittedAt,
		CreatedAt:   m.CreatedAt,
		Outcome:     outcome,
	}
	if m.ResumeID != nil {
		entity.ResumeID = kernel.BlobID(m.ResumeID.Hex())
	}
	return entity
}

func referenceString(ref any) string {
	switch v := ref.(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return ""
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// ListByPosting resolves every application referencing the posting. The
// candidate encodings are tried strictly in order and the chain stops at
// the first non-empty result; the steps run sequentially because a later
// step must only execute when the earlier ones are conclusively empty.
func (r *MongoApplicationRepository) ListByPosting(ctx context.Context, postingID kernel.PostingID) ([]application.Application, error) {
	handle, err := r.store.Handle(ctx)
	if err != nil {
		return nil, err
	}
	coll := handle.Collection(applicationsCollection)

	forms := ReferenceForms(postingID)
	for _, form := range forms {
		apps, err := r.findByReference(ctx, coll, form.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve applications (%s form): %w", form.Label, err)
		}
		if len(apps) > 0 {
			return apps, nil
		}
	}

	if r.fullScan {
		return r.scanForReference(ctx, coll, postingID, forms)
	}
	return []application.Application{}, nil
}

func (r *MongoApplicationRepository) findByReference(ctx context.Context, coll *mongo.Collection, ref any) ([]application.Application, error) {
	cursor, err := coll.Find(ctx, bson.M{"postingId": ref})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []applicationModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}

	apps := make([]application.Application, 0, len(models))
	for _, model := range models {
		apps = append(apps, model.toEntity())
	}
	return apps, nil
}

// scanForReference walks the whole collection and keeps records whose
// stored reference matches any candidate form pairwise. Correctness
// fallback for unnormalized data, not a performance path.
func (r *MongoApplicationRepository) scanForReference(ctx context.Context, coll *mongo.Collection, postingID kernel.PostingID, forms []ReferenceForm) ([]application.Application, error) {
	logx.Warnf("falling back to full application scan for posting %s", postingID.String())

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to scan applications: %w", err)
	}
	defer cursor.Close(ctx)

	apps := []application.Application{}
	seen := map[string]bool{}
	for cursor.Next(ctx) {
		var model applicationModel
		if err := cursor.Decode(&model); err != nil {
			return nil, fmt.Errorf("failed to decode application: %w", err)
		}
		if !MatchesReference(model.PostingRef, forms) {
			continue
		}
		if id := model.ID.Hex(); !seen[id] {
			seen[id] = true
			apps = append(apps, model.toEntity())
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan applications: %w", err)
	}
	return apps, nil
}

// SetOutcome applies a select/reject decision with one conditional
// update. Matching on both the application id and the posting reference
// defends against ids that belong to a different posting; setting both
// flags in the same update keeps them mutually exclusive regardless of
// the record's prior state. Concurrent transitions are last-write-wins.
func (r *MongoApplicationRepository) SetOutcome(ctx context.Context, id kernel.ApplicationID, postingID kernel.PostingID, outcome application.Outcome) (*application.Application, error) {
	if !outcome.IsDecided() {
		return nil, application.ErrInvalidOutcome().WithDetail("outcome", string(outcome))
	}

	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	handle, err := r.store.Handle(ctx)
	if err != nil {
		return nil, err
	}

	selected, rejected := outcome.Flags()
	filter := bson.M{
		"_id":       oid,
		"postingId": bson.M{"$in": ReferenceValues(postingID)},
	}
	update := bson.M{"$set": bson.M{
		"isSelected": selected,
		"isRejected": rejected,
		"updatedAt":  time.Now(),
	}}

	var model applicationModel
	err = handle.Collection(applicationsCollection).
		FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrApplicationNotFound().
				WithDetail("application_id", id.String()).
				WithDetail("posting_id", postingID.String())
		}
		return nil, fmt.Errorf("failed to update application outcome: %w", err)
	}

	entity := model.toEntity()
	return &entity, nil
}
