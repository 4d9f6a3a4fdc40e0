package premiuminfra

import (
	"context"
	"fmt"

	"github.com/placedly/backend/internal/docstore"
	"github.com/placedly/backend/pkg/kernel"
	"github.com/placedly/backend/recruitment/premium"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const membersCollection = "premium_members"

// MongoMemberRepository implements premium.Repository over the applicant
// store.
type MongoMemberRepository struct {
	store *docstore.Resolver
}

// NewMongoMemberRepository creates a new membership repository.
func NewMongoMemberRepository(store *docstore.Resolver) *MongoMemberRepository {
	return &MongoMemberRepository{store: store}
}

type memberModel struct {
	ID       primitive.ObjectID  `bson:"_id"`
	Email    string              `bson:"email"`
	ResumeID *primitive.ObjectID `bson:"resumeId,omitempty"`
}

func (m *memberModel) toEntity() premium.Membership {
	entity := premium.Membership{
		MemberID: kernel.MemberID(m.ID.Hex()),
		Email:    kernel.Email(m.Email),
	}
	if m.ResumeID != nil {
		entity.ResumeID = kernel.BlobID(m.ResumeID.Hex())
	}
	return entity
}

// ListAll loads the full membership projection.
func (r *MongoMemberRepository) ListAll(ctx context.Context) ([]premium.Membership, error) {
	handle, err := r.store.Handle(ctx)
	if err != nil {
		return nil, err
	}

	projection := options.Find().SetProjection(bson.M{"email": 1, "resumeId": 1})
	cursor, err := handle.Collection(membersCollection).Find(ctx, bson.M{}, projection)
	if err != nil {
		return nil, fmt.Errorf("failed to list premium members: %w", err)
	}
	defer cursor.Close(ctx)

	var models []memberModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, fmt.Errorf("failed to decode premium members: %w", err)
	}

	members := make([]premium.Membership, 0, len(models))
	for _, model := range models {
		members = append(members, model.toEntity())
	}
	return members, nil
}
