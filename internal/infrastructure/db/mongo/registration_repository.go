package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

const collectionRegistrations = "registrations"

// RegistrationRepository implements ports.RegistrationRepository on MongoDB.
type RegistrationRepository struct {
	docs *Collection[domain.Registration]
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{
		docs: NewCollection(db, collectionRegistrations, func(r domain.Registration) string { return r.RegID }),
	}
}

func (r *RegistrationRepository) List(ctx context.Context) ([]domain.Registration, error) {
	return r.docs.GetAll(ctx)
}

// Create relies on the unique indexes from EnsureIndexes to reject a second
// registration for the same email or influencer, even under concurrent writes.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	if reg == nil {
		return errNilRecord
	}
	return r.docs.InsertByID(ctx, reg.RegID, *reg)
}

func (r *RegistrationRepository) Delete(ctx context.Context, regID string) error {
	return r.docs.DeleteByID(ctx, regID)
}

func (r *RegistrationRepository) ReplaceAll(ctx context.Context, regs []domain.Registration) error {
	return r.docs.ReplaceAll(ctx, regs)
}

// EnsureIndexes creates the unique indexes backing the one-registration-per
// influencer and per email rule.
func (r *RegistrationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("registrations_email_unique"),
		},
		{
			Keys:    bson.D{{Key: "influencerId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("registrations_influencer_unique"),
		},
	}

	_, err := r.docs.col.Indexes().CreateMany(ctx, indexes)
	return err
}
