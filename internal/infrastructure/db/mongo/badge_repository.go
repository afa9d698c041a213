package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

const collectionBadges = "badges"

// BadgeRepository implements ports.BadgeRepository on MongoDB.
type BadgeRepository struct {
	docs *Collection[domain.Badge]
}

func NewBadgeRepository(db *mongo.Database) *BadgeRepository {
	return &BadgeRepository{
		docs: NewCollection(db, collectionBadges, func(b domain.Badge) string { return b.BadgeID }),
	}
}

func (r *BadgeRepository) List(ctx context.Context) ([]domain.Badge, error) {
	return r.docs.GetAll(ctx)
}

func (r *BadgeRepository) Create(ctx context.Context, b *domain.Badge) error {
	if b == nil {
		return errNilRecord
	}
	return r.docs.InsertByID(ctx, b.BadgeID, *b)
}

func (r *BadgeRepository) Delete(ctx context.Context, badgeID string) error {
	return r.docs.DeleteByID(ctx, badgeID)
}

// EnsureIndexes indexes badges by owner; the collection has no uniqueness rule.
func (r *BadgeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.docs.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "influencerId", Value: 1}},
		Options: options.Index().SetName("badges_influencer"),
	})
	return err
}
