package mongo

import (
	"context"
	"time"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{coll: db.Collection(collReviews)}
}

// Create persists a new review document.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromReviewDomain(review)); err != nil {
		return errors.Wrap(err, "insert review")
	}

	return nil
}

// ListByStore returns all reviews left against a store, most recent first.
func (repo *reviewRepository) ListByStore(ctx context.Context, storeID string) ([]*entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "reviewDate", Value: -1}})

	cursor, err := repo.coll.Find(ctx, bson.M{"storeId": storeID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}
	defer cursor.Close(ctx)

	var models []reviewModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "decode reviews")
	}

	reviews := make([]*entity.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, toReviewDomain(&models[i]))
	}

	return reviews, nil
}
