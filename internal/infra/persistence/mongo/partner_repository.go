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

// partnerRepository implements the repository.DeliveryPartnerRepository
// interface.
type partnerRepository struct {
	coll *mongo.Collection
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *mongo.Database) repository.DeliveryPartnerRepository {
	return &partnerRepository{coll: db.Collection(collPartners)}
}

// Create persists a new delivery partner document.
func (repo *partnerRepository) Create(ctx context.Context, partner *entity.DeliveryPartner) error {
	now := time.Now()
	partner.CreatedAt = now
	partner.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromPartnerDomain(partner)); err != nil {
		return errors.Wrap(err, "insert delivery partner")
	}

	return nil
}

// List returns all delivery partners.
func (repo *partnerRepository) List(ctx context.Context) ([]*entity.DeliveryPartner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "list delivery partners")
	}
	defer cursor.Close(ctx)

	var models []partnerModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "decode delivery partners")
	}

	partners := make([]*entity.DeliveryPartner, 0, len(models))
	for i := range models {
		partners = append(partners, toPartnerDomain(&models[i]))
	}

	return partners, nil
}

// FindByPartnerID retrieves a delivery partner by its business ID.
func (repo *partnerRepository) FindByPartnerID(ctx context.Context, partnerID string) (*entity.DeliveryPartner, error) {
	var model partnerModel
	err := repo.coll.FindOne(ctx, bson.M{"deliveryPartnerId": partnerID}).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.WithStack(repository.ErrPartnerNotFound)
		}

		return nil, errors.Wrap(err, "find delivery partner")
	}

	return toPartnerDomain(&model), nil
}

// ExistsByPhone reports whether a partner already holds the given phone
// number.
func (repo *partnerRepository) ExistsByPhone(ctx context.Context, phoneNumber string) (bool, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.M{"phoneNumber": phoneNumber})
	if err != nil {
		return false, errors.Wrap(err, "count delivery partners")
	}

	return count > 0, nil
}
