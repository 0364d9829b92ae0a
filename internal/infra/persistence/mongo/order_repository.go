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

// orderRepository implements the repository.OrderRepository interface.
// Orders are written once; a single InsertOne keeps placement atomic.
type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{coll: db.Collection(collOrders)}
}

// Create persists a fully priced order document.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromOrderDomain(order)); err != nil {
		return errors.Wrap(err, "insert order")
	}

	return nil
}

// FindByOrderID retrieves an order by business key.
func (repo *orderRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Order, error) {
	var orderM orderModel
	if err := repo.coll.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&orderM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns a user's orders, most recent first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})

	cursor, err := repo.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	defer cursor.Close(ctx)

	var models []orderModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}

	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderDomain(&models[i]))
	}

	return orders, nil
}
