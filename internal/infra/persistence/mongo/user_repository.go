package mongo

import (
	"context"
	"strings"
	"time"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(collUsers)}
}

// Create persists a new user document.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromUserDomain(user)); err != nil {
		if isDuplicateKey(err) {
			return repository.ErrUserExists
		}

		return errors.Wrap(err, "insert user")
	}

	return nil
}

// FindByUserID retrieves a user by business key.
func (repo *userRepository) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"userId": userID})
}

// FindByEmail retrieves a user by login email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

// ExistsByEmailOrPhone reports whether any user already holds the given
// email or phone number.
func (repo *userRepository) ExistsByEmailOrPhone(ctx context.Context, email, phoneNumber string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": strings.ToLower(email)},
		bson.M{"phoneNumber": phoneNumber},
	}}

	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, errors.Wrap(err, "count users")
	}

	return count > 0, nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var userM userModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user")
	}

	return toUserDomain(&userM), nil
}
