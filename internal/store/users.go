// Package store implements the insert, update and find operations against
// the eduhub collections. Every call is a single blocking round trip to the
// engine; there is no retry layer and no local duplicate checking, since
// uniqueness is enforced by the indexes declared in the schema package.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/models"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/storeerr"
)

type Users struct {
	collection *mongo.Collection
	log        *zap.Logger
}

func NewUsers(db *mongo.Database, log *zap.Logger) *Users {
	return &Users{
		collection: db.Collection("users"),
		log:        log,
	}
}

// Create stamps the identifier, join date and active flag, then inserts.
// A duplicate email fails on the unique index and surfaces as
// storeerr.ErrIndexConflict; a document the validator rejects surfaces as
// storeerr.ErrValidation.
func (s *Users) Create(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	user.DateJoined = time.Now()
	user.IsActive = true

	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, storeerr.Translate(err)
	}

	s.log.Info("user created", zap.String("id", user.ID.Hex()), zap.String("role", string(user.Role)))
	return user.ID, nil
}

func (s *Users) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return models.User{}, storeerr.Translate(err)
	}
	return user, nil
}

func (s *Users) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return models.User{}, storeerr.Translate(err)
	}
	return user, nil
}

// FindByRole uses the role index to list users of one role.
func (s *Users) FindByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, storeerr.Translate(err)
	}
	return users, nil
}

func (s *Users) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, storeerr.Translate(err)
	}
	return users, nil
}

// UpdateProfile applies the given field updates to one user and returns
// the modified count. An empty updates map reports zero modifications
// without a round trip. Identifier, join date and password are not
// updatable through this path.
func (s *Users) UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]any) (int64, error) {
	doc := ProfileUpdate(updates)
	if doc == nil {
		return 0, nil
	}

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return 0, storeerr.Translate(err)
	}
	if res.MatchedCount == 0 {
		return 0, storeerr.ErrNotFound
	}
	return res.ModifiedCount, nil
}

// ProfileUpdate builds the $set document for UpdateProfile, dropping the
// fields that must not change after creation. Returns nil when nothing
// remains to update.
func ProfileUpdate(updates map[string]any) bson.M {
	set := bson.M{}
	for field, value := range updates {
		switch field {
		case "_id", "id", "password", "date_joined":
			continue
		}
		set[field] = value
	}
	if len(set) == 0 {
		return nil
	}
	return bson.M{"$set": set}
}
