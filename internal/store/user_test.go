package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"clg-navigator/internal/database"
	"clg-navigator/internal/model"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestGetUserByEmail(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	sample := &model.User{
		ID:        primitive.NewObjectID(),
		GoogleID:  "104857",
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      model.RoleStudent,
		LastLogin: now,
		CreatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{UsersCol: &database.FakeCollection{
			FindOneFn: func(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
				require.Equal(t, bson.M{"email": "alice@example.com"}, filter)
				return mongo.NewSingleResultFromDocument(sample, nil, nil)
			},
		}}
		u, err := GetUserByEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, sample.ID, u.ID)
		require.Equal(t, sample.Email, u.Email)
		require.Equal(t, model.RoleStudent, u.Role)
	})

	t.Run("not found surfaces ErrNoDocuments", func(t *testing.T) {
		db := &database.FakeDB{UsersCol: &database.FakeCollection{
			FindOneFn: func(context.Context, interface{}, ...*options.FindOneOptions) *mongo.SingleResult {
				return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
			},
		}}
		_, err := GetUserByEmail(context.Background(), db, "ghost@example.com")
		require.Error(t, err)
		require.ErrorIs(t, err, mongo.ErrNoDocuments)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("success assigns id", func(t *testing.T) {
		oid := primitive.NewObjectID()
		db := &database.FakeDB{UsersCol: &database.FakeCollection{
			InsertOneFn: func(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				u, ok := document.(*model.User)
				require.True(t, ok)
				require.Equal(t, model.RoleStudent, u.Role)
				return &mongo.InsertOneResult{InsertedID: oid}, nil
			},
		}}
		u, err := CreateUser(context.Background(), db, &model.User{Email: "alice@example.com", Role: model.RoleStudent})
		require.NoError(t, err)
		require.Equal(t, oid, u.ID)
	})

	t.Run("insert error", func(t *testing.T) {
		db := &database.FakeDB{UsersCol: &database.FakeCollection{
			InsertOneFn: func(context.Context, interface{}, ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				return nil, errors.New("insert")
			},
		}}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "CreateUser")
	})
}

func TestUpdateUserLastLogin(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{UsersCol: &database.FakeCollection{
			UpdateOneFn: func(_ context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
				require.Equal(t, bson.M{"email": "alice@example.com"}, filter)
				require.Equal(t, bson.M{"$set": bson.M{"last_login": now}}, update)
				return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
			},
		}}
		require.NoError(t, UpdateUserLastLogin(context.Background(), db, "alice@example.com", now))
	})

	t.Run("update error", func(t *testing.T) {
		db := &database.FakeDB{UsersCol: &database.FakeCollection{
			UpdateOneFn: func(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
				return nil, errors.New("update")
			},
		}}
		require.Error(t, UpdateUserLastLogin(context.Background(), db, "alice@example.com", now))
	})
}
