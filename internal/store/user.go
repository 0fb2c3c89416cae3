package store

import (
	"context"
	"fmt"
	"time"

	"clg-navigator/internal/database"
	"clg-navigator/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u := &model.User{}
	if err := db.Users().FindOne(ctx, bson.M{"email": email}).Decode(u); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	res, err := db.Users().InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return u, nil
}

func UpdateUserLastLogin(ctx context.Context, db database.DB, email string, lastLogin time.Time) error {
	_, err := db.Users().UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"last_login": lastLogin}},
	)
	if err != nil {
		return fmt.Errorf("UpdateUserLastLogin: %w", err)
	}
	return nil
}
