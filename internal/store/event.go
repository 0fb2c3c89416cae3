package store

import (
	"context"
	"fmt"

	"clg-navigator/internal/database"
	"clg-navigator/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ListEvents(ctx context.Context, db database.DB) ([]model.Event, error) {
	cur, err := db.Events().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListEvents: %w", err)
	}
	var events []model.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("ListEvents: %w", err)
	}
	return events, nil
}

func CreateEvent(ctx context.Context, db database.DB, e *model.Event) (*model.Event, error) {
	res, err := db.Events().InsertOne(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("CreateEvent: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = id
	}
	return e, nil
}

// UpdateEvent 以識別碼比對並合併指定欄位，回傳實際被修改的文件數
func UpdateEvent(ctx context.Context, db database.DB, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := db.Events().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("UpdateEvent: %w", err)
	}
	return res.ModifiedCount, nil
}

func DeleteEvent(ctx context.Context, db database.DB, id primitive.ObjectID) (int64, error) {
	res, err := db.Events().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("DeleteEvent: %w", err)
	}
	return res.DeletedCount, nil
}
