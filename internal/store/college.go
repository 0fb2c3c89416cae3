package store

import (
	"context"
	"fmt"

	"clg-navigator/internal/database"
	"clg-navigator/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ListColleges(ctx context.Context, db database.DB) ([]model.College, error) {
	cur, err := db.Colleges().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListColleges: %w", err)
	}
	var colleges []model.College
	if err := cur.All(ctx, &colleges); err != nil {
		return nil, fmt.Errorf("ListColleges: %w", err)
	}
	return colleges, nil
}

func GetCollegeByName(ctx context.Context, db database.DB, name string) (*model.College, error) {
	c := &model.College{}
	if err := db.Colleges().FindOne(ctx, bson.M{"name": name}).Decode(c); err != nil {
		return nil, fmt.Errorf("GetCollegeByName: %w", err)
	}
	return c, nil
}

func CreateCollege(ctx context.Context, db database.DB, c *model.College) (*model.College, error) {
	res, err := db.Colleges().InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("CreateCollege: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return c, nil
}

// UpdateCollege 以名稱比對並合併指定欄位，回傳實際被修改的文件數
func UpdateCollege(ctx context.Context, db database.DB, name string, fields bson.M) (int64, error) {
	res, err := db.Colleges().UpdateOne(ctx, bson.M{"name": name}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("UpdateCollege: %w", err)
	}
	return res.ModifiedCount, nil
}

func DeleteCollege(ctx context.Context, db database.DB, name string) (int64, error) {
	res, err := db.Colleges().DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return 0, fmt.Errorf("DeleteCollege: %w", err)
	}
	return res.DeletedCount, nil
}

// AddCollegeReview 以單次 $push 將評論附加到學院文件，不做讀取再寫回
func AddCollegeReview(ctx context.Context, db database.DB, name string, review *model.Review) error {
	_, err := db.Colleges().UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$push": bson.M{"reviews": review}},
	)
	if err != nil {
		return fmt.Errorf("AddCollegeReview: %w", err)
	}
	return nil
}
