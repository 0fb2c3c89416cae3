package store

import (
	"context"
	"fmt"

	"clg-navigator/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListFacilities 回傳設施文件原樣，僅把 _id 轉為十六進位字串
// 文件結構由上游餵入的資料決定，本服務不驗證
func ListFacilities(ctx context.Context, db database.DB) ([]bson.M, error) {
	cur, err := db.Facilities().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListFacilities: %w", err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("ListFacilities: %w", err)
	}
	for _, d := range docs {
		if id, ok := d["_id"].(primitive.ObjectID); ok {
			d["_id"] = id.Hex()
		}
	}
	return docs, nil
}
