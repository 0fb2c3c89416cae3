package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const databaseName = "cmr_navigator"

// mongoConnect 用來建立 mongo client，測試可覆寫此變數。
var mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
	return mongo.Connect(ctx, opts...)
}

type mongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDatabase 建立連線並回傳 DB，連線會先以 Ping 驗證
func NewMongoDatabase(ctx context.Context, url string) (DB, error) {
	client, err := mongoConnect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &mongoDB{client: client, db: client.Database(databaseName)}, nil
}

func (m *mongoDB) Users() Collection      { return m.db.Collection("user_data") }
func (m *mongoDB) Colleges() Collection   { return m.db.Collection("clg_data") }
func (m *mongoDB) Events() Collection     { return m.db.Collection("Event_data") }
func (m *mongoDB) Facilities() Collection { return m.db.Collection("clg_facility_data") }

func (m *mongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *mongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
