package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection 定義本服務使用的文件集合操作，*mongo.Collection 直接實作
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type DB interface {
	Users() Collection
	Colleges() Collection
	Events() Collection
	Facilities() Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type FakeCollection struct {
	FindOneFn   func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	FindFn      func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOneFn func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOneFn func(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOneFn func(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

func (f *FakeCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	if f.FindOneFn != nil {
		return f.FindOneFn(ctx, filter, opts...)
	}
	panic("unexpected FindOne")
}

func (f *FakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	if f.FindFn != nil {
		return f.FindFn(ctx, filter, opts...)
	}
	panic("unexpected Find")
}

func (f *FakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.InsertOneFn != nil {
		return f.InsertOneFn(ctx, document, opts...)
	}
	panic("unexpected InsertOne")
}

func (f *FakeCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if f.UpdateOneFn != nil {
		return f.UpdateOneFn(ctx, filter, update, opts...)
	}
	panic("unexpected UpdateOne")
}

func (f *FakeCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	if f.DeleteOneFn != nil {
		return f.DeleteOneFn(ctx, filter, opts...)
	}
	panic("unexpected DeleteOne")
}

type FakeDB struct {
	UsersCol      Collection
	CollegesCol   Collection
	EventsCol     Collection
	FacilitiesCol Collection
	PingFn        func(ctx context.Context) error
	CloseFn       func(ctx context.Context) error
}

func (f *FakeDB) Users() Collection {
	if f.UsersCol != nil {
		return f.UsersCol
	}
	panic("unexpected Users")
}

func (f *FakeDB) Colleges() Collection {
	if f.CollegesCol != nil {
		return f.CollegesCol
	}
	panic("unexpected Colleges")
}

func (f *FakeDB) Events() Collection {
	if f.EventsCol != nil {
		return f.EventsCol
	}
	panic("unexpected Events")
}

func (f *FakeDB) Facilities() Collection {
	if f.FacilitiesCol != nil {
		return f.FacilitiesCol
	}
	panic("unexpected Facilities")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close(ctx context.Context) error {
	if f.CloseFn != nil {
		return f.CloseFn(ctx)
	}
	return nil
}
