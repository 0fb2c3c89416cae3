package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestFakeCollectionPanicsWhenUnset(t *testing.T) {
	f := &FakeCollection{}
	require.Panics(t, func() { f.FindOne(context.Background(), nil) })
	require.Panics(t, func() { _, _ = f.Find(context.Background(), nil) })
	require.Panics(t, func() { _, _ = f.InsertOne(context.Background(), nil) })
	require.Panics(t, func() { _, _ = f.UpdateOne(context.Background(), nil, nil) })
	require.Panics(t, func() { _, _ = f.DeleteOne(context.Background(), nil) })
}

func TestFakeDB(t *testing.T) {
	t.Run("panics on unexpected access", func(t *testing.T) {
		f := &FakeDB{}
		require.Panics(t, func() { f.Users() })
		require.Panics(t, func() { f.Colleges() })
		require.Panics(t, func() { f.Events() })
		require.Panics(t, func() { f.Facilities() })
		require.Panics(t, func() { _ = f.Ping(context.Background()) })
	})

	t.Run("close is a no-op by default", func(t *testing.T) {
		require.NoError(t, (&FakeDB{}).Close(context.Background()))
	})

	t.Run("delegates to configured functions", func(t *testing.T) {
		col := &FakeCollection{}
		f := &FakeDB{
			UsersCol:      col,
			CollegesCol:   col,
			EventsCol:     col,
			FacilitiesCol: col,
			PingFn:        func(context.Context) error { return nil },
			CloseFn:       func(context.Context) error { return errors.New("closed") },
		}
		require.Same(t, Collection(col), f.Users())
		require.Same(t, Collection(col), f.Colleges())
		require.Same(t, Collection(col), f.Events())
		require.Same(t, Collection(col), f.Facilities())
		require.NoError(t, f.Ping(context.Background()))
		require.Error(t, f.Close(context.Background()))
	})
}

func TestNewMongoDatabaseConnectError(t *testing.T) {
	t.Cleanup(func() {
		mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
			return mongo.Connect(ctx, opts...)
		}
	})
	mongoConnect = func(context.Context, ...*options.ClientOptions) (*mongo.Client, error) {
		return nil, errors.New("connect refused")
	}
	_, err := NewMongoDatabase(context.Background(), "mongodb://localhost:27017")
	require.Error(t, err)
}
