package store

import (
	"context"
	"errors"
	"testing"

	"clg-navigator/internal/database"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestListFacilities(t *testing.T) {
	t.Run("relabels _id, keeps the rest untouched", func(t *testing.T) {
		oid := primitive.NewObjectID()
		db := &database.FakeDB{FacilitiesCol: &database.FakeCollection{
			FindFn: func(_ context.Context, filter interface{}, _ ...*options.FindOptions) (*mongo.Cursor, error) {
				require.Equal(t, bson.M{}, filter)
				return mongo.NewCursorFromDocuments([]interface{}{
					bson.D{{Key: "_id", Value: oid}, {Key: "type", Value: "hostel"}, {Key: "floor", Value: int32(2)}},
				}, nil, nil)
			},
		}}
		docs, err := ListFacilities(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, oid.Hex(), docs[0]["_id"])
		require.Equal(t, "hostel", docs[0]["type"])
		require.Equal(t, int32(2), docs[0]["floor"])
	})

	t.Run("find error", func(t *testing.T) {
		db := &database.FakeDB{FacilitiesCol: &database.FakeCollection{
			FindFn: func(context.Context, interface{}, ...*options.FindOptions) (*mongo.Cursor, error) {
				return nil, errors.New("find")
			},
		}}
		_, err := ListFacilities(context.Background(), db)
		require.Error(t, err)
		require.Contains(t, err.Error(), "ListFacilities")
	})
}
