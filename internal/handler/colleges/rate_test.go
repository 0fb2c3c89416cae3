package colleges

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clg-navigator/internal/database"
	"clg-navigator/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newRateCtx(e *echo.Echo, name, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONCtx(e, http.MethodPost, "/colleges/"+name+"/rate", body)
	c.SetPath("/colleges/:name/rate")
	c.SetParamNames("name")
	c.SetParamValues(name)
	return c, rec
}

func TestRateCollegeHandler(t *testing.T) {
	e := echo.New()
	validBody := `{"user_email":"student@example.com","rating":4.5,"message":"Great campus"}`

	t.Run("missing fields listed", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newRateCtx(e, "CMR", `{"rating":4.5}`)
		require.NoError(t, RateCollegeHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Missing required fields:")
		require.Contains(t, rec.Body.String(), "user_email")
		require.Contains(t, rec.Body.String(), "message")
	})

	t.Run("unknown user is forbidden", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, mongo.ErrNoDocuments
		}
		ctx, rec := newRateCtx(e, "CMR", validBody)
		require.NoError(t, RateCollegeHandler(nil)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid user")
	})

	t.Run("user lookup fault", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("find user failed")
		}
		ctx, rec := newRateCtx(e, "CMR", validBody)
		require.NoError(t, RateCollegeHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("unknown college", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: primitive.NewObjectID()}, nil
		}
		getCollegeByName = func(context.Context, database.DB, string) (*model.College, error) {
			return nil, mongo.ErrNoDocuments
		}
		ctx, rec := newRateCtx(e, "Nowhere", validBody)
		require.NoError(t, RateCollegeHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "College not found")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		uid := primitive.NewObjectID()
		getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			require.Equal(t, "student@example.com", email)
			return &model.User{ID: uid, Email: email}, nil
		}
		getCollegeByName = func(_ context.Context, _ database.DB, name string) (*model.College, error) {
			require.Equal(t, "CMR", name)
			return &model.College{Name: name}, nil
		}
		var got *model.Review
		addCollegeReview = func(_ context.Context, _ database.DB, name string, r *model.Review) error {
			require.Equal(t, "CMR", name)
			got = r
			return nil
		}
		ctx, rec := newRateCtx(e, "CMR", validBody)
		require.NoError(t, RateCollegeHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), "Review added successfully")
		require.NotNil(t, got)
		require.Equal(t, uid.Hex(), got.UserID)
		require.Equal(t, "student@example.com", got.UserEmail)
		require.Equal(t, 4.5, got.Rating)
		require.Equal(t, "Great campus", got.Message)
		require.False(t, got.Timestamp.IsZero())
	})

	t.Run("append fault", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: primitive.NewObjectID()}, nil
		}
		getCollegeByName = func(context.Context, database.DB, string) (*model.College, error) {
			return &model.College{Name: "CMR"}, nil
		}
		addCollegeReview = func(context.Context, database.DB, string, *model.Review) error {
			return errors.New("push failed")
		}
		ctx, rec := newRateCtx(e, "CMR", validBody)
		require.NoError(t, RateCollegeHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
