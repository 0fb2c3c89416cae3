package auth

import (
	"errors"
	"net/http"
	"time"

	"clg-navigator/internal/api"
	"clg-navigator/internal/database"
	"clg-navigator/internal/model"
	"clg-navigator/internal/service"
	"clg-navigator/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	verifyGoogleToken   = service.VerifyGoogleToken
	getUserByEmail      = store.GetUserByEmail
	createUser          = store.CreateUser
	updateUserLastLogin = store.UpdateUserLastLogin
)

// @Summary     Google login or register
// @Description 以 Google 憑證登入，首次登入自動註冊為 student
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.GoogleLoginRequest true "Google 憑證"
// @Success     200  {object} api.Response "既有使用者登入"
// @Success     201  {object} api.Response "新使用者註冊"
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users/google-login [post]
func GoogleLoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.GoogleLoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing Google token"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing Google token"})
		}

		// 先向邊界服務驗證，驗證成功前不寫入任何使用者資料
		info, err := verifyGoogleToken(c.Request().Context(), req.Credential)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid Google Token"})
		}

		now := time.Now().UTC()
		existing, err := getUserByEmail(c.Request().Context(), db, info.Email)
		if err == nil {
			if err := updateUserLastLogin(c.Request().Context(), db, info.Email, now); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
			}
			existing.LastLogin = now
			return c.JSON(http.StatusOK, api.Response{
				Success: true,
				Message: "User logged in",
				Data:    api.NewUserResponse(existing),
			})
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		created, err := createUser(c.Request().Context(), db, &model.User{
			GoogleID:       info.Sub,
			Name:           info.Name,
			Email:          info.Email,
			ProfilePicture: info.Picture,
			Role:           model.RoleStudent,
			LastLogin:      now,
			CreatedAt:      now,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.Response{
			Success: true,
			Message: "New user registered",
			Data:    api.NewUserResponse(created),
		})
	}
}
