package users

import (
	"errors"
	"net/http"

	"clg-navigator/internal/api"
	"clg-navigator/internal/database"
	"clg-navigator/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

var getUserByEmail = store.GetUserByEmail

// @Summary     Get a user by email
// @Description 透過 Email 查詢並回傳使用者詳細資料
// @Tags        users
// @Produce     json
// @Param       email path      string true "使用者 Email"
// @Success     200   {object}  api.Response
// @Failure     404   {object}  api.ErrorResponse "使用者不存在"
// @Failure     500   {object}  api.ErrorResponse
// @Router      /users/{email} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := getUserByEmail(c.Request().Context(), db, c.Param("email"))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.Response{Success: true, Data: api.NewUserResponse(user)})
	}
}
