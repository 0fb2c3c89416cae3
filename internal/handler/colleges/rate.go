package colleges

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"clg-navigator/internal/api"
	"clg-navigator/internal/database"
	"clg-navigator/internal/model"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// @Summary     Rate a college
// @Description 以已知使用者身分對學院附加評論，評論寫入後不可修改
// @Tags        colleges
// @Accept      json
// @Produce     json
// @Param       name path     string                 true "學院名稱"
// @Param       body body     api.RateCollegeRequest true "評論內容"
// @Success     201  {object} api.Response
// @Failure     400  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse "使用者不存在"
// @Failure     404  {object} api.ErrorResponse "學院不存在"
// @Failure     500  {object} api.ErrorResponse
// @Router      /colleges/{name}/rate [post]
func RateCollegeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RateCollegeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Request must contain JSON data"})
		}
		if missing := req.MissingFields(); len(missing) > 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: "Missing required fields: " + strings.Join(missing, ", "),
			})
		}

		// 評論者必須是已知使用者，查無使用者回 403 而非 404
		user, err := getUserByEmail(c.Request().Context(), db, *req.UserEmail)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Invalid user"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		if _, err := getCollegeByName(c.Request().Context(), db, c.Param("name")); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "College not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		review := &model.Review{
			UserID:    user.ID.Hex(),
			UserEmail: *req.UserEmail,
			Rating:    *req.Rating,
			Message:   *req.Message,
			Timestamp: time.Now().UTC(),
		}
		if err := addCollegeReview(c.Request().Context(), db, c.Param("name"), review); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.Response{Success: true, Message: "Review added successfully"})
	}
}
