package events

import (
	"net/http"
	"strings"
	"time"

	"clg-navigator/internal/api"
	"clg-navigator/internal/database"
	"clg-navigator/internal/model"
	"clg-navigator/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 建立用 date 為純日期，更新用 date 為完整時間戳，兩者格式刻意不同
const createDateLayout = "2006-01-02"

var (
	listEvents  = store.ListEvents
	createEvent = store.CreateEvent
	updateEvent = store.UpdateEvent
	deleteEvent = store.DeleteEvent
)

// @Summary     List all events
// @Description 回傳所有活動，date、created_at、updated_at 皆為 ISO-8601 文字
// @Tags        events
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     500 {object} api.ErrorResponse
// @Router      /events [get]
func ListEventsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		eventList, err := listEvents(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		resp := make([]api.EventResponse, 0, len(eventList))
		for i := range eventList {
			resp = append(resp, api.NewEventResponse(&eventList[i]))
		}
		return c.JSON(http.StatusOK, api.Response{Success: true, Data: resp})
	}
}

// @Summary     Create an event
// @Description 建立活動，date 須為 YYYY-MM-DD 形式的日曆日期
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateEventRequest true "活動資料"
// @Success     201  {object} api.Response
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /events [post]
func CreateEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateEventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Request must contain JSON data"})
		}
		if missing := req.MissingFields(); len(missing) > 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: "Missing required fields: " + strings.Join(missing, ", "),
			})
		}

		date, err := time.Parse(createDateLayout, *req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date format"})
		}

		now := time.Now().UTC()
		created, err := createEvent(c.Request().Context(), db, &model.Event{
			CollegeName: *req.CollegeName,
			EventName:   *req.EventName,
			Description: *req.Description,
			Date:        date,
			Location:    *req.Location,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.Response{
			Success: true,
			Message: "Event added successfully",
			Data:    api.NewEventResponse(created),
		})
	}
}

// @Summary     Update an event by ID
// @Description 依識別碼部分更新，date 若提供須為 YYYY-MM-DDTHH:MM:SSZ
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       id   path     string                 true "活動識別碼"
// @Param       body body     api.UpdateEventRequest true "欲更新的欄位"
// @Success     200  {object} api.Response
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /events/{id} [put]
func UpdateEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid event ID"})
		}

		var req api.UpdateEventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Request must contain JSON data"})
		}

		fields := req.SetFields()
		if req.Date != nil {
			date, err := time.Parse(time.RFC3339, *req.Date)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date format"})
			}
			fields["date"] = date
		}
		// updated_at 無條件刷新
		fields["updated_at"] = time.Now().UTC()

		modified, err := updateEvent(c.Request().Context(), db, id, fields)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		if modified == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "No changes made or event not found"})
		}

		return c.JSON(http.StatusOK, api.Response{Success: true, Message: "Event updated successfully"})
	}
}

// @Summary     Delete an event by ID
// @Description 依識別碼刪除活動
// @Tags        events
// @Produce     json
// @Param       id  path     string true "活動識別碼"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /events/{id} [delete]
func DeleteEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid event ID"})
		}
		deleted, err := deleteEvent(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		if deleted == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Event not found"})
		}
		return c.JSON(http.StatusOK, api.Response{Success: true, Message: "Event deleted successfully"})
	}
}
