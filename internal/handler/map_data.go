// File: internal/handler/map_data.go
package handler

import (
	"net/http"

	"clg-navigator/internal/api"
	"clg-navigator/internal/database"
	"clg-navigator/internal/store"

	"github.com/labstack/echo/v4"
)

var listFacilities = store.ListFacilities

// @Summary     List facility map data
// @Description 回傳設施地圖資料原樣，不做驗證與修改
// @Tags        map
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     500 {object} api.ErrorResponse
// @Router      /map-data [get]
func MapDataHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		facilities, err := listFacilities(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.Response{Success: true, Data: facilities})
	}
}
