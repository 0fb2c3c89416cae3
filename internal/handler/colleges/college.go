package colleges

import (
	"net/http"
	"strings"
	"time"

	"clg-navigator/internal/api"
	"clg-navigator/internal/database"
	"clg-navigator/internal/model"
	"clg-navigator/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listColleges     = store.ListColleges
	createCollege    = store.CreateCollege
	updateCollege    = store.UpdateCollege
	deleteCollege    = store.DeleteCollege
	getCollegeByName = store.GetCollegeByName
	getUserByEmail   = store.GetUserByEmail
	addCollegeReview = store.AddCollegeReview
)

// @Summary     List all colleges
// @Description 回傳所有學院文件，識別碼以不透明字串呈現
// @Tags        colleges
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     500 {object} api.ErrorResponse
// @Router      /colleges [get]
func ListCollegesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		collegeList, err := listColleges(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		resp := make([]api.CollegeResponse, 0, len(collegeList))
		for i := range collegeList {
			resp = append(resp, api.NewCollegeResponse(&collegeList[i]))
		}
		return c.JSON(http.StatusOK, api.Response{Success: true, Data: resp})
	}
}

// @Summary     Register a college
// @Description 建立學院，十個頂層欄位皆為必填，缺漏一次全數列出
// @Tags        colleges
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateCollegeRequest true "學院資料"
// @Success     201  {object} api.Response
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /colleges [post]
func CreateCollegeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCollegeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Request must contain JSON data"})
		}

		if missing := req.MissingFields(); len(missing) > 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: "Missing required fields: " + strings.Join(missing, ", "),
			})
		}
		if !req.Location.Complete() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: "Invalid location data. Must include latitude, longitude, and address.",
			})
		}
		if !req.Contact.Complete() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: "Invalid contact data. Must include email and phone.",
			})
		}

		now := time.Now().UTC()
		college := &model.College{
			Name: *req.Name,
			Location: model.Location{
				Latitude:  *req.Location.Latitude,
				Longitude: *req.Location.Longitude,
				Address:   *req.Location.Address,
			},
			Website: *req.Website,
			Contact: model.Contact{
				Email: *req.Contact.Email,
				Phone: *req.Contact.Phone,
			},
			Facilities:  req.Facilities,
			Departments: req.Departments,
			Courses:     req.Courses,
			City:        *req.City,
			State:       *req.State,
			Branches:    req.Branches,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		created, err := createCollege(c.Request().Context(), db, college)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.Response{
			Success: true,
			Message: "College added successfully",
			Data:    api.NewCollegeResponse(created),
		})
	}
}

// @Summary     Update a college by name
// @Description 依學院名稱部分更新，只合併有提供的欄位
// @Tags        colleges
// @Accept      json
// @Produce     json
// @Param       name path     string                   true "學院名稱"
// @Param       body body     api.UpdateCollegeRequest true "欲更新的欄位"
// @Success     200  {object} api.Response
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /colleges/{name} [put]
func UpdateCollegeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateCollegeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Request must contain JSON data"})
		}

		fields := req.SetFields()
		if len(fields) == 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "no fields to update"})
		}

		modified, err := updateCollege(c.Request().Context(), db, c.Param("name"), fields)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		// 對象不存在與無變更更新刻意不做區分
		if modified == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "No changes made or college not found"})
		}

		return c.JSON(http.StatusOK, api.Response{Success: true, Message: "College updated successfully"})
	}
}

// @Summary     Delete a college by name
// @Description 依學院名稱刪除
// @Tags        colleges
// @Produce     json
// @Param       name path     string true "學院名稱"
// @Success     200  {object} api.Response
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /colleges/{name} [delete]
func DeleteCollegeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		deleted, err := deleteCollege(c.Request().Context(), db, c.Param("name"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		if deleted == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "College not found"})
		}
		return c.JSON(http.StatusOK, api.Response{Success: true, Message: "College deleted successfully"})
	}
}
