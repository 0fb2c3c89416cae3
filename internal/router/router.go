// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"clg-navigator/internal/database"
	"clg-navigator/internal/handler"
	"clg-navigator/internal/handler/auth"
	"clg-navigator/internal/handler/colleges"
	"clg-navigator/internal/handler/events"
	"clg-navigator/internal/handler/users"
)

// Setup 註冊所有路由並注入 db
func Setup(e *echo.Echo, db database.DB) {
	// 健康檢查
	e.GET("/ping", handler.PingHandler(db))

	// 使用者登入與查詢
	e.POST("/users/google-login", auth.GoogleLoginHandler(db))
	e.GET("/users/:email", users.GetUserHandler(db))

	// 學院 CRUD 與評論
	e.GET("/colleges", colleges.ListCollegesHandler(db))
	e.POST("/colleges", colleges.CreateCollegeHandler(db))
	e.PUT("/colleges/:name", colleges.UpdateCollegeHandler(db))
	e.DELETE("/colleges/:name", colleges.DeleteCollegeHandler(db))
	e.POST("/colleges/:name/rate", colleges.RateCollegeHandler(db))

	// 活動 CRUD
	e.GET("/events", events.ListEventsHandler(db))
	e.POST("/events", events.CreateEventHandler(db))
	e.PUT("/events/:id", events.UpdateEventHandler(db))
	e.DELETE("/events/:id", events.DeleteEventHandler(db))

	// 設施地圖資料
	e.GET("/map-data", handler.MapDataHandler(db))
}
