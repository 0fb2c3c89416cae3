// @title        College Navigator API
// @version      1.0
// @description  這是校園導覽後端的 API 文件
// @host         localhost:5000
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"clg-navigator/internal/database"
	appmw "clg-navigator/internal/middleware"
	"clg-navigator/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "clg-navigator/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const defaultAllowedOrigins = "http://localhost:3000,https://clg-navigator.vercel.app"

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newMongoDatabase = database.NewMongoDatabase
	startServer      = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc         = os.Exit
)

func run() error {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return fmt.Errorf("環境變數 MONGO_URL 未設定")
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = defaultAllowedOrigins
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	db, err := newMongoDatabase(context.Background(), mongoURL)
	if err != nil {
		return fmt.Errorf("MongoDB 連線失敗: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Printf("關閉 MongoDB 連線失敗: %v", err)
		}
	}()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(appmw.CORS(strings.Split(origins, ",")))

	router.Setup(e, db)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
