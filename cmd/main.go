package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/thesrcielos/DebateJudge/api/middleware"
	v1 "github.com/thesrcielos/DebateJudge/api/v1"
	"github.com/thesrcielos/DebateJudge/internal/debate"
	"github.com/thesrcielos/DebateJudge/internal/practice"
	"github.com/thesrcielos/DebateJudge/internal/user"
	"github.com/thesrcielos/DebateJudge/pkg/db"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(&user.User{}, &debate.Debate{})

	v1.UserService = user.NewUserService(user.NewGormUserRepository(db.DB))
	v1.DebateService = debate.NewDebateService(
		debate.NewGormDebateRepository(db.DB),
		debate.NewHTTPScorer(os.Getenv("MODEL_URL"), modelTimeout()),
	)
	v1.PracticeService = practice.NewPracticeService(practice.NewRedisPracticeRepository(db.Rdb))
	if err := v1.PracticeService.SeedDemoData(); err != nil {
		log.Println("error seeding demo problems:", err)
	}

	e := echo.New()
	e.HTTPErrorHandler = api_middleware.AppErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "AI Debate Judge API is running"})
	})

	api := e.Group("/api")
	v1.RegisterAuthRoutes(api.Group("/auth"), api_middleware.SetupJWTMiddleware())

	debates := api.Group("/debates")
	debates.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterDebateRoutes(debates)

	v1.RegisterProblemRoutes(api.Group("/problems"))
	v1.RegisterSubmissionRoutes(api.Group("/submissions"))

	e.Logger.Fatal(e.Start(":" + getEnv("PORT", "8080")))
}

func modelTimeout() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("MODEL_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
