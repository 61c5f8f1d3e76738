package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/DebateJudge/api/middleware"
	"github.com/thesrcielos/DebateJudge/internal/debate"
)

var DebateService *debate.DebateService

func RegisterDebateRoutes(g *echo.Group) {
	g.GET("/history", DebateHistoryHandler)
	g.POST("/judge", JudgeDebateHandler)
	g.GET("/:id", GetDebateHandler)
	g.DELETE("/:id", DeleteDebateHandler)
}

func DebateHistoryHandler(c echo.Context) error {
	debates, err := DebateService.History(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, debates)
}

func JudgeDebateHandler(c echo.Context) error {
	var req debate.JudgeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	judged, err := DebateService.Judge(middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Debate judged successfully",
		"debate":  judged,
	})
}

func GetDebateHandler(c echo.Context) error {
	d, err := DebateService.GetDebate(c.Param("id"), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func DeleteDebateHandler(c echo.Context) error {
	if err := DebateService.DeleteDebate(c.Param("id"), middleware.UserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Debate deleted successfully"})
}
