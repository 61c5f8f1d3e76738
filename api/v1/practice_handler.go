package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/DebateJudge/internal/practice"
)

var PracticeService *practice.PracticeService

func RegisterProblemRoutes(g *echo.Group) {
	g.GET("", GetProblemsHandler)
	g.POST("", CreateProblemHandler)
	g.GET("/:id", GetProblemHandler)
}

func RegisterSubmissionRoutes(g *echo.Group) {
	g.POST("", CreateSubmissionHandler)
	g.GET("/:id", GetSubmissionHandler)
}

func GetProblemsHandler(c echo.Context) error {
	problems, err := PracticeService.GetProblems()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "problems": problems})
}

func GetProblemHandler(c echo.Context) error {
	p, err := PracticeService.GetProblem(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "problem": p})
}

func CreateProblemHandler(c echo.Context) error {
	var p practice.Problem
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := PracticeService.CreateProblem(&p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "problem": created})
}

func CreateSubmissionHandler(c echo.Context) error {
	var s practice.Submission
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := PracticeService.CreateSubmission(&s)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, echo.Map{"ok": true, "submission": created})
}

func GetSubmissionHandler(c echo.Context) error {
	s, err := PracticeService.GetSubmission(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "submission": s})
}
