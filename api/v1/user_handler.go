package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/DebateJudge/api/middleware"
	"github.com/thesrcielos/DebateJudge/internal/user"
)

const INVALID_REQUEST = "invalid request"

var UserService *user.UserService

func RegisterAuthRoutes(g *echo.Group, jwtMiddleware echo.MiddlewareFunc) {
	g.POST("/register", RegisterHandler)
	g.POST("/login", LoginHandler)
	g.GET("/me", CurrentUserHandler, jwtMiddleware)
}

func RegisterHandler(c echo.Context) error {
	var req user.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	resp, err := UserService.Register(&req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func LoginHandler(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	resp, err := UserService.Login(&req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func CurrentUserHandler(c echo.Context) error {
	u, err := UserService.GetCurrentUser(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
