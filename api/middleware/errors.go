package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/DebateJudge/internal/apperrors"
)

// AppErrorHandler maps service errors onto JSON responses. AppError wrapped
// causes are logged but never sent to the client.
func AppErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			log.Println("request failed:", appErr.Err)
		}
		writeJSON(c, appErr.Code, appErr.Message)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			writeJSON(c, httpErr.Code, msg)
		} else {
			writeJSON(c, httpErr.Code, http.StatusText(httpErr.Code))
		}
		return
	}

	log.Println("unexpected error:", err)
	writeJSON(c, http.StatusInternalServerError, "internal server error")
}

func writeJSON(c echo.Context, code int, message string) {
	if err := c.JSON(code, echo.Map{"message": message}); err != nil {
		log.Println("error writing error response:", err)
	}
}
