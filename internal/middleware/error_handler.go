package middleware

import (
	"net/http"

	"github.com/SaiPranav00/EVMATCHFINAL/pkg/logger"
	jsonres "github.com/SaiPranav00/EVMATCHFINAL/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler: anything a handler did not
// already answer gets the standard error envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	status := "ERROR"
	switch code {
	case http.StatusNotFound:
		status = "NOT_FOUND"
	case http.StatusUnauthorized:
		status = "UNAUTHORIZED"
	case http.StatusForbidden:
		status = "FORBIDDEN"
	case http.StatusBadRequest:
		status = "BAD_REQUEST"
	}

	if err := c.JSON(code, jsonres.Error(status, message, nil)); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
