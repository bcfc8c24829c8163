package middleware

import (
	"errors"
	"net/http"

	"myFitAdvisor/business/fit"
	"myFitAdvisor/pkg/logger"

	jsonres "myFitAdvisor/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler maps errors that escape handlers to the shared envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	label := "INTERNAL_ERROR"
	message := "internal server error"

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		label = http.StatusText(code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	case errors.Is(err, fit.ErrUnknownCategory):
		code = http.StatusNotFound
		label = "UNKNOWN_CATEGORY"
		message = err.Error()
	case errors.Is(err, fit.ErrInsufficientData):
		code = http.StatusUnprocessableEntity
		label = "INSUFFICIENT_DATA"
		message = err.Error()
	}

	if code == http.StatusInternalServerError {
		logger.Error("unhandled request error", err)
	}

	if err := c.JSON(code, jsonres.Error(label, message, nil)); err != nil {
		logger.Error("failed to write error response", err)
	}
}
