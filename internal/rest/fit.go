package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myFitAdvisor/business/fit"
	"myFitAdvisor/domain"
	"myFitAdvisor/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	FitHandler struct {
		validate   *validator.Validate
		fitService FitService
	}

	FitService interface {
		PredictForUser(ctx context.Context, userID uint, measurements domain.MeasurementSet, category string, preference domain.FitPreference, bodyType domain.BodyTypeHint) (domain.Recommendation, error)
		GetSizeChart(ctx context.Context, category string) (domain.SizeChart, error)
		Categories(ctx context.Context) ([]string, error)
	}

	PredictRequest struct {
		Measurements map[string]float64 `json:"measurements" validate:"required"`
		Category     string             `json:"category" validate:"required"`
		Preference   string             `json:"preference" validate:"omitempty,oneof=slim regular loose"`
		BodyType     string             `json:"body_type"`
	}
)

func NewFitHandler(svc FitService) *FitHandler {
	return &FitHandler{
		validate:   validator.New(),
		fitService: svc,
	}
}

// POST /api/v1/fit/predict
func (h *FitHandler) Predict(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req PredictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	preference := domain.FitPreference(req.Preference)
	if preference == "" {
		preference = domain.PreferenceRegular
	}

	start := time.Now()
	rec, err := h.fitService.PredictForUser(
		c.Request().Context(),
		userID,
		domain.MeasurementSet(req.Measurements),
		req.Category,
		preference,
		domain.BodyTypeHint(req.BodyType),
	)
	metrics.FitPredictLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, fit.ErrUnknownCategory):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, fit.ErrInsufficientData):
			return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.FitPredictRequests.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

// GET /api/v1/fit/size-charts/:category
func (h *FitHandler) GetSizeChart(c echo.Context) error {
	category := c.Param("category")
	if category == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "category is required"})
	}

	chart, err := h.fitService.GetSizeChart(c.Request().Context(), category)
	if err != nil {
		if errors.Is(err, fit.ErrUnknownCategory) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(chart))
}

// GET /api/v1/fit/size-charts
func (h *FitHandler) ListCategories(c echo.Context) error {
	categories, err := h.fitService.Categories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(categories))
}
