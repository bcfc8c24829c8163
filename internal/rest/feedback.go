package rest

import (
	"context"
	"net/http"
	"time"

	appmetrics "myFitAdvisor/app/echo-server/metrics"
	"myFitAdvisor/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	FeedbackHandler struct {
		validate       *validator.Validate
		historyService HistoryService
	}

	HistoryService interface {
		RecordFeedback(ctx context.Context, feedback *domain.FitFeedback) error
		FindRecent(ctx context.Context, userID uint, category string, limit int) ([]domain.FitFeedback, error)
	}

	FeedbackRequest struct {
		Category  string `json:"category" validate:"required"`
		SizeGiven string `json:"size_given" validate:"required"`
		Outcome   string `json:"outcome" validate:"required,oneof=too_small slightly_small perfect slightly_large too_large"`
		Returned  bool   `json:"returned"`
	}

	FeedbackQuery struct {
		Category string `query:"category" validate:"required"`
		N        int    `query:"n"`
	}
)

func NewFeedbackHandler(svc HistoryService) *FeedbackHandler {
	return &FeedbackHandler{
		validate:       validator.New(),
		historyService: svc,
	}
}

// POST /api/v1/fit/feedback
func (h *FeedbackHandler) Record(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	feedback := domain.FitFeedback{
		UserID:    userID,
		Category:  req.Category,
		SizeGiven: req.SizeGiven,
		Outcome:   domain.FitOutcome(req.Outcome),
		Returned:  req.Returned,
	}

	start := time.Now()
	err := h.historyService.RecordFeedback(c.Request().Context(), &feedback)
	appmetrics.FeedbackDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	appmetrics.FeedbackTotal.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("feedback recorded"))
}

// GET /api/v1/fit/feedback?category=tops&n=3
func (h *FeedbackHandler) History(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q FeedbackQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.N <= 0 {
		q.N = 3
	}

	records, err := h.historyService.FindRecent(c.Request().Context(), userID, q.Category, q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(records))
}
