package rest

import (
	"context"
	"net/http"

	appmetrics "myFitAdvisor/app/echo-server/metrics"
	"myFitAdvisor/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	ChartAdminHandler struct {
		reloader ChartReloader
	}

	ChartReloader interface {
		Reload(ctx context.Context) error
	}
)

func NewChartAdminHandler(reloader ChartReloader) *ChartAdminHandler {
	return &ChartAdminHandler{reloader: reloader}
}

// POST /api/v1/admin/fit/charts/reload
// Swaps in a freshly loaded chart snapshot; in-flight predictions keep the
// snapshot they started with.
func (h *ChartAdminHandler) ReloadCharts(c echo.Context) error {
	if err := h.reloader.Reload(c.Request().Context()); err != nil {
		logger.Error("failed to reload size charts", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	appmetrics.ChartReloadTotal.Inc()
	logger.Info("size charts reloaded")

	return c.JSON(http.StatusOK, fres.Response.StatusOK("size charts reloaded"))
}
