package router

import (
	"myFitAdvisor/internal/middleware"
	"myFitAdvisor/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetFitRoutes(api *echo.Group, fitHandler *rest.FitHandler, feedbackHandler *rest.FeedbackHandler) {
	fit := api.Group("/fit", middleware.AuthMiddleware())

	fit.POST("/predict", fitHandler.Predict)
	fit.GET("/size-charts", fitHandler.ListCategories)
	fit.GET("/size-charts/:category", fitHandler.GetSizeChart)

	fit.POST("/feedback", feedbackHandler.Record)
	fit.GET("/feedback", feedbackHandler.History)
}

func SetChartAdminRoutes(api *echo.Group, handler *rest.ChartAdminHandler) {
	admin := api.Group("/admin/fit", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.POST("/charts/reload", handler.ReloadCharts)
}
