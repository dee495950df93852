// Package router registers the control API routes.
package router

import (
	"brew/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	SelectionHandler *handler.SelectionHandler
	OrderHandler     *handler.OrderHandler
	HistoryHandler   *handler.HistoryHandler
	ProfileHandler   *handler.ProfileHandler
	NoticeHandler    *handler.NoticeHandler
}

type router struct {
	catalogHandler   *handler.CatalogHandler
	selectionHandler *handler.SelectionHandler
	orderHandler     *handler.OrderHandler
	historyHandler   *handler.HistoryHandler
	profileHandler   *handler.ProfileHandler
	noticeHandler    *handler.NoticeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:   params.CatalogHandler,
		selectionHandler: params.SelectionHandler,
		orderHandler:     params.OrderHandler,
		historyHandler:   params.HistoryHandler,
		profileHandler:   params.ProfileHandler,
		noticeHandler:    params.NoticeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	catalogGroup := api.Group("/catalog")
	{
		catalogGroup.GET("", r.catalogHandler.GetCatalog)
		catalogGroup.POST("/reload", r.catalogHandler.ReloadCatalog)
	}

	selectionGroup := api.Group("/selection")
	{
		selectionGroup.GET("", r.selectionHandler.GetSelection)
		selectionGroup.PUT("/coffee", r.selectionHandler.SelectCoffee)
		selectionGroup.PUT("/payment", r.selectionHandler.SelectPayment)
		selectionGroup.PUT("/delivery", r.selectionHandler.SelectDelivery)
		selectionGroup.DELETE("", r.selectionHandler.ClearSelection)
	}

	orderGroup := api.Group("/order")
	{
		orderGroup.POST("", r.orderHandler.SubmitOrder)
		orderGroup.GET("", r.orderHandler.GetOrder)
		orderGroup.DELETE("", r.orderHandler.CancelOrder)
		orderGroup.PUT("/status", r.orderHandler.AdvanceStatus)
		orderGroup.POST("/payment", r.orderHandler.ConfirmPayment)
		orderGroup.POST("/reset", r.orderHandler.ResetOrder)
		orderGroup.POST("/resume", r.orderHandler.ResumeOrder)
		orderGroup.GET("/receipt.png", r.orderHandler.Receipt)
	}

	historyGroup := api.Group("/history")
	{
		historyGroup.GET("/orders", r.historyHandler.ListOrders)
		historyGroup.GET("/payments", r.historyHandler.ListPayments)
		historyGroup.GET("/board", r.historyHandler.Board)
	}

	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.GET("/orders-summary", r.historyHandler.OrdersSummary)
		analyticsGroup.GET("/users/:id/stats", r.historyHandler.UserStats)
	}

	api.GET("/profile", r.profileHandler.GetProfile)
	api.GET("/notices", r.noticeHandler.ListNotices)
}
