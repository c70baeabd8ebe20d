// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	TaskHandler       *handler.TaskHandler
	SyllabusHandler   *handler.SyllabusHandler
	ReportHandler     *handler.ReportHandler
	DeviceHandler     *handler.DeviceHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	taskHandler       *handler.TaskHandler
	syllabusHandler   *handler.SyllabusHandler
	reportHandler     *handler.ReportHandler
	deviceHandler     *handler.DeviceHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		taskHandler:       params.TaskHandler,
		syllabusHandler:   params.SyllabusHandler,
		reportHandler:     params.ReportHandler,
		deviceHandler:     params.DeviceHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes are public: they are how a session comes to exist.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/session", r.authHandler.EstablishSession)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Everything below requires a live device session.
	taskGroup := e.Group("/tasks")
	taskGroup.Use(r.sessionMiddleware.Authenticate)
	{
		taskGroup.GET("", r.taskHandler.ListTasks)
		taskGroup.POST("", r.taskHandler.CreateTask)
		taskGroup.PATCH("/:id", r.taskHandler.SetCompleted)
		taskGroup.DELETE("/:id", r.taskHandler.DeleteTask)
	}

	syllabusGroup := e.Group("/syllabus")
	syllabusGroup.Use(r.sessionMiddleware.Authenticate)
	{
		syllabusGroup.GET("", r.syllabusHandler.ListSyllabus)
		syllabusGroup.PATCH("/:id", r.syllabusHandler.UpdateStatus)
	}

	reportGroup := e.Group("/reports")
	reportGroup.Use(r.sessionMiddleware.Authenticate)
	{
		reportGroup.GET("/efficiency", r.reportHandler.Efficiency)
		reportGroup.GET("/phases", r.reportHandler.Phases)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.sessionMiddleware.Authenticate)
	{
		adminGroup.GET("/devices", r.deviceHandler.ListDevices)
		adminGroup.GET("/attempts", r.deviceHandler.LoginHistory)
		adminGroup.POST("/devices/:deviceID/approve", r.deviceHandler.ApproveDevice)
		adminGroup.POST("/devices/:deviceID/revoke", r.deviceHandler.RevokeDevice)
		adminGroup.DELETE("/devices/:deviceID", r.deviceHandler.DeleteDevice)
	}
}
