package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/services"
)

type Handler interface {
	HandleRequestLogger(c *gin.Context)
	HandleHealth(c *gin.Context)

	HandleListWeekStarts(c *gin.Context)
	HandleListWeekTasks(c *gin.Context)
	HandleDeleteWeekTasks(c *gin.Context)
	HandleDeleteDayTasks(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
	}
}

// RegisterRoutes mounts the health check on router and the task API
// under /api.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.GET("/health", h.HandleHealth)

	api := router.Group("/api")

	weeks := api.Group("/weeks")
	weeks.GET("", h.HandleListWeekStarts)
	weeks.GET("/:weekStart/tasks", h.HandleListWeekTasks)
	weeks.DELETE("/:weekStart/tasks", h.HandleDeleteWeekTasks)

	days := api.Group("/days")
	days.DELETE("/:date/tasks", h.HandleDeleteDayTasks)

	tasks := api.Group("/tasks")
	tasks.POST("", h.HandleCreateTask)
	tasks.PATCH("/:id", h.HandleUpdateTask)
	tasks.DELETE("/:id", h.HandleDeleteTask)
}
