package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type weeksResponse struct {
	WeekStartsISO []string `json:"weekStartsISO"`
}

func (h *handlerImpl) HandleListWeekStarts(c *gin.Context) {
	weekStarts, err := h.tasks.ListWeekStarts(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list week starts")
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, weeksResponse{WeekStartsISO: weekStarts})
}

func (h *handlerImpl) HandleListWeekTasks(c *gin.Context) {
	weekStart := c.Param("weekStart")

	tasks, err := h.tasks.ListTasksInWeek(c, weekStart)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("week_start", weekStart).
			Msg("failed to list week tasks")
		abortWithServiceError(c, err)
		return
	}

	response := taskListEnvelope{Tasks: make([]getTaskResponse, len(tasks))}
	for i, task := range tasks {
		response.Tasks[i] = newGetTaskResponse(task)
	}
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleDeleteWeekTasks(c *gin.Context) {
	weekStart := c.Param("weekStart")

	err := h.tasks.DeleteTasksInWeek(c, weekStart)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("week_start", weekStart).
			Msg("failed to delete week tasks")
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *handlerImpl) HandleDeleteDayTasks(c *gin.Context) {
	date := c.Param("date")

	err := h.tasks.DeleteTasksOnDay(c, date)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("date", date).
			Msg("failed to delete day tasks")
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, okResponse{OK: true})
}
