package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/models"
)

type getTaskResponse struct {
	ID           string           `json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	Title        string           `json:"title"`
	Status       string           `json:"status"`
	AssignedDate models.Date      `json:"assigned_date"`
	Position     int              `json:"position"`
	Notes        *string          `json:"notes"`
	StartDate    *models.Date     `json:"start_date"`
	EndDate      *models.Date     `json:"end_date"`
	StartTime    *string          `json:"start_time"`
	EndTime      *string          `json:"end_time"`
	Links        []models.Link    `json:"links"`
	Location     *models.Location `json:"location"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	links := task.Links
	if links == nil {
		links = []models.Link{}
	}
	return getTaskResponse{
		ID:           task.ID,
		CreatedAt:    task.CreatedAt,
		Title:        task.Title,
		Status:       task.Status,
		AssignedDate: task.AssignedDate,
		Position:     task.Position,
		Notes:        task.Notes,
		StartDate:    task.StartDate,
		EndDate:      task.EndDate,
		StartTime:    task.StartTime,
		EndTime:      task.EndTime,
		Links:        links,
		Location:     task.Location,
	}
}

type taskEnvelope struct {
	Task getTaskResponse `json:"task"`
}

type taskListEnvelope struct {
	Tasks []getTaskResponse `json:"tasks"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type createTaskRequest struct {
	Title        *string       `json:"title" binding:"required"`
	AssignedDate *models.Date  `json:"assigned_date" binding:"required"`
	Position     int           `json:"position"`
	Status       *string       `json:"status"`
	Notes        *string       `json:"notes"`
	Links        []models.Link `json:"links"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.CreateTask(c, models.NewTask{
		Title:        *req.Title,
		AssignedDate: *req.AssignedDate,
		Position:     req.Position,
		Status:       req.Status,
		Notes:        req.Notes,
		Links:        req.Links,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskEnvelope{Task: newGetTaskResponse(task)})
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError(errMissingTaskID.Error()))
		return
	}

	var req models.TaskUpdate
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.UpdateTask(c, taskID, req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to update task")
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskEnvelope{Task: newGetTaskResponse(task)})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError(errMissingTaskID.Error()))
		return
	}

	err := h.tasks.DeleteTask(c, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to delete task")
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, okResponse{OK: true})
}
