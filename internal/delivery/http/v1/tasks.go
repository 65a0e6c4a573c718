package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-projects/internal/models"
	"github.com/adanyl0v/go-projects/internal/services"
)

type taskResponse struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

type taskMessageResponse struct {
	Message string       `json:"message"`
	Task    taskResponse `json:"task"`
}

type addTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

func (h *handlerImpl) HandleAddTask(c *gin.Context) {
	var req addTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newValidationError("Missing required fields"))
		return
	}

	task, err := h.projects.AddTask(c.Request.Context(), c.Param("projectId"), services.AddTaskParams{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to add task")
		abort(c, projectAPIError(err))
		return
	}

	c.JSON(http.StatusOK, taskMessageResponse{
		Message: "Task added successfully",
		Task:    newTaskResponse(task),
	})
}

type updateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlerImpl) HandleUpdateTaskStatus(c *gin.Context) {
	var req updateTaskStatusRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newValidationError("Missing required fields"))
		return
	}

	task, err := h.projects.UpdateTaskStatus(
		c.Request.Context(),
		c.Param("projectId"),
		c.Param("taskId"),
		req.Status,
	)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update task status")
		abort(c, projectAPIError(err))
		return
	}

	c.JSON(http.StatusOK, taskMessageResponse{
		Message: "Task status updated successfully",
		Task:    newTaskResponse(task),
	})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	err := h.projects.DeleteTask(c.Request.Context(), c.Param("projectId"), c.Param("taskId"))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete task")
		abort(c, projectAPIError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
