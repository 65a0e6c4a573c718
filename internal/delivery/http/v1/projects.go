package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-projects/internal/models"
	"github.com/adanyl0v/go-projects/internal/services"
)

type projectSummaryResponse struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Duration       string `json:"duration"`
	Description    string `json:"description"`
	CompletedTasks int    `json:"completedTasks"`
	TotalTasks     int    `json:"totalTasks"`
}

type durationResponse struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type projectResponse struct {
	ID          string           `json:"_id"`
	UserID      string           `json:"userId"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Duration    durationResponse `json:"duration"`
	Description string           `json:"description"`
	Tasks       []taskResponse   `json:"tasks"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func newProjectResponse(project *models.Project) projectResponse {
	tasks := make([]taskResponse, len(project.Tasks))
	for i := range project.Tasks {
		tasks[i] = newTaskResponse(&project.Tasks[i])
	}

	return projectResponse{
		ID:     project.ID,
		UserID: project.UserID,
		Name:   project.Name,
		Type:   project.Type,
		Duration: durationResponse{
			Value: project.Duration.Value,
			Unit:  project.Duration.Unit,
		},
		Description: project.Description,
		Tasks:       tasks,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func (h *handlerImpl) HandleListProjects(c *gin.Context) {
	userID := c.Param("userId")

	summaries, err := h.projects.ListProjects(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list projects")
		abort(c, projectAPIError(err))
		return
	}

	response := make([]projectSummaryResponse, len(summaries))
	for i, s := range summaries {
		response[i] = projectSummaryResponse{
			ID:             s.ID,
			Name:           s.Name,
			Type:           s.Type,
			Duration:       s.Duration,
			Description:    s.Description,
			CompletedTasks: s.CompletedTasks,
			TotalTasks:     s.TotalTasks,
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetProject(c *gin.Context) {
	project, err := h.projects.GetProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get project")
		abort(c, projectAPIError(err))
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(project))
}

type createProjectRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Type        string `json:"type" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	Description string `json:"description"`
	UserID      string `json:"userId" binding:"required"`
}

func (h *handlerImpl) HandleCreateProject(c *gin.Context) {
	var req createProjectRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newValidationError("Missing required fields"))
		return
	}

	project, err := h.projects.CreateProject(c.Request.Context(), services.CreateProjectParams{
		Name:        req.Name,
		Type:        req.Type,
		Duration:    req.Duration,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create project")
		abort(c, projectAPIError(err))
		return
	}

	c.JSON(http.StatusCreated, newProjectResponse(project))
}

func (h *handlerImpl) HandleDeleteProject(c *gin.Context) {
	err := h.projects.DeleteProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete project")
		abort(c, projectAPIError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func projectAPIError(err error) apiError {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		return newValidationError("Missing required fields")
	case errors.Is(err, services.ErrInvalidDuration):
		return newValidationError("Invalid duration format")
	case errors.Is(err, services.ErrInvalidProjectType):
		return newValidationError("Invalid project type")
	case errors.Is(err, services.ErrInvalidTaskStatus):
		return newValidationError("Invalid task status")
	case errors.Is(err, services.ErrProjectNotFound):
		return newNotFoundError("Project not found")
	case errors.Is(err, services.ErrTaskNotFound):
		return newNotFoundError("Task not found")
	case errors.Is(err, services.ErrUserNotFound):
		return newNotFoundError("User not found")
	case errors.Is(err, services.ErrForbidden):
		return newForbiddenError("Project belongs to another user")
	default:
		return newInternalError()
	}
}
