package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-projects/internal/models"
	"github.com/adanyl0v/go-projects/internal/repositories/projects"
)

type projectServiceImpl struct {
	logger   zerolog.Logger
	projects projects.Repository
	now      func() time.Time
}

func NewProjectService(
	logger zerolog.Logger,
	projectRepo projects.Repository,
) ProjectService {
	return &projectServiceImpl{
		logger:   logger,
		projects: projectRepo,
		now:      time.Now,
	}
}

func (s *projectServiceImpl) ListProjects(ctx context.Context, userID string) ([]models.ProjectSummary, error) {
	err := checkOwner(ctx, userID)
	if err != nil {
		s.logger.Error().
			Str("user_id", userID).
			Msg("listing projects of another user")
		return nil, err
	}

	list, err := s.projects.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select projects by user id")
		return nil, err
	}

	summaries := make([]models.ProjectSummary, len(list))
	for i, p := range list {
		summaries[i] = p.Summary()
	}

	s.logger.Info().
		Int("count", len(summaries)).
		Str("user_id", userID).
		Msg("projects found")
	return summaries, nil
}

func (s *projectServiceImpl) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, s.projectError(err, projectID, "failed to select project")
	}

	err = checkOwner(ctx, project.UserID)
	if err != nil {
		s.logger.Error().
			Str("project_id", projectID).
			Msg("project belongs to another user")
		return nil, err
	}

	s.logger.Info().
		Str("project_id", projectID).
		Int("tasks", len(project.Tasks)).
		Msg("project found")
	return project, nil
}

func (s *projectServiceImpl) CreateProject(ctx context.Context, params CreateProjectParams) (*models.Project, error) {
	if strings.TrimSpace(params.Name) == "" ||
		params.Type == "" ||
		strings.TrimSpace(params.Duration) == "" ||
		params.UserID == "" {
		return nil, ErrMissingFields
	}

	duration, err := models.ParseDuration(params.Duration)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("invalid duration")
		return nil, ErrInvalidDuration
	}

	if !models.IsValidProjectType(params.Type) {
		s.logger.Error().
			Str("type", params.Type).
			Msg("invalid project type")
		return nil, ErrInvalidProjectType
	}

	err = checkOwner(ctx, params.UserID)
	if err != nil {
		s.logger.Error().
			Str("user_id", params.UserID).
			Msg("creating project for another user")
		return nil, err
	}

	projectUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate project uuid")
		return nil, err
	}

	now := s.now()
	project := &models.Project{
		ID:          projectUUID.String(),
		UserID:      params.UserID,
		Name:        params.Name,
		Type:        params.Type,
		Duration:    duration,
		Description: params.Description,
		Tasks:       []models.Task{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.projects.Create(ctx, project)
	if err != nil {
		if errors.Is(err, projects.ErrOwnerNotFound) {
			s.logger.Error().
				Str("user_id", params.UserID).
				Msg("project owner not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert project")
		return nil, err
	}

	s.logger.Info().
		Str("project_id", project.ID).
		Str("user_id", project.UserID).
		Msg("created project")
	return project, nil
}

func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID string) error {
	if _, ok := ActorFromContext(ctx); ok {
		_, err := s.GetProject(ctx, projectID)
		if err != nil {
			return err
		}
	}

	err := s.projects.Delete(ctx, projectID)
	if err != nil {
		return s.projectError(err, projectID, "failed to delete project")
	}

	s.logger.Info().
		Str("project_id", projectID).
		Msg("deleted project")
	return nil
}

func (s *projectServiceImpl) AddTask(ctx context.Context, projectID string, params AddTaskParams) (*models.Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrMissingFields
	}

	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, err
	}

	now := s.now()
	task := models.Task{
		ID:          taskUUID.String(),
		Title:       params.Title,
		Description: params.Description,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = s.projects.Mutate(ctx, projectID, func(p *models.Project) error {
		err := checkOwner(ctx, p.UserID)
		if err != nil {
			return err
		}
		p.Tasks = append(p.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, s.projectError(err, projectID, "failed to add task")
	}

	s.logger.Info().
		Str("project_id", projectID).
		Str("task_id", task.ID).
		Msg("added task")
	return &task, nil
}

func (s *projectServiceImpl) UpdateTaskStatus(ctx context.Context, projectID, taskID, status string) (*models.Task, error) {
	if !models.IsValidTaskStatus(status) {
		s.logger.Error().
			Str("status", status).
			Msg("invalid task status")
		return nil, ErrInvalidTaskStatus
	}

	var updated models.Task
	_, err := s.projects.Mutate(ctx, projectID, func(p *models.Project) error {
		err := checkOwner(ctx, p.UserID)
		if err != nil {
			return err
		}

		i := p.TaskIndex(taskID)
		if i < 0 {
			return ErrTaskNotFound
		}

		now := s.now()
		task := &p.Tasks[i]
		if status == models.StatusCompleted && task.Status != models.StatusCompleted {
			task.CompletedAt = &now
		}
		task.Status = status
		task.UpdatedAt = now
		updated = *task
		return nil
	})
	if err != nil {
		return nil, s.projectError(err, projectID, "failed to update task status")
	}

	s.logger.Info().
		Str("project_id", projectID).
		Str("task_id", taskID).
		Str("status", status).
		Msg("updated task status")
	return &updated, nil
}

func (s *projectServiceImpl) DeleteTask(ctx context.Context, projectID, taskID string) error {
	_, err := s.projects.Mutate(ctx, projectID, func(p *models.Project) error {
		err := checkOwner(ctx, p.UserID)
		if err != nil {
			return err
		}

		i := p.TaskIndex(taskID)
		if i < 0 {
			return ErrTaskNotFound
		}
		p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
		return nil
	})
	if err != nil {
		return s.projectError(err, projectID, "failed to delete task")
	}

	s.logger.Info().
		Str("project_id", projectID).
		Str("task_id", taskID).
		Msg("deleted task")
	return nil
}

// projectError logs err and translates store errors into service errors.
func (s *projectServiceImpl) projectError(err error, projectID, msg string) error {
	switch {
	case errors.Is(err, projects.ErrProjectNotFound):
		s.logger.Error().
			Str("project_id", projectID).
			Msg("project not found")
		return ErrProjectNotFound
	case errors.Is(err, ErrTaskNotFound):
		s.logger.Error().
			Str("project_id", projectID).
			Msg("task not found")
		return err
	case errors.Is(err, ErrForbidden):
		s.logger.Error().
			Str("project_id", projectID).
			Msg("project belongs to another user")
		return err
	}

	s.logger.Error().
		Err(err).
		Str("project_id", projectID).
		Msg(msg)
	return err
}
