package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-projects/internal/models"
	"github.com/adanyl0v/go-projects/internal/repositories/memory"
)

func newTestProjectService(t *testing.T) (*projectServiceImpl, *memory.ProjectRepository) {
	t.Helper()

	repo := memory.NewProjectRepository(nil)
	s := NewProjectService(zerolog.Nop(), repo).(*projectServiceImpl)
	return s, repo
}

func createTestProject(t *testing.T, s ProjectService, userID, name string) *models.Project {
	t.Helper()

	p, err := s.CreateProject(context.Background(), CreateProjectParams{
		Name:     name,
		Type:     models.ProjectTypeWebDevelopment,
		Duration: "4 weeks",
		UserID:   userID,
	})
	require.NoError(t, err)
	return p
}

func TestProjectService_CreateProject(t *testing.T) {
	s, _ := newTestProjectService(t)
	ctx := context.Background()

	p := createTestProject(t, s, "u1", "site")
	assert.Equal(t, models.Duration{Value: 4, Unit: models.UnitWeeks}, p.Duration)
	assert.Empty(t, p.Tasks)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "u1", got.UserID)

	tests := []struct {
		name    string
		params  CreateProjectParams
		wantErr error
	}{
		{
			name:    "missing name",
			params:  CreateProjectParams{Type: models.ProjectTypeAI, Duration: "1 days", UserID: "u1"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing user",
			params:  CreateProjectParams{Name: "x", Type: models.ProjectTypeAI, Duration: "1 days"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "non numeric duration",
			params:  CreateProjectParams{Name: "x", Type: models.ProjectTypeAI, Duration: "abc weeks", UserID: "u1"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "unknown unit",
			params:  CreateProjectParams{Name: "x", Type: models.ProjectTypeAI, Duration: "4 fortnights", UserID: "u1"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "unknown type",
			params:  CreateProjectParams{Name: "x", Type: "Cooking", Duration: "4 days", UserID: "u1"},
			wantErr: ErrInvalidProjectType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateProject(ctx, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProjectService_CreateProjectAcceptsNonPositiveDuration(t *testing.T) {
	s, _ := newTestProjectService(t)

	for _, raw := range []string{"0 days", "-2 weeks"} {
		p, err := s.CreateProject(context.Background(), CreateProjectParams{
			Name:     "x",
			Type:     models.ProjectTypeAI,
			Duration: raw,
			UserID:   "u1",
		})
		require.NoError(t, err, raw)
		assert.Equal(t, raw, p.Duration.String())
	}
}

func TestProjectService_ListProjectsCountsTasks(t *testing.T) {
	s, _ := newTestProjectService(t)
	ctx := context.Background()

	first := createTestProject(t, s, "u1", "first")
	createTestProject(t, s, "u1", "second")
	createTestProject(t, s, "u2", "foreign")

	var taskIDs []string
	for _, title := range []string{"a", "b", "c"} {
		task, err := s.AddTask(ctx, first.ID, AddTaskParams{Title: title})
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, task.Status)
		taskIDs = append(taskIDs, task.ID)
	}

	_, err := s.UpdateTaskStatus(ctx, first.ID, taskIDs[1], models.StatusCompleted)
	require.NoError(t, err)

	list, err := s.ListProjects(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	byName := map[string]models.ProjectSummary{}
	for _, p := range list {
		byName[p.Name] = p
	}
	assert.Equal(t, 1, byName["first"].CompletedTasks)
	assert.Equal(t, 3, byName["first"].TotalTasks)
	assert.Equal(t, "4 weeks", byName["first"].Duration)
	assert.Equal(t, 0, byName["second"].TotalTasks)

	empty, err := s.ListProjects(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProjectService_TaskStatusRoundTrip(t *testing.T) {
	s, _ := newTestProjectService(t)
	ctx := context.Background()

	clock := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	p := createTestProject(t, s, "u1", "site")
	task, err := s.AddTask(ctx, p.ID, AddTaskParams{Title: "write", Description: "docs"})
	require.NoError(t, err)
	assert.Nil(t, task.CompletedAt)

	clock = clock.Add(time.Hour)
	updated, err := s.UpdateTaskStatus(ctx, p.ID, task.ID, models.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(clock))

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, models.StatusCompleted, got.Tasks[0].Status)
	require.NotNil(t, got.Tasks[0].CompletedAt)

	// Going back to pending keeps the completion time.
	clock = clock.Add(time.Hour)
	reverted, err := s.UpdateTaskStatus(ctx, p.ID, task.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reverted.Status)
	require.NotNil(t, reverted.CompletedAt)
	assert.True(t, reverted.CompletedAt.Equal(clock.Add(-time.Hour)))

	_, err = s.UpdateTaskStatus(ctx, p.ID, task.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)

	_, err = s.UpdateTaskStatus(ctx, p.ID, "missing", models.StatusCompleted)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = s.UpdateTaskStatus(ctx, "missing", task.ID, models.StatusCompleted)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_AddTaskValidation(t *testing.T) {
	s, _ := newTestProjectService(t)
	ctx := context.Background()
	p := createTestProject(t, s, "u1", "site")

	_, err := s.AddTask(ctx, p.ID, AddTaskParams{Title: "  "})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = s.AddTask(ctx, "missing", AddTaskParams{Title: "x"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_DeleteTaskAndProject(t *testing.T) {
	s, _ := newTestProjectService(t)
	ctx := context.Background()

	p := createTestProject(t, s, "u1", "site")
	keep, err := s.AddTask(ctx, p.ID, AddTaskParams{Title: "keep"})
	require.NoError(t, err)
	drop, err := s.AddTask(ctx, p.ID, AddTaskParams{Title: "drop"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(ctx, p.ID, drop.ID))
	assert.ErrorIs(t, s.DeleteTask(ctx, p.ID, drop.ID), ErrTaskNotFound)
	assert.ErrorIs(t, s.DeleteTask(ctx, "missing", keep.ID), ErrProjectNotFound)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, keep.ID, got.Tasks[0].ID)

	require.NoError(t, s.DeleteProject(ctx, p.ID))
	_, err = s.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, s.DeleteProject(ctx, p.ID), ErrProjectNotFound)
}

func TestProjectService_ActorOwnership(t *testing.T) {
	s, _ := newTestProjectService(t)
	p := createTestProject(t, s, "u1", "site")
	task, err := s.AddTask(context.Background(), p.ID, AddTaskParams{Title: "t"})
	require.NoError(t, err)

	owner := WithActor(context.Background(), "u1")
	intruder := WithActor(context.Background(), "u2")

	_, err = s.GetProject(owner, p.ID)
	require.NoError(t, err)

	_, err = s.GetProject(intruder, p.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.ListProjects(intruder, "u1")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.AddTask(intruder, p.ID, AddTaskParams{Title: "x"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.UpdateTaskStatus(intruder, p.ID, task.ID, models.StatusCompleted)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, s.DeleteTask(intruder, p.ID, task.ID), ErrForbidden)
	assert.ErrorIs(t, s.DeleteProject(intruder, p.ID), ErrForbidden)
	_, err = s.CreateProject(intruder, CreateProjectParams{
		Name: "x", Type: models.ProjectTypeMusic, Duration: "2 months", UserID: "u1",
	})
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := s.GetProject(owner, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Tasks, 1)
	assert.Equal(t, models.StatusPending, got.Tasks[0].Status)
}

func TestProjectService_UnknownOwner(t *testing.T) {
	owners := memory.NewUserRepository()
	s := NewProjectService(zerolog.Nop(), memory.NewProjectRepository(owners))

	_, err := s.CreateProject(context.Background(), CreateProjectParams{
		Name: "x", Type: models.ProjectTypeOther, Duration: "3 days", UserID: "ghost",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
