package views

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adanyl0v/go-projects/internal/client"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent int
		filled  int
		label   string
	}{
		{0, 0, "  0%"},
		{50, 10, " 50%"},
		{67, 13, " 67%"},
		{100, 20, "100%"},
		{140, 20, "100%"},
	}

	for _, tt := range tests {
		bar := ProgressBar(tt.percent)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), "percent %d", tt.percent)
		assert.Equal(t, progressBarWidth-tt.filled, strings.Count(bar, "░"), "percent %d", tt.percent)
		assert.True(t, strings.HasSuffix(bar, tt.label), bar)
	}
}

func TestProjectList(t *testing.T) {
	out := ProjectList("alice", []client.ProjectSummary{
		{ID: "p1", Name: "Site", Type: "Web Development", Duration: "3 weeks", CompletedTasks: 1, TotalTasks: 3},
		{ID: "p2", Name: "Album", Type: "Music", Duration: "2 months", Description: "debut"},
	})

	assert.Contains(t, out, "alice's projects (2/4)")
	assert.Contains(t, out, "Site")
	assert.Contains(t, out, "3 weeks")
	assert.Contains(t, out, " 33%")
	assert.Contains(t, out, "1/3 tasks")
	assert.Contains(t, out, "debut")
	assert.Contains(t, out, "  0%")

	assert.Contains(t, ProjectList("bob", nil), "No projects yet")
}

func TestProject(t *testing.T) {
	completedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	out := Project(&client.Project{
		ID:       "p1",
		Name:     "Site",
		Type:     "Web Development",
		Duration: client.Duration{Value: 3, Unit: "weeks"},
		Tasks: []client.Task{
			{ID: "t1", Title: "design", Status: client.StatusCompleted, CompletedAt: &completedAt},
			{ID: "t2", Title: "build", Status: client.StatusPending, Description: "backend first"},
		},
	})

	assert.Contains(t, out, "3 weeks")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "[x] design")
	assert.Contains(t, out, "[ ] build")
	assert.Contains(t, out, "backend first")
	assert.Contains(t, out, "completed ")

	assert.Contains(t, Project(&client.Project{Name: "Empty"}), "No tasks yet.")
	assert.Contains(t, Error(errors.New("boom")), "error: boom")
}
