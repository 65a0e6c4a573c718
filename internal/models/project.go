package models

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	ProjectTypeWebDevelopment = "Web Development"
	ProjectTypeAppDevelopment = "App Development"
	ProjectTypeAI             = "AI"
	ProjectTypeMusic          = "Music"
	ProjectTypeOther          = "Other"
)

const (
	UnitDays   = "days"
	UnitWeeks  = "weeks"
	UnitMonths = "months"
)

var (
	ProjectTypes  = []string{ProjectTypeWebDevelopment, ProjectTypeAppDevelopment, ProjectTypeAI, ProjectTypeMusic, ProjectTypeOther}
	DurationUnits = []string{UnitDays, UnitWeeks, UnitMonths}
)

var ErrInvalidDuration = errors.New("invalid duration format")

type Duration struct {
	Value int
	Unit  string
}

// ParseDuration parses "<integer> <unit>", e.g. "4 weeks".
func ParseDuration(s string) (Duration, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	value, err := strconv.Atoi(parts[0])
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	if !slices.Contains(DurationUnits, parts[1]) {
		return Duration{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, parts[1])
	}
	return Duration{Value: value, Unit: parts[1]}, nil
}

func (d Duration) String() string {
	return fmt.Sprintf("%d %s", d.Value, d.Unit)
}

func IsValidProjectType(projectType string) bool {
	return slices.Contains(ProjectTypes, projectType)
}

type Project struct {
	ID          string
	UserID      string
	Name        string
	Type        string
	Duration    Duration
	Description string
	Tasks       []Task
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectSummary is the list projection of a project.
type ProjectSummary struct {
	ID             string
	Name           string
	Type           string
	Duration       string
	Description    string
	CompletedTasks int
	TotalTasks     int
}

func (p *Project) Summary() ProjectSummary {
	completed := 0
	for _, task := range p.Tasks {
		if task.Status == StatusCompleted {
			completed++
		}
	}

	return ProjectSummary{
		ID:             p.ID,
		Name:           p.Name,
		Type:           p.Type,
		Duration:       p.Duration.String(),
		Description:    p.Description,
		CompletedTasks: completed,
		TotalTasks:     len(p.Tasks),
	}
}

// TaskIndex returns the position of the task with the given id or -1.
func (p *Project) TaskIndex(taskID string) int {
	return slices.IndexFunc(p.Tasks, func(t Task) bool {
		return t.ID == taskID
	})
}
