package projects

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/adanyl0v/go-projects/internal/models"
)

// taskDocument is the JSONB shape of an embedded task.
type taskDocument struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func encodeTasks(tasks []models.Task) (string, error) {
	docs := make([]taskDocument, len(tasks))
	for i, t := range tasks {
		docs[i] = taskDocument{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			CompletedAt: t.CompletedAt,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		}
	}

	b, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return string(b), nil
}

func decodeTasks(raw []byte) ([]models.Task, error) {
	if len(raw) == 0 {
		return []models.Task{}, nil
	}

	var docs []taskDocument
	err := json.Unmarshal(raw, &docs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal tasks: %w", err)
	}

	tasks := make([]models.Task, len(docs))
	for i, d := range docs {
		tasks[i] = models.Task{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Status:      d.Status,
			CompletedAt: d.CompletedAt,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		}
	}
	return tasks, nil
}
