package client

import "time"

type LoginResponse struct {
	Status   string `json:"status"`
	Token    string `json:"token"`
	Created  bool   `json:"created"`
	Username string `json:"username"`
	UserID   string `json:"userid"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Country  string `json:"country"`
}

type SignupResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	UserID   string `json:"userid"`
}

type ProjectSummary struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Duration       string `json:"duration"`
	Description    string `json:"description"`
	CompletedTasks int    `json:"completedTasks"`
	TotalTasks     int    `json:"totalTasks"`
}

type Duration struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type Project struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Duration    Duration  `json:"duration"`
	Description string    `json:"description"`
	Tasks       []Task    `json:"tasks"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CompletedTasks counts the tasks with status completed.
func (p *Project) CompletedTasks() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Status == StatusCompleted {
			n++
		}
	}
	return n
}

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Task struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

type taskMessage struct {
	Message string `json:"message"`
	Task    Task   `json:"task"`
}
