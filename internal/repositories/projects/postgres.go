package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adanyl0v/go-projects/internal/models"
)

const projectColumns = `id,
       user_id,
       name,
       type,
       duration_value,
       duration_unit,
       description,
       tasks,
       created_at,
       updated_at`

// Pool is the subset of *pgxpool.Pool the repository uses.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	pgPool Pool
}

func NewPostgresRepository(pgPool Pool) *PostgresRepository {
	return &PostgresRepository{pgPool: pgPool}
}

func (r *PostgresRepository) Create(ctx context.Context, project *models.Project) error {
	tasks, err := encodeTasks(project.Tasks)
	if err != nil {
		return err
	}

	const insertProjectQuery = `
INSERT INTO projects (id,
                      user_id,
                      name,
                      type,
                      duration_value,
                      duration_unit,
                      description,
                      tasks,
                      created_at,
                      updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10)
`
	_, err = r.pgPool.Exec(
		ctx,
		insertProjectQuery,
		project.ID,
		project.UserID,
		project.Name,
		project.Type,
		project.Duration.Value,
		project.Duration.Unit,
		project.Description,
		tasks,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrOwnerNotFound
		}
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, projectID string) (*models.Project, error) {
	if !isUUID(projectID) {
		return nil, ErrProjectNotFound
	}

	const selectProjectByIDQuery = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1
`
	project, err := scanProject(r.pgPool.QueryRow(ctx, selectProjectByIDQuery, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to select project by id: %w", err)
	}
	return project, nil
}

func (r *PostgresRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Project, error) {
	if !isUUID(userID) {
		return []*models.Project{}, nil
	}

	const selectProjectsByUserIDQuery = `
SELECT ` + projectColumns + `
FROM projects
WHERE user_id = $1
ORDER BY created_at
`
	rows, err := r.pgPool.Query(ctx, selectProjectsByUserIDQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects by user id: %w", err)
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return projects, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, projectID string) error {
	if !isUUID(projectID) {
		return ErrProjectNotFound
	}

	const deleteProjectQuery = `
DELETE FROM projects
WHERE id = $1
`
	tag, err := r.pgPool.Exec(ctx, deleteProjectQuery, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *PostgresRepository) Mutate(ctx context.Context, projectID string, fn MutateFunc) (*models.Project, error) {
	if !isUUID(projectID) {
		return nil, ErrProjectNotFound
	}

	tx, err := r.pgPool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const selectProjectForUpdateQuery = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1
FOR UPDATE
`
	project, err := scanProject(tx.QueryRow(ctx, selectProjectForUpdateQuery, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to select project for update: %w", err)
	}

	err = fn(project)
	if err != nil {
		return nil, err
	}

	tasks, err := encodeTasks(project.Tasks)
	if err != nil {
		return nil, err
	}
	project.UpdatedAt = time.Now()

	const updateProjectTasksQuery = `
UPDATE projects
SET tasks = $1::jsonb,
    updated_at = $2
WHERE id = $3
`
	_, err = tx.Exec(ctx, updateProjectTasksQuery, tasks, project.UpdatedAt, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update project tasks: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return project, nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var (
		project models.Project
		tasks   []byte
	)
	err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.Name,
		&project.Type,
		&project.Duration.Value,
		&project.Duration.Unit,
		&project.Description,
		&tasks,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.Tasks, err = decodeTasks(tasks)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Ids are UUID columns; anything else can never match a row.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
