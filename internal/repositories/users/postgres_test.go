package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-projects/internal/models"
)

const (
	insertUserPattern    = `(?s)^\s*INSERT\s+INTO\s+users\s*\(id,\s*name,\s*email,\s*password_hash,\s*country,\s*created_at,\s*updated_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)\s*$`
	selectByEmailPattern = `(?s)^\s*SELECT\s+id,\s*name,\s*password_hash,\s*country,\s*created_at,\s*updated_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	existsPattern        = `(?s)^\s*SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+name\s*=\s*\$1\s+OR\s+email\s*=\s*\$2\)\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewPostgresRepository(mock), mock
}

func testUser() *models.User {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return &models.User{
		ID:           "8c0a4b8e-6c1e-4d55-9a4a-0f6b3c1d2e3f",
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$hash",
		Country:      "Norway",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPostgresRepository_Create(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	u := testUser()

	mock.ExpectExec(insertUserPattern).
		WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.Country, u.CreatedAt, u.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), u))
}

func TestPostgresRepository_CreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{
			name:    "unique violation",
			dbErr:   &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantErr: ErrUserExists,
		},
		{
			name:  "other failure",
			dbErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			u := testUser()

			mock.ExpectExec(insertUserPattern).
				WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.Country, u.CreatedAt, u.UpdatedAt).
				WillReturnError(tt.dbErr)

			err := repo.Create(context.Background(), u)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.ErrorIs(t, err, tt.dbErr)
			assert.NotErrorIs(t, err, ErrUserExists)
			assert.Contains(t, err.Error(), "failed to insert user")
		})
	}
}

func TestPostgresRepository_GetByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	want := testUser()

	rows := pgxmock.NewRows([]string{"id", "name", "password_hash", "country", "created_at", "updated_at"}).
		AddRow(want.ID, want.Name, want.PasswordHash, want.Country, want.CreatedAt, want.UpdatedAt)
	mock.ExpectQuery(selectByEmailPattern).
		WithArgs(want.Email).
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), want.Email)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostgresRepository_GetByEmailNotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectByEmailPattern).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostgresRepository_ExistsByNameOrEmail(t *testing.T) {
	for _, exists := range []bool{true, false} {
		repo, mock := newRepoWithMock(t)

		mock.ExpectQuery(existsPattern).
			WithArgs("alice", "alice@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(exists))

		got, err := repo.ExistsByNameOrEmail(context.Background(), "alice", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, exists, got)
	}
}

func TestPostgresRepository_ExistsByNameOrEmailError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(existsPattern).
		WithArgs("alice", "alice@example.com").
		WillReturnError(errors.New("timeout"))

	_, err := repo.ExistsByNameOrEmail(context.Background(), "alice", "alice@example.com")
	assert.ErrorContains(t, err, "failed to check user existence")
}
