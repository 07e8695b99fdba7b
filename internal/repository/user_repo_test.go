package repository

import (
	"context"
	"testing"
	"time"

	"car_market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	newID := uuid.New()
	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(newID, createdAt))

	repo := NewUserRepository(mock)
	user := &model.User{Username: "alice", PasswordHash: "hashed"}

	err = repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)
	assert.Equal(t, createdAt, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	repo := NewUserRepository(mock)
	user := &model.User{Username: "alice", PasswordHash: "hashed"}

	err = repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userID := uuid.New()
	createdAt := time.Now()
	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(userID, "alice", "hashed", createdAt))

	repo := NewUserRepository(mock)

	user, err := repo.FindByUsername(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users").
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)

	user, err := repo.FindByUsername(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
