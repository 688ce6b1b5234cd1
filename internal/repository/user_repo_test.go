package repository

import (
	"context"
	"testing"
	"time"

	"petnutricare/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "role", "is_active", "created_at"}

func TestPostgresRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresUserRepository(mock)
	user := newTestUser("u1", "a@b.com")

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
			user.Role, user.IsActive, user.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_CreateDuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresUserRepository(mock)
	user := newTestUser("u1", "a@b.com")

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
			user.Role, user.IsActive, user.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	assert.ErrorIs(t, repo.Create(context.Background(), user), ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_FindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresUserRepository(mock)
	created := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@b.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("u1", "a@b.com", "hash", "First", "Last", model.RoleUser, true, created))

	user, err := repo.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_FindByEmailNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("missing@b.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "missing@b.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_FindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("u1", "a@b.com", "hash", "First", "Last", model.RoleAdmin, true, time.Now()))

	user, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresUserRepository(mock)
	created := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY created_at").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("u1", "a@b.com", "hash", "First", "Last", model.RoleUser, true, created).
			AddRow("u2", "c@d.com", "hash", "Second", "Last", model.RoleVeterinarian, false, created))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[1].ID)
	assert.False(t, users[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_FindByEmailQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@b.com").
		WillReturnError(assert.AnError)

	user, err := repo.FindByEmail(context.Background(), "a@b.com")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
