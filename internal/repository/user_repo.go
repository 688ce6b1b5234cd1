package repository

import (
	"context"
	"errors"
	"fmt"

	"petnutricare/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrEmailTaken is returned by Create when the email is already registered.
// It is a definitive answer from the store, not an availability failure.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// DB is the subset of pgxpool.Pool used by the postgres repository. pgxmock
// satisfies it too, which is what the repository tests run against.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresUserRepository struct {
	db DB
}

// NewPostgresUserRepository creates a UserRepository backed by PostgreSQL.
func NewPostgresUserRepository(db DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// Create inserts a new user. The unique index on email makes this an atomic
// insert-if-absent; a unique violation maps to ErrEmailTaken.
func (r *postgresUserRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_active, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, sql,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.IsActive, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email. Not found is (nil, nil); the
// service layer decides what that means.
func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, email, password_hash, first_name, last_name, role, is_active, created_at
            FROM users WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Role, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, email, password_hash, first_name, last_name, role, is_active, created_at
            FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Role, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// List returns all users ordered by creation time.
func (r *postgresUserRepository) List(ctx context.Context) ([]model.User, error) {
	sql := `SELECT id, email, password_hash, first_name, last_name, role, is_active, created_at
            FROM users ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
			&user.Role, &user.IsActive, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}
