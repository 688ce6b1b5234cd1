package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"petnutricare/internal/model"
	"petnutricare/internal/repository"
	"petnutricare/internal/session"
	"petnutricare/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName, role string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Profile(ctx context.Context, token string) (*model.User, error)
	Logout(token string)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type authService struct {
	users      repository.UserRepository
	sessions   *session.Registry
	adminEmail string
	log        *slog.Logger
}

// NewAuthService creates a new AuthService. adminEmail, when non-empty,
// promotes a registration with that email to ADMIN.
func NewAuthService(users repository.UserRepository, sessions *session.Registry, adminEmail string, log *slog.Logger) AuthService {
	return &authService{
		users:      users,
		sessions:   sessions,
		adminEmail: adminEmail,
		log:        log,
	}
}

// Register creates a new user account and opens a session for it. Duplicate
// emails are rejected by the store itself rather than a read-then-write
// existence check, so concurrent registrations cannot both succeed.
func (s *authService) Register(ctx context.Context, email, password, firstName, lastName, role string) (*model.User, string, error) {
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return nil, "", ErrInvalidRole
	}

	if s.adminEmail != "" && email == s.adminEmail {
		role = model.RoleAdmin
		s.log.Info("registering initial admin account", "email", email)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		s.log.Error("user created but session could not be issued", "user_id", user.ID, "error", err)
		return nil, "", fmt.Errorf("user created, but failed to issue session: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and opens a session. Unknown emails, wrong
// passwords, and inactive accounts all produce the same error so the
// response doesn't leak account state.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session: %w", err)
	}

	return user, token, nil
}

// Profile resolves a bearer token to its user record. The record can be
// missing even for a live session if the store was swapped mid-session.
func (s *authService) Profile(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.sessions.Resolve(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error finding user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Logout revokes the token's session. Idempotent; unknown tokens are a no-op.
func (s *authService) Logout(token string) {
	s.sessions.Revoke(token)
}

// ListUsers returns all user records. Callers are expected to gate this
// behind the ADMIN role and to serve only the public view.
func (s *authService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
