package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cemunal/contenthub/internal/config"
	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/repository"
)

// UserService orchestrates user registration, lookup, authentication and
// logical deletion. Every mutating call runs one transaction covering the
// uniqueness checks and the single write.
type UserService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	scope  repository.Scope
	cfg    *config.Config
}

func NewUserService(users repository.UserRepository, hasher PasswordHasher, scope repository.Scope, cfg *config.Config) *UserService {
	return &UserService{users: users, hasher: hasher, scope: scope, cfg: cfg}
}

// CreateUser validates the candidate, checks username then email for
// duplicates (in that order, short-circuiting), hashes the password and
// persists exactly one new record. The hasher is never invoked on a
// failed validation path.
func (s *UserService) CreateUser(ctx context.Context, candidate *models.User) (*models.User, error) {
	if candidate.Role == "" {
		candidate.Role = models.RoleAuthor
	}
	candidate.Active = true

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return repository.InScope(ctx, s.scope, func(ctx context.Context) (*models.User, error) {
		taken, err := s.users.ExistsByUsername(ctx, candidate.Username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if taken {
			return nil, &DuplicateError{Field: "username", Value: candidate.Username}
		}

		taken, err = s.users.ExistsByEmail(ctx, candidate.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, &DuplicateError{Field: "email", Value: candidate.Email}
		}

		digest, err := s.hasher.Hash(candidate.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		candidate.ID = uuid.New()
		candidate.Password = digest

		return s.users.Save(ctx, candidate)
	})
}

// FindByID returns nil for unknown ids, never an error.
func (s *UserService) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// FindByUsername is an exact, case-sensitive lookup.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) ListActiveUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindActive(ctx)
}

func (s *UserService) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return s.users.FindByRole(ctx, role)
}

// DeactivateUser performs the logical delete: it persists a copy of the
// user with Active=false. Fails when the id does not resolve.
func (s *UserService) DeactivateUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return repository.InScope(ctx, s.scope, func(ctx context.Context) (*models.User, error) {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		deactivated := user.Deactivated()
		return s.users.Save(ctx, &deactivated)
	})
}

// Authenticate verifies the password digest and issues a signed HS256
// access token for active users.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !s.hasher.Verify(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}
	if !user.Active {
		return "", nil, ErrUserInactive
	}

	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, user, nil
}
