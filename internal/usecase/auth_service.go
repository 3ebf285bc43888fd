package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/joehodgson0/teamhub/internal/domain/user"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
)

// RegisterInput is the incoming payload for account creation.
type RegisterInput struct {
	Email    string
	Password string
	Roles    []string
}

type AuthService struct {
	userRepo user.Repository
	idGen    idgen.Generator
	logger   *logging.Logger
}

func NewAuthService(userRepo user.Repository, idGen idgen.Generator, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		userRepo: userRepo,
		idGen:    idGen,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return user.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(input.Password) < 8 {
		return user.User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if len(input.Roles) == 0 {
		return user.User{}, fmt.Errorf("%w: at least one role is required", ErrInvalidInput)
	}

	roles := make([]user.Role, 0, len(input.Roles))
	seen := make(map[user.Role]struct{}, len(input.Roles))
	for _, raw := range input.Roles {
		role := user.Role(strings.ToLower(strings.TrimSpace(raw)))
		if _, ok := user.AllRoles[role]; !ok {
			return user.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, raw)
		}
		if _, dup := seen[role]; dup {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}

	if _, exists, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: email already registered", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	u := user.User{
		ID:           userID,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        roles,
	}
	if err := u.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", u.ID, "roles", roles)

	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return user.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists || u.PasswordHash == "" {
		return user.User{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return u, nil
}

// GetUser loads the account behind a session. Session cookies carry only the
// user ID; the record is re-fetched per request so role and membership
// changes take effect immediately.
func (s *AuthService) GetUser(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.GetUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}

	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrUnauthorized, userID)
	}

	return u, nil
}
