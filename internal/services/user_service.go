package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"finance-control/internal/models"
	"finance-control/internal/repositories"
	"finance-control/internal/validation"
)

const MaxUserNameLength = 100

var (
	ErrUserNameRequired = fmt.Errorf("%w: name is required", models.ErrInvalidArgument)
	ErrUserNameTooLong  = fmt.Errorf("%w: name must not exceed %d characters", models.ErrInvalidArgument, MaxUserNameLength)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", models.ErrInvalidArgument)
)

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

type userService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	audit           AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &userService{
		userRepo:        userRepo,
		passwordService: passwordService,
		audit:           audit,
		metrics:         metrics,
		logger:          logger,
	}
}

// RegisterUser stores a new user with a bcrypt credential hash. Emails are
// compared case-insensitively.
func (s *userService) RegisterUser(ctx context.Context, input RegisterUserInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrUserNameRequired
	}
	if err := validation.CheckText(name, MaxUserNameLength, ErrUserNameTooLong); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !models.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	if err := s.passwordService.ValidatePassword(input.Password); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrWeakCredential, err)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check email", "error", err)
		return nil, models.Persistence("check email", err)
	}
	if exists {
		return nil, models.ErrEmailTaken
	}

	hash, err := s.passwordService.HashPassword(input.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash credential", "error", err)
		return nil, fmt.Errorf("%w: %w", models.ErrCredentialHashing, err)
	}

	user := &models.User{
		Name:           name,
		Email:          email,
		CredentialHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, models.ErrEmailTaken
		}
		s.logger.ErrorContext(ctx, "failed to create user", "error", err)
		return nil, models.Persistence("create user", err)
	}

	s.audit.LogUserRegistered(ctx, user.ID)
	s.metrics.IncrementCounter(MetricUserRegistered, nil)

	return user, nil
}
