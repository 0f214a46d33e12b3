package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/triquetrx/auth-microservice-sbm/internal/auth/domain UserRepository

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/triquetrx/auth-microservice-sbm/config"
	"github.com/triquetrx/auth-microservice-sbm/internal/auth/domain"
	"github.com/triquetrx/auth-microservice-sbm/internal/auth/dto"
	autherror "github.com/triquetrx/auth-microservice-sbm/internal/errors"
	"github.com/triquetrx/auth-microservice-sbm/pkg/constant"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenCodec
	cfg    *config.Config
	logger *slog.Logger
}

func NewUserService(repo domain.UserRepository, tokens TokenCodec, cfg *config.Config, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		repo:   repo,
		tokens: tokens,
		cfg:    cfg,
		logger: logger,
	}
}

// Authenticate verifies the email/password pair. Unknown users and wrong
// passwords both collapse to ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if !user.Active {
		s.logger.Warn("login rejected for disabled account", "email", email)
		return nil, autherror.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("login failed", "email", email)
		return nil, autherror.ErrInvalidCredentials
	}

	return &domain.Identity{
		Email: user.Email,
		Name:  user.Name,
		Roles: domain.ParseRoles(user.Role),
	}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.AuthenticationRequest) (*dto.AuthenticationResponse, error) {
	identity, err := s.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(identity.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthenticationResponse{
		Token: token,
		Name:  identity.Name,
	}, nil
}

func (s *UserService) Register(ctx context.Context, input dto.NewUserInput) (*domain.User, error) {
	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost())
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = constant.DefaultRole
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		Role:         role,
		Active:       input.Active,
		SecurityKey:  input.SecurityKey,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the old password against the stored hash before
// writing the new one. A mismatch never mutates the record.
func (s *UserService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", autherror.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return "", autherror.ErrPasswordNotAMatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost())
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdatePassword(ctx, email, string(hashedPassword)); err != nil {
		return "", err
	}

	s.logger.Info("password changed", "email", email)

	return constant.MsgPasswordChanged, nil
}

// CheckPassword reports whether the candidate matches the stored hash. It
// never mutates state; a mismatch is a plain false, not an error.
func (s *UserService) CheckPassword(ctx context.Context, email, candidate string) (bool, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, autherror.ErrUserNotFound
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil, nil
}

// ForgotPassword is the out-of-band recovery path: no session required, the
// per-user security key authorizes the reset.
func (s *UserService) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) (string, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", autherror.ErrUserNotFound
	}

	if subtle.ConstantTimeCompare([]byte(user.SecurityKey), []byte(input.SecurityKey)) != 1 {
		s.logger.Warn("password reset rejected", "email", input.Email)
		return "", autherror.ErrInvalidSecurityKey
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.bcryptCost())
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdatePassword(ctx, input.Email, string(hashedPassword)); err != nil {
		return "", err
	}

	s.logger.Info("password reset", "email", input.Email)

	return constant.MsgPasswordReset, nil
}

// UpdateUser merges the input into the target record. Non-admin callers can
// only update themselves: the target email is forced to their own identity.
func (s *UserService) UpdateUser(ctx context.Context, caller *domain.Identity, input dto.NewUserInput) (string, error) {
	if !caller.Roles.Has(constant.RoleAdmin) {
		input.Email = caller.Email
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", autherror.ErrUserNotFound
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.SecurityKey != "" {
		user.SecurityKey = input.SecurityKey
	}
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost())
		if err != nil {
			return "", err
		}
		user.PasswordHash = string(hashedPassword)
	}
	user.Active = input.Active
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info("user updated", "email", user.Email)

	return constant.MsgUserUpdated, nil
}

func (s *UserService) bcryptCost() int {
	if s.cfg != nil && s.cfg.BcryptCost != 0 {
		return s.cfg.BcryptCost
	}
	return bcrypt.DefaultCost
}
