package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/triquetrx/auth-microservice-sbm/internal/auth/domain"
	"github.com/triquetrx/auth-microservice-sbm/internal/auth/dto"
	autherror "github.com/triquetrx/auth-microservice-sbm/internal/errors"
	"github.com/triquetrx/auth-microservice-sbm/pkg/constant"
)

// SessionService recovers an identity from a bearer token. Every call
// produces fresh values; nothing here is shared between requests.
type SessionService struct {
	repo   domain.UserRepository
	tokens TokenCodec
	logger *slog.Logger
}

func NewSessionService(repo domain.UserRepository, tokens TokenCodec, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Resolve strips the "Bearer " prefix, decodes the token and re-resolves the
// subject against the store. It returns the identity together with the raw
// token string for subsequent CheckCurrent calls.
func (s *SessionService) Resolve(ctx context.Context, authorizationHeader string) (*domain.Identity, string, error) {
	if !strings.HasPrefix(authorizationHeader, constant.BearerPrefix) {
		return nil, "", autherror.ErrInvalidToken
	}
	tokenString := authorizationHeader[len(constant.BearerPrefix):]

	claims, err := s.tokens.Decode(tokenString)
	if err != nil {
		if errors.Is(err, autherror.ErrTokenInvalidOrExpired) {
			return nil, "", autherror.ErrTokenInvalidOrExpired
		}
		return nil, "", autherror.ErrInvalidToken
	}

	user, err := s.repo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		s.logger.Warn("session lookup failed", "error", err)
		return nil, "", autherror.ErrInvalidToken
	}
	if user == nil || !user.Active {
		return nil, "", autherror.ErrInvalidToken
	}

	return &domain.Identity{
		Email: user.Email,
		Name:  user.Name,
		Roles: domain.ParseRoles(user.Role),
	}, tokenString, nil
}

// CheckCurrent reports whether the token is still valid for the identity.
func (s *SessionService) CheckCurrent(tokenString string, identity *domain.Identity) bool {
	return s.tokens.Validate(tokenString, identity.Email)
}

// ValidateSession is the full validate operation: resolve the bearer value,
// confirm the token is current and build the per-call result.
func (s *SessionService) ValidateSession(ctx context.Context, authorizationHeader string) (*dto.ValidationResult, error) {
	identity, tokenString, err := s.Resolve(ctx, authorizationHeader)
	if err != nil {
		return nil, err
	}

	if !s.CheckCurrent(tokenString, identity) {
		return nil, autherror.ErrTokenInvalidOrExpired
	}

	return &dto.ValidationResult{
		ValidStatus: true,
		UserRole:    identity.Roles.String(),
		Email:       identity.Email,
	}, nil
}
