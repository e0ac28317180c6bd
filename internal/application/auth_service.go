package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/internal/domain/entity"
	repo "github.com/oksasatya/starwars-api/internal/domain/repository"
	"github.com/oksasatya/starwars-api/pkg/helpers"
)

const msgBadCredentials = "Bad username or password"

// AuthService issues and verifies bearer tokens. Tokens are stateless; the
// identity claim is the user's email.
type AuthService struct {
	UoW    repo.UnitOfWork
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(uow repo.UnitOfWork, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{UoW: uow, JWT: jwt, Logger: logger}
}

// LoginResponse is the body returned by POST /login.
type LoginResponse struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
}

// IssueToken validates email/password and signs a token for the email.
func (s *AuthService) IssueToken(ctx context.Context, email, password string) (*LoginResponse, error) {
	var user *entity.User
	err := s.UoW.Do(ctx, func(r repo.Repositories) error {
		u, err := r.Users.GetByEmail(ctx, email)
		if errors.Is(err, repo.ErrNotFound) {
			return newError(ErrInvalidCredentials, msgBadCredentials)
		}
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !user.IsActive || !helpers.CompareHashAndPassword(user.Password, password) {
		return nil, newError(ErrInvalidCredentials, msgBadCredentials)
	}

	token, _, err := s.JWT.GenerateAccessToken(user.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", user.ID).Error("generate access token failed")
		}
		return nil, err
	}
	return &LoginResponse{Token: token, Identity: user.Email}, nil
}

// VerifyToken returns the identity claim of a valid token.
func (s *AuthService) VerifyToken(token string) (string, error) {
	if token == "" {
		return "", newError(ErrUnauthorized, "missing access token")
	}
	claims, err := s.JWT.ParseAccessToken(token)
	if err != nil {
		return "", newError(ErrUnauthorized, "invalid access token")
	}
	return claims.Identity(), nil
}

// resolveIdentity re-reads the user behind an identity claim. It runs on
// every gated call because the user may have changed since the token was
// issued.
func resolveIdentity(ctx context.Context, r repo.Repositories, email string) (*entity.User, error) {
	u, err := r.Users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, newError(ErrUnauthorized, "user not found")
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, newError(ErrUnauthorized, "user is inactive")
	}
	return u, nil
}
