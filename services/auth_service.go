//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"party-lab/auth"
	"party-lab/domain"
	"party-lab/errors"
	"party-lab/repositories"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (domain.Session, error)
	Login(ctx context.Context, req auth.LoginRequest) (Token, domain.Session, error)
	Profile(ctx context.Context) (domain.Session, error)
}

type Token string

func (t Token) String() string {
	return string(t)
}

type AuthService struct {
	userRepository repositories.IUserRepository
	issuer         *auth.TokenIssuer
	log            *slog.Logger
}

func NewAuthService(repo repositories.IUserRepository, issuer *auth.TokenIssuer, log *slog.Logger) IAuthService {
	return &AuthService{userRepository: repo, issuer: issuer, log: log}
}

// Register creates an account. The role defaults to player.
func (s *AuthService) Register(_ context.Context, req auth.RegisterRequest) (domain.Session, error) {
	// Validate before any expensive cryptographic operation.
	if err := auth.ValidateRegister(req); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RolePlayer
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	user, err := s.userRepository.CreateUser(req.Username, hashedPassword, role)
	if err != nil {
		return domain.Session{}, err
	}
	s.log.Info("User registered", "username", user.Username, "role", user.Role)
	return user.Session(), nil
}

// Login checks the credentials and issues a signed session token.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(_ context.Context, req auth.LoginRequest) (Token, domain.Session, error) {
	if err := auth.ValidateLogin(req); err != nil {
		return "", domain.Session{}, fmt.Errorf("%w: username and password required", errors.ErrInvalidInput)
	}

	user, err := s.userRepository.GetUserByUsername(req.Username)
	if err != nil {
		if !stderrors.Is(err, errors.ErrUserNotFound) {
			s.log.Warn("User lookup failed", "error", err)
		}
		return "", domain.Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		return "", domain.Session{}, errors.ErrInvalidCredentials
	}

	session := user.Session()
	token, err := s.issuer.Issue(session)
	if err != nil {
		return "", domain.Session{}, errors.ErrTokenGeneration
	}
	s.log.Debug("User logged in", "username", user.Username)
	return Token(token), session, nil
}

// Profile returns the caller as currently stored, so a role change is visible
// before the token expires.
func (s *AuthService) Profile(ctx context.Context) (domain.Session, error) {
	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		return domain.Session{}, errors.ErrUnauthenticated
	}
	user, err := s.userRepository.GetUserByUsername(session.Username)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		return domain.Session{}, errors.ErrUnauthenticated
	}
	if err != nil {
		return domain.Session{}, err
	}
	return user.Session(), nil
}
