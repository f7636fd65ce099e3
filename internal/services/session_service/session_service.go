package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"galleria/internal/domain/models"
	"galleria/internal/lib/logger/sl"
	"galleria/internal/lib/sessiontoken"
	"galleria/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrSessionExpired     = errors.New("session expired")
)

// SessionService gates the admin write path. There is exactly one
// configured administrator; a session is a signed token whose identity
// claim must match that administrator and which must still be
// registered (not logged out) and inside its validity window.
type SessionService struct {
	log           *slog.Logger
	sessions      repository.SessionRepository
	tokens        *sessiontoken.Manager
	adminEmail    string
	adminPassHash string
}

func New(
	log *slog.Logger,
	sessions repository.SessionRepository,
	tokens *sessiontoken.Manager,
	adminEmail, adminPassHash string,
) *SessionService {
	return &SessionService{
		log:           log,
		sessions:      sessions,
		tokens:        tokens,
		adminEmail:    adminEmail,
		adminPassHash: adminPassHash,
	}
}

// Login checks the credentials against the configured administrator and
// issues a fresh session token.
func (s *SessionService) Login(ctx context.Context, email, password string) (models.AdminSession, error) {
	const op = "session_service.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting admin login")

	if email != s.adminEmail {
		log.Warn("unknown administrator")
		return models.AdminSession{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPassHash), []byte(password)); err != nil {
		log.Warn("invalid credentials", sl.Err(err))
		return models.AdminSession{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	session, err := s.tokens.Issue(email)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return models.AdminSession{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.SaveSession(ctx, email, session.Token, s.tokens.TTL()); err != nil {
		log.Error("failed to register session", sl.Err(err))
		return models.AdminSession{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in")

	return session, nil
}

// Validate verifies a session token before any store access on the
// write path: signature, validity window, identity match and the token
// still being registered.
func (s *SessionService) Validate(ctx context.Context, token string) (string, error) {
	const op = "session_service.Validate"

	email, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, sessiontoken.ErrTokenExpired) {
			return "", fmt.Errorf("%s: %w", op, ErrSessionExpired)
		}
		return "", fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}

	if email != s.adminEmail {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}

	exists, err := s.sessions.SessionExists(ctx, email, token)
	if err != nil {
		s.log.Error("failed to check session registry", slog.String("op", op), sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}

	return email, nil
}

// Logout revokes one session token. Expired tokens are fine to logout.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	const op = "session_service.Logout"

	if err := s.sessions.DeleteSession(ctx, s.adminEmail, token); err != nil {
		s.log.Error("failed to delete session", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("admin logged out", slog.String("op", op))

	return nil
}

// LogoutAll revokes every outstanding session of the administrator.
func (s *SessionService) LogoutAll(ctx context.Context) error {
	const op = "session_service.LogoutAll"

	if err := s.sessions.DeleteAllSessions(ctx, s.adminEmail); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
