// Package service holds the auth/session core: credential check, token
// issue/verify, and the safe user projection sent to clients.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/cmyzu/campus-backend/internal/events"
	"github.com/cmyzu/campus-backend/internal/models"
	"github.com/cmyzu/campus-backend/internal/repo"
	"github.com/cmyzu/campus-backend/pkg/hash"
	"github.com/cmyzu/campus-backend/pkg/logging"
	"github.com/cmyzu/campus-backend/pkg/tokens"
)

// ErrInvalidCredentials covers unknown email, inactive account and wrong
// password alike. Callers must not be able to tell these apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized means the claim's subject no longer resolves to an
// active user.
var ErrUnauthorized = errors.New("unauthorized")

// SafeUser is the only user representation that leaves the service.
type SafeUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func safeView(u *models.User) SafeUser {
	return SafeUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

type AuthService struct {
	Repo   *repo.GormRepo
	Secret []byte
	Events events.Publisher
}

type SessionResult struct {
	Token string
	User  SafeUser
}

// IssueSession maps credentials to a signed 7-day session token plus the
// safe user view. Every failure path except a database error collapses
// into ErrInvalidCredentials.
func (s *AuthService) IssueSession(ctx context.Context, email, password string) (*SessionResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.issue_session")

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "reason", "user lookup", "error", err)
		return nil, err
	}
	if !user.Active {
		l.Warn("login_failed", "reason", "inactive account")
		return nil, ErrInvalidCredentials
	}
	if !hash.Check(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "wrong password")
		return nil, ErrInvalidCredentials
	}

	token, err := tokens.SignSession(user.ID, user.Email, user.Role, s.Secret)
	if err != nil {
		l.Error("login_failed", "reason", "token signing", "error", err)
		return nil, err
	}

	s.publish(ctx, "user_logged_in", user.ID)
	l.Info("login_successful", "user_id", user.ID)
	return &SessionResult{Token: token, User: safeView(user)}, nil
}

// VerifySession checks signature and expiry only; the database is not
// consulted.
func (s *AuthService) VerifySession(token string) (*tokens.SessionClaims, error) {
	return tokens.SessionClaimsFromToken(token, s.Secret)
}

// RefreshUser re-reads the claim's subject to pick up role changes or
// deactivation since the token was issued.
func (s *AuthService) RefreshUser(ctx context.Context, claims *tokens.SessionClaims) (*SafeUser, error) {
	user, err := s.Repo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !user.Active {
		return nil, ErrUnauthorized
	}
	view := safeView(user)
	return &view, nil
}

// EndSession is stateless logout: the token stays cryptographically valid
// until expiry, destruction is the client discarding it. Verification is
// best-effort for the audit event only.
func (s *AuthService) EndSession(ctx context.Context, token string) {
	if claims, err := s.VerifySession(token); err == nil {
		s.publish(ctx, "user_logged_out", claims.Subject)
	}
}

func (s *AuthService) publish(ctx context.Context, eventType, userID string) {
	if s.Events == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err := s.Events.Publish(pubCtx, events.TopicAuth, userID, map[string]any{
		"type":    eventType,
		"user_id": userID,
	})
	if err != nil {
		logging.FromContext(ctx).Error("event publish failed", "type", eventType, "error", err)
	}
}
