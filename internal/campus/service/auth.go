package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/metrics"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type AuthService struct {
	Store    store.Store
	Codec    *jwtx.Codec
	Sessions *SessionService
}

// Login checks the password of the user registered under email and opens a
// session for them.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.RecordLogin(false)
			l.Info("login rejected", slog.String("reason", ErrUserNotFound.Reason))
			return domain.LoginResult{}, ErrUserNotFound
		}
		return domain.LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}

	cred := cryptox.Credential{Salt: user.Salt, PasswordHash: user.PasswordHash}
	if !cryptox.VerifyPassword(password, cred) {
		metrics.RecordLogin(false)
		l.Info("login rejected",
			slog.Int64("user_id", user.ID),
			slog.String("reason", ErrBadLogin.Reason),
		)
		return domain.LoginResult{}, ErrBadLogin
	}

	token, sess, err := s.Sessions.Create(ctx, user.ID)
	if err != nil {
		l.Error("failed to create session", slog.Int64("user_id", user.ID), slog.Any("error", err))
		return domain.LoginResult{}, err
	}

	metrics.RecordLogin(true)
	l.Info("login succeeded",
		slog.Int64("user_id", user.ID),
		slog.Int64("session_id", sess.ID),
	)
	return domain.LoginResult{Token: token, User: user.Public()}, nil
}

// Logout ends the principal's session.
func (s *AuthService) Logout(ctx context.Context, p domain.Principal) (bool, error) {
	if err := s.Sessions.Invalidate(ctx, p.SessionID); err != nil {
		return false, err
	}
	slogx.FromContext(ctx).Info("logout",
		slog.Int64("user_id", p.User.ID),
		slog.Int64("session_id", p.SessionID),
	)
	return true, nil
}

// Authenticate resolves token into a principal whose role is one of allowed.
// An empty allowed list admits every role.
//
// Failures are reported in a fixed order: missing token, expired token, bad
// token, unknown session, unknown user, then role.
func (s *AuthService) Authenticate(ctx context.Context, token string, allowed ...domain.Role) (domain.Principal, error) {
	p, err := s.authenticate(ctx, token, allowed)
	if err != nil {
		if reason := Reason(err); reason != "" {
			metrics.RecordAuthRejection(reason)
		}
		return domain.Principal{}, err
	}
	return p, nil
}

func (s *AuthService) authenticate(ctx context.Context, token string, allowed []domain.Role) (domain.Principal, error) {
	l := slogx.FromContext(ctx)

	if token == "" {
		return domain.Principal{}, ErrTokenRequired
	}

	payload, err := s.Codec.Verify(token)
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		s.dropExpired(ctx, token)
		return domain.Principal{}, ErrSessionExpired
	case err != nil:
		l.Debug("token rejected", slog.Any("error", err))
		return domain.Principal{}, ErrBadToken
	}

	sess, err := s.Sessions.Get(ctx, payload.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Principal{}, ErrInvalidSession
		}
		return domain.Principal{}, fmt.Errorf("lookup session: %w", err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Principal{}, ErrInvalidTokenOrUser
		}
		return domain.Principal{}, fmt.Errorf("lookup user: %w", err)
	}
	if sess.UserID != user.ID {
		l.Warn("session belongs to another user",
			slog.Int64("session_id", sess.ID),
			slog.Int64("user_id", user.ID),
		)
		return domain.Principal{}, ErrInvalidTokenOrUser
	}

	if len(allowed) > 0 && !slices.Contains(allowed, user.Role) {
		l.Info("operation not permitted",
			slog.Int64("user_id", user.ID),
			slog.String("role", user.Role.String()),
		)
		return domain.Principal{}, ErrNotPermitted
	}

	return domain.Principal{User: user.Public(), SessionID: sess.ID}, nil
}

// dropExpired removes the session an expired token points at. Failures are
// logged and otherwise ignored since the caller is rejected either way.
func (s *AuthService) dropExpired(ctx context.Context, token string) {
	l := slogx.FromContext(ctx)

	payload, err := s.Codec.Decode(token)
	if err != nil {
		l.Debug("could not decode expired token", slog.Any("error", err))
		return
	}
	if err := s.Sessions.Invalidate(ctx, payload.SessionID); err != nil {
		l.Debug("could not drop expired session",
			slog.Int64("session_id", payload.SessionID),
			slog.Any("error", err),
		)
		return
	}
	l.Debug("expired session dropped", slog.Int64("session_id", payload.SessionID))
}
