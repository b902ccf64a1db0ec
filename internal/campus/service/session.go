package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/metrics"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// SessionService owns the server-side half of a login: the session record
// and the token that points at it.
type SessionService struct {
	Store store.Store
	Codec *jwtx.Codec

	// TTL is the token lifetime. It is used as given, so a zero TTL issues
	// tokens that are already expired.
	TTL time.Duration
}

// Create allocates a session for userID and signs a token referencing it.
func (s *SessionService) Create(ctx context.Context, userID int64) (string, domain.Session, error) {
	sess, err := s.Store.Sessions().CreateSession(ctx, userID)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("create session: %w", err)
	}

	token, err := s.Codec.Sign(jwtx.Payload{UserID: userID, SessionID: sess.ID}, s.TTL)
	if err != nil {
		// A session without a token can never be used, drop it again.
		_, _ = s.Store.Sessions().DeleteSession(ctx, sess.ID)
		return "", domain.Session{}, fmt.Errorf("sign token: %w", err)
	}

	metrics.SessionOpened()
	slogx.FromContext(ctx).Debug("session created",
		slog.Int64("user_id", userID),
		slog.Int64("session_id", sess.ID),
	)
	return token, sess, nil
}

func (s *SessionService) Get(ctx context.Context, id int64) (domain.Session, error) {
	return s.Store.Sessions().GetSession(ctx, id)
}

// Invalidate removes the session. Invalidating a missing session succeeds.
func (s *SessionService) Invalidate(ctx context.Context, id int64) error {
	deleted, err := s.Store.Sessions().DeleteSession(ctx, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted {
		metrics.SessionClosed()
	}
	return nil
}
