package memory

import (
	"context"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type sessionsRepo struct {
	s *Store
}

func (r *sessionsRepo) CreateSession(ctx context.Context, userID int64) (domain.Session, error) {
	var sess domain.Session
	err := r.s.write(ctx, func() error {
		sess = domain.Session{
			ID:        r.s.nextSessionID,
			UserID:    userID,
			CreatedAt: r.s.now().UTC(),
		}
		r.s.nextSessionID++
		r.s.sessions[sess.ID] = sess
		return nil
	})
	return sess, err
}

func (r *sessionsRepo) GetSession(ctx context.Context, id int64) (domain.Session, error) {
	var sess domain.Session
	err := r.s.read(ctx, func() error {
		found, ok := r.s.sessions[id]
		if !ok {
			return store.ErrNotFound
		}
		sess = found
		return nil
	})
	return sess, err
}

// DeleteSession removes the entry keyed by id. Keys are unique, so this can
// never drop a different session.
func (r *sessionsRepo) DeleteSession(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.s.write(ctx, func() error {
		_, deleted = r.s.sessions[id]
		delete(r.s.sessions, id)
		return nil
	})
	return deleted, err
}
