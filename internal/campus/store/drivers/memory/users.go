package memory

import (
	"context"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type usersRepo struct {
	s *Store
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	err := r.s.write(ctx, func() error {
		u.ID = r.s.nextUserID
		r.s.nextUserID++

		r.s.users[u.ID] = u
		if _, taken := r.s.usersByEmail[u.Email]; !taken {
			r.s.usersByEmail[u.Email] = u.ID
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := r.s.read(ctx, func() error {
		found, ok := r.s.users[id]
		if !ok {
			return store.ErrNotFound
		}
		u = found
		return nil
	})
	return u, err
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.s.read(ctx, func() error {
		id, ok := r.s.usersByEmail[email]
		if !ok {
			return store.ErrNotFound
		}
		u = r.s.users[id]
		return nil
	})
	return u, err
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := r.s.read(ctx, func() error {
		out = sortedByID(r.s.users, nil)
		return nil
	})
	return out, err
}

func (r *usersRepo) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	err := r.s.read(ctx, func() error {
		out = sortedByID(r.s.users, func(u domain.User) bool { return u.Role == role })
		return nil
	})
	return out, err
}
