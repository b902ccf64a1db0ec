package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// CreateUser registers a user with a freshly salted credential. The returned
// user has its credential fields cleared.
func (s *UserService) CreateUser(ctx context.Context, req domain.NewUser) (domain.User, error) {
	if !req.Role.Valid() {
		return domain.User{}, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}

	cred, err := cryptox.NewCredential(req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("derive credential: %w", err)
	}

	u, err := s.Store.Users().CreateUser(ctx, domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Salt:         cred.Salt,
		PasswordHash: cred.PasswordHash,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user created",
		slog.Int64("user_id", u.ID),
		slog.String("role", u.Role.String()),
	)
	return u.Public(), nil
}

// GetUserByID returns nil when there is no such user.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return nilOnNotFound[domain.User](err)
	}
	pub := u.Public()
	return &pub, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	return publicUsers(users), err
}

func (s *UserService) ListUsersByRole(ctx context.Context, r domain.Role) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsersByRole(ctx, r)
	return publicUsers(users), err
}

// FindUser returns the first user with role r whose email equals email or
// whose id equals id. A nil criterion never matches. Returns nil when nobody
// matches.
func (s *UserService) FindUser(ctx context.Context, r domain.Role, email *string, id *int64) (*domain.User, error) {
	users, err := s.Store.Users().ListUsersByRole(ctx, r)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if (email != nil && u.Email == *email) || (id != nil && u.ID == *id) {
			pub := u.Public()
			return &pub, nil
		}
	}
	return nil, nil
}

// userWithRole loads id and checks it holds role r. Returns nil, nil when the
// user is missing or has another role.
func userWithRole(ctx context.Context, st store.Store, id int64, r domain.Role) (*domain.User, error) {
	u, err := st.Users().GetUserByID(ctx, id)
	if err != nil {
		return nilOnNotFound[domain.User](err)
	}
	if u.Role != r {
		return nil, nil
	}
	pub := u.Public()
	return &pub, nil
}

func publicUsers(users []domain.User) []domain.User {
	for i := range users {
		users[i] = users[i].Public()
	}
	return users
}

// nilOnNotFound turns a store miss into an absent result and passes any other
// error through.
func nilOnNotFound[T any](err error) (*T, error) {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrAlreadyExists) {
		return nil, nil
	}
	return nil, err
}
