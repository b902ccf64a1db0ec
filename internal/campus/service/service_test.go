package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/memory"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store       *memory.Store
	codec       *jwtx.Codec
	sessions    *SessionService
	auth        *AuthService
	users       *UserService
	courses     *CourseService
	assignments *AssignmentService
	grades      *GradeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := memory.NewStore()
	t.Cleanup(func() { _ = st.Close() })

	codec, err := jwtx.NewCodec([]byte("test-secret-for-service-tests"), "campus-test")
	require.NoError(t, err)

	sessions := &SessionService{Store: st, Codec: codec, TTL: jwtx.DefaultTokenTTL}
	return &testEnv{
		store:       st,
		codec:       codec,
		sessions:    sessions,
		auth:        &AuthService{Store: st, Codec: codec, Sessions: sessions},
		users:       &UserService{Store: st},
		courses:     &CourseService{Store: st},
		assignments: &AssignmentService{Store: st},
		grades:      &GradeService{Store: st},
	}
}

func (e *testEnv) mustCreateUser(t *testing.T, name string, role domain.Role, password string) domain.User {
	t.Helper()
	u, err := e.users.CreateUser(context.Background(), domain.NewUser{
		Name:     name,
		Email:    name + "@campus.test",
		Role:     role,
		Password: password,
	})
	require.NoError(t, err)
	return u
}

func (e *testEnv) mustLogin(t *testing.T, email, password string) domain.LoginResult {
	t.Helper()
	res, err := e.auth.Login(context.Background(), email, password)
	require.NoError(t, err)
	return res
}
