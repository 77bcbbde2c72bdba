package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

type fakeRepo struct {
	token    string
	loadErr  error
	replaced []string
	cleared  int
}

func (f *fakeRepo) Load(_ context.Context) (string, error) { return f.token, f.loadErr }

func (f *fakeRepo) Replace(_ context.Context, token string) error {
	f.token = token
	f.replaced = append(f.replaced, token)
	return nil
}

func (f *fakeRepo) Clear(_ context.Context) error {
	f.token = ""
	f.cleared++
	return nil
}

type fakeNavigator struct {
	navigated int
}

func (f *fakeNavigator) NavigateLogin(_ context.Context) { f.navigated++ }

func validToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username":       "jdoe",
		"can_get_vendor": true,
		"exp":            time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLoginAndLogout(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	s := New(repo, &fakeNavigator{}, logging.NewNop())

	token := validToken(t)
	principal, err := s.Login(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "jdoe", principal.Username)
	require.True(t, s.IsAuthenticated())
	require.Equal(t, token, s.Token())
	require.Equal(t, []string{token}, repo.replaced)

	require.NoError(t, s.Logout(ctx))
	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.Principal())
	require.Equal(t, 1, repo.cleared)
}

func TestLogin_BadToken(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo, &fakeNavigator{}, logging.NewNop())

	_, err := s.Login(context.Background(), "garbage")
	require.Error(t, err)
	require.False(t, s.IsAuthenticated())
	require.Empty(t, repo.replaced)
}

func TestResume(t *testing.T) {
	ctx := context.Background()
	token := validToken(t)
	repo := &fakeRepo{token: token}
	s := New(repo, &fakeNavigator{}, logging.NewNop())

	require.NoError(t, s.Resume(ctx))
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "jdoe", s.Principal().Username)
}

func TestResume_EmptyStore(t *testing.T) {
	s := New(&fakeRepo{}, &fakeNavigator{}, logging.NewNop())
	require.NoError(t, s.Resume(context.Background()))
	require.False(t, s.IsAuthenticated())
}

func TestResume_UnusableTokenCleared(t *testing.T) {
	repo := &fakeRepo{token: "rotten"}
	s := New(repo, &fakeNavigator{}, logging.NewNop())

	require.NoError(t, s.Resume(context.Background()))
	require.False(t, s.IsAuthenticated())
	require.Equal(t, 1, repo.cleared)
}

func TestResume_RepoError(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("disk gone")}
	s := New(repo, &fakeNavigator{}, logging.NewNop())
	require.Error(t, s.Resume(context.Background()))
}

func TestHandleAuthReject(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	nav := &fakeNavigator{}
	s := New(repo, nav, logging.NewNop())

	_, err := s.Login(ctx, validToken(t))
	require.NoError(t, err)

	s.HandleAuthReject(ctx)
	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.Principal())
	require.Equal(t, 1, repo.cleared)
	require.Equal(t, 1, nav.navigated)
}
