package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alclearn/admin-console/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// signedToken mints a token expiring at exp. The guard never checks the
// signature, so any secret works.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return signed
}

func TestGuardDeniesWithoutSession(t *testing.T) {
	store := newTestStore(t)
	assert.False(t, NewGuard(store).Allow())
}

func TestGuardAllowsValidToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(Session{
		AccessToken: signedToken(t, time.Now().Add(time.Hour)),
	}))

	assert.True(t, NewGuard(store).Allow())

	// The session survived the check.
	_, ok := store.Current()
	assert.True(t, ok)
}

func TestGuardDeniesAndClearsExpiredToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(Session{
		AccessToken: signedToken(t, time.Now().Add(-time.Minute)),
	}))

	assert.False(t, NewGuard(store).Allow())

	_, ok := store.Current()
	assert.False(t, ok, "expired token must be cleared")
}

func TestGuardDeniesAndClearsMalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "garbage"},
		{name: "two segments", token: "aaaa.bbbb"},
		{name: "undecodable payload", token: "aaaa.!!!!.cccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, store.Save(Session{AccessToken: tt.token}))

			assert.False(t, NewGuard(store).Allow())

			_, ok := store.Current()
			assert.False(t, ok)
		})
	}
}

func TestStoreSaveThenCurrent(t *testing.T) {
	store := newTestStore(t)

	sess := Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         model.User{ID: 3, Email: "admin@alc.example", IsStaff: true},
	}
	require.NoError(t, store.Save(sess))

	got, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, sess.AccessToken, got.AccessToken)
	assert.Equal(t, sess.RefreshToken, got.RefreshToken)
	assert.Equal(t, sess.User, got.User)
}

func TestStoreClearNotifiesSubscribers(t *testing.T) {
	store := newTestStore(t)

	notified := 0
	store.Subscribe(func() { notified++ })

	require.NoError(t, store.Save(Session{AccessToken: "x"}))
	require.NoError(t, store.Clear())

	assert.Equal(t, 2, notified)

	_, ok := store.Current()
	assert.False(t, ok)
}

func TestStoreImplementsTokenSource(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.AccessToken()
	assert.False(t, ok)

	require.NoError(t, store.Save(Session{AccessToken: "tok"}))
	token, ok := store.AccessToken()
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	store.Invalidate()
	_, ok = store.AccessToken()
	assert.False(t, ok)
}
