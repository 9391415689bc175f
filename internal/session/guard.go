package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Guard decides whether a protected screen may render. It decodes the stored
// token's payload without checking the signature (the server is the trust
// boundary) and denies on a missing, expired, or structurally invalid token.
// Its only side effect is clearing an invalid or expired token.
type Guard struct {
	store *Store
}

// NewGuard creates a Guard over the session store.
func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

// Allow reports whether the current session may enter protected screens.
// On deny the caller must route to the login screen.
func (g *Guard) Allow() bool {
	sess, ok := g.store.Current()
	if !ok {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	// ParseUnverified rejects wrong segment counts and undecodable payloads.
	if _, _, err := parser.ParseUnverified(sess.AccessToken, claims); err != nil {
		g.store.Invalidate()
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		g.store.Invalidate()
		return false
	}
	if exp != nil && exp.Before(time.Now()) {
		g.store.Invalidate()
		return false
	}

	return true
}
