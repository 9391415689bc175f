package stub

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/alclearn/admin-console/internal/model"
)

// claims carries the stub token payload.
type claims struct {
	jwt.RegisteredClaims
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
	Kind    string `json:"token_type"`
}

// mintTokens issues an access/refresh pair for a user.
func (s *State) mintTokens(u model.User) (model.TokenPair, error) {
	access, err := s.mint(u, "access", s.tokenTTL)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := s.mint(u, "refresh", 7*24*time.Hour)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *State) mint(u model.User, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:  u.ID,
		Email:   u.Email,
		IsStaff: u.IsStaff,
		Kind:    kind,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// verify parses and validates an access token. Unlike the console's guard,
// the stub is the server, so it does check the signature.
func (s *State) verify(tokenStr string) (*claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if c.Kind != "access" {
		return nil, errors.New("not an access token")
	}
	return c, nil
}

// requireStaff validates the bearer token and the staff flag.
func (s *State) requireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication credentials were not provided."})
			return
		}
		cl, err := s.verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
			return
		}
		if !cl.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Staff access required."})
			return
		}
		c.Next()
	}
}
