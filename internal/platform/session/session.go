// Package session implements the signed session-cookie codec: it turns a
// verified user record into an opaque tamper-evident token and back.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/platform/config"
)

// Claims is the session payload: the user snapshot plus standard JWT
// registered claims carrying expiry.
type Claims struct {
	User domain.SessionUser `json:"user"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens and manages the session cookie.
type Codec struct {
	secret     []byte
	expiry     time.Duration
	cookieName string
	issuer     string
	secure     bool
}

// NewCodec builds a Codec from process configuration.
func NewCodec(cfg *config.Config) *Codec {
	return &Codec{
		secret:     []byte(cfg.SessionSecret),
		expiry:     cfg.SessionExpiryDuration,
		cookieName: cfg.SessionCookieName,
		issuer:     cfg.SessionIssuer,
		secure:     cfg.IsProduction,
	}
}

// CookieName returns the configured session cookie name.
func (c *Codec) CookieName() string {
	return c.cookieName
}

// Issue signs a session token for the given user snapshot.
func (c *Codec) Issue(user domain.SessionUser) (string, error) {
	now := time.Now()
	claims := Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Decode verifies a session token and returns its claims. Any failure
// (signature mismatch, expiry, malformed payload) is reported as a wrapped
// apperrors.ErrInvalidSession; callers treat it as "no session".
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrInvalidSession
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidSession, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.User.ID == "" {
		return nil, apperrors.ErrInvalidSession
	}
	return claims, nil
}

// ReadCookie decodes the session cookie on the request. A missing or invalid
// cookie yields a wrapped apperrors.ErrInvalidSession.
func (c *Codec) ReadCookie(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(c.cookieName)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}
	return c.Decode(cookie.Value)
}

// SetCookie writes the session cookie: HttpOnly, SameSite=Lax, Secure in
// production, expiring with the token.
func (c *Codec) SetCookie(g *gin.Context, token string) {
	g.SetSameSite(http.SameSiteLaxMode)
	g.SetCookie(c.cookieName, token, int(c.expiry.Seconds()), "/", "", c.secure, true)
}

// ClearCookie overwrites the session cookie with an immediately expired one.
func (c *Codec) ClearCookie(g *gin.Context) {
	g.SetSameSite(http.SameSiteLaxMode)
	g.SetCookie(c.cookieName, "", -1, "/", "", c.secure, true)
}
