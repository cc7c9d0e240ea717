// Package middleware holds the session gate: a signed cookie pair that is
// refreshed in-flight, plus the redirect rules for page-style routes.
package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const (
	AccessCookie  = "tf_session"
	RefreshCookie = "tf_refresh"

	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour

	// ContextUserID is the gin context key carrying the session's user id.
	ContextUserID = "session_user_id"
)

// Protected path prefixes. Anything here requires a session.
var protectedPrefixes = []string{"/organizations", "/dashboard", "/settings"}

// Canonical landing paths never carry a ?redirect= back to themselves.
var landingPaths = map[string]bool{"/organizations": true, "/dashboard": true}

type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// IssueSessionCookies signs a fresh access/refresh pair for the user and
// sets both cookies.
func IssueSessionCookies(c *gin.Context, secret []byte, userID string) error {
	access, err := signToken(secret, userID, accessTTL)
	if err != nil {
		return err
	}
	refresh, err := signToken(secret, userID, refreshTTL)
	if err != nil {
		return err
	}
	c.SetCookie(AccessCookie, access, int(accessTTL.Seconds()), "/", "", false, true)
	c.SetCookie(RefreshCookie, refresh, int(refreshTTL.Seconds()), "/", "", false, true)
	return nil
}

func signToken(secret []byte, userID string, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseToken(secret []byte, raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// refreshSession resolves the cookie pair to a user id. A lapsed access
// token is reissued from a still-valid refresh token, so sessions roll
// forward on every request.
func refreshSession(c *gin.Context, secret []byte) (string, bool) {
	if raw, err := c.Cookie(AccessCookie); err == nil {
		if claims, err := parseToken(secret, raw); err == nil {
			return claims.UserID, true
		}
	}
	raw, err := c.Cookie(RefreshCookie)
	if err != nil {
		return "", false
	}
	claims, err := parseToken(secret, raw)
	if err != nil {
		return "", false
	}
	if err := IssueSessionCookies(c, secret, claims.UserID); err != nil {
		return "", false
	}
	return claims.UserID, true
}

// Session gates page-style routes: it refreshes the cookie pair and applies
// the redirect matrix between authenticated state and path class.
func Session(secret []byte, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		userID, authed := refreshSession(c, secret)
		if authed {
			c.Set(ContextUserID, userID)
		}

		// Root and the legacy dashboard path redirect unconditionally by
		// auth state.
		if path == "/" || path == "/dashboard" {
			if authed {
				c.Redirect(http.StatusTemporaryRedirect, "/organizations")
			} else {
				c.Redirect(http.StatusTemporaryRedirect, "/login")
			}
			c.Abort()
			return
		}

		if path == "/login" || path == "/signup" {
			if authed {
				// only local targets are followed
				target := c.Query("redirect")
				if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
					target = "/organizations"
				}
				c.Redirect(http.StatusTemporaryRedirect, target)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if isProtected(path) && !authed {
			log.Debug().Str("path", path).Msg("unauthenticated access, redirecting to login")
			dest := "/login"
			if !landingPaths[path] {
				dest += "?redirect=" + url.QueryEscape(path)
			}
			c.Redirect(http.StatusTemporaryRedirect, dest)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSession is the API variant: no redirects, just 401 when the cookie
// pair does not resolve to a user.
func RequireSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := refreshSession(c, secret)
		if !authed {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
