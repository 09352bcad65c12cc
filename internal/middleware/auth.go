package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-services/internal/auth"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
)

const (
	ContextUserID  = "userID"
	ContextSession = "session"
)

type Authenticator struct {
	tokens   *auth.Issuer
	sessions *sessionstore.Store
}

func NewAuthenticator(tokens *auth.Issuer, sessions *sessionstore.Store) *Authenticator {
	return &Authenticator{tokens: tokens, sessions: sessions}
}

// Required rejects requests without a live session.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, code := a.resolve(c)
		if sess == nil {
			httperr.Unauthorized(c, code, "Please login first")
			c.Abort()
			return
		}

		setSession(c, sess)
		c.Next()
	}
}

// Optional attaches the session when there is one and never rejects.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, _ := a.resolve(c); sess != nil {
			setSession(c, sess)
		}
		c.Next()
	}
}

func (a *Authenticator) resolve(c *gin.Context) (*user.Session, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "missing_authorization_header"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, "invalid_authorization_header"
	}

	claims, err := a.tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, "invalid_token"
	}

	sess, err := a.sessions.LoadSession(c.Request.Context(), claims.SessionID)
	if err != nil || sess == nil || sess.UserID != claims.UserID {
		return nil, "session_expired"
	}
	return sess, ""
}

func setSession(c *gin.Context, sess *user.Session) {
	c.Set(ContextSession, sess)
	c.Set(ContextUserID, sess.UserID)
}

// SessionFrom returns the session attached by the auth middleware, or nil.
func SessionFrom(c *gin.Context) *user.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*user.Session)
	return sess
}
