package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/home-services/internal/audit"
	tokens "github.com/BruksfildServices01/home-services/internal/auth"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/metrics"
	"github.com/BruksfildServices01/home-services/internal/pages"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
)

type Login struct {
	users    user.Repository
	sessions *sessionstore.Store
	tokens   *tokens.Issuer
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewLogin(
	users user.Repository,
	sessions *sessionstore.Store,
	issuer *tokens.Issuer,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		users:    users,
		sessions: sessions,
		tokens:   issuer,
		audit:    audit,
		now:      time.Now,
	}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (res *Result, err error) {
	defer func() { metrics.IncAuth("login", err) }()

	u, err := uc.users.GetByEmail(ctx, user.NormalizeEmail(email))
	if errors.Is(err, user.ErrNotFound) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	res, err = startSession(ctx, uc.sessions, uc.tokens, u, uc.now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   audit.ActionUserLoggedIn,
		Entity:   audit.EntityUser,
		EntityID: u.ID,
	})

	return res, nil
}

type Logout struct {
	sessions *sessionstore.Store
}

func NewLogout(sessions *sessionstore.Store) *Logout {
	return &Logout{sessions: sessions}
}

// Execute forgets the session and its open booking dialog. Other sessions
// are untouched.
func (uc *Logout) Execute(ctx context.Context, sessionID string) (redirect pages.Page, err error) {
	defer func() { metrics.IncAuth("logout", err) }()

	if err := uc.sessions.DeleteSession(ctx, sessionID); err != nil {
		return "", err
	}
	return pages.Index, nil
}
