package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/home-services/internal/audit"
	tokens "github.com/BruksfildServices01/home-services/internal/auth"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/metrics"
	"github.com/BruksfildServices01/home-services/internal/models"
	"github.com/BruksfildServices01/home-services/internal/pages"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
	"github.com/BruksfildServices01/home-services/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Result is what a successful register or login hands back to the page.
type Result struct {
	Session  *user.Session `json:"session"`
	Token    string        `json:"token"`
	Redirect pages.Page    `json:"redirect"`
}

// Options tune password hashing and email checks.
type Options struct {
	BcryptCost        int
	VerifyEmailDomain bool
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	users    user.Repository
	sessions *sessionstore.Store
	tokens   *tokens.Issuer
	audit    *audit.Dispatcher
	opts     Options

	domainCheck func(context.Context, string) bool
	now         func() time.Time
}

func NewRegister(
	users user.Repository,
	sessions *sessionstore.Store,
	issuer *tokens.Issuer,
	audit *audit.Dispatcher,
	opts Options,
) *Register {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &Register{
		users:       users,
		sessions:    sessions,
		tokens:      issuer,
		audit:       audit,
		opts:        opts,
		domainCheck: validators.EmailDomainResolves,
		now:         time.Now,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (res *Result, err error) {
	defer func() { metrics.IncAuth("register", err) }()

	name := strings.TrimSpace(in.Name)
	email := user.NormalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}
	if !validators.IsEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if phone != "" && !validators.IsPhone(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	if !validators.IsPassword(in.Password) {
		return nil, httperr.ErrBusiness("weak_password")
	}
	if uc.opts.VerifyEmailDomain && !uc.domainCheck(ctx, email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	if _, err := uc.users.GetByEmail(ctx, email); err == nil {
		return nil, httperr.ErrBusiness("email_already_registered")
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.opts.BcryptCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hashed),
	}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, httperr.ErrBusiness("email_already_registered")
		}
		return nil, err
	}

	res, err = startSession(ctx, uc.sessions, uc.tokens, u, uc.now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   audit.EntityUser,
		EntityID: u.ID,
	})

	return res, nil
}

// startSession stores the session projection and signs a token for it.
func startSession(
	ctx context.Context,
	store *sessionstore.Store,
	issuer *tokens.Issuer,
	u *models.User,
	now time.Time,
) (*Result, error) {

	sess := user.NewSession(u, now)
	if err := store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	token, err := issuer.Issue(u.ID, sess.ID)
	if err != nil {
		_ = store.DeleteSession(ctx, sess.ID)
		return nil, err
	}

	return &Result{Session: sess, Token: token, Redirect: pages.Home}, nil
}
