package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/home-services/internal/audit"
	tokens "github.com/BruksfildServices01/home-services/internal/auth"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/infra/memory"
	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/pages"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
)

type fixture struct {
	state    *memory.State
	sessions *sessionstore.Store
	issuer   *tokens.Issuer
	register *Register
	login    *Login
	logout   *Logout
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store := sessionstore.New(sessionstore.NewMemoryKV(), "test", time.Hour)
	state, err := memory.NewState(ctx, store)
	require.NoError(t, err)

	d := audit.NewDispatcher(logging.Discard())
	t.Cleanup(func() { _ = d.Close(context.Background()) })

	issuer := tokens.NewIssuer("secret", time.Hour)
	return &fixture{
		state:    state,
		sessions: store,
		issuer:   issuer,
		register: NewRegister(state.Users(), store, issuer, d, Options{BcryptCost: bcrypt.MinCost}),
		login:    NewLogin(state.Users(), store, issuer, d),
		logout:   NewLogout(store),
	}
}

func TestRegister_CreatesUserAndSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.register.Execute(ctx, RegisterInput{
		Name: "Ann", Email: "ann@x.com", Phone: "9998887771", Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, pages.Home, res.Redirect)
	assert.Equal(t, "Ann", res.Session.Name)
	assert.Equal(t, "ann@x.com", res.Session.Email)
	assert.Equal(t, "9998887771", res.Session.Phone)

	u, err := f.state.Users().GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.Session.UserID)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	stored, err := f.sessions.LoadSession(ctx, res.Session.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Ann", stored.Name)

	claims, err := f.issuer.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Session.ID, claims.SessionID)
}

func TestRegister_Rejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.register.Execute(ctx, RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	cases := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{"short password", RegisterInput{Name: "B", Email: "b@x.com", Password: "12345"}, "weak_password"},
		{"duplicate email", RegisterInput{Name: "B", Email: " ann@x.com ", Password: "secret1"}, "email_already_registered"},
		{"bad email", RegisterInput{Name: "B", Email: "b@x", Password: "secret1"}, "invalid_email"},
		{"bad phone", RegisterInput{Name: "B", Email: "b@x.com", Phone: "12345", Password: "secret1"}, "invalid_phone"},
		{"no name", RegisterInput{Name: "  ", Email: "b@x.com", Password: "secret1"}, "name_required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.register.Execute(ctx, tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}

	_, err = f.state.Users().GetByEmail(ctx, "b@x.com")
	assert.Error(t, err)
}

func TestRegister_EmailDomainCheck(t *testing.T) {
	f := newFixture(t)
	f.register.opts.VerifyEmailDomain = true
	f.register.domainCheck = func(context.Context, string) bool { return false }

	_, err := f.register.Execute(context.Background(), RegisterInput{Name: "A", Email: "a@nowhere.test", Password: "secret1"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.register.Execute(ctx, RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.login.Execute(ctx, "ann@x.com", "wrong!")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = f.login.Execute(ctx, "bob@x.com", "secret1")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	res, err := f.login.Execute(ctx, "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", res.Session.Name)
	assert.Equal(t, pages.Home, res.Redirect)
}

func TestEmailsMatchExactly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ann, err := f.register.Execute(ctx, RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	other, err := f.register.Execute(ctx, RegisterInput{Name: "Other Ann", Email: "Ann@X.com", Password: "secret2"})
	require.NoError(t, err)
	assert.NotEqual(t, ann.Session.UserID, other.Session.UserID)
	assert.Equal(t, "Ann@X.com", other.Session.Email)

	_, err = f.login.Execute(ctx, "ANN@X.COM", "secret1")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = f.login.Execute(ctx, "Ann@X.com", "secret1")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	res, err := f.login.Execute(ctx, " Ann@X.com ", "secret2")
	require.NoError(t, err)
	assert.Equal(t, other.Session.UserID, res.Session.UserID)
}

func TestLogout_ClearsOnlyThatSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.register.Execute(ctx, RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	second, err := f.login.Execute(ctx, "ann@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, f.sessions.SaveDraft(ctx, first.Session.ID, &sessionstore.Draft{Service: "Cleaning"}))

	redirect, err := f.logout.Execute(ctx, first.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, pages.Index, redirect)

	gone, err := f.sessions.LoadSession(ctx, first.Session.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	draft, err := f.sessions.LoadDraft(ctx, first.Session.ID)
	require.NoError(t, err)
	assert.Nil(t, draft)

	still, err := f.sessions.LoadSession(ctx, second.Session.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)

	_, err = f.state.Users().GetByEmail(ctx, "ann@x.com")
	assert.NoError(t, err)
}
