package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/home-services/internal/audit"
	"github.com/BruksfildServices01/home-services/internal/catalog"
	domain "github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/infra/memory"
	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/models"
	"github.com/BruksfildServices01/home-services/internal/pages"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
)

// 10:00 in Kolkata on 2026-04-10.
var fixedNow = time.Date(2026, 4, 10, 4, 30, 0, 0, time.UTC)

type fixture struct {
	state    *memory.State
	sessions *sessionstore.Store
	sess     *user.Session

	home   *LoadHome
	open   *OpenDialog
	close  *CloseDialog
	submit *SubmitBooking
	list   *ListBookings
	cancel *CancelBooking
	total  *TotalPrice
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store := sessionstore.New(sessionstore.NewMemoryKV(), "test", time.Hour)
	state, err := memory.NewState(ctx, store)
	require.NoError(t, err)

	d := audit.NewDispatcher(logging.Discard())
	t.Cleanup(func() { _ = d.Close(context.Background()) })

	u := &models.User{Name: "Ann", Email: "ann@x.com", Phone: "9998887771"}
	require.NoError(t, state.Users().Create(ctx, u))
	sess := user.NewSession(u, fixedNow)
	require.NoError(t, store.SaveSession(ctx, sess))

	codec := domain.NewPriceCodec("₹")
	const tz = "Asia/Kolkata"

	f := &fixture{
		state:    state,
		sessions: store,
		sess:     sess,
		home:     NewLoadHome(catalog.Defaults()),
		open:     NewOpenDialog(store, codec, tz),
		close:    NewCloseDialog(store),
		submit:   NewSubmitBooking(state.Bookings(), state.Users(), store, d, tz),
		list:     NewListBookings(state.Bookings(), state.Users(), codec),
		total:    NewTotalPrice(state.Bookings(), codec),
	}
	f.cancel = NewCancelBooking(state.Bookings(), f.list, d)

	clock := func() time.Time { return fixedNow }
	f.open.now = clock
	f.submit.now = clock
	f.cancel.now = clock
	return f
}

func (f *fixture) book(t *testing.T, service string, price int) string {
	t.Helper()
	ctx := context.Background()

	_, err := f.open.Execute(ctx, f.sess, service, price)
	require.NoError(t, err)
	res, err := f.submit.Execute(ctx, f.sess, SubmitInput{Address: "1 Main St", Date: "2026-04-10", Time: "10:00"})
	require.NoError(t, err)
	return res.Booking.ID
}

func TestHome(t *testing.T) {
	f := newFixture(t)

	view, err := f.home.Execute(context.Background(), f.sess)
	require.NoError(t, err)
	assert.Equal(t, "Ann", view.UserName)
	assert.NotEmpty(t, view.Services)

	_, err = f.home.Execute(context.Background(), nil)
	assert.True(t, httperr.IsBusiness(err, "login_required"))
}

func TestOpenDialog(t *testing.T) {
	f := newFixture(t)

	draft, err := f.open.Execute(context.Background(), f.sess, "Cleaning", 500)
	require.NoError(t, err)
	assert.Equal(t, "Cleaning", draft.Service)
	assert.Equal(t, "₹500", draft.Price)
	assert.Equal(t, "2026-04-10", draft.MinDate)

	_, err = f.open.Execute(context.Background(), f.sess, " ", 500)
	assert.True(t, httperr.IsBusiness(err, "service_required"))
}

func TestSubmit_ScenarioBookCancelTotal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.open.Execute(ctx, f.sess, "Cleaning", 500)
	require.NoError(t, err)

	res, err := f.submit.Execute(ctx, f.sess, SubmitInput{Address: "1 Main St", Date: "2026-04-10", Time: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, "Booking confirmed successfully!", res.Message)
	assert.Equal(t, pages.Bookings, res.Redirect)
	assert.Equal(t, "Confirmed", res.Booking.Status)
	assert.Equal(t, "₹500", res.Booking.Price)
	assert.Equal(t, "Ann", res.Booking.Customer.Name)
	assert.True(t, res.Booking.CanCancel)

	draft, err := f.sessions.LoadDraft(ctx, f.sess.ID)
	require.NoError(t, err)
	assert.Nil(t, draft)

	total, err := f.total.Execute(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, "₹500", total)

	out, err := f.cancel.Execute(ctx, f.sess, CancelInput{BookingID: res.Booking.ID, Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, "Booking cancelled successfully", out.Message)
	require.Len(t, out.Bookings, 1)
	assert.Equal(t, "Cancelled", out.Bookings[0].Status)
	assert.False(t, out.Bookings[0].CanCancel)
	assert.Equal(t, "₹0", out.Total)

	total, err = f.total.Execute(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, "₹0", total)
}

func TestSubmit_Preconditions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	in := SubmitInput{Address: "1 Main St", Date: "2026-04-10", Time: "10:00"}

	_, err := f.submit.Execute(ctx, nil, in)
	assert.True(t, httperr.IsBusiness(err, "login_required"))

	_, err = f.submit.Execute(ctx, f.sess, in)
	assert.True(t, httperr.IsBusiness(err, "no_open_dialog"))

	_, err = f.open.Execute(ctx, f.sess, "Cleaning", 500)
	require.NoError(t, err)

	cases := map[string]SubmitInput{
		"address_required": {Date: "2026-04-10", Time: "10:00"},
		"date_required":    {Address: "x", Time: "10:00"},
		"invalid_date":     {Address: "x", Date: "10/04/2026", Time: "10:00"},
		"date_in_past":     {Address: "x", Date: "2026-04-09", Time: "10:00"},
		"invalid_time":     {Address: "x", Date: "2026-04-11", Time: "10am"},
	}
	for code, in := range cases {
		_, err := f.submit.Execute(ctx, f.sess, in)
		assert.True(t, httperr.IsBusiness(err, code), "%s: got %v", code, err)
	}

	list, err := f.list.Execute(ctx, f.sess, "all")
	require.NoError(t, err)
	assert.Empty(t, list.Bookings)
}

func TestCloseDialog_DiscardsDraftOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.open.Execute(ctx, f.sess, "Cleaning", 500)
	require.NoError(t, err)
	require.NoError(t, f.close.Execute(ctx, f.sess))

	_, err = f.submit.Execute(ctx, f.sess, SubmitInput{Address: "x", Date: "2026-04-10", Time: "10:00"})
	assert.True(t, httperr.IsBusiness(err, "no_open_dialog"))

	list, err := f.list.Execute(ctx, f.sess, "")
	require.NoError(t, err)
	assert.Empty(t, list.Bookings)
}

func TestList_Filters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := f.book(t, "Cleaning", 500)
	f.book(t, "Plumbing", 400)
	f.book(t, "Painting", 2500)

	_, err := f.cancel.Execute(ctx, f.sess, CancelInput{BookingID: first, Confirmed: true})
	require.NoError(t, err)

	all, err := f.list.Execute(ctx, f.sess, "all")
	require.NoError(t, err)
	require.Len(t, all.Bookings, 3)
	assert.Equal(t, []string{"Cleaning", "Plumbing", "Painting"},
		[]string{all.Bookings[0].Service, all.Bookings[1].Service, all.Bookings[2].Service})
	assert.Equal(t, "April 10, 2026", all.Bookings[0].DisplayDate)
	assert.Equal(t, "₹2900", all.Total)

	confirmed, err := f.list.Execute(ctx, f.sess, "confirmed")
	require.NoError(t, err)
	assert.Len(t, confirmed.Bookings, 2)
	assert.Equal(t, "Confirmed", confirmed.Filter)

	cancelled, err := f.list.Execute(ctx, f.sess, "Cancelled")
	require.NoError(t, err)
	require.Len(t, cancelled.Bookings, 1)
	assert.Equal(t, first, cancelled.Bookings[0].ID)

	completed, err := f.list.Execute(ctx, f.sess, "Completed")
	require.NoError(t, err)
	assert.Empty(t, completed.Bookings)

	_, err = f.list.Execute(ctx, f.sess, "pending")
	assert.True(t, httperr.IsBusiness(err, "invalid_filter"))
}

func TestCancel_ConfirmationIdempotencyAndOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.book(t, "Cleaning", 500)

	_, err := f.cancel.Execute(ctx, f.sess, CancelInput{BookingID: id})
	assert.True(t, httperr.IsBusiness(err, "confirmation_required"))

	out, err := f.cancel.Execute(ctx, f.sess, CancelInput{BookingID: id, Confirmed: true})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Message)

	again, err := f.cancel.Execute(ctx, f.sess, CancelInput{BookingID: id, Confirmed: true})
	require.NoError(t, err)
	assert.Empty(t, again.Message)
	assert.Equal(t, "Cancelled", again.Bookings[0].Status)

	missing, err := f.cancel.Execute(ctx, f.sess, CancelInput{BookingID: "nope", Confirmed: true})
	require.NoError(t, err)
	assert.Empty(t, missing.Message)

	stranger := &user.Session{ID: "s2", UserID: "someone-else"}
	other, err := f.cancel.Execute(ctx, stranger, CancelInput{BookingID: id, Confirmed: true})
	require.NoError(t, err)
	assert.Empty(t, other.Bookings)
}

func TestCancel_CompletedIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.book(t, "Cleaning", 500)

	b, err := f.state.Bookings().GetForUser(ctx, id, f.sess.UserID)
	require.NoError(t, err)
	require.NoError(t, domain.Complete(b, fixedNow))
	require.NoError(t, f.state.Bookings().Update(ctx, b))

	_, err = f.cancel.Execute(ctx, f.sess, CancelInput{BookingID: id, Confirmed: true})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	total, err := f.total.Execute(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, "₹500", total)
}
