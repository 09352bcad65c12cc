package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/dto"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
	"github.com/BruksfildServices01/home-services/internal/timezone"
)

type OpenDialog struct {
	sessions *sessionstore.Store
	codec    domain.PriceCodec
	tz       string
	now      func() time.Time
}

func NewOpenDialog(sessions *sessionstore.Store, codec domain.PriceCodec, tz string) *OpenDialog {
	return &OpenDialog{sessions: sessions, codec: codec, tz: tz, now: time.Now}
}

// Execute pre-fills the booking dialog. The earliest selectable date is
// today in the service timezone.
func (uc *OpenDialog) Execute(
	ctx context.Context,
	sess *user.Session,
	service string,
	price int,
) (*dto.DraftDTO, error) {

	if err := user.Require(sess); err != nil {
		return nil, err
	}

	service = strings.TrimSpace(service)
	if service == "" {
		return nil, httperr.ErrBusiness("service_required")
	}
	if price <= 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	now := uc.now()
	draft := &sessionstore.Draft{
		Service:  service,
		Price:    uc.codec.Format(price),
		MinDate:  timezone.Today(now, uc.tz),
		OpenedAt: now,
	}
	if err := uc.sessions.SaveDraft(ctx, sess.ID, draft); err != nil {
		return nil, err
	}

	return &dto.DraftDTO{
		Service: draft.Service,
		Price:   draft.Price,
		MinDate: draft.MinDate,
	}, nil
}

type CloseDialog struct {
	sessions *sessionstore.Store
}

func NewCloseDialog(sessions *sessionstore.Store) *CloseDialog {
	return &CloseDialog{sessions: sessions}
}

// Execute discards the dialog input; nothing else changes.
func (uc *CloseDialog) Execute(ctx context.Context, sess *user.Session) error {
	if err := user.Require(sess); err != nil {
		return err
	}
	return uc.sessions.DeleteDraft(ctx, sess.ID)
}
