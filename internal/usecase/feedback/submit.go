package feedback

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/home-services/internal/audit"
	domain "github.com/BruksfildServices01/home-services/internal/domain/feedback"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/dto"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/metrics"
	"github.com/BruksfildServices01/home-services/internal/models"
	"github.com/BruksfildServices01/home-services/internal/validators"
)

type SubmitInput struct {
	Email    string
	Phone    string
	Service  string
	Rating   int
	Message  string
	Category string
}

type SubmitFeedback struct {
	repo  domain.Repository
	page  *LoadPage
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewSubmitFeedback(repo domain.Repository, page *LoadPage, audit *audit.Dispatcher) *SubmitFeedback {
	return &SubmitFeedback{repo: repo, page: page, audit: audit, now: time.Now}
}

// Execute stores the feedback and returns the refreshed page.
func (uc *SubmitFeedback) Execute(
	ctx context.Context,
	sess *user.Session,
	in SubmitInput,
) (*dto.FeedbackPageDTO, error) {

	if err := user.Require(sess); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if !validators.IsEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if !validators.IsPhone(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	service := strings.TrimSpace(in.Service)
	if service == "" {
		service = domain.DefaultService
	}

	f := &models.Feedback{
		UserID:    sess.UserID,
		Email:     email,
		Phone:     phone,
		Service:   service,
		Rating:    in.Rating,
		Message:   strings.TrimSpace(in.Message),
		Category:  strings.TrimSpace(in.Category),
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	metrics.IncFeedback(f.Rating)
	uc.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   audit.ActionFeedbackSubmitted,
		Entity:   audit.EntityFeedback,
		EntityID: f.ID,
		Metadata: map[string]any{"rating": f.Rating, "service": f.Service},
	})

	out, err := uc.page.Execute(ctx, sess)
	if err != nil {
		return nil, err
	}
	out.Message = "Thank you for your feedback!"
	return out, nil
}
