package feedback

import (
	"context"

	domain "github.com/BruksfildServices01/home-services/internal/domain/feedback"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/dto"
)

// LoadPage renders stats and the list, newest first.
type LoadPage struct {
	repo  domain.Repository
	users user.Repository
}

func NewLoadPage(repo domain.Repository, users user.Repository) *LoadPage {
	return &LoadPage{repo: repo, users: users}
}

func (uc *LoadPage) Execute(ctx context.Context, sess *user.Session) (*dto.FeedbackPageDTO, error) {
	if err := user.Require(sess); err != nil {
		return nil, err
	}

	items, err := uc.repo.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	author, _ := uc.users.GetByID(ctx, sess.UserID)

	return &dto.FeedbackPageDTO{
		Stats:    domain.ComputeStats(items),
		Feedback: dto.NewFeedbackDTOs(items, author),
	}, nil
}

func (uc *LoadPage) Stats(ctx context.Context, sess *user.Session) (*domain.Stats, error) {
	if err := user.Require(sess); err != nil {
		return nil, err
	}

	items, err := uc.repo.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	stats := domain.ComputeStats(items)
	return &stats, nil
}
