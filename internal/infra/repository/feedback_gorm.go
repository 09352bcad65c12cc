package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/home-services/internal/domain/feedback"
	"github.com/BruksfildServices01/home-services/internal/models"
)

type FeedbackGormRepository struct {
	db *gorm.DB
}

func NewFeedbackGormRepository(db *gorm.DB) *FeedbackGormRepository {
	return &FeedbackGormRepository{db: db}
}

func (r *FeedbackGormRepository) Create(ctx context.Context, f *models.Feedback) error {
	return r.db.WithContext(ctx).Omit("User").Create(f).Error
}

func (r *FeedbackGormRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]models.Feedback, error) {

	var out []models.Feedback
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("seq DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

var _ domain.Repository = (*FeedbackGormRepository)(nil)
