package rating

import (
	"context"

	"foodconnect-backend/entities"

	"gorm.io/gorm"
)

type (
	RatingRepository interface {
		Create(ctx context.Context, rating *entities.Rating) error
		GetByUserAndDish(ctx context.Context, userID, dishID string) (*entities.Rating, error)
		ListByDish(ctx context.Context, dishID string) ([]*entities.Rating, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) GetByUserAndDish(ctx context.Context, userID, dishID string) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND dish_id = ?", userID, dishID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) ListByDish(ctx context.Context, dishID string) ([]*entities.Rating, error) {
	var ratings []*entities.Rating
	if err := r.db.WithContext(ctx).
		Where("dish_id = ?", dishID).
		Order("created_at desc").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}
