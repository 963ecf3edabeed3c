package rating

import (
	"context"
	"errors"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"
	"foodconnect-backend/pkg/dish"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RatingService interface {
		CreateRating(ctx context.Context, req domain.CreateRatingRequest, userID string) (domain.RatingResponse, error)
		GetRatings(ctx context.Context, dishID string) ([]domain.RatingResponse, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
		dishRepository   dish.DishRepository
	}
)

func NewRatingService(ratingRepository RatingRepository, dishRepository dish.DishRepository) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		dishRepository:   dishRepository,
	}
}

func toRatingResponse(rating *entities.Rating) domain.RatingResponse {
	return domain.RatingResponse{
		ID:        rating.ID.String(),
		UserID:    rating.UserID.String(),
		DishID:    rating.DishID.String(),
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}
}

func (s *ratingService) CreateRating(ctx context.Context, req domain.CreateRatingRequest, userID string) (domain.RatingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RatingResponse{}, domain.ErrParseUUID
	}

	dishUUID, err := uuid.Parse(req.DishID)
	if err != nil {
		return domain.RatingResponse{}, domain.ErrParseUUID
	}

	if _, err := s.dishRepository.GetByID(ctx, req.DishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RatingResponse{}, domain.ErrDishNotFound
		}
		return domain.RatingResponse{}, err
	}

	existing, err := s.ratingRepository.GetByUserAndDish(ctx, userID, req.DishID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RatingResponse{}, err
	}
	if existing != nil {
		return domain.RatingResponse{}, domain.ErrAlreadyRated
	}

	rating := &entities.Rating{
		ID:      uuid.New(),
		UserID:  userUUID,
		DishID:  dishUUID,
		Score:   req.Score,
		Comment: req.Comment,
	}
	if err := s.ratingRepository.Create(ctx, rating); err != nil {
		return domain.RatingResponse{}, err
	}

	return toRatingResponse(rating), nil
}

func (s *ratingService) GetRatings(ctx context.Context, dishID string) ([]domain.RatingResponse, error) {
	ratings, err := s.ratingRepository.ListByDish(ctx, dishID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		response = append(response, toRatingResponse(rating))
	}
	return response, nil
}
