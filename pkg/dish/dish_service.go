package dish

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"
	"foodconnect-backend/internal/utils/storage"
	"foodconnect-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultListLimit = 50

type (
	DishService interface {
		ListDishes(ctx context.Context, q domain.ListDishesQuery) ([]domain.DishResponse, error)
		GetDishByID(ctx context.Context, id string) (domain.DishResponse, error)
		CreateDish(ctx context.Context, req domain.CreateDishRequest, cookID string) (domain.DishResponse, error)
		UploadDishPhoto(ctx context.Context, req domain.UploadDishPhotoRequest, userID string) (domain.DishResponse, error)
	}

	dishService struct {
		dishRepository DishRepository
		userRepository user.UserRepository
		s3             storage.AwsS3
	}
)

func NewDishService(dishRepository DishRepository, userRepository user.UserRepository, s3 storage.AwsS3) DishService {
	return &dishService{
		dishRepository: dishRepository,
		userRepository: userRepository,
		s3:             s3,
	}
}

func (s *dishService) ListDishes(ctx context.Context, q domain.ListDishesQuery) ([]domain.DishResponse, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	dishes, err := s.dishRepository.ListAvailable(ctx, q)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrich(ctx, dishes)
	if err != nil {
		return nil, err
	}

	// Tags are many-to-many, so the tag filter runs in memory after the page is
	// fetched and enriched; a filtered page may hold fewer than Limit rows even
	// when more matches exist beyond it.
	wanted := normalizeTags(q.Tags)
	if len(wanted) == 0 {
		return enriched, nil
	}

	filtered := make([]domain.DishResponse, 0, len(enriched))
	for _, d := range enriched {
		if hasAllTags(d.Tags, wanted) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *dishService) GetDishByID(ctx context.Context, id string) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	enriched, err := s.enrich(ctx, []*entities.Dish{dish})
	if err != nil {
		return domain.DishResponse{}, err
	}
	return enriched[0], nil
}

func (s *dishService) CreateDish(ctx context.Context, req domain.CreateDishRequest, cookID string) (domain.DishResponse, error) {
	cookUUID, err := uuid.Parse(cookID)
	if err != nil {
		return domain.DishResponse{}, domain.ErrParseUUID
	}

	cook, err := s.userRepository.GetByID(ctx, cookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrUserNotFound
		}
		return domain.DishResponse{}, err
	}

	dish := &entities.Dish{
		ID:                uuid.New(),
		CookID:            cookUUID,
		Title:             req.Title,
		Description:       req.Description,
		Price:             req.Price,
		Currency:          req.Currency,
		IsAvailable:       true,
		QuantityAvailable: req.QuantityAvailable,
		PrepTimeMinutes:   req.PrepTimeMinutes,
		PickupLocation:    req.PickupLocation,
	}
	if dish.Currency == "" {
		dish.Currency = "USD"
	}
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}

	// Campus defaults to the creating cook's campus.
	if req.CampusID != "" {
		campusUUID, err := uuid.Parse(req.CampusID)
		if err != nil {
			return domain.DishResponse{}, domain.ErrParseUUID
		}
		dish.CampusID = &campusUUID
	} else {
		dish.CampusID = cook.CampusID
	}

	images := make([]*entities.DishImage, 0, len(req.Images))
	for i, img := range req.Images {
		sortOrder := i
		if img.SortOrder != nil {
			sortOrder = *img.SortOrder
		}
		images = append(images, &entities.DishImage{
			ID:        uuid.New(),
			URL:       img.URL,
			SortOrder: sortOrder,
		})
	}

	tagNames := make([]string, 0, len(req.Tags))
	for _, name := range req.Tags {
		name = strings.TrimSpace(name)
		if name != "" {
			tagNames = append(tagNames, name)
		}
	}

	if err := s.dishRepository.CreateWithAssets(ctx, dish, images, tagNames); err != nil {
		return domain.DishResponse{}, err
	}

	// Re-fetch so the response reflects exactly what was persisted.
	return s.GetDishByID(ctx, dish.ID.String())
}

func (s *dishService) UploadDishPhoto(ctx context.Context, req domain.UploadDishPhotoRequest, userID string) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetByID(ctx, req.DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	if dish.CookID.String() != userID {
		return domain.DishResponse{}, domain.ErrUserNotAllowed
	}

	existing, err := s.dishRepository.GetImages(ctx, []uuid.UUID{dish.ID})
	if err != nil {
		return domain.DishResponse{}, err
	}
	nextSortOrder := 0
	for _, img := range existing {
		if img.SortOrder >= nextSortOrder {
			nextSortOrder = img.SortOrder + 1
		}
	}

	fileName := fmt.Sprintf("dish-%s-%d", dish.ID.String(), nextSortOrder)
	objectKey, err := s.s3.UploadFile(fileName, req.Photo, "dishes", storage.AllowImage...)
	if err != nil {
		return domain.DishResponse{}, err
	}

	image := &entities.DishImage{
		ID:        uuid.New(),
		DishID:    dish.ID,
		URL:       s.s3.GetPublicLinkKey(objectKey),
		SortOrder: nextSortOrder,
	}
	if err := s.dishRepository.AddImage(ctx, image); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.DishResponse{}, err
	}

	return s.GetDishByID(ctx, dish.ID.String())
}

// enrich batches images, tag names, and rating aggregates for the given dishes
// and assembles one response per dish, preserving input order.
func (s *dishService) enrich(ctx context.Context, dishes []*entities.Dish) ([]domain.DishResponse, error) {
	if len(dishes) == 0 {
		return []domain.DishResponse{}, nil
	}

	dishIDs := make([]uuid.UUID, 0, len(dishes))
	for _, d := range dishes {
		dishIDs = append(dishIDs, d.ID)
	}

	images, err := s.dishRepository.GetImages(ctx, dishIDs)
	if err != nil {
		return nil, err
	}
	imagesByDish := make(map[uuid.UUID][]domain.DishImageResponse)
	for _, img := range images {
		imagesByDish[img.DishID] = append(imagesByDish[img.DishID], domain.DishImageResponse{
			URL:       img.URL,
			SortOrder: img.SortOrder,
		})
	}

	tagsByDish, err := s.dishRepository.GetTagNames(ctx, dishIDs)
	if err != nil {
		return nil, err
	}

	statsByDish, err := s.dishRepository.GetRatingStats(ctx, dishIDs)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DishResponse, 0, len(dishes))
	for _, d := range dishes {
		res := domain.DishResponse{
			ID:                d.ID.String(),
			CookID:            d.CookID.String(),
			Title:             d.Title,
			Description:       d.Description,
			Price:             d.Price,
			Currency:          d.Currency,
			IsAvailable:       d.IsAvailable,
			QuantityAvailable: d.QuantityAvailable,
			PrepTimeMinutes:   d.PrepTimeMinutes,
			PickupLocation:    d.PickupLocation,
			Images:            imagesByDish[d.ID],
			Tags:              tagsByDish[d.ID],
			CreatedAt:         d.CreatedAt,
		}
		if d.CampusID != nil {
			res.CampusID = d.CampusID.String()
		}
		if res.Images == nil {
			res.Images = []domain.DishImageResponse{}
		}
		if res.Tags == nil {
			res.Tags = []string{}
		}
		if stat, ok := statsByDish[d.ID]; ok {
			res.RatingAverage = stat.Average
			res.RatingCount = stat.Count
		}
		response = append(response, res)
	}
	return response, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func hasAllTags(dishTags []string, wanted []string) bool {
	have := make(map[string]bool, len(dishTags))
	for _, t := range dishTags {
		have[strings.ToLower(t)] = true
	}
	for _, w := range wanted {
		if !have[w] {
			return false
		}
	}
	return true
}
