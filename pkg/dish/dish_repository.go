package dish

import (
	"context"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// RatingStat is the per-dish aggregate over the ratings table.
	RatingStat struct {
		DishID  uuid.UUID
		Average float64
		Count   int64
	}

	DishRepository interface {
		ListAvailable(ctx context.Context, q domain.ListDishesQuery) ([]*entities.Dish, error)
		GetByID(ctx context.Context, id string) (*entities.Dish, error)
		GetImages(ctx context.Context, dishIDs []uuid.UUID) ([]*entities.DishImage, error)
		GetTagNames(ctx context.Context, dishIDs []uuid.UUID) (map[uuid.UUID][]string, error)
		GetRatingStats(ctx context.Context, dishIDs []uuid.UUID) (map[uuid.UUID]RatingStat, error)
		CreateWithAssets(ctx context.Context, dish *entities.Dish, images []*entities.DishImage, tagNames []string) error
		AddImage(ctx context.Context, image *entities.DishImage) error
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) ListAvailable(ctx context.Context, q domain.ListDishesQuery) ([]*entities.Dish, error) {
	query := r.db.WithContext(ctx).Where("is_available = ?", true)

	if q.CampusID != "" {
		query = query.Where("campus_id = ?", q.CampusID)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var dishes []*entities.Dish
	if err := query.Order("created_at desc").
		Limit(q.Limit).Offset(q.Offset).
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) GetByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) GetImages(ctx context.Context, dishIDs []uuid.UUID) ([]*entities.DishImage, error) {
	if len(dishIDs) == 0 {
		return nil, nil
	}

	var images []*entities.DishImage
	if err := r.db.WithContext(ctx).
		Where("dish_id IN ?", dishIDs).
		Order("sort_order asc").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *dishRepository) GetTagNames(ctx context.Context, dishIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	if len(dishIDs) == 0 {
		return map[uuid.UUID][]string{}, nil
	}

	var rows []struct {
		DishID uuid.UUID
		Name   string
	}
	if err := r.db.WithContext(ctx).Model(&entities.DishTag{}).
		Select("dish_tags.dish_id, tags.name").
		Joins("JOIN tags ON tags.id = dish_tags.tag_id").
		Where("dish_tags.dish_id IN ?", dishIDs).
		Order("tags.name asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	tags := make(map[uuid.UUID][]string, len(dishIDs))
	for _, row := range rows {
		tags[row.DishID] = append(tags[row.DishID], row.Name)
	}
	return tags, nil
}

func (r *dishRepository) GetRatingStats(ctx context.Context, dishIDs []uuid.UUID) (map[uuid.UUID]RatingStat, error) {
	if len(dishIDs) == 0 {
		return map[uuid.UUID]RatingStat{}, nil
	}

	var rows []RatingStat
	if err := r.db.WithContext(ctx).Model(&entities.Rating{}).
		Select("dish_id, AVG(score) as average, COUNT(*) as count").
		Where("dish_id IN ?", dishIDs).
		Group("dish_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make(map[uuid.UUID]RatingStat, len(rows))
	for _, row := range rows {
		stats[row.DishID] = row
	}
	return stats, nil
}

// CreateWithAssets persists the dish, its images, and its tag links in one
// transaction. Tags are inserted with ON CONFLICT DO NOTHING against the unique
// name index, then read back, so concurrent creates of the same new tag name
// cannot produce duplicates or fail the whole dish.
func (r *dishRepository) CreateWithAssets(ctx context.Context, dish *entities.Dish, images []*entities.DishImage, tagNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dish).Error; err != nil {
			return err
		}

		for _, image := range images {
			image.DishID = dish.ID
			if err := tx.Create(image).Error; err != nil {
				return err
			}
		}

		for _, name := range tagNames {
			tag := entities.Tag{ID: uuid.New(), Name: name}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&tag).Error; err != nil {
				return err
			}

			// Read back into a zero-value struct. Reusing tag here would carry
			// its primary key into the query conditions and miss the existing
			// row when the insert was skipped.
			var existing entities.Tag
			if err := tx.Where("name = ?", name).First(&existing).Error; err != nil {
				return err
			}

			link := entities.DishTag{DishID: dish.ID, TagID: existing.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *dishRepository) AddImage(ctx context.Context, image *entities.DishImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}
