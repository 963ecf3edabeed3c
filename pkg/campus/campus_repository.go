package campus

import (
	"context"

	"foodconnect-backend/entities"

	"gorm.io/gorm"
)

type (
	CampusRepository interface {
		Create(ctx context.Context, campus *entities.Campus) error
		List(ctx context.Context) ([]*entities.Campus, error)
		ListTagNames(ctx context.Context) ([]string, error)
	}

	campusRepository struct {
		db *gorm.DB
	}
)

func NewCampusRepository(db *gorm.DB) CampusRepository {
	return &campusRepository{db: db}
}

func (r *campusRepository) Create(ctx context.Context, campus *entities.Campus) error {
	return r.db.WithContext(ctx).Create(campus).Error
}

func (r *campusRepository) List(ctx context.Context) ([]*entities.Campus, error) {
	var campuses []*entities.Campus
	if err := r.db.WithContext(ctx).Order("name asc").Find(&campuses).Error; err != nil {
		return nil, err
	}
	return campuses, nil
}

func (r *campusRepository) ListTagNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&entities.Tag{}).
		Order("name asc").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
