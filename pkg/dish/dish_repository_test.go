package dish

import (
	"context"
	"testing"

	"foodconnect-backend/entities"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with hand-written DDL; the
// entity tags carry Postgres defaults (uuid_generate_v4) that sqlite cannot
// AutoMigrate, and all IDs are assigned in code anyway.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would see its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range []string{
		`CREATE TABLE dishes (
			id text PRIMARY KEY,
			cook_id text NOT NULL,
			title text NOT NULL,
			description text,
			price real NOT NULL,
			currency text,
			is_available numeric,
			quantity_available integer,
			prep_time_minutes integer,
			pickup_location text,
			campus_id text,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE dish_images (
			id text PRIMARY KEY,
			dish_id text NOT NULL,
			url text NOT NULL,
			sort_order integer,
			created_at datetime
		)`,
		`CREATE TABLE tags (
			id text PRIMARY KEY,
			name text NOT NULL UNIQUE
		)`,
		`CREATE TABLE dish_tags (
			dish_id text,
			tag_id text,
			PRIMARY KEY (dish_id, tag_id)
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func newStoredDish(cookID uuid.UUID, title string) *entities.Dish {
	return &entities.Dish{
		ID:          uuid.New(),
		CookID:      cookID,
		Title:       title,
		Price:       4.50,
		Currency:    "USD",
		IsAvailable: true,
	}
}

func TestCreateWithAssetsReusesTagRowsAcrossDishes(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)
	cookID := uuid.New()

	first := newStoredDish(cookID, "first vegan dish")
	require.NoError(t, repo.CreateWithAssets(context.Background(), first, nil, []string{"vegan", "halal"}))

	second := newStoredDish(cookID, "second vegan dish")
	require.NoError(t, repo.CreateWithAssets(context.Background(), second, nil, []string{"vegan"}))

	var tagCount int64
	require.NoError(t, db.Model(&entities.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(2), tagCount)

	var veganTag entities.Tag
	require.NoError(t, db.Where("name = ?", "vegan").First(&veganTag).Error)

	var linkCount int64
	require.NoError(t, db.Model(&entities.DishTag{}).Where("tag_id = ?", veganTag.ID).Count(&linkCount).Error)
	assert.Equal(t, int64(2), linkCount)

	names, err := repo.GetTagNames(context.Background(), []uuid.UUID{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"halal", "vegan"}, names[first.ID])
	assert.Equal(t, []string{"vegan"}, names[second.ID])
}

func TestCreateWithAssetsPersistsImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)

	d := newStoredDish(uuid.New(), "photogenic dish")
	images := []*entities.DishImage{
		{ID: uuid.New(), URL: "https://img.test/a.jpg", SortOrder: 0},
		{ID: uuid.New(), URL: "https://img.test/b.jpg", SortOrder: 1},
	}
	require.NoError(t, repo.CreateWithAssets(context.Background(), d, images, nil))

	stored, err := repo.GetImages(context.Background(), []uuid.UUID{d.ID})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "https://img.test/a.jpg", stored[0].URL)
	assert.Equal(t, d.ID, stored[0].DishID)
	assert.Equal(t, "https://img.test/b.jpg", stored[1].URL)
}
