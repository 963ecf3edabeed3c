package rating

import (
	"context"
	"testing"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"
	"foodconnect-backend/pkg/dish"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRatingRepository struct {
	ratings []*entities.Rating
}

func (f *fakeRatingRepository) Create(_ context.Context, rating *entities.Rating) error {
	f.ratings = append(f.ratings, rating)
	return nil
}

func (f *fakeRatingRepository) GetByUserAndDish(_ context.Context, userID, dishID string) (*entities.Rating, error) {
	for _, r := range f.ratings {
		if r.UserID.String() == userID && r.DishID.String() == dishID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRatingRepository) ListByDish(_ context.Context, dishID string) ([]*entities.Rating, error) {
	var out []*entities.Rating
	for _, r := range f.ratings {
		if r.DishID.String() == dishID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDishRepository struct {
	dishes map[string]*entities.Dish
}

func newFakeDishRepository(dishes ...*entities.Dish) *fakeDishRepository {
	f := &fakeDishRepository{dishes: map[string]*entities.Dish{}}
	for _, d := range dishes {
		f.dishes[d.ID.String()] = d
	}
	return f
}

func (f *fakeDishRepository) ListAvailable(_ context.Context, _ domain.ListDishesQuery) ([]*entities.Dish, error) {
	return nil, nil
}

func (f *fakeDishRepository) GetByID(_ context.Context, id string) (*entities.Dish, error) {
	d, ok := f.dishes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDishRepository) GetImages(_ context.Context, _ []uuid.UUID) ([]*entities.DishImage, error) {
	return nil, nil
}

func (f *fakeDishRepository) GetTagNames(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]string, error) {
	return map[uuid.UUID][]string{}, nil
}

func (f *fakeDishRepository) GetRatingStats(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]dish.RatingStat, error) {
	return map[uuid.UUID]dish.RatingStat{}, nil
}

func (f *fakeDishRepository) CreateWithAssets(_ context.Context, d *entities.Dish, _ []*entities.DishImage, _ []string) error {
	f.dishes[d.ID.String()] = d
	return nil
}

func (f *fakeDishRepository) AddImage(_ context.Context, _ *entities.DishImage) error {
	return nil
}

func TestCreateRating(t *testing.T) {
	d := &entities.Dish{ID: uuid.New(), CookID: uuid.New(), Title: "dish"}
	service := NewRatingService(&fakeRatingRepository{}, newFakeDishRepository(d))

	res, err := service.CreateRating(context.Background(), domain.CreateRatingRequest{
		DishID:  d.ID.String(),
		Score:   4,
		Comment: "pretty good",
	}, uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, d.ID.String(), res.DishID)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, "pretty good", res.Comment)
}

func TestCreateRatingRejectsSecondRatingForSameDish(t *testing.T) {
	d := &entities.Dish{ID: uuid.New(), CookID: uuid.New(), Title: "dish"}
	service := NewRatingService(&fakeRatingRepository{}, newFakeDishRepository(d))
	userID := uuid.New().String()

	_, err := service.CreateRating(context.Background(), domain.CreateRatingRequest{
		DishID: d.ID.String(),
		Score:  5,
	}, userID)
	require.NoError(t, err)

	_, err = service.CreateRating(context.Background(), domain.CreateRatingRequest{
		DishID: d.ID.String(),
		Score:  1,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrAlreadyRated)
}

func TestCreateRatingAllowsDifferentUsers(t *testing.T) {
	d := &entities.Dish{ID: uuid.New(), CookID: uuid.New(), Title: "dish"}
	repo := &fakeRatingRepository{}
	service := NewRatingService(repo, newFakeDishRepository(d))

	_, err := service.CreateRating(context.Background(), domain.CreateRatingRequest{DishID: d.ID.String(), Score: 5}, uuid.New().String())
	require.NoError(t, err)
	_, err = service.CreateRating(context.Background(), domain.CreateRatingRequest{DishID: d.ID.String(), Score: 3}, uuid.New().String())
	require.NoError(t, err)

	ratings, err := service.GetRatings(context.Background(), d.ID.String())
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}

func TestCreateRatingRejectsUnknownDish(t *testing.T) {
	service := NewRatingService(&fakeRatingRepository{}, newFakeDishRepository())

	_, err := service.CreateRating(context.Background(), domain.CreateRatingRequest{
		DishID: uuid.New().String(),
		Score:  5,
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}
