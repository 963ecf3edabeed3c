package campus

import (
	"context"
	"testing"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCampusRepository struct {
	campuses []*entities.Campus
	tagNames []string
}

func (f *fakeCampusRepository) Create(_ context.Context, campus *entities.Campus) error {
	f.campuses = append(f.campuses, campus)
	return nil
}

func (f *fakeCampusRepository) List(_ context.Context) ([]*entities.Campus, error) {
	return f.campuses, nil
}

func (f *fakeCampusRepository) ListTagNames(_ context.Context) ([]string, error) {
	return f.tagNames, nil
}

func TestCreateAndListCampuses(t *testing.T) {
	repo := &fakeCampusRepository{}
	service := NewCampusService(repo)

	created, err := service.CreateCampus(context.Background(), domain.CreateCampusRequest{
		Name:    "State University",
		Address: "1 College Ave",
	})
	require.NoError(t, err)
	assert.Equal(t, "State University", created.Name)
	assert.NotEmpty(t, created.ID)

	campuses, err := service.GetCampuses(context.Background())
	require.NoError(t, err)
	require.Len(t, campuses, 1)
	assert.Equal(t, "1 College Ave", campuses[0].Address)
}

func TestGetTagsReturnsEmptySliceWhenNoneExist(t *testing.T) {
	service := NewCampusService(&fakeCampusRepository{})

	tags, err := service.GetTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{}, tags)
}

func TestGetTags(t *testing.T) {
	service := NewCampusService(&fakeCampusRepository{tagNames: []string{"halal", "vegan"}})

	tags, err := service.GetTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"halal", "vegan"}, tags)
}
