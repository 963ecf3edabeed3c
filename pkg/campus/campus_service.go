package campus

import (
	"context"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"

	"github.com/google/uuid"
)

type (
	CampusService interface {
		CreateCampus(ctx context.Context, req domain.CreateCampusRequest) (domain.CampusResponse, error)
		GetCampuses(ctx context.Context) ([]domain.CampusResponse, error)
		GetTags(ctx context.Context) ([]string, error)
	}

	campusService struct {
		campusRepository CampusRepository
	}
)

func NewCampusService(campusRepository CampusRepository) CampusService {
	return &campusService{campusRepository: campusRepository}
}

func toCampusResponse(campus *entities.Campus) domain.CampusResponse {
	return domain.CampusResponse{
		ID:        campus.ID.String(),
		Name:      campus.Name,
		Address:   campus.Address,
		CreatedAt: campus.CreatedAt,
	}
}

func (s *campusService) CreateCampus(ctx context.Context, req domain.CreateCampusRequest) (domain.CampusResponse, error) {
	campus := &entities.Campus{
		ID:      uuid.New(),
		Name:    req.Name,
		Address: req.Address,
	}
	if err := s.campusRepository.Create(ctx, campus); err != nil {
		return domain.CampusResponse{}, err
	}
	return toCampusResponse(campus), nil
}

func (s *campusService) GetCampuses(ctx context.Context) ([]domain.CampusResponse, error) {
	campuses, err := s.campusRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CampusResponse, 0, len(campuses))
	for _, campus := range campuses {
		response = append(response, toCampusResponse(campus))
	}
	return response, nil
}

func (s *campusService) GetTags(ctx context.Context) ([]string, error) {
	names, err := s.campusRepository.ListTagNames(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
