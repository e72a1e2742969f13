package services

import (
	"context"

	"catalog-backend/internal/models"
	"catalog-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var locationAuthorizedFields = []string{
	"location",
	"is_physical",
}

var locationFieldRules = map[string]string{
	"location": "max=255",
}

type LocationService interface {
	GetAllLocations(ctx context.Context) ([]models.Location, error)
	GetLocationByID(ctx context.Context, id uint) (*models.Location, error)
	CreateLocation(ctx context.Context, payload map[string]interface{}) (uint, error)
	UpdateLocation(ctx context.Context, id uint, payload map[string]interface{}) (bool, error)
	DeleteLocation(ctx context.Context, id uint) error
	CountForLocation(ctx context.Context, id uint) (*models.LocationElementCount, error)
	CountForLocations(ctx context.Context) ([]models.LocationCount, error)
}

type locationService struct {
	repo   repository.LocationRepository
	logger *logrus.Logger
}

func NewLocationService(repo repository.LocationRepository, logger *logrus.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

func (s *locationService) GetAllLocations(ctx context.Context) ([]models.Location, error) {
	s.logger.Debug("Getting all locations")
	return s.repo.FindAll(ctx)
}

func (s *locationService) GetLocationByID(ctx context.Context, id uint) (*models.Location, error) {
	s.logger.WithField("id", id).Debug("Getting location")
	return s.repo.FindByID(ctx, id)
}

func (s *locationService) CreateLocation(ctx context.Context, payload map[string]interface{}) (uint, error) {
	flds, err := prepareFields(locationAuthorizedFields, locationFieldRules, payload)
	if err != nil {
		return 0, err
	}
	if err := requireFields(flds, "location"); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, flds)
	if err != nil {
		return 0, err
	}
	s.logger.WithField("id", id).Debug("Location successfully created")
	return id, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, id uint, payload map[string]interface{}) (bool, error) {
	flds, err := prepareFields(locationAuthorizedFields, locationFieldRules, payload)
	if err != nil {
		return false, err
	}
	return s.repo.Update(ctx, id, flds)
}

// DeleteLocation removes the location and, through the datastore's cascade,
// every movie and serie stored there.
func (s *locationService) DeleteLocation(ctx context.Context, id uint) error {
	s.logger.WithField("id", id).Debug("Deleting location")
	return s.repo.Delete(ctx, id)
}

func (s *locationService) CountForLocation(ctx context.Context, id uint) (*models.LocationElementCount, error) {
	return s.repo.CountForLocation(ctx, id)
}

func (s *locationService) CountForLocations(ctx context.Context) ([]models.LocationCount, error) {
	return s.repo.CountForLocations(ctx)
}
