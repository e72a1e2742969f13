package services

import (
	"context"

	"catalog-backend/internal/query"
	"catalog-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var serieAuthorizedFields = []string{
	"location_id",
	"title",
	"season",
	"episodes",
	"year",
	"remarks",
	"is_dvd",
	"is_bluray",
	"is_digital",
	"category_id",
}

var serieFieldRules = map[string]string{
	"season":   "gte=0,lte=100",
	"episodes": "gte=0,lte=1000",
	"year":     "gte=1900,lte=2100",
}

type SerieService interface {
	GetAllSeries(ctx context.Context, params map[string]string) ([]repository.Record, error)
	GetSerieByID(ctx context.Context, id uint) (repository.Record, error)
	CreateSerie(ctx context.Context, payload map[string]interface{}) (uint, error)
	UpdateSerie(ctx context.Context, id uint, payload map[string]interface{}) (bool, error)
	DeleteSerie(ctx context.Context, id uint) error
	CountSeries(ctx context.Context, title string) (int64, error)
}

type serieService struct {
	repo   repository.SerieRepository
	logger *logrus.Logger
}

func NewSerieService(repo repository.SerieRepository, logger *logrus.Logger) SerieService {
	return &serieService{repo: repo, logger: logger}
}

func (s *serieService) GetAllSeries(ctx context.Context, params map[string]string) ([]repository.Record, error) {
	plan, err := query.Build(repository.SerieQuery, params)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, plan)
}

func (s *serieService) GetSerieByID(ctx context.Context, id uint) (repository.Record, error) {
	s.logger.WithField("id", id).Debug("Getting serie")
	return s.repo.FindByID(ctx, id)
}

func (s *serieService) CreateSerie(ctx context.Context, payload map[string]interface{}) (uint, error) {
	categoryIDs, _, err := extractCategoryIDs(payload)
	if err != nil {
		return 0, err
	}
	flds, err := prepareFields(serieAuthorizedFields, serieFieldRules, payload)
	if err != nil {
		return 0, err
	}
	if err := requireFields(flds, "location_id", "title"); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, flds, categoryIDs)
	if err != nil {
		return 0, err
	}
	s.logger.WithField("id", id).Debug("Serie successfully created")
	return id, nil
}

func (s *serieService) UpdateSerie(ctx context.Context, id uint, payload map[string]interface{}) (bool, error) {
	categoryIDs, replaceCategories, err := extractCategoryIDs(payload)
	if err != nil {
		return false, err
	}
	flds, err := prepareFields(serieAuthorizedFields, serieFieldRules, payload)
	if err != nil {
		return false, err
	}

	modified, err := s.repo.Update(ctx, id, flds, categoryIDs, replaceCategories)
	if err != nil {
		return false, err
	}
	if modified {
		s.logger.WithField("id", id).Debug("Serie successfully modified")
	}
	return modified, nil
}

func (s *serieService) DeleteSerie(ctx context.Context, id uint) error {
	s.logger.WithField("id", id).Debug("Deleting serie")
	return s.repo.Delete(ctx, id)
}

func (s *serieService) CountSeries(ctx context.Context, title string) (int64, error) {
	return s.repo.Count(ctx, title)
}
