package services

import (
	"context"

	"catalog-backend/internal/query"
	"catalog-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// movieAuthorizedFields is the whitelist for movie create/update payloads.
// The "categories" key is handled separately and never reaches this check.
var movieAuthorizedFields = []string{
	"location_id",
	"title",
	"french_title",
	"remarks",
	"actors",
	"director",
	"year",
	"duration",
	"is_dvd",
	"is_bluray",
	"is_digital",
	"category_id",
}

var movieFieldRules = map[string]string{
	"year":     "gte=1900,lte=2100",
	"duration": "gte=0,lte=1000",
}

type MovieService interface {
	GetAllMovies(ctx context.Context, params map[string]string) ([]repository.Record, error)
	GetMovieByID(ctx context.Context, id uint) (repository.Record, error)
	CreateMovie(ctx context.Context, payload map[string]interface{}) (uint, error)
	UpdateMovie(ctx context.Context, id uint, payload map[string]interface{}) (bool, error)
	DeleteMovie(ctx context.Context, id uint) error
	CountMovies(ctx context.Context, title string) (int64, error)
}

type movieService struct {
	repo   repository.MovieRepository
	logger *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, logger *logrus.Logger) MovieService {
	return &movieService{repo: repo, logger: logger}
}

func (s *movieService) GetAllMovies(ctx context.Context, params map[string]string) ([]repository.Record, error) {
	plan, err := query.Build(repository.MovieQuery, params)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, plan)
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (repository.Record, error) {
	s.logger.WithField("id", id).Debug("Getting movie")
	return s.repo.FindByID(ctx, id)
}

func (s *movieService) CreateMovie(ctx context.Context, payload map[string]interface{}) (uint, error) {
	categoryIDs, _, err := extractCategoryIDs(payload)
	if err != nil {
		return 0, err
	}
	flds, err := prepareFields(movieAuthorizedFields, movieFieldRules, payload)
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
	s.logger.WithField("id", id).Debug("Movie successfully created")
	return id, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, payload map[string]interface{}) (bool, error) {
	categoryIDs, replaceCategories, err := extractCategoryIDs(payload)
	if err != nil {
		return false, err
	}
	flds, err := prepareFields(movieAuthorizedFields, movieFieldRules, payload)
	if err != nil {
		return false, err
	}

	modified, err := s.repo.Update(ctx, id, flds, categoryIDs, replaceCategories)
	if err != nil {
		return false, err
	}
	if modified {
		s.logger.WithField("id", id).Debug("Movie successfully modified")
	}
	return modified, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	s.logger.WithField("id", id).Debug("Deleting movie")
	return s.repo.Delete(ctx, id)
}

func (s *movieService) CountMovies(ctx context.Context, title string) (int64, error) {
	return s.repo.Count(ctx, title)
}
