package services

import (
	"context"

	"catalog-backend/internal/models"
	"catalog-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type StatsService interface {
	GetMoviesByYear(ctx context.Context) ([]models.YearMovieCount, error)
	GetSeriesByYear(ctx context.Context) ([]models.YearSerieCount, error)
	GetFullStats(ctx context.Context) (*models.FullStats, error)
}

type statsService struct {
	repo   repository.StatsRepository
	logger *logrus.Logger
}

func NewStatsService(repo repository.StatsRepository, logger *logrus.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

func (s *statsService) GetMoviesByYear(ctx context.Context) ([]models.YearMovieCount, error) {
	return s.repo.CountMoviesByYear(ctx)
}

func (s *statsService) GetSeriesByYear(ctx context.Context) ([]models.YearSerieCount, error) {
	return s.repo.CountSeriesByYear(ctx)
}

func (s *statsService) GetFullStats(ctx context.Context) (*models.FullStats, error) {
	return s.repo.FullStats(ctx)
}
