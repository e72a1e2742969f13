package services

import (
	"context"

	"catalog-backend/internal/models"
	"catalog-backend/internal/query"
	"catalog-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var categoryAuthorizedFields = []string{
	"label",
	"description",
}

var categoryFieldRules = map[string]string{
	"label": "max=32",
}

type CategoryService interface {
	GetAllCategories(ctx context.Context, params map[string]string) ([]repository.Record, error)
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, payload map[string]interface{}) (uint, error)
	UpdateCategory(ctx context.Context, id uint, payload map[string]interface{}) (bool, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type categoryService struct {
	repo   repository.CategoryRepository
	logger *logrus.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *logrus.Logger) CategoryService {
	return &categoryService{repo: repo, logger: logger}
}

func (s *categoryService) GetAllCategories(ctx context.Context, params map[string]string) ([]repository.Record, error) {
	plan, err := query.Build(repository.CategoryQuery, params)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, plan)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) CreateCategory(ctx context.Context, payload map[string]interface{}) (uint, error) {
	flds, err := prepareFields(categoryAuthorizedFields, categoryFieldRules, payload)
	if err != nil {
		return 0, err
	}
	if err := requireFields(flds, "label"); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, flds)
	if err != nil {
		return 0, err
	}
	s.logger.WithField("id", id).Debug("Category successfully created")
	return id, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, payload map[string]interface{}) (bool, error) {
	flds, err := prepareFields(categoryAuthorizedFields, categoryFieldRules, payload)
	if err != nil {
		return false, err
	}
	return s.repo.Update(ctx, id, flds)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	s.logger.WithField("id", id).Debug("Deleting category")
	return s.repo.Delete(ctx, id)
}
