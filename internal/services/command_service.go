package services

import (
	"context"

	"catalog-backend/internal/models"
	"catalog-backend/internal/query"
	"catalog-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var commandAuthorizedFields = []string{
	"title",
	"remarks",
}

type CommandService interface {
	GetAllCommands(ctx context.Context, params map[string]string) ([]models.Command, error)
	GetCommandByID(ctx context.Context, id uint) (*models.Command, error)
	CreateCommand(ctx context.Context, payload map[string]interface{}) (uint, error)
	UpdateCommand(ctx context.Context, id uint, payload map[string]interface{}) (bool, error)
	DeleteCommand(ctx context.Context, id uint) error
}

type commandService struct {
	repo   repository.CommandRepository
	logger *logrus.Logger
}

func NewCommandService(repo repository.CommandRepository, logger *logrus.Logger) CommandService {
	return &commandService{repo: repo, logger: logger}
}

func (s *commandService) GetAllCommands(ctx context.Context, params map[string]string) ([]models.Command, error) {
	plan, err := query.Build(repository.CommandQuery, params)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, plan)
}

func (s *commandService) GetCommandByID(ctx context.Context, id uint) (*models.Command, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *commandService) CreateCommand(ctx context.Context, payload map[string]interface{}) (uint, error) {
	flds, err := prepareFields(commandAuthorizedFields, nil, payload)
	if err != nil {
		return 0, err
	}
	if err := requireFields(flds, "title"); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, flds)
	if err != nil {
		return 0, err
	}
	s.logger.WithField("id", id).Debug("Command successfully created")
	return id, nil
}

func (s *commandService) UpdateCommand(ctx context.Context, id uint, payload map[string]interface{}) (bool, error) {
	flds, err := prepareFields(commandAuthorizedFields, nil, payload)
	if err != nil {
		return false, err
	}
	return s.repo.Update(ctx, id, flds)
}

func (s *commandService) DeleteCommand(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
