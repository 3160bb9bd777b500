package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zazianopizza/zaziano/internal/domain"
	"github.com/zazianopizza/zaziano/internal/queue"
	"github.com/zazianopizza/zaziano/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CatalogParser reads an external spreadsheet into catalog sections.
type CatalogParser interface {
	ParseCatalog(ctx context.Context, spreadsheetID string) (domain.Catalog, error)
}

type ImportService struct {
	tasks   repo.ImportTaskRepository
	catalog *CatalogService
	parser  CatalogParser
	broker  queue.Broker
	logger  *zap.SugaredLogger
}

func NewImportService(
	tasks repo.ImportTaskRepository,
	catalog *CatalogService,
	parser CatalogParser,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		tasks:   tasks,
		catalog: catalog,
		parser:  parser,
		broker:  broker,
		logger:  logger,
	}
}

func (s *ImportService) CreateImportTask(ctx context.Context, spreadsheetID string) (primitive.ObjectID, error) {
	task := &domain.ImportTask{
		Status:        domain.ImportStatusQueued,
		SpreadsheetID: spreadsheetID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.CatalogImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueCatalogImport, messageBytes); err != nil {
		_ = s.tasks.UpdateStatus(ctx, task.ID, domain.ImportStatusFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("catalog import queued", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID)

	return task.ID, nil
}

func (s *ImportService) GetTask(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *ImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if s.parser == nil {
		_ = s.tasks.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, "catalog import is not configured")
		return fmt.Errorf("catalog import is not configured")
	}

	if err := s.tasks.UpdateStatus(ctx, taskID, domain.ImportStatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing catalog import", "task_id", taskID.Hex())

	catalog, err := s.parser.ParseCatalog(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse catalog", "task_id", taskID.Hex(), "error", err)
		_ = s.tasks.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, err.Error())
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	result, err := s.catalog.ReplaceCatalog(ctx, catalog)
	if err != nil {
		s.logger.Errorw("failed to save imported catalog", "task_id", taskID.Hex(), "error", err)
		_ = s.tasks.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, err.Error())
		return fmt.Errorf("failed to save imported catalog: %w", err)
	}

	if err := s.tasks.Complete(ctx, taskID, result.Created, result.Updated, result.Failed); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	s.logger.Infow("catalog import completed", "task_id", taskID.Hex(),
		"created", result.Created, "updated", result.Updated, "failed", result.Failed)

	return nil
}
