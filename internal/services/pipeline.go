package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/dretl/pkg/dretl"
)

// SuccessMessage is the final progress line of a successful run.
const SuccessMessage = "Cleaned data saved to database!"

// PipelineService runs the Loader -> Cleaner -> Writer sequence.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type PipelineService struct {
	loader  dretl.DatasetLoader
	cleaner dretl.DatasetCleaner
	writer  dretl.TableWriter
	logger  dretl.Logger
	success func(string) string
}

// Option customizes a PipelineService.
type Option func(*PipelineService)

// WithSuccessRenderer decorates the final progress line, e.g. with terminal styling.
func WithSuccessRenderer(render func(string) string) Option {
	return func(s *PipelineService) {
		if render != nil {
			s.success = render
		}
	}
}

// NewPipelineService creates a new PipelineService with all dependencies injected.
// Panics on nil dependencies.
func NewPipelineService(
	loader dretl.DatasetLoader,
	cleaner dretl.DatasetCleaner,
	writer dretl.TableWriter,
	logger dretl.Logger,
	opts ...Option,
) *PipelineService {
	if loader == nil {
		panic("loader cannot be nil")
	}
	if cleaner == nil {
		panic("cleaner cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	svc := &PipelineService{
		loader:  loader,
		cleaner: cleaner,
		writer:  writer,
		logger:  logger,
		success: func(msg string) string { return msg },
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Run loads, cleans and saves the datasets named in config, reporting each
// stage on the logger's Info channel. The first failing stage aborts the run.
func (s *PipelineService) Run(ctx context.Context, config dretl.PipelineConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	s.logger.Info("Loading data...\n    MESSAGES: %s\n    CATEGORIES: %s", config.MessagesPath, config.CategoriesPath)
	merged, err := s.loader.Load(config.MessagesPath, config.CategoriesPath)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	s.logger.Info("Cleaning data...")
	cleaned, err := s.cleaner.Clean(merged)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	s.logger.Verbose("Cleaned table: %d rows, %d columns", cleaned.Len(), len(cleaned.Columns))

	s.logger.Info("Saving data...\n    DATABASE: %s", config.DatabasePath)
	if err := s.writer.Write(ctx, cleaned, config.DatabasePath); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}

	s.logger.Info("%s", s.success(SuccessMessage))
	return nil
}
