// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/form"
	"github.com/taskdeck/taskdeck/internal/infra/config"
	"github.com/taskdeck/taskdeck/internal/infra/logging"
	"github.com/taskdeck/taskdeck/internal/infra/memstore"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks        domain.TaskRepository
	Clock        domain.Clock
	ConfigLoader domain.ConfigLoader
	Logger       domain.Logger

	// Effective configuration loaded at startup
	Config *domain.Config

	logCloser *logging.Logger
}

// New creates a new Container rooted at the given working directory.
// The task store is seeded per configuration.
func New(workDir string) (*Container, error) {
	clock := domain.SystemClock{}

	configLoader := config.NewLoader(workDir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.Log.Path, logging.ParseLevel(cfg.Log.Level))
	if err := cfg.Validate(); err != nil {
		logger.Warn("config", fmt.Sprintf("ignoring invalid setting: %v", err))
	}

	store := memstore.New(clock)
	if cfg.Seed.Enabled {
		if cfg.Seed.File != "" {
			if err := memstore.SeedFromFile(store, clock, cfg.Seed.File); err != nil {
				_ = logger.Close()
				return nil, fmt.Errorf("seed from %s: %w", cfg.Seed.File, err)
			}
		} else if err := memstore.SeedBuiltin(store, clock); err != nil {
			_ = logger.Close()
			return nil, fmt.Errorf("seed builtin tasks: %w", err)
		}
	}
	logger.Info("app", fmt.Sprintf("started with %d seeded task(s)", store.Len()))

	return &Container{
		Tasks:        store,
		Clock:        clock,
		ConfigLoader: configLoader,
		Logger:       logger,
		Config:       cfg,
		logCloser:    logger,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger, cfg *domain.Config) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return &Container{
		Tasks:  tasks,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.logCloser != nil {
		return c.logCloser.Close()
	}
	return nil
}

// WorkDir returns the directory configuration is resolved against.
func WorkDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Clock, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// TaskStatsUseCase returns a new TaskStats use case.
func (c *Container) TaskStatsUseCase() *usecase.TaskStats {
	return usecase.NewTaskStats(c.Tasks, c.Clock)
}

// FormSink returns a form.Sink routing submissions to the add and edit
// use cases.
func (c *Container) FormSink() form.Sink {
	return &formSink{c: c}
}

type formSink struct {
	c *Container
}

func (s *formSink) Add(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	out, err := s.c.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{Draft: draft})
	if err != nil {
		return nil, err
	}
	return out.Task, nil
}

func (s *formSink) Update(ctx context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error) {
	out, err := s.c.EditTaskUseCase().Execute(ctx, usecase.EditTaskInput{TaskID: id, Draft: draft})
	if err != nil {
		return nil, err
	}
	return out.Task, nil
}
