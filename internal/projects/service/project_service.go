package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openci/openci-backend/internal/events"
	"github.com/openci/openci-backend/internal/projects/domain"
	"github.com/openci/openci-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	store     *repository.Store
	publisher events.Publisher
	logger    zerolog.Logger
	newGUID   func() uuid.UUID
}

// NewProjectService creates a new project service
func NewProjectService(store *repository.Store, publisher events.Publisher, logger zerolog.Logger) *ProjectService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ProjectService{
		store:     store,
		publisher: publisher,
		logger:    logger.With().Str("component", "project_service").Logger(),
		newGUID:   uuid.New,
	}
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.Projects().List(ctx)
}

// Get returns the project or an EntityNotFoundError
func (s *ProjectService) Get(ctx context.Context, guid uuid.UUID) (*domain.Project, error) {
	p, err := s.store.Projects().GetByGUID(ctx, guid)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if p == nil {
		return nil, domain.NewNotFound(domain.EntityProject, guid)
	}
	return p, nil
}

// Create assigns a fresh guid and stores the project
func (s *ProjectService) Create(ctx context.Context, in domain.CreateProjectModel) (*domain.Project, error) {
	var created *domain.Project
	err := insertWithFreshGUID(s.newGUID, func(guid uuid.UUID) error {
		p, err := s.store.Projects().Create(ctx, guid, in)
		if err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:       events.TypeCreated,
		Entity:     domain.EntityProject,
		GUID:       created.GUID,
		OccurredAt: created.CreationTime,
	})
	return created, nil
}

// Update overwrites the project's name and description. An unknown guid
// yields EntityNotFoundError: every update touches modification_time, so no
// matching row can only mean the project does not exist.
func (s *ProjectService) Update(ctx context.Context, guid uuid.UUID, in domain.UpdateProjectModel) (*domain.Project, error) {
	p, err := s.store.Projects().Update(ctx, guid, in)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if p == nil {
		return nil, domain.NewNotFound(domain.EntityProject, guid)
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:       events.TypeUpdated,
		Entity:     domain.EntityProject,
		GUID:       p.GUID,
		OccurredAt: p.ModificationTime,
	})
	return p, nil
}

// Delete hard-deletes the project and reports whether it existed. Plans of
// the project are kept and become orphaned.
func (s *ProjectService) Delete(ctx context.Context, guid uuid.UUID) (bool, error) {
	n, err := s.store.Projects().Delete(ctx, guid)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	if n != 1 {
		return false, nil
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:   events.TypeDeleted,
		Entity: domain.EntityProject,
		GUID:   guid,
	})
	return true, nil
}
