package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openci/openci-backend/internal/events"
	"github.com/openci/openci-backend/internal/projects/domain"
	"github.com/openci/openci-backend/internal/projects/repository"
	"github.com/openci/openci-backend/internal/storage/postgres"
)

// PlanService handles plan-related business logic
type PlanService struct {
	store     *repository.Store
	publisher events.Publisher
	logger    zerolog.Logger
	newGUID   func() uuid.UUID
}

// NewPlanService creates a new plan service
func NewPlanService(store *repository.Store, publisher events.Publisher, logger zerolog.Logger) *PlanService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &PlanService{
		store:     store,
		publisher: publisher,
		logger:    logger.With().Str("component", "plan_service").Logger(),
		newGUID:   uuid.New,
	}
}

// List returns all plans
func (s *PlanService) List(ctx context.Context) ([]domain.Plan, error) {
	return s.store.Plans().List(ctx)
}

// ListForProject returns the plans referencing projectGUID. An unknown
// project yields an empty list, not an error.
func (s *PlanService) ListForProject(ctx context.Context, projectGUID uuid.UUID) ([]domain.Plan, error) {
	return s.store.Plans().ListByProject(ctx, projectGUID)
}

// Get returns the plan or an EntityNotFoundError
func (s *PlanService) Get(ctx context.Context, guid uuid.UUID) (*domain.Plan, error) {
	p, err := s.store.Plans().GetByGUID(ctx, guid)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if p == nil {
		return nil, domain.NewNotFound(domain.EntityPlan, guid)
	}
	return p, nil
}

// Create stores a plan under an existing project. The project lookup and
// the insert run in one transaction with the project row share-locked; a
// missing project fails with EntityNotFoundError before anything is inserted,
// and so does a foreign key rejection of the insert.
func (s *PlanService) Create(ctx context.Context, in domain.CreatePlanModel) (*domain.Plan, error) {
	var created *domain.Plan
	err := insertWithFreshGUID(s.newGUID, func(guid uuid.UUID) error {
		return s.store.InTx(ctx, func(projects *repository.ProjectRepository, plans *repository.PlanRepository) error {
			projectID, err := projects.IDByGUID(ctx, in.ProjectGUID)
			if err != nil {
				return err
			}
			if projectID == 0 {
				return domain.NewNotFound(domain.EntityProject, in.ProjectGUID)
			}

			p, err := plans.Create(ctx, guid, projectID, in)
			if postgres.IsForeignKeyViolation(err) {
				return domain.NewNotFound(domain.EntityProject, in.ProjectGUID)
			}
			if err != nil {
				return err
			}
			created = p
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	projectGUID := created.ProjectGUID
	publish(ctx, s.publisher, s.logger, events.Event{
		Type:        events.TypeCreated,
		Entity:      domain.EntityPlan,
		GUID:        created.GUID,
		ProjectGUID: &projectGUID,
		OccurredAt:  created.CreationTime,
	})
	return created, nil
}

// Update overwrites name, description and enabled. The parent project is
// not revalidated.
func (s *PlanService) Update(ctx context.Context, guid uuid.UUID, in domain.UpdatePlanModel) (*domain.Plan, error) {
	p, err := s.store.Plans().Update(ctx, guid, in)
	if err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	if p == nil {
		return nil, domain.NewNotFound(domain.EntityPlan, guid)
	}

	projectGUID := p.ProjectGUID
	publish(ctx, s.publisher, s.logger, events.Event{
		Type:        events.TypeUpdated,
		Entity:      domain.EntityPlan,
		GUID:        p.GUID,
		ProjectGUID: &projectGUID,
		OccurredAt:  p.ModificationTime,
	})
	return p, nil
}

// Delete hard-deletes the plan and reports whether it existed.
func (s *PlanService) Delete(ctx context.Context, guid uuid.UUID) (bool, error) {
	n, err := s.store.Plans().Delete(ctx, guid)
	if err != nil {
		return false, fmt.Errorf("delete plan: %w", err)
	}
	if n != 1 {
		return false, nil
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:   events.TypeDeleted,
		Entity: domain.EntityPlan,
		GUID:   guid,
	})
	return true, nil
}
