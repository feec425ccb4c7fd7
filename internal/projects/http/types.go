package http

import (
	"context"

	"github.com/google/uuid"

	"github.com/openci/openci-backend/internal/projects/domain"
)

// ProjectOperations is the project surface the handlers call.
type ProjectOperations interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, guid uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, in domain.CreateProjectModel) (*domain.Project, error)
	Update(ctx context.Context, guid uuid.UUID, in domain.UpdateProjectModel) (*domain.Project, error)
	Delete(ctx context.Context, guid uuid.UUID) (bool, error)
}

// PlanOperations is the plan surface the handlers call.
type PlanOperations interface {
	List(ctx context.Context) ([]domain.Plan, error)
	ListForProject(ctx context.Context, projectGUID uuid.UUID) ([]domain.Plan, error)
	Get(ctx context.Context, guid uuid.UUID) (*domain.Plan, error)
	Create(ctx context.Context, in domain.CreatePlanModel) (*domain.Plan, error)
	Update(ctx context.Context, guid uuid.UUID, in domain.UpdatePlanModel) (*domain.Plan, error)
	Delete(ctx context.Context, guid uuid.UUID) (bool, error)
}

type projectReq struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=4000"`
}

type createPlanReq struct {
	ProjectGUID string `json:"project_guid" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=4000"`
	Enabled     bool   `json:"enabled"`
}

type updatePlanReq struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=4000"`
	Enabled     bool   `json:"enabled"`
}
