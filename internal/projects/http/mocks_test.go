package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/openci/openci-backend/internal/projects/domain"
)

type mockProjects struct {
	mock.Mock
}

func (m *mockProjects) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Project)
	return items, args.Error(1)
}

func (m *mockProjects) Get(ctx context.Context, guid uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, guid)
	p, _ := args.Get(0).(*domain.Project)
	return p, args.Error(1)
}

func (m *mockProjects) Create(ctx context.Context, in domain.CreateProjectModel) (*domain.Project, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*domain.Project)
	return p, args.Error(1)
}

func (m *mockProjects) Update(ctx context.Context, guid uuid.UUID, in domain.UpdateProjectModel) (*domain.Project, error) {
	args := m.Called(ctx, guid, in)
	p, _ := args.Get(0).(*domain.Project)
	return p, args.Error(1)
}

func (m *mockProjects) Delete(ctx context.Context, guid uuid.UUID) (bool, error) {
	args := m.Called(ctx, guid)
	return args.Bool(0), args.Error(1)
}

type mockPlans struct {
	mock.Mock
}

func (m *mockPlans) List(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Plan)
	return items, args.Error(1)
}

func (m *mockPlans) ListForProject(ctx context.Context, projectGUID uuid.UUID) ([]domain.Plan, error) {
	args := m.Called(ctx, projectGUID)
	items, _ := args.Get(0).([]domain.Plan)
	return items, args.Error(1)
}

func (m *mockPlans) Get(ctx context.Context, guid uuid.UUID) (*domain.Plan, error) {
	args := m.Called(ctx, guid)
	p, _ := args.Get(0).(*domain.Plan)
	return p, args.Error(1)
}

func (m *mockPlans) Create(ctx context.Context, in domain.CreatePlanModel) (*domain.Plan, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*domain.Plan)
	return p, args.Error(1)
}

func (m *mockPlans) Update(ctx context.Context, guid uuid.UUID, in domain.UpdatePlanModel) (*domain.Plan, error) {
	args := m.Called(ctx, guid, in)
	p, _ := args.Get(0).(*domain.Plan)
	return p, args.Error(1)
}

func (m *mockPlans) Delete(ctx context.Context, guid uuid.UUID) (bool, error) {
	args := m.Called(ctx, guid)
	return args.Bool(0), args.Error(1)
}
