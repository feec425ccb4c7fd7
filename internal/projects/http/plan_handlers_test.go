package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openci/openci-backend/internal/projects/domain"
)

func TestCreatePlan(t *testing.T) {
	t.Run("returns the created plan", func(t *testing.T) {
		router, _, plans := setupRouter(t)
		projectGUID, planGUID := uuid.New(), uuid.New()
		plans.On("Create", mock.Anything, domain.CreatePlanModel{ProjectGUID: projectGUID, Name: "Plan1", Enabled: true}).
			Return(&domain.Plan{GUID: planGUID, ProjectID: 3, ProjectGUID: projectGUID, Name: "Plan1", Enabled: true}, nil)

		rr := do(router, http.MethodPost, "/api/v1/plans", map[string]any{
			"name":         "Plan1",
			"project_guid": projectGUID.String(),
			"enabled":      true,
		})
		require.Equal(t, http.StatusOK, rr.Code)

		plan := decode(t, rr)["plan"].(map[string]any)
		assert.Equal(t, projectGUID.String(), plan["project_guid"])
		assert.Equal(t, true, plan["enabled"])
		assert.NotContains(t, plan, "project_id")
	})

	t.Run("unknown project is a bad request", func(t *testing.T) {
		router, _, plans := setupRouter(t)
		projectGUID := uuid.New()
		plans.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.NewNotFound(domain.EntityProject, projectGUID))

		rr := do(router, http.MethodPost, "/api/v1/plans", map[string]any{
			"name":         "Plan1",
			"project_guid": projectGUID.String(),
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decode(t, rr)["error"], "project")
	})

	t.Run("project guid must be a guid", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		rr := do(router, http.MethodPost, "/api/v1/plans", map[string]any{
			"name":         "Plan1",
			"project_guid": "42",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("project guid is required", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		rr := do(router, http.MethodPost, "/api/v1/plans", map[string]any{"name": "Plan1"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetPlan(t *testing.T) {
	t.Run("returns the plan", func(t *testing.T) {
		router, _, plans := setupRouter(t)
		guid := uuid.New()
		plans.On("Get", mock.Anything, guid).Return(&domain.Plan{GUID: guid, Name: "Test"}, nil)

		rr := do(router, http.MethodGet, "/api/v1/plans/"+guid.String(), nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Test", decode(t, rr)["plan"].(map[string]any)["name"])
	})

	t.Run("missing plan is a bad request", func(t *testing.T) {
		router, _, plans := setupRouter(t)
		guid := uuid.New()
		plans.On("Get", mock.Anything, guid).Return(nil, domain.NewNotFound(domain.EntityPlan, guid))

		rr := do(router, http.MethodGet, "/api/v1/plans/"+guid.String(), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListPlans(t *testing.T) {
	router, _, plans := setupRouter(t)
	plans.On("List", mock.Anything).Return([]domain.Plan{{GUID: uuid.New()}}, nil)

	rr := do(router, http.MethodGet, "/api/v1/plans", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode(t, rr)["plans"], 1)
}

func TestUpdatePlan(t *testing.T) {
	t.Run("returns the updated plan", func(t *testing.T) {
		router, _, plans := setupRouter(t)
		guid := uuid.New()
		plans.On("Update", mock.Anything, guid, domain.UpdatePlanModel{Name: "n", Description: "d", Enabled: false}).
			Return(&domain.Plan{GUID: guid, Name: "n", Description: "d"}, nil)

		rr := do(router, http.MethodPut, "/api/v1/plans/"+guid.String(), map[string]any{"name": "n", "description": "d"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing plan is a bad request", func(t *testing.T) {
		router, _, plans := setupRouter(t)
		guid := uuid.New()
		plans.On("Update", mock.Anything, guid, mock.Anything).Return(nil, domain.NewNotFound(domain.EntityPlan, guid))

		rr := do(router, http.MethodPut, "/api/v1/plans/"+guid.String(), map[string]any{"name": "n"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid body is a bad request", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		rr := do(router, http.MethodPut, "/api/v1/plans/"+uuid.NewString(), map[string]any{"enabled": true})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeletePlan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, _, plans := setupRouter(t)
		guid := uuid.New()
		plans.On("Delete", mock.Anything, guid).Return(true, nil)

		rr := do(router, http.MethodDelete, "/api/v1/plans/"+guid.String(), nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unsuccessful delete is a bad request", func(t *testing.T) {
		router, _, plans := setupRouter(t)
		guid := uuid.New()
		plans.On("Delete", mock.Anything, guid).Return(false, nil)

		rr := do(router, http.MethodDelete, "/api/v1/plans/"+guid.String(), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure is a server error", func(t *testing.T) {
		router, _, plans := setupRouter(t)
		guid := uuid.New()
		plans.On("Delete", mock.Anything, guid).Return(false, errors.New("boom"))

		rr := do(router, http.MethodDelete, "/api/v1/plans/"+guid.String(), nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
