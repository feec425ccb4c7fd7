package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openci/openci-backend/internal/projects/domain"
)

func setupRouter(t *testing.T) (*gin.Engine, *mockProjects, *mockPlans) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	projects := &mockProjects{}
	plans := &mockPlans{}
	t.Cleanup(func() {
		projects.AssertExpectations(t)
		plans.AssertExpectations(t)
	})

	router := gin.New()
	New(projects, plans, zerolog.Nop()).Register(router.Group("/api/v1"))
	return router, projects, plans
}

func do(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestGetProject(t *testing.T) {
	t.Run("returns the project without its surrogate key", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		guid := uuid.New()
		now := time.Now().UTC()
		projects.On("Get", mock.Anything, guid).
			Return(&domain.Project{ID: 77, GUID: guid, Name: "Test", CreationTime: now, ModificationTime: now}, nil)

		rr := do(router, http.MethodGet, "/api/v1/projects/"+guid.String(), nil)
		require.Equal(t, http.StatusOK, rr.Code)

		body := decode(t, rr)
		project := body["project"].(map[string]any)
		assert.Equal(t, guid.String(), project["guid"])
		assert.Equal(t, "Test", project["name"])
		assert.NotContains(t, project, "id")
		assert.NotContains(t, project, "ID")
	})

	t.Run("missing project is a bad request", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		guid := uuid.New()
		projects.On("Get", mock.Anything, guid).Return(nil, domain.NewNotFound(domain.EntityProject, guid))

		rr := do(router, http.MethodGet, "/api/v1/projects/"+guid.String(), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, false, decode(t, rr)["ok"])
	})

	t.Run("malformed guid is a bad request", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		rr := do(router, http.MethodGet, "/api/v1/projects/not-a-guid", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure is a server error", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		guid := uuid.New()
		projects.On("Get", mock.Anything, guid).Return(nil, errors.New("connection refused"))

		rr := do(router, http.MethodGet, "/api/v1/projects/"+guid.String(), nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestListProjects(t *testing.T) {
	router, projects, _ := setupRouter(t)
	projects.On("List", mock.Anything).Return([]domain.Project{{GUID: uuid.New()}, {GUID: uuid.New()}}, nil)

	rr := do(router, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode(t, rr)["projects"], 2)
}

func TestCreateProject(t *testing.T) {
	t.Run("returns the created project", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		guid := uuid.New()
		projects.On("Create", mock.Anything, domain.CreateProjectModel{Name: "P1", Description: "d"}).
			Return(&domain.Project{GUID: guid, Name: "P1", Description: "d"}, nil)

		rr := do(router, http.MethodPost, "/api/v1/projects", map[string]any{"name": "  P1 ", "description": "d"})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, guid.String(), decode(t, rr)["project"].(map[string]any)["guid"])
	})

	t.Run("name is required", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		rr := do(router, http.MethodPost, "/api/v1/projects", map[string]any{"description": "d"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure is a server error", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		projects.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("unique violation"))

		rr := do(router, http.MethodPost, "/api/v1/projects", map[string]any{"name": "P"})
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUpdateProject(t *testing.T) {
	t.Run("returns the updated project", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		guid := uuid.New()
		projects.On("Update", mock.Anything, guid, domain.UpdateProjectModel{Name: "P2"}).
			Return(&domain.Project{GUID: guid, Name: "P2"}, nil)

		rr := do(router, http.MethodPut, "/api/v1/projects/"+guid.String(), map[string]any{"name": "P2"})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "P2", decode(t, rr)["project"].(map[string]any)["name"])
	})

	t.Run("missing project is a bad request", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		guid := uuid.New()
		projects.On("Update", mock.Anything, guid, mock.Anything).
			Return(nil, fmt.Errorf("update: %w", domain.NewNotFound(domain.EntityProject, guid)))

		rr := do(router, http.MethodPut, "/api/v1/projects/"+guid.String(), map[string]any{"name": "P2"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decode(t, rr)["error"], guid.String())
	})
}

func TestDeleteProject(t *testing.T) {
	t.Run("deleted is ok", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		guid := uuid.New()
		projects.On("Delete", mock.Anything, guid).Return(true, nil)

		rr := do(router, http.MethodDelete, "/api/v1/projects/"+guid.String(), nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("nothing deleted is a bad request", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		guid := uuid.New()
		projects.On("Delete", mock.Anything, guid).Return(false, nil)

		rr := do(router, http.MethodDelete, "/api/v1/projects/"+guid.String(), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure is a server error", func(t *testing.T) {
		router, projects, _ := setupRouter(t)
		guid := uuid.New()
		projects.On("Delete", mock.Anything, guid).Return(false, errors.New("deadlock detected"))

		rr := do(router, http.MethodDelete, "/api/v1/projects/"+guid.String(), nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestListProjectPlans(t *testing.T) {
	router, _, plans := setupRouter(t)
	guid := uuid.New()
	plans.On("ListForProject", mock.Anything, guid).Return([]domain.Plan{}, nil)

	rr := do(router, http.MethodGet, "/api/v1/projects/"+guid.String()+"/plans", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode(t, rr)["plans"])
}
