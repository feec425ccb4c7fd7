package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openci/openci-backend/internal/projects/domain"
)

func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) getProject(c *gin.Context) {
	guid, ok := guidParam(c)
	if !ok {
		return
	}

	p, err := h.projects.Get(c.Request.Context(), guid)
	if err != nil {
		h.fail(c, "get project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) createProject(c *gin.Context) {
	var req projectReq
	if !bindBody(c, &req, func() string { return req.Name }) {
		return
	}

	p, err := h.projects.Create(c.Request.Context(), domain.CreateProjectModel{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		h.fail(c, "create project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) updateProject(c *gin.Context) {
	guid, ok := guidParam(c)
	if !ok {
		return
	}

	var req projectReq
	if !bindBody(c, &req, func() string { return req.Name }) {
		return
	}

	p, err := h.projects.Update(c.Request.Context(), guid, domain.UpdateProjectModel{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		h.fail(c, "update project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) deleteProject(c *gin.Context) {
	guid, ok := guidParam(c)
	if !ok {
		return
	}

	deleted, err := h.projects.Delete(c.Request.Context(), guid)
	if err != nil {
		h.fail(c, "delete project", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listProjectPlans(c *gin.Context) {
	guid, ok := guidParam(c)
	if !ok {
		return
	}

	items, err := h.plans.ListForProject(c.Request.Context(), guid)
	if err != nil {
		h.fail(c, "list project plans", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "plans": items})
}
