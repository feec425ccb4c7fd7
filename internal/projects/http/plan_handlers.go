package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openci/openci-backend/internal/projects/domain"
)

func (h *Handler) listPlans(c *gin.Context) {
	items, err := h.plans.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list plans", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "plans": items})
}

func (h *Handler) getPlan(c *gin.Context) {
	guid, ok := guidParam(c)
	if !ok {
		return
	}

	p, err := h.plans.Get(c.Request.Context(), guid)
	if err != nil {
		h.fail(c, "get plan", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "plan": p})
}

func (h *Handler) createPlan(c *gin.Context) {
	var req createPlanReq
	if !bindBody(c, &req, func() string { return req.Name }) {
		return
	}

	projectGUID, err := uuid.Parse(req.ProjectGUID)
	if err != nil {
		invalidBody(c, err)
		return
	}

	p, err := h.plans.Create(c.Request.Context(), domain.CreatePlanModel{
		ProjectGUID: projectGUID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Enabled:     req.Enabled,
	})
	if err != nil {
		h.fail(c, "create plan", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "plan": p})
}

func (h *Handler) updatePlan(c *gin.Context) {
	guid, ok := guidParam(c)
	if !ok {
		return
	}

	var req updatePlanReq
	if !bindBody(c, &req, func() string { return req.Name }) {
		return
	}

	p, err := h.plans.Update(c.Request.Context(), guid, domain.UpdatePlanModel{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Enabled:     req.Enabled,
	})
	if err != nil {
		h.fail(c, "update plan", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "plan": p})
}

func (h *Handler) deletePlan(c *gin.Context) {
	guid, ok := guidParam(c)
	if !ok {
		return
	}

	deleted, err := h.plans.Delete(c.Request.Context(), guid)
	if err != nil {
		h.fail(c, "delete plan", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "plan not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
