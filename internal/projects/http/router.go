package http

import "github.com/gin-gonic/gin"

// Register attaches project and plan routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.GET("", h.listProjects)
	projects.POST("", h.createProject)
	projects.GET("/:guid", h.getProject)
	projects.PUT("/:guid", h.updateProject)
	projects.DELETE("/:guid", h.deleteProject)
	projects.GET("/:guid/plans", h.listProjectPlans)

	plans := rg.Group("/plans")
	plans.GET("", h.listPlans)
	plans.POST("", h.createPlan)
	plans.GET("/:guid", h.getPlan)
	plans.PUT("/:guid", h.updatePlan)
	plans.DELETE("/:guid", h.deletePlan)
}
