package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openci/openci-backend/internal/api/http/middleware"
	"github.com/openci/openci-backend/internal/projects/domain"
)

// Handler bundles the dependencies for project and plan endpoints.
type Handler struct {
	projects ProjectOperations
	plans    PlanOperations
	logger   zerolog.Logger
}

func New(projects ProjectOperations, plans PlanOperations, logger zerolog.Logger) *Handler {
	return &Handler{projects: projects, plans: plans, logger: logger}
}

// guidParam parses the :guid path parameter, answering 400 when malformed.
func guidParam(c *gin.Context) (uuid.UUID, bool) {
	guid, err := uuid.Parse(strings.TrimSpace(c.Param("guid")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid guid"})
		return uuid.Nil, false
	}
	return guid, true
}

// fail maps an operation error onto the response. Missing entities are a
// client error; anything else is logged and reported as 500.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	var nf *domain.EntityNotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": nf.Error()})
		return
	}

	h.logger.Error().Err(err).
		Str("op", op).
		Str("request_id", middleware.GetRequestID(c.Request.Context())).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}

var errBlankName = errors.New("name must not be blank")

// bindBody binds the JSON body into req and rejects names that are only
// whitespace. It answers 400 itself and reports whether to continue.
func bindBody(c *gin.Context, req any, name func() string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		invalidBody(c, err)
		return false
	}
	if strings.TrimSpace(name()) == "" {
		invalidBody(c, errBlankName)
		return false
	}
	return true
}

func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body", "details": err.Error()})
}
