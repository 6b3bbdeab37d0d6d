package matching

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blkout/hub/pkg/response"
)

// Handler handles match HTTP endpoints.
type Handler struct {
	svc    *Service
	logger *zap.Logger
}

// NewHandler creates a matching handler.
func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

// MemberMatches handles GET /api/members/:id/matches.
func (h *Handler) MemberMatches(c *gin.Context) {
	id := c.Param("id")
	res, err := h.svc.MemberMatches(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("find matches failed", zap.Error(err), zap.String("member_id", id))
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}
