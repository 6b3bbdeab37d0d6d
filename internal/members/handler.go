package members

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blkout/hub/pkg/response"
)

// Handler handles member HTTP endpoints.
type Handler struct {
	svc    *Service
	logger *zap.Logger
}

// NewHandler creates a members handler.
func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

// List handles GET /api/members.
func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.ActiveMembers(c.Request.Context())
	if err != nil {
		h.logger.Error("list members failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}

// RecordActivity handles POST /api/members/:id/activity.
func (h *Handler) RecordActivity(c *gin.Context) {
	id := c.Param("id")
	v, err := h.svc.RecordActivity(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("record activity failed", zap.Error(err), zap.String("member_id", id))
		response.Error(c, err)
		return
	}
	response.OK(c, v)
}
