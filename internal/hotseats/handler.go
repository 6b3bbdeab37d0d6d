package hotseats

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blkout/hub/internal/models"
	"github.com/blkout/hub/pkg/response"
)

// CreateRequest is the body for POST /api/hotseats.
type CreateRequest struct {
	Title           string `json:"title" binding:"required"`
	Host            string `json:"host" binding:"required"`
	Topic           string `json:"topic"`
	Description     string `json:"description"`
	MaxParticipants int    `json:"max_participants" binding:"omitempty,min=1"`
	StartTime       string `json:"start_time" binding:"required"`
}

// JoinRequest is the body for POST /api/hotseats/:id/join.
type JoinRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}

// AdvanceRequest is the body for PATCH /api/hotseats/:id/status.
type AdvanceRequest struct {
	Status string `json:"status" binding:"required"`
}

// Handler handles hotseat HTTP endpoints.
type Handler struct {
	coord           *Coordinator
	view            presenter
	defaultCapacity int
	logger          *zap.Logger
}

// NewHandler creates a hotseats handler. members resolves participant names for responses.
func NewHandler(coord *Coordinator, members MemberLookup, defaultCapacity int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{coord: coord, view: presenter{members: members}, defaultCapacity: defaultCapacity, logger: logger}
}

// List handles GET /api/hotseats.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	l, err := h.coord.List(ctx)
	if err != nil {
		h.logger.Error("list hotseats failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, h.view.listing(ctx, l))
}

// Create handles POST /api/hotseats.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		response.BadRequest(c, "invalid start_time")
		return
	}
	spec := SessionSpec{
		Title:           req.Title,
		Host:            req.Host,
		Topic:           req.Topic,
		Description:     req.Description,
		MaxParticipants: req.MaxParticipants,
		StartTime:       startTime,
	}.WithDefaults(h.defaultCapacity)
	if err := spec.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	s, err := h.coord.Create(ctx, spec)
	if err != nil {
		h.logger.Error("create hotseat failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.Created(c, h.view.session(ctx, s))
}

// Join handles POST /api/hotseats/:id/join.
func (h *Handler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	ctx := c.Request.Context()
	sessionID := c.Param("id")
	res, err := h.coord.Join(ctx, sessionID, req.MemberID)
	if err != nil {
		h.logger.Warn("join hotseat failed", zap.Error(err), zap.String("session_id", sessionID), zap.String("member_id", req.MemberID))
		response.Error(c, err)
		return
	}
	response.OK(c, h.view.join(ctx, res))
}

// Advance handles PATCH /api/hotseats/:id/status.
func (h *Handler) Advance(c *gin.Context) {
	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	ctx := c.Request.Context()
	sessionID := c.Param("id")
	s, err := h.coord.Advance(ctx, sessionID, models.SessionStatus(req.Status))
	if err != nil {
		h.logger.Warn("advance hotseat failed", zap.Error(err), zap.String("session_id", sessionID), zap.String("status", req.Status))
		response.Error(c, err)
		return
	}
	response.OK(c, h.view.session(ctx, s))
}
