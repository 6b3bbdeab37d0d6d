// Package hotseats manages the lifecycle and capacity of hotseat sessions.
package hotseats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blkout/hub/internal/models"
)

// MemberLookup resolves participant identity.
type MemberLookup interface {
	Get(ctx context.Context, id string) (*models.Member, error)
}

// Listing partitions sessions by status. TotalActive counts every session.
type Listing struct {
	LiveNow      []models.HotseatSession `json:"live_now"`
	StartingSoon []models.HotseatSession `json:"starting_soon"`
	Scheduled    []models.HotseatSession `json:"scheduled"`
	Ended        []models.HotseatSession `json:"ended"`
	TotalActive  int                     `json:"total_active"`
}

// JoinResult is the outcome of a successful join.
type JoinResult struct {
	SessionID         string                `json:"session_id"`
	MemberID          string                `json:"member_id"`
	MemberName        string                `json:"member_name"`
	TotalParticipants int                   `json:"total_participants"`
	AlreadyJoined     bool                  `json:"already_joined"`
	Session           models.HotseatSession `json:"session"`
}

// Coordinator is the only writer of the session store.
type Coordinator struct {
	store   *Store
	members MemberLookup
	now     func() time.Time
	newID   func() string
	logger  *zap.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithIDGenerator overrides session id allocation.
func WithIDGenerator(newID func() string) Option {
	return func(c *Coordinator) { c.newID = newID }
}

// NewCoordinator creates a session coordinator.
func NewCoordinator(store *Store, members MemberLookup, logger *zap.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Coordinator{
		store:   store,
		members: members,
		now:     time.Now,
		newID:   func() string { return "hotseat_" + uuid.New().String() },
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List partitions all sessions by current status.
func (c *Coordinator) List(ctx context.Context) (Listing, error) {
	all, err := c.store.List(ctx)
	if err != nil {
		return Listing{}, err
	}
	out := Listing{
		LiveNow:      []models.HotseatSession{},
		StartingSoon: []models.HotseatSession{},
		Scheduled:    []models.HotseatSession{},
		Ended:        []models.HotseatSession{},
		TotalActive:  len(all),
	}
	for _, s := range all {
		switch s.Status {
		case models.StatusLive:
			out.LiveNow = append(out.LiveNow, s)
		case models.StatusStartingSoon:
			out.StartingSoon = append(out.StartingSoon, s)
		case models.StatusScheduled:
			out.Scheduled = append(out.Scheduled, s)
		case models.StatusEnded:
			out.Ended = append(out.Ended, s)
		}
	}
	return out, nil
}

// Create allocates a new scheduled session with no participants.
// Each call creates a distinct session, so it is not safe to retry blindly.
func (c *Coordinator) Create(ctx context.Context, spec SessionSpec) (models.HotseatSession, error) {
	if err := spec.Validate(); err != nil {
		return models.HotseatSession{}, err
	}
	s := models.HotseatSession{
		ID:              c.newID(),
		Title:           spec.Title,
		Host:            spec.Host,
		Topic:           spec.Topic,
		Description:     spec.Description,
		MaxParticipants: spec.MaxParticipants,
		StartTime:       spec.StartTime,
		ParticipantIDs:  []string{},
		Status:          models.StatusScheduled,
		CreatedAt:       c.now(),
	}
	if err := c.store.Insert(ctx, s); err != nil {
		return models.HotseatSession{}, err
	}
	c.logger.Info("hotseat created", zap.String("session_id", s.ID), zap.String("host", s.Host), zap.Int("max_participants", s.MaxParticipants))
	return s, nil
}

// Join adds memberID to the session. Joining twice is a no-op that still succeeds,
// including when the session has since filled up.
func (c *Coordinator) Join(ctx context.Context, sessionID, memberID string) (JoinResult, error) {
	if _, err := c.store.Get(ctx, sessionID); err != nil {
		return JoinResult{}, err
	}
	member, err := c.members.Get(ctx, memberID)
	if err != nil {
		return JoinResult{}, err
	}

	already := false
	sess, err := c.store.Update(ctx, sessionID, func(s *models.HotseatSession) error {
		if s.HasParticipant(member.ID) {
			already = true
			return nil
		}
		if s.IsFull() {
			return fmt.Errorf("%w: %s has %d/%d participants", models.ErrSessionFull, s.ID, len(s.ParticipantIDs), s.MaxParticipants)
		}
		s.ParticipantIDs = append(s.ParticipantIDs, member.ID)
		return nil
	})
	if err != nil {
		return JoinResult{}, err
	}
	if !already {
		c.logger.Info("hotseat joined", zap.String("session_id", sessionID), zap.String("member_id", member.ID), zap.Int("participants", len(sess.ParticipantIDs)))
	}
	return JoinResult{
		SessionID:         sess.ID,
		MemberID:          member.ID,
		MemberName:        member.Name,
		TotalParticipants: len(sess.ParticipantIDs),
		AlreadyJoined:     already,
		Session:           sess,
	}, nil
}

// Advance moves a session forward in its lifecycle.
func (c *Coordinator) Advance(ctx context.Context, sessionID string, next models.SessionStatus) (models.HotseatSession, error) {
	var from models.SessionStatus
	sess, err := c.store.Update(ctx, sessionID, func(s *models.HotseatSession) error {
		from = s.Status
		if !s.Status.CanAdvanceTo(next) {
			return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, s.Status, next)
		}
		s.Status = next
		return nil
	})
	if err != nil {
		return models.HotseatSession{}, err
	}
	c.logger.Info("hotseat status changed", zap.String("session_id", sessionID), zap.String("from", string(from)), zap.String("to", string(next)))
	return sess, nil
}
