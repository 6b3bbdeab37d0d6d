package hotseats

import (
	"context"
	"time"

	"github.com/blkout/hub/internal/models"
)

// SessionView is a session rendered for clients, with participant names resolved.
type SessionView struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Host            string               `json:"host"`
	Topic           string               `json:"topic"`
	Description     string               `json:"description"`
	MaxParticipants int                  `json:"max_participants"`
	StartTime       time.Time            `json:"start_time"`
	Status          models.SessionStatus `json:"status"`
	Participants    []string             `json:"participants"`
	ParticipantIDs  []string             `json:"participant_ids"`
	CreatedAt       time.Time            `json:"created_at"`
}

// ListingView is Listing with rendered sessions.
type ListingView struct {
	LiveNow      []SessionView `json:"live_now"`
	StartingSoon []SessionView `json:"starting_soon"`
	Scheduled    []SessionView `json:"scheduled"`
	Ended        []SessionView `json:"ended"`
	TotalActive  int           `json:"total_active"`
}

// JoinView is JoinResult with a rendered session.
type JoinView struct {
	SessionID         string      `json:"session_id"`
	MemberID          string      `json:"member_id"`
	MemberName        string      `json:"member_name"`
	TotalParticipants int         `json:"total_participants"`
	AlreadyJoined     bool        `json:"already_joined"`
	Session           SessionView `json:"session"`
}

type presenter struct {
	members MemberLookup
}

func (p presenter) name(ctx context.Context, id string) string {
	m, err := p.members.Get(ctx, id)
	if err != nil {
		return id
	}
	return m.Name
}

func (p presenter) session(ctx context.Context, s models.HotseatSession) SessionView {
	names := make([]string, 0, len(s.ParticipantIDs))
	for _, id := range s.ParticipantIDs {
		names = append(names, p.name(ctx, id))
	}
	return SessionView{
		ID:              s.ID,
		Title:           s.Title,
		Host:            s.Host,
		Topic:           s.Topic,
		Description:     s.Description,
		MaxParticipants: s.MaxParticipants,
		StartTime:       s.StartTime,
		Status:          s.Status,
		Participants:    names,
		ParticipantIDs:  append([]string{}, s.ParticipantIDs...),
		CreatedAt:       s.CreatedAt,
	}
}

func (p presenter) sessions(ctx context.Context, list []models.HotseatSession) []SessionView {
	out := make([]SessionView, 0, len(list))
	for _, s := range list {
		out = append(out, p.session(ctx, s))
	}
	return out
}

func (p presenter) listing(ctx context.Context, l Listing) ListingView {
	return ListingView{
		LiveNow:      p.sessions(ctx, l.LiveNow),
		StartingSoon: p.sessions(ctx, l.StartingSoon),
		Scheduled:    p.sessions(ctx, l.Scheduled),
		Ended:        p.sessions(ctx, l.Ended),
		TotalActive:  l.TotalActive,
	}
}

func (p presenter) join(ctx context.Context, r JoinResult) JoinView {
	return JoinView{
		SessionID:         r.SessionID,
		MemberID:          r.MemberID,
		MemberName:        r.MemberName,
		TotalParticipants: r.TotalParticipants,
		AlreadyJoined:     r.AlreadyJoined,
		Session:           p.session(ctx, r.Session),
	}
}
