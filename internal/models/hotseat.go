package models

import (
	"slices"
	"time"
)

// SessionStatus is the lifecycle stage of a hotseat session.
type SessionStatus string

const (
	StatusScheduled    SessionStatus = "scheduled"
	StatusStartingSoon SessionStatus = "starting_soon"
	StatusLive         SessionStatus = "live"
	StatusEnded        SessionStatus = "ended"
)

var statusOrder = map[SessionStatus]int{
	StatusScheduled:    0,
	StatusStartingSoon: 1,
	StatusLive:         2,
	StatusEnded:        3,
}

// Valid reports whether s is a known status.
func (s SessionStatus) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next is a forward transition.
func (s SessionStatus) CanAdvanceTo(next SessionStatus) bool {
	from, ok := statusOrder[s]
	if !ok {
		return false
	}
	to, ok := statusOrder[next]
	return ok && to > from
}

// HotseatSession is a scheduled, capacity-bounded group conversation.
// Participants are stored as member IDs; display names are resolved by the HTTP layer.
type HotseatSession struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Host            string        `json:"host"`
	Topic           string        `json:"topic"`
	Description     string        `json:"description"`
	MaxParticipants int           `json:"max_participants"`
	StartTime       time.Time     `json:"start_time"`
	ParticipantIDs  []string      `json:"participant_ids"`
	Status          SessionStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// IsFull returns true when no seats remain.
func (s *HotseatSession) IsFull() bool {
	return len(s.ParticipantIDs) >= s.MaxParticipants
}

// HasParticipant reports whether memberID already joined.
func (s *HotseatSession) HasParticipant(memberID string) bool {
	return slices.Contains(s.ParticipantIDs, memberID)
}

// Clone returns a copy with its own participant slice.
func (s HotseatSession) Clone() HotseatSession {
	c := s
	c.ParticipantIDs = append(make([]string, 0, len(s.ParticipantIDs)), s.ParticipantIDs...)
	return c
}
