package members

import (
	"time"

	"github.com/blkout/hub/internal/models"
)

// DefaultPresenceWindow is how long after its last activity a member counts as online.
const DefaultPresenceWindow = 15 * time.Minute

// Presence derives online status from recorded activity.
type Presence struct {
	window time.Duration
	now    func() time.Time
}

// NewPresence creates a presence evaluator. A nil clock uses time.Now.
func NewPresence(window time.Duration, now func() time.Time) Presence {
	if window <= 0 {
		window = DefaultPresenceWindow
	}
	if now == nil {
		now = time.Now
	}
	return Presence{window: window, now: now}
}

// IsOnline reports whether m was active within the window.
func (p Presence) IsOnline(m models.Member) bool {
	if m.LastActiveAt.IsZero() {
		return false
	}
	return p.now().Sub(m.LastActiveAt) <= p.window
}

// Now returns the current time of the presence clock.
func (p Presence) Now() time.Time {
	return p.now()
}
