package hotseats

import (
	"fmt"
	"strings"
	"time"

	"github.com/blkout/hub/internal/models"
)

// DefaultCapacity is used when a session spec omits max participants.
const DefaultCapacity = 6

// SessionSpec holds the caller-supplied fields of a new session.
type SessionSpec struct {
	Title           string
	Host            string
	Topic           string
	Description     string
	MaxParticipants int
	StartTime       time.Time
}

// WithDefaults fills optional fields.
func (s SessionSpec) WithDefaults(capacity int) SessionSpec {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s.Title = strings.TrimSpace(s.Title)
	s.Host = strings.TrimSpace(s.Host)
	if s.MaxParticipants == 0 {
		s.MaxParticipants = capacity
	}
	return s
}

// Validate checks required fields.
func (s SessionSpec) Validate() error {
	switch {
	case strings.TrimSpace(s.Title) == "":
		return fmt.Errorf("%w: title is required", models.ErrInvalidInput)
	case strings.TrimSpace(s.Host) == "":
		return fmt.Errorf("%w: host is required", models.ErrInvalidInput)
	case s.MaxParticipants <= 0:
		return fmt.Errorf("%w: max_participants must be positive", models.ErrInvalidInput)
	case s.StartTime.IsZero():
		return fmt.Errorf("%w: start_time is required", models.ErrInvalidInput)
	}
	return nil
}
