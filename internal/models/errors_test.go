package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "member", err: ErrMemberNotFound, want: KindNotFound},
		{name: "wrapped session", err: fmt.Errorf("%w: hotseat_9", ErrSessionNotFound), want: KindNotFound},
		{name: "full", err: ErrSessionFull, want: KindCapacityExceeded},
		{name: "transition", err: fmt.Errorf("%w: live -> scheduled", ErrInvalidTransition), want: KindInvalidInput},
		{name: "foreign", err: errors.New("boom"), want: KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestSessionStatusCanAdvanceTo(t *testing.T) {
	require.True(t, StatusScheduled.CanAdvanceTo(StatusStartingSoon))
	require.True(t, StatusScheduled.CanAdvanceTo(StatusLive))
	require.True(t, StatusLive.CanAdvanceTo(StatusEnded))
	require.False(t, StatusLive.CanAdvanceTo(StatusScheduled))
	require.False(t, StatusLive.CanAdvanceTo(StatusLive))
	require.False(t, StatusEnded.CanAdvanceTo(StatusEnded))
	require.False(t, StatusScheduled.CanAdvanceTo("paused"))
	require.False(t, SessionStatus("paused").Valid())
}

func TestHotseatSessionCloneIsIndependent(t *testing.T) {
	s := HotseatSession{ID: "h1", MaxParticipants: 2, ParticipantIDs: []string{"mem_001"}}
	c := s.Clone()
	c.ParticipantIDs = append(c.ParticipantIDs, "mem_002")
	c.ParticipantIDs[0] = "mem_009"

	require.Equal(t, []string{"mem_001"}, s.ParticipantIDs)
	require.True(t, c.IsFull())
	require.False(t, s.IsFull())
	require.True(t, s.HasParticipant("mem_001"))
}
