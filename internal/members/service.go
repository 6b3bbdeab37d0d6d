package members

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/blkout/hub/internal/models"
)

// MemberView is a member as returned by the active-members query.
type MemberView struct {
	models.Member
	IsOnline bool       `json:"is_online"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}

// ActiveMembers is the result of the active-members query.
type ActiveMembers struct {
	TotalMembers int          `json:"total_members"`
	OnlineNow    int          `json:"online_now"`
	Members      []MemberView `json:"members"`
}

// Service exposes directory queries with derived presence.
type Service struct {
	dir      *Directory
	presence Presence
	logger   *zap.Logger
}

// NewService creates a members service.
func NewService(dir *Directory, presence Presence, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{dir: dir, presence: presence, logger: logger}
}

// ActiveMembers lists every member with its online status.
func (s *Service) ActiveMembers(ctx context.Context) (ActiveMembers, error) {
	list, err := s.dir.List(ctx)
	if err != nil {
		return ActiveMembers{}, err
	}
	out := ActiveMembers{TotalMembers: len(list), Members: make([]MemberView, 0, len(list))}
	for _, m := range list {
		v := MemberView{Member: m, IsOnline: s.presence.IsOnline(m)}
		if !m.LastActiveAt.IsZero() {
			seen := m.LastActiveAt
			v.LastSeen = &seen
		}
		if v.IsOnline {
			out.OnlineNow++
		}
		out.Members = append(out.Members, v)
	}
	return out, nil
}

// RecordActivity stamps the member's last activity with the presence clock.
func (s *Service) RecordActivity(ctx context.Context, memberID string) (MemberView, error) {
	m, err := s.dir.Touch(ctx, memberID, s.presence.Now())
	if err != nil {
		return MemberView{}, err
	}
	seen := m.LastActiveAt
	s.logger.Debug("member activity", zap.String("member_id", memberID))
	return MemberView{Member: *m, IsOnline: s.presence.IsOnline(*m), LastSeen: &seen}, nil
}
