package matching

import (
	"context"

	"go.uber.org/zap"

	"github.com/blkout/hub/internal/models"
)

// DefaultTopN is how many matches the public query returns.
const DefaultTopN = 3

// Criteria lists the factors the engine weighs, highest weight first.
var Criteria = []string{"shared interests", "geographic proximity", "community contributions", "age proximity"}

// MemberSource provides the candidate pool.
type MemberSource interface {
	List(ctx context.Context) ([]models.Member, error)
}

// MemberMatches is the result of the matches-for-member query.
type MemberMatches struct {
	MemberID         string               `json:"member_id"`
	Matches          []models.MatchResult `json:"matches"`
	MatchingCriteria []string             `json:"matching_criteria"`
}

// Service answers match queries against the member directory.
type Service struct {
	members MemberSource
	engine  *Engine
	topN    int
	logger  *zap.Logger
}

// NewService creates a matching service.
func NewService(members MemberSource, engine *Engine, topN int, logger *zap.Logger) *Service {
	if engine == nil {
		engine = NewEngine(nil)
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{members: members, engine: engine, topN: topN, logger: logger}
}

// Ranked returns the full ranked candidate list for memberID.
func (s *Service) Ranked(ctx context.Context, memberID string) ([]models.MatchResult, error) {
	pool, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.FindMatches(memberID, pool)
}

// MemberMatches returns the top matches for memberID.
func (s *Service) MemberMatches(ctx context.Context, memberID string) (MemberMatches, error) {
	ranked, err := s.Ranked(ctx, memberID)
	if err != nil {
		return MemberMatches{}, err
	}
	if len(ranked) > s.topN {
		ranked = ranked[:s.topN]
	}
	s.logger.Debug("matches computed", zap.String("member_id", memberID), zap.Int("count", len(ranked)))
	return MemberMatches{
		MemberID:         memberID,
		Matches:          ranked,
		MatchingCriteria: append([]string(nil), Criteria...),
	}, nil
}
