package matching

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/blkout/hub/internal/models"
	"github.com/blkout/hub/internal/seed"
)

type staticPool struct {
	members []models.Member
	err     error
}

func (p staticPool) List(_ context.Context) ([]models.Member, error) {
	return p.members, p.err
}

func bigPool() []models.Member {
	pool := seed.Members(time.Now())
	pool = append(pool,
		member("mem_005", 27, "Brixton, London", []string{"music", "activism"}, 4),
		member("mem_006", 45, "Liverpool", []string{"gardening"}, 0),
	)
	return pool
}

func TestMemberMatchesReturnsTopThree(t *testing.T) {
	svc := NewService(staticPool{members: bigPool()}, nil, 0, nil)

	res, err := svc.MemberMatches(context.Background(), "mem_001")
	require.NoError(t, err)
	require.Equal(t, "mem_001", res.MemberID)
	require.Len(t, res.Matches, DefaultTopN)
	require.Equal(t, Criteria, res.MatchingCriteria)

	top := res.Matches[0]
	require.Equal(t, "mem_005", top.Member.ID)
	require.Equal(t, []string{"activism", "music"}, top.SharedInterests)

	full, err := svc.Ranked(context.Background(), "mem_001")
	require.NoError(t, err)
	require.Len(t, full, 5)
	require.Equal(t, full[:3], res.Matches)
}

func TestMemberMatchesCustomTopN(t *testing.T) {
	svc := NewService(staticPool{members: bigPool()}, NewEngine(nil), 1, nil)

	res, err := svc.MemberMatches(context.Background(), "mem_002")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
}

func TestMemberMatchesErrors(t *testing.T) {
	svc := NewService(staticPool{members: bigPool()}, nil, 3, nil)
	_, err := svc.MemberMatches(context.Background(), "nonexistent")
	require.ErrorIs(t, err, models.ErrMemberNotFound)

	boom := errors.New("directory unavailable")
	svc = NewService(staticPool{err: boom}, nil, 3, nil)
	_, err = svc.MemberMatches(context.Background(), "mem_001")
	require.ErrorIs(t, err, boom)
}

func TestHandlerMemberMatches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(staticPool{members: bigPool()}, nil, 3, nil), nil)
	r := gin.New()
	r.GET("/api/members/:id/matches", h.MemberMatches)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/members/mem_003/matches", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool          `json:"success"`
			Data    MemberMatches `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.True(t, body.Success)
		require.Equal(t, "mem_003", body.Data.MemberID)
		require.Len(t, body.Data.Matches, 3)
	})

	t.Run("missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/members/nonexistent/matches", nil))
		require.Equal(t, http.StatusNotFound, w.Code)

		var body struct {
			Success bool   `json:"success"`
			Code    string `json:"code"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.False(t, body.Success)
		require.Equal(t, "not_found", body.Code)
	})
}
