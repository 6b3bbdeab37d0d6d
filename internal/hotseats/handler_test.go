package hotseats

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/blkout/hub/internal/models"
	"github.com/blkout/hub/internal/seed"
)

type envelope[T any] struct {
	Success bool             `json:"success"`
	Data    T                `json:"data"`
	Error   string           `json:"error"`
	Code    models.ErrorKind `json:"code"`
}

func newTestRouter(t *testing.T, sessions []models.HotseatSession) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	coord, dir := newTestCoordinator(t, sessions)
	h := NewHandler(coord, dir, 0, nil)
	r := gin.New()
	r.GET("/api/hotseats", h.List)
	r.POST("/api/hotseats", h.Create)
	r.POST("/api/hotseats/:id/join", h.Join)
	r.PATCH("/api/hotseats/:id/status", h.Advance)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandlerListResolvesNames(t *testing.T) {
	r := newTestRouter(t, seed.Hotseats(fixedNow))

	w := do(r, http.MethodGet, "/api/hotseats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decode[ListingView](t, w)
	require.True(t, env.Success)
	require.Equal(t, 3, env.Data.TotalActive)
	require.Equal(t, []string{"Marcus", "Kai"}, env.Data.LiveNow[0].Participants)
	require.Equal(t, []string{"mem_001", "mem_003"}, env.Data.LiveNow[0].ParticipantIDs)
	require.Equal(t, []string{"Devon"}, env.Data.StartingSoon[0].Participants)
	require.Empty(t, env.Data.Scheduled[0].Participants)
}

func TestHandlerCreate(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/api/hotseats", map[string]any{
		"title":        "Queer Joy Circle",
		"host":         "Kai",
		"topic":        "Joy",
		"start_time":   "2026-03-15T19:00:00Z",
		"status":       "live",
		"participants": []string{"mem_001"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decode[SessionView](t, w)
	require.Equal(t, "hotseat_t1", env.Data.ID)
	require.Equal(t, models.StatusScheduled, env.Data.Status)
	require.Empty(t, env.Data.Participants)
	require.Equal(t, DefaultCapacity, env.Data.MaxParticipants)
	require.True(t, fixedNow.Equal(env.Data.CreatedAt))
}

func TestHandlerCreateValidation(t *testing.T) {
	r := newTestRouter(t, nil)
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing title", body: map[string]any{"host": "Kai", "start_time": "2026-03-15T19:00:00Z"}},
		{name: "blank host", body: map[string]any{"title": "t", "host": "   ", "start_time": "2026-03-15T19:00:00Z"}},
		{name: "bad time", body: map[string]any{"title": "t", "host": "Kai", "start_time": "tomorrow"}},
		{name: "negative capacity", body: map[string]any{"title": "t", "host": "Kai", "start_time": "2026-03-15T19:00:00Z", "max_participants": -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/hotseats", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			env := decode[any](t, w)
			require.False(t, env.Success)
			require.Equal(t, models.KindInvalidInput, env.Code)
		})
	}
}

func TestHandlerJoin(t *testing.T) {
	r := newTestRouter(t, []models.HotseatSession{tinySession(1, "mem_001")})

	w := do(r, http.MethodPost, "/api/hotseats/hotseat_tiny/join", map[string]string{"member_id": "mem_001"})
	require.Equal(t, http.StatusOK, w.Code)
	env := decode[JoinView](t, w)
	require.Equal(t, "Marcus", env.Data.MemberName)
	require.Equal(t, 1, env.Data.TotalParticipants)
	require.True(t, env.Data.AlreadyJoined)
	require.Equal(t, []string{"Marcus"}, env.Data.Session.Participants)

	w = do(r, http.MethodPost, "/api/hotseats/hotseat_tiny/join", map[string]string{"member_id": "mem_002"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, models.KindCapacityExceeded, decode[any](t, w).Code)

	w = do(r, http.MethodPost, "/api/hotseats/hotseat_nope/join", map[string]string{"member_id": "mem_002"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/hotseats/hotseat_tiny/join", map[string]string{"member_id": "mem_404"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, decode[any](t, w).Error, "member not found")

	w = do(r, http.MethodPost, "/api/hotseats/hotseat_tiny/join", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerAdvance(t *testing.T) {
	r := newTestRouter(t, seed.Hotseats(fixedNow))

	w := do(r, http.MethodPatch, "/api/hotseats/hotseat_002/status", map[string]string{"status": "live"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.StatusLive, decode[SessionView](t, w).Data.Status)

	w = do(r, http.MethodPatch, "/api/hotseats/hotseat_002/status", map[string]string{"status": "scheduled"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/hotseats", nil)
	env := decode[ListingView](t, w)
	require.Len(t, env.Data.LiveNow, 2)
	require.Empty(t, env.Data.StartingSoon)
}
