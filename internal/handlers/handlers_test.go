package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindfullearner/internal/db/dbtest"
	"mindfullearner/internal/handlers"
	"mindfullearner/internal/middleware"
	"mindfullearner/internal/server"
	"mindfullearner/internal/services"
	"mindfullearner/internal/store"
)

const today = "2026-10-18"

// clock starts at 09:00 UTC on today and advances a second per reading.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type testAPI struct {
	t    *testing.T
	conn *sqlx.DB
	h    http.Handler
}

func newAPI(t *testing.T, encKey []byte) *testAPI {
	t.Helper()
	conn := dbtest.Open(t)
	c := &clock{t: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	s := store.New(conn, zap.NewNop(), store.WithClock(c.Now))

	enc, err := services.NewEncryptionService(encKey)
	require.NoError(t, err)

	h := server.NewRouter(s, enc, server.Options{
		JWTSecret:         []byte("test-secret"),
		TokenTTL:          time.Hour,
		AllowUserIDHeader: true,
	}, zap.NewNop())
	return &testAPI{t: t, conn: conn, h: h}
}

// do sends body as JSON. A positive userID is sent in the User-Id header.
func (a *testAPI) do(method, path string, body any, userID int64) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set(middleware.UserIDHeader, strconv.FormatInt(userID, 10))
	}
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type authBody struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Goal     string `json:"goal"`
	Token    string `json:"token"`
}

type errBody struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func (a *testAPI) signup(username string) authBody {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username,
		"password": "secret123",
		"email":    username + "@example.com",
		"degree":   "BSc Computer Science",
		"goal":     "academic",
	}, 0)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[authBody](a.t, rec)
}

func TestSignupSigninFlow(t *testing.T) {
	api := newAPI(t, nil)

	user := api.signup("ada")
	assert.Positive(t, user.ID)
	assert.Equal(t, "academic", user.Goal)
	assert.NotEmpty(t, user.Token)

	rec := api.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": "ada", "password": "another1", "email": "other@example.com", "degree": "BA", "goal": "all-round",
	}, 0)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "user_already_exists", decodeBody[errBody](t, rec).Error)

	rec = api.do(http.MethodPost, "/api/auth/signin", map[string]string{"username": "ada", "password": "wrong-pass"}, 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_credentials", decodeBody[errBody](t, rec).Error)

	rec = api.do(http.MethodPost, "/api/auth/signin", map[string]string{"username": "nobody", "password": "secret123"}, 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodPost, "/api/auth/signin", map[string]string{"username": "ada", "password": "secret123"}, 0)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	signedIn := decodeBody[authBody](t, rec)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+signedIn.Token)
	me := httptest.NewRecorder()
	api.h.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "ada", decodeBody[authBody](t, me).Username)
}

func TestSignupValidation(t *testing.T) {
	api := newAPI(t, nil)
	valid := func() map[string]string {
		return map[string]string{
			"username": "grace", "password": "secret123", "email": "grace@example.com", "degree": "BSc", "goal": "academic-plus",
		}
	}

	tests := []struct {
		name      string
		mutate    func(m map[string]string)
		wantField string
	}{
		{"blank username", func(m map[string]string) { m["username"] = "   " }, "username"},
		{"short password", func(m map[string]string) { m["password"] = "12345" }, "password"},
		{"bad email", func(m map[string]string) { m["email"] = "not-an-email" }, "email"},
		{"missing degree", func(m map[string]string) { delete(m, "degree") }, "degree"},
		{"unknown goal", func(m map[string]string) { m["goal"] = "curricular" }, "goal"},
		{"password over 72 bytes", func(m map[string]string) { m["password"] = strings.Repeat("€", 30) }, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := valid()
			tt.mutate(body)
			rec := api.do(http.MethodPost, "/api/auth/signup", body, 0)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantField, decodeBody[errBody](t, rec).Field)
		})
	}
}

func TestUnauthenticatedRequests(t *testing.T) {
	api := newAPI(t, nil)

	rec := api.do(http.MethodGet, "/api/gratitude", nil, 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodGet, "/api/gratitude", nil, 999)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unknown_user", decodeBody[errBody](t, rec).Error)
}

func TestUpdateMe(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")
	other := api.signup("bob")

	rec := api.do(http.MethodPatch, "/api/users/me", map[string]string{"degree": "MSc", "goal": "all-round"}, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "MSc", got["degree"])
	assert.Equal(t, "all-round", got["goal"])
	assert.Equal(t, "ada@example.com", got["email"])

	rec = api.do(http.MethodPatch, "/api/users/me", map[string]string{"goal": "curricular"}, user.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPatch, "/api/users/me", map[string]string{"email": other.Email}, user.ID)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email_already_in_use", decodeBody[errBody](t, rec).Error)
}

func TestGratitudeOncePerDay(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	first := map[string]string{"gratitude_1": "sun", "gratitude_2": "tea", "gratitude_3": "friends"}
	rec := api.do(http.MethodPost, "/api/gratitude", first, user.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[map[string]any](t, rec)
	assert.Equal(t, today, created["entry_date"])

	second := map[string]string{"gratitude_1": "rain", "gratitude_2": "coffee", "gratitude_3": "books"}
	rec = api.do(http.MethodPost, "/api/gratitude", second, user.ID)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, store.ReasonGratitudeExists, decodeBody[errBody](t, rec).Error)

	rec = api.do(http.MethodGet, "/api/gratitude", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]map[string]any](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, "sun", entries[0]["gratitude_1"])

	// Another day is a new entry.
	second["entry_date"] = "2026-10-17"
	rec = api.do(http.MethodPost, "/api/gratitude", second, user.ID)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGratitudeRequiresAllStatements(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodPost, "/api/gratitude", map[string]string{"gratitude_1": "a", "gratitude_2": "b"}, user.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "gratitude_3", decodeBody[errBody](t, rec).Field)

	rec = api.do(http.MethodPost, "/api/gratitude", map[string]string{
		"gratitude_1": "a", "gratitude_2": "b", "gratitude_3": "c", "entry_date": "18/10/2026",
	}, user.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "entry_date", decodeBody[errBody](t, rec).Field)
}

func TestJournalRejectsFutureDates(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodPost, "/api/gratitude", map[string]string{
		"gratitude_1": "a", "gratitude_2": "b", "gratitude_3": "c", "entry_date": "2026-10-19",
	}, user.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[errBody](t, rec)
	assert.Equal(t, "entry_date", got.Field)
	assert.Equal(t, "out_of_range", got.Error)

	rec = api.do(http.MethodPost, "/api/mood", map[string]any{
		"mood_scale": 3, "primary_emotion": "calm", "entry_date": "2027-01-01",
	}, user.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "entry_date", decodeBody[errBody](t, rec).Field)

	rec = api.do(http.MethodPost, "/api/gratitude", map[string]string{
		"gratitude_1": "a", "gratitude_2": "b", "gratitude_3": "c", "entry_date": "2026-10-18",
	}, user.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/dashboard", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeBody[struct {
		Streak int `json:"gratitude_streak_days"`
	}](t, rec).Streak)
}

func TestMoodScaleBounds(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	for _, scale := range []int{0, 6} {
		rec := api.do(http.MethodPost, "/api/mood", map[string]any{"mood_scale": scale, "primary_emotion": "calm"}, user.ID)
		require.Equal(t, http.StatusBadRequest, rec.Code, "scale %d", scale)
		assert.Equal(t, "mood_scale", decodeBody[errBody](t, rec).Field)
	}

	rec := api.do(http.MethodPost, "/api/mood", map[string]any{"primary_emotion": "calm"}, user.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, scale := range []int{1, 5} {
		rec := api.do(http.MethodPost, "/api/mood", map[string]any{
			"mood_scale": scale, "primary_emotion": "calm", "factors": "sleep,exercise", "reflection": "ok day",
		}, user.ID)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec = api.do(http.MethodGet, "/api/mood", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]map[string]any](t, rec)
	require.Len(t, entries, 2)
	assert.EqualValues(t, 5, entries[0]["mood_scale"])
}

type sleepEnvelope struct {
	Data struct {
		Hours   float64 `json:"hours"`
		Quality string  `json:"quality"`
		Logged  bool    `json:"logged"`
	} `json:"data"`
}

func TestSleepUpsert(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodGet, "/api/health/sleep/"+today, nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	unlogged := decodeBody[sleepEnvelope](t, rec)
	assert.False(t, unlogged.Data.Logged)
	assert.Equal(t, float64(handlers.DefaultSleepHours), unlogged.Data.Hours)
	assert.Equal(t, handlers.DefaultSleepQuality, unlogged.Data.Quality)

	rec = api.do(http.MethodPost, "/api/health/sleep", map[string]any{"date": today, "hours": 6.5, "quality": "Fair"}, user.ID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = api.do(http.MethodPost, "/api/health/sleep", map[string]any{"date": today, "hours": 8, "quality": "Excellent"}, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/health/sleep/"+today, nil, user.ID)
	got := decodeBody[sleepEnvelope](t, rec)
	assert.True(t, got.Data.Logged)
	assert.Equal(t, 8.0, got.Data.Hours)
	assert.Equal(t, "Excellent", got.Data.Quality)

	var rows int
	require.NoError(t, api.conn.Get(&rows, `SELECT COUNT(*) FROM sleep_logs WHERE user_id = ?`, user.ID))
	assert.Equal(t, 1, rows)

	rec = api.do(http.MethodPost, "/api/health/sleep", map[string]any{"date": today, "hours": 8, "quality": "Great"}, user.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = api.do(http.MethodPost, "/api/health/sleep", map[string]any{"date": today, "hours": -1, "quality": "Good"}, user.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHygieneUpsert(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodGet, "/api/health/hygiene/"+today, nil, user.ID)
	assert.JSONEq(t, `{"data":{"bathed":false,"logged":false}}`, rec.Body.String())

	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/health/hygiene", map[string]any{"date": today, "bathed": true}, user.ID).Code)
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/health/hygiene", map[string]any{"date": today, "bathed": false}, user.ID).Code)

	rec = api.do(http.MethodGet, "/api/health/hygiene/"+today, nil, user.ID)
	assert.JSONEq(t, `{"data":{"bathed":false,"logged":true}}`, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/health/hygiene", map[string]any{"date": today}, user.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bathed", decodeBody[errBody](t, rec).Field)
}

func TestWaterAccumulates(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	for _, amount := range []int{handlers.MaxWaterPerEntry, 1, 250} {
		rec := api.do(http.MethodPost, "/api/health/water", map[string]any{"date": today, "amount": amount}, user.ID)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	for _, amount := range []int{-1, handlers.MaxWaterPerEntry + 1} {
		rec := api.do(http.MethodPost, "/api/health/water", map[string]any{"date": today, "amount": amount}, user.ID)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "amount", decodeBody[errBody](t, rec).Field)
	}

	rec := api.do(http.MethodGet, "/api/health/water/"+today+"?userId="+strconv.FormatInt(user.ID, 10), nil, 0)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[struct {
		Data struct {
			Total int `json:"total"`
			Logs  []struct {
				Amount int    `json:"amount"`
				Time   string `json:"time"`
			} `json:"logs"`
		} `json:"data"`
	}](t, rec)
	assert.Equal(t, 4251, got.Data.Total)
	require.Len(t, got.Data.Logs, 3)
	assert.Equal(t, handlers.MaxWaterPerEntry, got.Data.Logs[0].Amount)
	assert.NotEmpty(t, got.Data.Logs[0].Time)

	rec = api.do(http.MethodGet, "/api/health/water/2026-10-17", nil, user.ID)
	assert.JSONEq(t, `{"data":{"total":0,"logs":[]}}`, rec.Body.String())
}

func TestMeditationAppends(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	for _, minutes := range []int{10, 3} {
		rec := api.do(http.MethodPost, "/api/health/meditation", map[string]any{"date": today, "duration_minutes": minutes, "notes": "breath"}, user.ID)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	rec := api.do(http.MethodPost, "/api/health/meditation", map[string]any{"date": today, "duration_minutes": 0}, user.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/api/health/meditation/"+today, nil, user.ID)
	got := decodeBody[struct {
		Data []struct {
			DurationMinutes int  `json:"duration_minutes"`
			Completed       bool `json:"completed"`
		} `json:"data"`
	}](t, rec)
	require.Len(t, got.Data, 2)
	assert.Equal(t, 10, got.Data[0].DurationMinutes)
	assert.Equal(t, 3, got.Data[1].DurationMinutes)
	assert.True(t, got.Data[0].Completed)
}

func TestHealthRejectsBadDate(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	for _, path := range []string{"/api/health/sleep/today", "/api/health/water/2026-13-01", "/api/health/hygiene/x", "/api/health/meditation/18-10-2026"} {
		rec := api.do(http.MethodGet, path, nil, user.ID)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

type roadmapsBody struct {
	Roadmaps []struct {
		Title      string `json:"title"`
		Category   string `json:"category"`
		IsTrending bool   `json:"is_trending"`
	} `json:"roadmaps"`
}

func TestEducationRecommendationScenario(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodGet, "/api/education/preferences", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"preferences":null}`, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/education/preferences", map[string]string{
		"current_field": "Computer Science", "preferred_domain": "Web Development",
	}, user.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/education/preferences", nil, user.ID)
	prefs := decodeBody[struct {
		Preferences struct {
			CurrentField    string `json:"current_field"`
			PreferredDomain string `json:"preferred_domain"`
		} `json:"preferences"`
	}](t, rec)
	assert.Equal(t, "Computer Science", prefs.Preferences.CurrentField)

	rec = api.do(http.MethodGet, "/api/education/roadmaps/recommended?field=Computer+Science&domain=Web+Development", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	explicit := decodeBody[roadmapsBody](t, rec)
	require.Len(t, explicit.Roadmaps, 5)
	titles := make([]string, 0, len(explicit.Roadmaps))
	for _, r := range explicit.Roadmaps {
		assert.Contains(t, []string{"Computer Science", "Web Development"}, r.Category)
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "Computer Science")
	assert.Contains(t, titles, "Frontend Development")

	rec = api.do(http.MethodGet, "/api/education/roadmaps/recommended", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, explicit, decodeBody[roadmapsBody](t, rec))

	rec = api.do(http.MethodGet, "/api/education/roadmaps/recommended?field=Computer+Science", nil, user.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "domain", decodeBody[errBody](t, rec).Field)
}

func TestRecommendedWithoutPreferencesIsEmpty(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodGet, "/api/education/roadmaps/recommended", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"roadmaps":[]}`, rec.Body.String())
}

func TestTrendingRoadmaps(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodGet, "/api/education/roadmaps/trending", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[roadmapsBody](t, rec)
	require.Len(t, got.Roadmaps, 3)
	for _, r := range got.Roadmaps {
		assert.True(t, r.IsTrending)
	}
}

type hobbyPrefsBody struct {
	Preferences struct {
		PreferredCategories []string `json:"preferred_categories"`
		TimeAvailable       string   `json:"time_available"`
		SkillLevel          string   `json:"skill_level"`
	} `json:"preferences"`
}

func TestHobbyPreferencesSingleRow(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodGet, "/api/hobbies/preferences", nil, user.ID)
	assert.JSONEq(t, `{"preferences":{"preferred_categories":[],"time_available":"","skill_level":""}}`, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/hobbies/preferences", map[string]any{
		"preferred_categories": []string{"Music"}, "time_available": "3-5 hours/week", "skill_level": "Beginner",
	}, user.ID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = api.do(http.MethodPost, "/api/hobbies/preferences", map[string]any{
		"preferred_categories": []string{"Photography", "Dance"}, "time_available": "5-10 hours/week", "skill_level": "Intermediate",
	}, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/hobbies/preferences", nil, user.ID)
	got := decodeBody[hobbyPrefsBody](t, rec)
	assert.Equal(t, []string{"Photography", "Dance"}, got.Preferences.PreferredCategories)
	assert.Equal(t, "Intermediate", got.Preferences.SkillLevel)

	var rows int
	require.NoError(t, api.conn.Get(&rows, `SELECT COUNT(*) FROM user_hobby_preferences WHERE user_id = ?`, user.ID))
	assert.Equal(t, 1, rows)

	rec = api.do(http.MethodPost, "/api/hobbies/preferences", map[string]any{"skill_level": "Beginner"}, user.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "preferred_categories", decodeBody[errBody](t, rec).Field)
}

func TestHobbyRecommendations(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodGet, "/api/hobbies", nil, user.ID)
	all := decodeBody[struct {
		Hobbies []map[string]any `json:"hobbies"`
	}](t, rec)
	assert.Len(t, all.Hobbies, 10)

	rec = api.do(http.MethodPost, "/api/hobbies/recommended", map[string]any{
		"preferred_categories": []string{"Music", "Photography"}, "skill_level": "Intermediate",
	}, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[struct {
		Hobbies []struct {
			Name            string `json:"name"`
			Category        string `json:"category"`
			DifficultyLevel string `json:"difficulty_level"`
		} `json:"hobbies"`
	}](t, rec)
	require.Len(t, got.Hobbies, 2)
	for _, h := range got.Hobbies {
		assert.Contains(t, []string{"Music", "Photography"}, h.Category)
		assert.Equal(t, "Intermediate", h.DifficultyLevel)
	}

	rec = api.do(http.MethodPost, "/api/hobbies/recommended", map[string]any{"preferred_categories": []string{}, "skill_level": "Beginner"}, user.ID)
	assert.JSONEq(t, `{"hobbies":[]}`, rec.Body.String())
}

func TestHobbyEnumsRejected(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	tests := []struct {
		name       string
		path       string
		body       map[string]any
		wantField  string
		wantReason string
	}{
		{"unknown time", "/api/hobbies/preferences", map[string]any{
			"preferred_categories": []string{"Music"}, "time_available": "forever", "skill_level": "Beginner",
		}, "time_available", "invalid_choice"},
		{"unknown skill", "/api/hobbies/preferences", map[string]any{
			"preferred_categories": []string{"Music"}, "time_available": "3-5 hours/week", "skill_level": "banana",
		}, "skill_level", "invalid_choice"},
		{"missing time", "/api/hobbies/preferences", map[string]any{
			"preferred_categories": []string{"Music"}, "skill_level": "Beginner",
		}, "time_available", "required"},
		{"recommend unknown skill", "/api/hobbies/recommended", map[string]any{
			"preferred_categories": []string{"Music"}, "skill_level": "Expert",
		}, "skill_level", "invalid_choice"},
		{"recommend missing skill", "/api/hobbies/recommended", map[string]any{
			"preferred_categories": []string{"Music"},
		}, "skill_level", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodPost, tt.path, tt.body, user.ID)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			got := decodeBody[errBody](t, rec)
			assert.Equal(t, tt.wantField, got.Field)
			assert.Equal(t, tt.wantReason, got.Error)
		})
	}

	rec := api.do(http.MethodGet, "/api/hobbies/preferences", nil, user.ID)
	assert.Equal(t, "", decodeBody[hobbyPrefsBody](t, rec).Preferences.SkillLevel)
}

func TestChatRooms(t *testing.T) {
	api := newAPI(t, nil)
	ada := api.signup("ada")
	bob := api.signup("bob")

	rec := api.do(http.MethodGet, "/api/chat/rooms", nil, ada.ID)
	rooms := decodeBody[struct {
		Rooms []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"rooms"`
	}](t, rec)
	require.Len(t, rooms.Rooms, 10)
	roomPath := "/api/chat/rooms/" + strconv.FormatInt(rooms.Rooms[0].ID, 10) + "/messages"

	rec = api.do(http.MethodPost, roomPath, map[string]string{"message": "hello"}, ada.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = api.do(http.MethodPost, roomPath, map[string]string{"message": "hi ada"}, bob.ID)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(http.MethodPost, roomPath, map[string]string{"message": "  "}, ada.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "message", decodeBody[errBody](t, rec).Field)

	rec = api.do(http.MethodGet, roomPath, nil, ada.ID)
	msgs := decodeBody[struct {
		Messages []struct {
			Username string `json:"username"`
			Message  string `json:"message"`
		} `json:"messages"`
	}](t, rec)
	require.Len(t, msgs.Messages, 2)
	assert.Equal(t, "ada", msgs.Messages[0].Username)
	assert.Equal(t, "hi ada", msgs.Messages[1].Message)

	for _, path := range []string{"/api/chat/rooms/9999/messages", "/api/chat/rooms/abc/messages"} {
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, nil, ada.ID).Code, path)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, path, map[string]string{"message": "x"}, ada.ID).Code, path)
	}
}

func TestTasks(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodPost, "/api/tasks", map[string]any{"title": "Read chapter 3", "due_date": "2026-10-20"}, user.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	task := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "pending", task["status"])

	rec = api.do(http.MethodPost, "/api/tasks", map[string]any{"title": ""}, user.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/api/tasks", nil, user.ID)
	assert.Len(t, decodeBody[[]map[string]any](t, rec), 1)
}

func TestFinancialQuiz(t *testing.T) {
	api := newAPI(t, nil)
	user := api.signup("ada")

	rec := api.do(http.MethodGet, "/api/quiz/financial", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "answer")

	rec = api.do(http.MethodPost, "/api/quiz/financial/attempts", map[string]any{"answers": []int{1, 2, 1, 0, 0}}, user.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeBody[struct {
		Score        int    `json:"score"`
		Total        int    `json:"total"`
		Correct      []bool `json:"correct"`
		CoinsAwarded int    `json:"coins_awarded"`
	}](t, rec)
	assert.Equal(t, 3, got.Score)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, []bool{true, true, true, false, false}, got.Correct)
	assert.Equal(t, 60, got.CoinsAwarded)

	type attemptBody struct {
		Score        int `json:"score"`
		CoinsAwarded int `json:"coins_awarded"`
	}
	rec = api.do(http.MethodPost, "/api/quiz/financial/attempts", map[string]any{"answers": []int{1, 2, 1, 0, 0}}, user.ID)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Zero(t, decodeBody[attemptBody](t, rec).CoinsAwarded)

	rec = api.do(http.MethodPost, "/api/quiz/financial/attempts", map[string]any{"answers": []int{1, 2, 1, 1, 0}}, user.ID)
	require.Equal(t, http.StatusCreated, rec.Code)
	again := decodeBody[attemptBody](t, rec)
	assert.Equal(t, 4, again.Score)
	assert.Equal(t, 20, again.CoinsAwarded)

	rec = api.do(http.MethodGet, "/api/dashboard", nil, user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	dash := decodeBody[struct {
		Activity struct {
			QuizCorrect int `json:"quiz_correct"`
		} `json:"activity"`
	}](t, rec)
	assert.Equal(t, 4, dash.Activity.QuizCorrect)

	rec = api.do(http.MethodPost, "/api/quiz/financial/attempts", map[string]any{"answers": []int{1}}, user.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "answers", decodeBody[errBody](t, rec).Field)
}

func TestDashboardAndLeaderboard(t *testing.T) {
	api := newAPI(t, nil)
	ada := api.signup("ada")
	bob := api.signup("bob")

	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/gratitude", map[string]string{
		"gratitude_1": "a", "gratitude_2": "b", "gratitude_3": "c", "entry_date": "2026-10-17",
	}, ada.ID).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/gratitude", map[string]string{
		"gratitude_1": "a", "gratitude_2": "b", "gratitude_3": "c",
	}, ada.ID).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/mood", map[string]any{"mood_scale": 4, "primary_emotion": "happy"}, ada.ID).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/health/water", map[string]any{"date": today, "amount": 500}, bob.ID).Code)

	rec := api.do(http.MethodGet, "/api/dashboard", nil, ada.ID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dash := decodeBody[struct {
		Coins               int     `json:"coins"`
		Level               int     `json:"level"`
		NextLevelCoins      int     `json:"next_level_coins"`
		Progress            float64 `json:"progress"`
		GratitudeStreakDays int     `json:"gratitude_streak_days"`
		Activity            struct {
			Gratitude int `json:"gratitude"`
			Mood      int `json:"mood"`
		} `json:"activity"`
	}](t, rec)
	assert.Equal(t, 130, dash.Coins)
	assert.Equal(t, 1, dash.Level)
	assert.Equal(t, 500, dash.NextLevelCoins)
	assert.InDelta(t, 0.26, dash.Progress, 1e-9)
	assert.Equal(t, 2, dash.GratitudeStreakDays)
	assert.Equal(t, 2, dash.Activity.Gratitude)
	assert.Equal(t, 1, dash.Activity.Mood)

	rec = api.do(http.MethodGet, "/api/dashboard/leaderboard", nil, bob.ID)
	board := decodeBody[struct {
		Leaderboard []struct {
			Rank     int    `json:"rank"`
			Username string `json:"username"`
			Coins    int    `json:"coins"`
		} `json:"leaderboard"`
	}](t, rec)
	require.Len(t, board.Leaderboard, 2)
	assert.Equal(t, "ada", board.Leaderboard[0].Username)
	assert.Equal(t, 1, board.Leaderboard[0].Rank)
	assert.Equal(t, 5, board.Leaderboard[1].Coins)
}

func TestJournalEncryptedAtRest(t *testing.T) {
	api := newAPI(t, []byte("0123456789abcdef0123456789abcdef"))
	user := api.signup("ada")

	rec := api.do(http.MethodPost, "/api/gratitude", map[string]string{"gratitude_1": "sun", "gratitude_2": "tea", "gratitude_3": "friends"}, user.ID)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "sun", decodeBody[map[string]any](t, rec)["gratitude_1"])

	rec = api.do(http.MethodPost, "/api/mood", map[string]any{"mood_scale": 3, "primary_emotion": "calm", "reflection": "quiet evening"}, user.ID)
	require.Equal(t, http.StatusCreated, rec.Code)

	var stored string
	require.NoError(t, api.conn.Get(&stored, `SELECT gratitude_1 FROM gratitude_entries WHERE user_id = ?`, user.ID))
	assert.NotEqual(t, "sun", stored)
	require.NoError(t, api.conn.Get(&stored, `SELECT reflection FROM mood_entries WHERE user_id = ?`, user.ID))
	assert.NotEqual(t, "quiet evening", stored)

	rec = api.do(http.MethodGet, "/api/gratitude", nil, user.ID)
	assert.Equal(t, "sun", decodeBody[[]map[string]any](t, rec)[0]["gratitude_1"])
	rec = api.do(http.MethodGet, "/api/mood", nil, user.ID)
	assert.Equal(t, "quiet evening", decodeBody[[]map[string]any](t, rec)[0]["reflection"])
}
