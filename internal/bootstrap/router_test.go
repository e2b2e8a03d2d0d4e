package bootstrap

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mskustudx/studx/internal/config"
	"github.com/mskustudx/studx/internal/persistence"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testApp struct {
	handler http.Handler
	store   *persistence.FileStore
}

func newTestApp(t *testing.T, mutate func(cfg *config.Config)) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "users-data.json")
	if mutate != nil {
		mutate(cfg)
	}

	store := persistence.NewFileStore(cfg.Storage.Path)
	deps, err := BuildDependencies(context.Background(), cfg, store, zerolog.Nop())
	require.NoError(t, err)

	return &testApp{handler: WithCORS(SetupRouter(cfg, deps), cfg.Server.AllowedOrigins), store: store}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

type materialView struct {
	ID          int64 `json:"id"`
	Upvotes     int   `json:"upvotes"`
	Downvotes   int   `json:"downvotes"`
	HasLiked    bool  `json:"hasLiked"`
	HasDisliked bool  `json:"hasDisliked"`
}

func TestDepartmentCoursesIncludeSharedCourses(t *testing.T) {
	app := newTestApp(t, nil)

	w, env := app.do(t, http.MethodGet, "/api/v1/courses?departmentId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	courses := decode[[]struct {
		ID int64 `json:"id"`
	}](t, env.Data)
	var ids []int64
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 15, 16, 17, 18, 19}, ids)

	w, env = app.do(t, http.MethodGet, "/api/v1/departments/99/courses", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func TestVoteToggleOverHTTP(t *testing.T) {
	app := newTestApp(t, nil)
	vote := map[string]interface{}{"direction": "UP", "userId": 7}

	w, env := app.do(t, http.MethodPost, "/api/v1/materials/1/vote", vote)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	m := decode[materialView](t, env.Data)
	assert.Equal(t, 26, m.Upvotes)
	assert.True(t, m.HasLiked)

	_, env = app.do(t, http.MethodPost, "/api/v1/materials/1/vote", vote)
	m = decode[materialView](t, env.Data)
	assert.Equal(t, 25, m.Upvotes)
	assert.False(t, m.HasLiked)
}

func TestVoteErrorsOverHTTP(t *testing.T) {
	app := newTestApp(t, nil)

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
	}{
		{"missing userId", "/api/v1/materials/1/vote", map[string]interface{}{"direction": "UP"}, http.StatusUnauthorized},
		{"empty body", "/api/v1/materials/1/vote", map[string]interface{}{}, http.StatusUnauthorized},
		{"empty direction without userId", "/api/v1/materials/1/vote", map[string]interface{}{"direction": ""}, http.StatusUnauthorized},
		{"bad direction without userId", "/api/v1/materials/1/vote", map[string]interface{}{"direction": "sideways"}, http.StatusUnauthorized},
		{"unknown material", "/api/v1/materials/999/vote", map[string]interface{}{"direction": "UP", "userId": 1}, http.StatusNotFound},
		{"invalid direction", "/api/v1/materials/1/vote", map[string]interface{}{"direction": "left", "userId": 1}, http.StatusBadRequest},
		{"missing direction", "/api/v1/materials/1/vote", map[string]interface{}{"userId": 1}, http.StatusBadRequest},
		{"bad id", "/api/v1/materials/abc/vote", map[string]interface{}{"direction": "UP", "userId": 1}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := app.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
		})
	}
}

func TestMaterialFiltersOverHTTP(t *testing.T) {
	app := newTestApp(t, nil)

	w, env := app.do(t, http.MethodGet, "/api/v1/materials?type=podcast", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]materialView](t, env.Data))

	_, env = app.do(t, http.MethodGet, "/api/v1/materials?courseId=15", nil)
	list := decode[[]materialView](t, env.Data)
	require.Len(t, list, 2)
	assert.GreaterOrEqual(t, list[0].Upvotes, list[1].Upvotes)

	_, env = app.do(t, http.MethodGet, "/api/materials?q=LINKED", nil)
	assert.Len(t, decode[[]materialView](t, env.Data), 1)
}

func TestRegisterLoginAndEngagementPersist(t *testing.T) {
	app := newTestApp(t, nil)

	w, env := app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name": "Mehmet Kaya", "email": "mehmet@studx.edu.tr", "credential": "secret-1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, string(env.Data), "credential")

	reg := decode[struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}](t, env.Data)
	userPath := "/api/v1/users/" + strconv.FormatInt(reg.User.ID, 10)

	w, _ = app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name": "Again", "email": "MEHMET@studx.edu.tr", "credential": "secret-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "mehmet@studx.edu.tr", "credential": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = app.do(t, http.MethodPost, userPath+"/views", map[string]int64{"courseId": 15})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, _ = app.do(t, http.MethodPost, userPath+"/liked-courses", map[string]int64{"courseId": 15})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = app.do(t, http.MethodPost, "/api/v1/users/999/views", map[string]int64{"courseId": 15})
	assert.Equal(t, http.StatusNotFound, w.Code)

	stored, err := app.store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, int64(15), stored[2].RecentlyViewed[0].CourseID)
	assert.True(t, stored[2].CoursesLiked.Has(15))
}

func TestVoteUsesTokenIdentity(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.JWT.Enabled = true
		cfg.JWT.Secret = "test-secret"
	})

	w, env := app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "ayse@studx.edu.tr", "credential": "ayse1234",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decode[struct {
		Token struct {
			AccessToken string `json:"accessToken"`
		} `json:"token"`
	}](t, env.Data)
	require.NotEmpty(t, login.Token.AccessToken)

	w, env = app.do(t, http.MethodPost, "/api/v1/materials/2/vote", map[string]string{"direction": "DOWN"},
		"Authorization", "Bearer "+login.Token.AccessToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decode[materialView](t, env.Data).HasDisliked)

	_, env = app.do(t, http.MethodGet, "/api/v1/users/2/vote-status", nil)
	status := decode[map[string]struct {
		HasDisliked bool `json:"hasDisliked"`
	}](t, env.Data)
	assert.True(t, status["2"].HasDisliked)

	bearer := "Bearer " + login.Token.AccessToken
	w, _ = app.do(t, http.MethodPost, "/api/v1/materials/2/vote", map[string]interface{}{"direction": "UP", "userId": 1},
		"Authorization", bearer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = app.do(t, http.MethodPost, "/api/v1/users/1/views", map[string]int64{"courseId": 1}, "Authorization", bearer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = app.do(t, http.MethodPost, "/api/v1/users/2/views", map[string]int64{"courseId": 1}, "Authorization", bearer)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = app.do(t, http.MethodGet, "/api/v1/faculties", nil, "Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAmbientEndpoints(t *testing.T) {
	app := newTestApp(t, nil)

	w, _ := app.do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, "pong", w.Body.String())

	w, _ = app.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, _ = app.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := app.do(t, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)

	w, _ = app.do(t, http.MethodOptions, "/api/v1/faculties", nil,
		"Origin", "http://localhost:5500", "Access-Control-Request-Method", "GET")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
