package httpserver_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cmyzu/campus-backend/internal/events"
	"github.com/cmyzu/campus-backend/internal/httpserver"
	"github.com/cmyzu/campus-backend/internal/models"
	"github.com/cmyzu/campus-backend/internal/repo"
	"github.com/cmyzu/campus-backend/internal/service"
	"github.com/cmyzu/campus-backend/internal/storage"
	"github.com/cmyzu/campus-backend/pkg/hash"
	"github.com/cmyzu/campus-backend/pkg/tokens"
)

var testSecret = []byte("test-secret")

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	DB   *gorm.DB
	Repo *repo.GormRepo
	Auth *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithSigner(t, nil)
}

func newTestEnvWithSigner(t *testing.T, signer storage.URLSigner) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(models.All()...))

	store := repo.New(gdb)
	authSvc := &service.AuthService{
		Repo:   store,
		Secret: testSecret,
		Events: events.Noop{},
	}

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		Auth:        &httpserver.AuthHTTP{Svc: authSvc},
		News:        &httpserver.NewsHandler{Repo: store, Events: events.Noop{}},
		LiveUpdates: &httpserver.LiveUpdateHandler{Repo: store, Events: events.Noop{}},
		Hero:        &httpserver.HeroHandler{Repo: store, Signer: signer, Events: events.Noop{}},
		Rankings:    &httpserver.RankingHandler{Repo: store, Events: events.Noop{}},
		Reports:     &httpserver.ReportHandler{Repo: store, Signer: signer, Events: events.Noop{}},
		YouTube:     &httpserver.YouTubeHandler{Repo: store, Events: events.Noop{}},
		Schools:     &httpserver.SchoolHandler{Repo: store, Events: events.Noop{}},
		Alumni:      &httpserver.AlumniHandler{Repo: store, Events: events.Noop{}},
		Stats:       &httpserver.StatsHandler{Repo: store},
		JWTSecret:   testSecret,
	})

	return &testEnv{T: t, E: e, DB: gdb, Repo: store, Auth: authSvc}
}

// doJSON runs the request through the full router, middleware included.
func (env *testEnv) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) seedUser(email, password, role string, active bool) *models.User {
	env.T.Helper()

	pwHash, err := hash.Password(password)
	require.NoError(env.T, err)
	user := &models.User{
		Email:        email,
		PasswordHash: pwHash,
		Name:         "Test User",
		Role:         role,
		Active:       active,
	}
	require.NoError(env.T, env.Repo.CreateUser(env.T.Context(), user))
	return user
}

// adminToken seeds an admin account and returns a valid session token.
func (env *testEnv) adminToken() string {
	env.T.Helper()

	user := env.seedUser("admin@cmyzu.edu.tw", "correct-password", "admin", true)
	token, err := tokens.SignSession(user.ID, user.Email, user.Role, testSecret)
	require.NoError(env.T, err)
	return token
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func requireFailure(t *testing.T, rec *httptest.ResponseRecorder, code int) envelope {
	t.Helper()

	require.Equal(t, code, rec.Code)
	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.NotEmpty(t, env.Error)
	return env
}
