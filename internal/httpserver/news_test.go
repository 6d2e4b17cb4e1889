package httpserver_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cmyzu/campus-backend/internal/models"
)

func seedNews(t *testing.T, env *testEnv, title string, published bool, publishedAt *time.Time) *models.NewsPost {
	t.Helper()
	post := &models.NewsPost{
		TitleZh:     title,
		TitleEn:     title + " EN",
		ExcerptZh:   "摘要 " + title,
		ExcerptEn:   "excerpt " + title,
		Published:   published,
		PublishedAt: publishedAt,
	}
	require.NoError(t, env.Repo.CreateNews(t.Context(), post))
	return post
}

func TestNewsLimit(t *testing.T) {
	env := newTestEnv(t)
	for _, title := range []string{"one", "two", "three"} {
		seedNews(t, env, title, true, nil)
	}

	rec := env.doJSON(http.MethodGet, "/api/news?limit=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	e := decodeEnvelope(t, rec)
	require.True(t, e.Success)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(e.Data, &items))
	require.Len(t, items, 2)
}

func TestNewsDateFallsBackToCreatedAt(t *testing.T) {
	env := newTestEnv(t)
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedNews(t, env, "with date", true, &published)
	seedNews(t, env, "without date", true, nil)

	rec := env.doJSON(http.MethodGet, "/api/news", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []struct {
		TitleZh string     `json:"title_zh"`
		Date    *time.Time `json:"date"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
	require.Len(t, items, 2)
	for _, item := range items {
		require.NotNil(t, item.Date, "date must never be null")
		require.False(t, item.Date.IsZero())
	}
}

func TestNewsHidesDrafts(t *testing.T) {
	env := newTestEnv(t)
	seedNews(t, env, "public", true, nil)
	draft := seedNews(t, env, "draft", false, nil)

	rec := env.doJSON(http.MethodGet, "/api/news", nil, "")
	var items []map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
	require.Len(t, items, 1)

	rec = env.doJSON(http.MethodGet, "/api/news/"+draft.ID, nil, "")
	requireFailure(t, rec, http.StatusNotFound)
}

func TestNewsSearchFilter(t *testing.T) {
	env := newTestEnv(t)
	seedNews(t, env, "Campus Opening Ceremony", true, nil)
	seedNews(t, env, "Exchange Program", true, nil)

	rec := env.doJSON(http.MethodGet, "/api/news?search=OPENING", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []struct {
		TitleZh string `json:"title_zh"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
	require.Len(t, items, 1)
	require.Equal(t, "Campus Opening Ceremony", items[0].TitleZh)
}

func TestNewsSearchUnavailableWithoutIndex(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/news/search?q=campus", nil, "")
	requireFailure(t, rec, http.StatusServiceUnavailable)

	rec = env.doJSON(http.MethodGet, "/api/news/search", nil, "")
	requireFailure(t, rec, http.StatusBadRequest)
}

func TestNewsAdminCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken()

	rec := env.doJSON(http.MethodPost, "/api/dashboard/news", map[string]any{
		"title_zh":  "新聞",
		"title_en":  "News",
		"published": true,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.NewsPost
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.PublishedAt)

	rec = env.doJSON(http.MethodPut, "/api/dashboard/news/"+created.ID, map[string]any{
		"title_en": "Updated News",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.NewsPost
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &updated))
	require.Equal(t, "Updated News", updated.TitleEn)
	require.Equal(t, "新聞", updated.TitleZh)

	rec = env.doJSON(http.MethodDelete, "/api/dashboard/news/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(http.MethodDelete, "/api/dashboard/news/"+created.ID, nil, token)
	requireFailure(t, rec, http.StatusNotFound)
}

func TestNewsUpdateUnknownID(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken()

	rec := env.doJSON(http.MethodPut, "/api/dashboard/news/no-such-id",
		map[string]any{"title_zh": "x"}, token)
	requireFailure(t, rec, http.StatusNotFound)
}
