package httpserver_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cmyzu/campus-backend/internal/models"
)

func TestRankingsPublicIsBareArrayCappedAtThree(t *testing.T) {
	env := newTestEnv(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r := &models.Ranking{
			TitleZh:   "排名",
			TitleEn:   "Ranking",
			Value:     "Top 100",
			Order:     5 - i, // descending insert order, ascending sort expected
			Published: true,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, env.Repo.CreateRanking(t.Context(), r))
	}
	require.NoError(t, env.Repo.CreateRanking(t.Context(), &models.Ranking{
		TitleZh: "草稿", Order: 0, Published: false,
	}))

	rec := env.doJSON(http.MethodGet, "/api/rankings/public", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// legacy contract: the body is the array itself, no envelope
	var rankings []models.Ranking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rankings))
	require.Len(t, rankings, 3)
	for _, r := range rankings {
		require.True(t, r.Published)
	}
	require.LessOrEqual(t, rankings[0].Order, rankings[1].Order)
	require.LessOrEqual(t, rankings[1].Order, rankings[2].Order)
}

func TestLiveUpdatesPriorityFilter(t *testing.T) {
	env := newTestEnv(t)
	for _, p := range []string{"LOW", "URGENT", "URGENT", "HIGH"} {
		require.NoError(t, env.Repo.CreateLiveUpdate(t.Context(), &models.LiveUpdate{
			TextZh: "更新", Priority: p, Active: true,
		}))
	}
	require.NoError(t, env.Repo.CreateLiveUpdate(t.Context(), &models.LiveUpdate{
		TextZh: "inactive", Priority: "URGENT", Active: false,
	}))

	rec := env.doJSON(http.MethodGet, "/api/live-updates?priority=URGENT", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var updates []models.LiveUpdate
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &updates))
	require.Len(t, updates, 2)
	for _, u := range updates {
		require.Equal(t, "URGENT", u.Priority)
		require.True(t, u.Active)
	}
}

func TestLiveUpdatesBadPriority(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/live-updates?priority=CRITICAL", nil, "")
	requireFailure(t, rec, http.StatusBadRequest)
}

func TestLiveUpdatesLimit(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 4; i++ {
		require.NoError(t, env.Repo.CreateLiveUpdate(t.Context(), &models.LiveUpdate{
			TextZh: "更新", Priority: "LOW", Active: true,
		}))
	}

	rec := env.doJSON(http.MethodGet, "/api/live-updates?limit=2", nil, "")
	var updates []models.LiveUpdate
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &updates))
	require.Len(t, updates, 2)
}

func TestHeroLocaleFilter(t *testing.T) {
	env := newTestEnv(t)
	for _, slide := range []models.HeroSlide{
		{Locale: "zh", Title: "歡迎", Order: 2, Active: true},
		{Locale: "zh", Title: "招生", Order: 1, Active: true},
		{Locale: "en", Title: "Welcome", Order: 1, Active: true},
		{Locale: "zh", Title: "hidden", Order: 0, Active: false},
	} {
		s := slide
		require.NoError(t, env.Repo.CreateHeroSlide(t.Context(), &s))
	}

	rec := env.doJSON(http.MethodGet, "/api/hero?locale=en", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var slides []models.HeroSlide
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &slides))
	require.Len(t, slides, 1)
	require.Equal(t, "Welcome", slides[0].Title)

	// default locale is zh, sorted by order, inactive hidden
	rec = env.doJSON(http.MethodGet, "/api/hero", nil, "")
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &slides))
	require.Len(t, slides, 2)
	require.Equal(t, "招生", slides[0].Title)

	rec = env.doJSON(http.MethodGet, "/api/hero?locale=fr", nil, "")
	requireFailure(t, rec, http.StatusBadRequest)
}

func TestHeroUploadURLUnavailableWithoutStorage(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken()

	rec := env.doJSON(http.MethodPost, "/api/dashboard/hero/upload-url", nil, token)
	requireFailure(t, rec, http.StatusServiceUnavailable)
}

func TestSchoolsCRUDAndNotFoundMapping(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken()

	rec := env.doJSON(http.MethodPost, "/api/worldmap/schools", map[string]any{
		"name_zh":   "早稻田大学",
		"name_en":   "Waseda University",
		"country":   "Japan",
		"city":      "Tokyo",
		"latitude":  35.7089,
		"longitude": 139.7197,
		"students":  12,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var school models.PartnerSchool
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &school))

	rec = env.doJSON(http.MethodGet, "/api/worldmap/schools", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var schools []models.PartnerSchool
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &schools))
	require.Len(t, schools, 1)

	rec = env.doJSON(http.MethodPut, "/api/worldmap/schools/"+school.ID,
		map[string]any{"students": 20}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// tagged not-found maps to 404, not 500
	rec = env.doJSON(http.MethodDelete, "/api/worldmap/schools/unknown-id", nil, token)
	requireFailure(t, rec, http.StatusNotFound)

	rec = env.doJSON(http.MethodDelete, "/api/worldmap/schools/"+school.ID, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestYouTubeListAndMutations(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken()

	rec := env.doJSON(http.MethodPost, "/api/dashboard/youtube", map[string]any{
		"video_id": "dQw4w9WgXcQ",
		"title_en": "Campus Tour",
		"order":    1,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var video models.YouTubeVideo
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &video))

	rec = env.doJSON(http.MethodGet, "/api/youtube", nil, "")
	var videos []models.YouTubeVideo
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &videos))
	require.Len(t, videos, 1)

	rec = env.doJSON(http.MethodPut, "/api/dashboard/youtube/"+video.ID,
		map[string]any{"published": false}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(http.MethodGet, "/api/youtube", nil, "")
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &videos))
	require.Empty(t, videos)

	rec = env.doJSON(http.MethodDelete, "/api/dashboard/youtube/"+video.ID, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.doJSON(http.MethodDelete, "/api/dashboard/youtube/"+video.ID, nil, token)
	requireFailure(t, rec, http.StatusNotFound)
}

func TestReportsListPublishedOnly(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken()

	rec := env.doJSON(http.MethodPost, "/api/dashboard/reports", map[string]any{
		"year": 2024, "title_en": "Annual Report 2024", "published": true,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = env.doJSON(http.MethodPost, "/api/dashboard/reports", map[string]any{
		"year": 2025, "title_en": "Annual Report 2025",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(http.MethodGet, "/api/annual-reports", nil, "")
	var reports []models.AnnualReport
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &reports))
	require.Len(t, reports, 1)
	require.Equal(t, 2024, reports[0].Year)

	// presigning needs S3; without it the route degrades explicitly
	rec = env.doJSON(http.MethodPost, "/api/dashboard/reports/"+reports[0].ID+"/upload-url", nil, token)
	requireFailure(t, rec, http.StatusServiceUnavailable)
}

func TestAlumniList(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken()

	rec := env.doJSON(http.MethodPost, "/api/dashboard/alumni", map[string]any{
		"name_zh": "王小明", "title_en": "CEO", "order": 1,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(http.MethodGet, "/api/alumni", nil, "")
	var alumni []models.Alumnus
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &alumni))
	require.Len(t, alumni, 1)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken()
	seedNews(t, env, "a", true, nil)
	seedNews(t, env, "b", false, nil)

	rec := env.doJSON(http.MethodGet, "/api/dashboard/stats", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		News int64 `json:"news"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &stats))
	require.EqualValues(t, 2, stats.News)
}
