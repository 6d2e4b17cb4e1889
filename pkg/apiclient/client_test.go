package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T) (*httptest.Server, *http.ServeMux) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, mux
}

func writeOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

func TestLoginStoresToken(t *testing.T) {
	srv, mux := newStubServer(t)
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "admin@cmyzu.edu.tw", body["email"])
		writeOK(w, map[string]any{
			"user":  map[string]any{"id": "u1", "email": body["email"], "role": "admin"},
			"token": "signed-token",
		})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer signed-token", r.Header.Get("Authorization"))
		writeOK(w, map[string]any{"user": map[string]any{"id": "u1", "role": "admin"}})
	})

	c := New(srv.URL)
	res, err := c.Login(t.Context(), "admin@cmyzu.edu.tw", "correct-password")
	require.NoError(t, err)
	require.Equal(t, "signed-token", res.Token)
	require.Equal(t, "admin", res.User.Role)

	me, err := c.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "u1", me.ID)
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	srv, mux := newStubServer(t)
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusUnauthorized, "invalid email or password")
	})

	c := New(srv.URL)
	_, err := c.Login(t.Context(), "admin@cmyzu.edu.tw", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "invalid email or password", apiErr.Message)
}

func TestNewsPassesQueryParams(t *testing.T) {
	srv, mux := newStubServer(t)
	mux.HandleFunc("GET /api/news", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "3", r.URL.Query().Get("limit"))
		require.Equal(t, "campus", r.URL.Query().Get("search"))
		writeOK(w, []map[string]any{{"id": "n1", "title_zh": "新聞"}})
	})

	c := New(srv.URL)
	items, err := c.News(t.Context(), 3, "campus")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "新聞", items[0].TitleZh)
}

func TestRankingsDecodesBareArray(t *testing.T) {
	srv, mux := newStubServer(t)
	mux.HandleFunc("GET /api/rankings/public", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "r1", "title_en": "QS Top 100", "order": 1},
			{"id": "r2", "title_en": "THE Top 50", "order": 2},
		})
	})

	c := New(srv.URL)
	items, err := c.Rankings(t.Context())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "QS Top 100", items[0].TitleEn)
}

func TestLogoutClearsTokenEvenOnError(t *testing.T) {
	srv, mux := newStubServer(t)
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusInternalServerError, "internal server error")
	})

	c := New(srv.URL)
	c.SetToken("old-token")
	err := c.Logout(t.Context())
	require.Error(t, err)

	// the next call must go out unauthenticated
	mux.HandleFunc("GET /api/live-updates", func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		writeOK(w, []map[string]any{})
	})
	_, err = c.LiveUpdates(t.Context(), 0, "")
	require.NoError(t, err)
}
