package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmyzu/campus-backend/internal/models"
	"github.com/cmyzu/campus-backend/internal/transport"
)

// stubSigner fakes the presign layer with deterministic URLs.
type stubSigner struct {
	putKeys []string
	getKeys []string
}

func (s *stubSigner) PresignPut(_ context.Context, key string) (string, error) {
	s.putKeys = append(s.putKeys, key)
	return "https://s3.test/put/" + key, nil
}

func (s *stubSigner) PresignGet(_ context.Context, key string) (string, error) {
	s.getKeys = append(s.getKeys, key)
	return "https://s3.test/get/" + key, nil
}

func seedReport(t *testing.T, env *testEnv, year int, published bool, fileKey *string) *models.AnnualReport {
	t.Helper()
	report := &models.AnnualReport{
		Year:      year,
		TitleEn:   "Annual Report",
		FileKey:   fileKey,
		Published: published,
	}
	require.NoError(t, env.Repo.CreateReport(t.Context(), report))
	return report
}

func TestReportUploadURLPersistsFileKey(t *testing.T) {
	signer := &stubSigner{}
	env := newTestEnvWithSigner(t, signer)
	token := env.adminToken()
	report := seedReport(t, env, 2024, false, nil)

	rec := env.doJSON(http.MethodPost, "/api/dashboard/reports/"+report.ID+"/upload-url", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var res transport.UploadURLResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &res))
	require.True(t, strings.HasPrefix(res.Key, "reports/2024/"))
	require.True(t, strings.HasSuffix(res.Key, ".pdf"))
	require.Equal(t, "https://s3.test/put/"+res.Key, res.URL)
	require.Equal(t, []string{res.Key}, signer.putKeys)

	stored, err := env.Repo.ReportByID(t.Context(), report.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.FileKey)
	require.Equal(t, res.Key, *stored.FileKey)
}

func TestReportDownloadRedirectsToPresignedGet(t *testing.T) {
	signer := &stubSigner{}
	env := newTestEnvWithSigner(t, signer)
	key := "reports/2024/abc.pdf"
	report := seedReport(t, env, 2024, true, &key)

	rec := env.doJSON(http.MethodGet, "/api/annual-reports/"+report.ID+"/download", nil, "")
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	require.Equal(t, "https://s3.test/get/"+key, rec.Header().Get("Location"))
	require.Equal(t, []string{key}, signer.getKeys)
}

func TestReportDownloadHidesUnavailableFiles(t *testing.T) {
	env := newTestEnvWithSigner(t, &stubSigner{})
	key := "reports/2023/def.pdf"
	noFile := seedReport(t, env, 2024, true, nil)
	draft := seedReport(t, env, 2023, false, &key)

	rec := env.doJSON(http.MethodGet, "/api/annual-reports/"+noFile.ID+"/download", nil, "")
	requireFailure(t, rec, http.StatusNotFound)

	rec = env.doJSON(http.MethodGet, "/api/annual-reports/"+draft.ID+"/download", nil, "")
	requireFailure(t, rec, http.StatusNotFound)

	rec = env.doJSON(http.MethodGet, "/api/annual-reports/no-such-id/download", nil, "")
	requireFailure(t, rec, http.StatusNotFound)
}

func TestHeroUploadURLReturnsNamespacedKey(t *testing.T) {
	signer := &stubSigner{}
	env := newTestEnvWithSigner(t, signer)
	token := env.adminToken()

	rec := env.doJSON(http.MethodPost, "/api/dashboard/hero/upload-url", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var res transport.UploadURLResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &res))
	require.True(t, strings.HasPrefix(res.Key, "hero/"))
	require.Equal(t, "https://s3.test/put/"+res.Key, res.URL)
	require.Equal(t, []string{res.Key}, signer.putKeys)
}
