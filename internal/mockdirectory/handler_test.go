package mockdirectory

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playerid/pkg/directory"
)

func newTestRouter(t *testing.T) (http.Handler, *Metrics) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	h := New(NewStore(SeedProfiles()...), nil, WithMetrics(m))
	return NewRouter(h, reg), m
}

func serve(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleProfileByName(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("returns hyphenless id and canonical name", func(t *testing.T) {
		rec := serve(t, router, ProfilePath+"/Notch")
		require.Equal(t, http.StatusOK, rec.Code)

		var body profileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "069a79f444e94726a5befca90e38aaf5", body.ID)
		assert.Equal(t, "Notch", body.Name)
	})

	t.Run("matches names case-insensitively", func(t *testing.T) {
		rec := serve(t, router, ProfilePath+"/dinnerbone")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Dinnerbone"`)
	})

	t.Run("unknown name is 404", func(t *testing.T) {
		rec := serve(t, router, ProfilePath+"/nobody_here_123")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Couldn't find any profile")
	})

	t.Run("no content magic name is 204", func(t *testing.T) {
		rec := serve(t, router, ProfilePath+"/"+NoContentName)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("malformed magic name is 200 with a non-profile body", func(t *testing.T) {
		rec := serve(t, router, ProfilePath+"/"+MalformedName)
		require.Equal(t, http.StatusOK, rec.Code)
		var p directory.Profile
		assert.Error(t, json.Unmarshal(rec.Body.Bytes(), &p))
	})
}

func TestHandleProfileByID(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("accepts hyphenless ids", func(t *testing.T) {
		rec := serve(t, router, SessionPath+"/61699b2ed3274a019f1e0ea8c3f06bc6")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Dinnerbone"`)
	})

	t.Run("accepts hyphenated ids", func(t *testing.T) {
		rec := serve(t, router, SessionPath+"/069a79f4-44e9-4726-a5be-fca90e38aaf5")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Notch"`)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := serve(t, router, SessionPath+"/"+uuid.NewString())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("garbage id is 400", func(t *testing.T) {
		rec := serve(t, router, SessionPath+"/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	router, m := newTestRouter(t)

	rec := serve(t, router, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"profiles":3`)

	serve(t, router, ProfilePath+"/Notch")
	serve(t, router, ProfilePath+"/unknown_player")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResponsesTotal.WithLabelValues("profile_by_name", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResponsesTotal.WithLabelValues("profile_by_name", "404")))

	rec = serve(t, router, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "playerid_mock_directory_responses_total"))
}

func TestStore_PutReplacesRenamedProfile(t *testing.T) {
	id := uuid.MustParse("853c80ef-3c37-49fd-aa49-938b674adae6")
	s := NewStore(directory.Profile{Name: "jeb_", ID: id})
	s.Put(directory.Profile{Name: "jeb", ID: id})

	_, ok := s.ByName("jeb_")
	assert.False(t, ok)
	p, ok := s.ByName("JEB")
	require.True(t, ok)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, 1, s.Len())
}
