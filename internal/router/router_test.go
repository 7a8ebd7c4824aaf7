package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/actuallystonmai/program-finder/internal/catalog"
	"github.com/actuallystonmai/program-finder/internal/handler"
	"github.com/actuallystonmai/program-finder/internal/service"
	"github.com/actuallystonmai/program-finder/seeds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	snap, err := catalog.New(seeds.Questions(), seeds.Programs())
	require.NoError(t, err)

	log := zaptest.NewLogger(t)
	svc := service.NewService(catalog.NewStore(snap), log)
	srv := httptest.NewServer(Setup(handler.NewHandler(svc, log), log, 5*time.Second))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newServer(t)

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/questions", "", http.StatusOK},
		{http.MethodGet, "/programs", "", http.StatusOK},
		{http.MethodGet, "/programs/noom", "", http.StatusOK},
		{http.MethodGet, "/programs/unknown", "", http.StatusNotFound},
		{http.MethodPost, "/recommendations", `{"answers": {"goal": "quick"}}`, http.StatusOK},
		{http.MethodPost, "/recommendations/batch", `{"requests": [{"answers": {}}]}`, http.StatusOK},
		{http.MethodPost, "/admin/catalog/reload", "", http.StatusConflict},
		{http.MethodGet, "/recommendations", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/users/1/recommendations", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, strings.NewReader(tc.body))
			require.NoError(t, err)
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestMetricsExposeRequestDuration(t *testing.T) {
	srv := newServer(t)

	resp, err := srv.Client().Get(srv.URL + "/programs/noom")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_request_duration_seconds_count{method="GET",route="/programs/{programID}",status="200"}`)
}
