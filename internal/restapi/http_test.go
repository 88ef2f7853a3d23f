package restapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"eventrec.dev/eventdb"
	"eventrec.dev/internal/app"
	"eventrec.dev/internal/appconf"
	"eventrec.dev/internal/catalog"
	"eventrec.dev/internal/clock"
	"eventrec.dev/internal/contextual"
	"eventrec.dev/internal/crowd"
	"eventrec.dev/internal/logging"
	"eventrec.dev/internal/models"
	"eventrec.dev/internal/recommend"
	"eventrec.dev/internal/scoring"
)

var testNow = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

func testAppConfig() appconf.Config {
	return appconf.Config{
		Env:       appconf.Test,
		ApiKeys:   []string{"TEST", "OTHER"},
		RateLimit: 100,
	}
}

func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithConfig(t, testAppConfig())
}

func createTestApiWithConfig(t *testing.T, cfg appconf.Config) *RestAPI {
	t.Helper()

	manager, err := catalog.InitCatalogManager(context.Background(), appconf.CatalogConfig{
		Source: models.GetFixturePath(t, "events_seed.csv"),
	})
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	store, err := eventdb.NewClient(eventdb.NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	mockClock := clock.NewMockClock(testNow)
	engine, err := scoring.NewEngine(scoring.ContextualWeights(), contextual.NewTemporalScorer(mockClock, appconf.TemporalModelStepped))
	require.NoError(t, err)
	estimator := crowd.NewEstimator(store.Queries)

	api := NewRestAPI(&app.Application{
		Config:         cfg,
		ScoringConfig:  appconf.DefaultScoringConfig(),
		Logger:         logging.NewStructuredLogger(io.Discard, 0),
		CatalogManager: manager,
		Store:          store,
		Recommender:    recommend.NewRecommender(manager, engine, store.Queries, nil),
		Crowd:          estimator,
		Clock:          mockClock,
	})
	t.Cleanup(api.Shutdown)
	return api
}

// serveApiRequest sends one request through the full middleware stack.
func serveApiRequest(t *testing.T, api *RestAPI, method, url, body string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.SetupAPIRoutes())
	defer server.Close()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var model models.ResponseModel
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &model), string(raw))
	}
	return resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, url string) (*http.Response, models.ResponseModel) {
	t.Helper()
	return serveApiRequest(t, api, http.MethodGet, url, "")
}

func serveAndRetrieveEndpoint(t *testing.T, url string) (*RestAPI, *http.Response, models.ResponseModel) {
	t.Helper()
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, url)
	return api, resp, model
}

func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "data.entry should be an object")
	return entry
}

func listOf(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "data.list should be an array")
	return list
}

func fieldErrorsOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	fieldErrors, ok := data["fieldErrors"].(map[string]interface{})
	require.True(t, ok, "data.fieldErrors should be an object")
	return fieldErrors
}

func collectIdsFromRecommendations(list []interface{}) []string {
	ids := make([]string, 0, len(list))
	for _, item := range list {
		rec, _ := item.(map[string]interface{})
		event, _ := rec["event"].(map[string]interface{})
		id, _ := event["id"].(string)
		ids = append(ids, id)
	}
	return ids
}
