package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"afyadash.or.ke/internal/app"
	"afyadash.or.ke/internal/appconf"
	"afyadash.or.ke/internal/healthdata"
	"afyadash.or.ke/internal/logging"
	"afyadash.or.ke/internal/models"
)

// createTestApi creates a RestAPI instance over the fixture dataset for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	manager, err := healthdata.InitManager(healthdata.Config{
		DataPath: models.GetFixturePath(t, "subcounty_metrics.csv"),
	})
	require.NoError(t, err)

	application := &app.Application{
		Config: app.Config{
			Env:       appconf.Test,
			ApiKeys:   []string{"TEST"},
			RateLimit: -1, // no limiting in handler tests
		},
		Logger:      logging.NewStructuredLogger(io.Discard, slog.LevelError),
		DataManager: manager,
	}

	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	server := httptest.NewServer(api.Handler())
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveAndRetrieveRaw is like serveAndRetrieveEndpoint but decodes the body
// into a generic map, for responses that do not use the envelope (e.g. 400
// fieldErrors).
func serveAndRetrieveRaw(t *testing.T, endpoint string) (*http.Response, map[string]interface{}) {
	api := createTestApi(t)

	server := httptest.NewServer(api.Handler())
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var body map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&body)
	require.NoError(t, err)

	return resp, body
}

// dataMap extracts the data payload of an envelope as a map.
func dataMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

func entryMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	entry, ok := dataMap(t, model)["entry"].(map[string]interface{})
	require.True(t, ok, "response entry should be a map")
	return entry
}

func listSlice(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()

	list, ok := dataMap(t, model)["list"].([]interface{})
	require.True(t, ok, "response list should be a slice")
	return list
}
