package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/dashboard/query.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
}

func TestQueryHandlerDefaultsEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/dashboard/query.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	entry := entryMap(t, model)

	ranked, ok := entry["ranked"].([]interface{})
	require.True(t, ok)
	assert.Len(t, ranked, 10, "default topN of 20 keeps all 10 fixture rows")

	first, ok := ranked[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "BUSIA", first["matched_area_clean"],
		"default metric is facilities_per_10k and BUSIA tops it")

	rows, ok := entry["rows"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 10)

	aggregates, ok := entry["aggregates"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 10, aggregates["subCounties"])

	means, ok := aggregates["means"].([]interface{})
	require.True(t, ok)
	assert.Len(t, means, 5)

	coverage, ok := entry["serviceCoverage"].([]interface{})
	require.True(t, ok)
	assert.Len(t, coverage, 5)

	refs, ok := dataMap(t, model)["references"].(map[string]interface{})
	require.True(t, ok)
	counties, ok := refs["counties"].([]interface{})
	require.True(t, ok)
	assert.Len(t, counties, 8)
}

func TestQueryHandlerFilteredAndRanked(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/dashboard/query.json?key=TEST&counties=Bungoma&metric=total_facilities&topN=2")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryMap(t, model)

	ranked, ok := entry["ranked"].([]interface{})
	require.True(t, ok)
	require.Len(t, ranked, 2)

	first, ok := ranked[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "BUNGOMA CENTRAL", first["matched_area_clean"])

	rows, ok := entry["rows"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 3, "the full filtered set is untruncated")

	aggregates, ok := entry["aggregates"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, aggregates["subCounties"],
		"aggregates cover the full filtered set, not the top-N")
}

func TestQueryHandlerUnknownMetric(t *testing.T) {
	resp, body := serveAndRetrieveRaw(t, "/api/dashboard/query.json?key=TEST&metric=no_such_metric")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	fieldErrors, ok := body["fieldErrors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "metric")
}

func TestQueryHandlerInvalidTopN(t *testing.T) {
	for _, endpoint := range []string{
		"/api/dashboard/query.json?key=TEST&topN=0",
		"/api/dashboard/query.json?key=TEST&topN=9999",
		"/api/dashboard/query.json?key=TEST&topN=abc",
	} {
		resp, body := serveAndRetrieveRaw(t, endpoint)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, endpoint)

		fieldErrors, ok := body["fieldErrors"].(map[string]interface{})
		require.True(t, ok, endpoint)
		assert.Contains(t, fieldErrors, "topN", endpoint)
	}
}

func TestQueryHandlerRejectsMalformedMetric(t *testing.T) {
	resp, body := serveAndRetrieveRaw(t, "/api/dashboard/query.json?key=TEST&metric=beds%3Bdrop")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	fieldErrors, ok := body["fieldErrors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "metric")
}
