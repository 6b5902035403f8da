package restapi

import (
	"errors"
	"net/http"

	"afyadash.or.ke/internal/healthdata"
	"afyadash.or.ke/internal/models"
)

// queryHandler answers the composite dashboard query: ranked rows, the full
// filtered rows, and the aggregates and service coverage computed over the
// full filtered set.
func (api *RestAPI) queryHandler(w http.ResponseWriter, r *http.Request) {
	spec, fieldErrors := parseFilterSpec(r.URL.Query())
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result, err := healthdata.Query(api.DataManager.Table(), spec)
	if err != nil {
		if errors.Is(err, healthdata.ErrUnknownMetric) {
			api.validationErrorResponse(w, r, map[string][]string{
				"metric": {"Invalid field value for field \"metric\"."},
			})
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.QueryEntry{
		Ranked:          result.Ranked.Records(),
		Rows:            result.Filtered.Records(),
		Aggregates:      buildAggregates(result.Aggregates),
		ServiceCoverage: buildServiceCoverage(result.ServiceCoverage),
	}

	response := models.NewEntryResponse(entry, countyReferences(result.Filtered))
	api.sendResponse(w, r, response)
}
