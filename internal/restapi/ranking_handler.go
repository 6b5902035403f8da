package restapi

import (
	"errors"
	"net/http"

	"afyadash.or.ke/internal/healthdata"
	"afyadash.or.ke/internal/models"
)

// rankingHandler answers the rank-based views: rows sorted by the chosen
// metric descending, truncated to topN. limitExceeded reports whether the
// truncation dropped rows.
func (api *RestAPI) rankingHandler(w http.ResponseWriter, r *http.Request) {
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

	limitExceeded := result.Ranked.Len() < result.Filtered.Len()
	response := models.NewListResponseWithRange(
		result.Ranked.Records(), countyReferences(result.Ranked), limitExceeded)
	api.sendResponse(w, r, response)
}
