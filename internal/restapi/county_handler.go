package restapi

import (
	"net/http"

	"afyadash.or.ke/internal/models"
	"afyadash.or.ke/internal/utils"
)

// countyHandler answers the single-county view: that county's rows plus
// aggregates and service coverage over them.
func (api *RestAPI) countyHandler(w http.ResponseWriter, r *http.Request) {
	county := utils.SanitizeInput(utils.ExtractIDFromParams(r, "id"))

	if err := utils.ValidateCountyName(county); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	filtered := api.DataManager.Table().FilterCounties([]string{county})
	if filtered.Len() == 0 {
		api.sendNotFound(w, r)
		return
	}

	entry := models.CountyEntry{
		County:          county,
		Rows:            filtered.Records(),
		Aggregates:      buildAggregates(filtered.Summary()),
		ServiceCoverage: buildServiceCoverage(filtered.ServiceMeans()),
	}

	response := models.NewEntryResponse(entry, countyReferences(filtered))
	api.sendResponse(w, r, response)
}
