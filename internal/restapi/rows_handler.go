package restapi

import (
	"net/http"

	"afyadash.or.ke/internal/models"
)

// rowsHandler answers the data-table feed: the full filtered rows, untruncated.
func (api *RestAPI) rowsHandler(w http.ResponseWriter, r *http.Request) {
	counties, fieldErrors := parseCounties(r.URL.Query())
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	filtered := api.DataManager.Table().FilterCounties(counties)
	response := models.NewListResponse(filtered.Records(), countyReferences(filtered))
	api.sendResponse(w, r, response)
}
