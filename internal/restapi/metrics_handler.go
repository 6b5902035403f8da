package restapi

import (
	"net/http"

	"afyadash.or.ke/internal/models"
)

// metricsHandler lists the designated metric options present in the loaded
// schema, as label/value pairs. This feeds the metric dropdown.
func (api *RestAPI) metricsHandler(w http.ResponseWriter, r *http.Request) {
	options := api.DataManager.MetricOptions()

	list := make([]models.MetricOptionModel, 0, len(options))
	for _, option := range options {
		list = append(list, models.MetricOptionModel{Label: option.Label, Value: option.Value})
	}

	response := models.NewListResponse(list, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
