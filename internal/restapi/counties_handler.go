package restapi

import (
	"net/http"

	"afyadash.or.ke/internal/models"
)

// countiesHandler lists the distinct counties of the dataset with their
// sub-county counts, sorted by name. This feeds the county dropdown.
func (api *RestAPI) countiesHandler(w http.ResponseWriter, r *http.Request) {
	counties := api.DataManager.Counties()

	list := make([]models.CountyReference, 0, len(counties))
	for _, county := range counties {
		list = append(list, models.NewCountyReference(county.Name, county.SubCounties))
	}

	response := models.NewListResponse(list, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
