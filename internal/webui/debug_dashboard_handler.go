package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugDashboardHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	table := webUI.DataManager.Table()

	switch dataType {
	case "schema":
		data = map[string]interface{}{
			"columns":        table.Columns(),
			"numericColumns": table.NumericColumns(),
			"serviceColumns": table.ServiceColumns(),
		}
		title = "Metrics Dataset - Schema"
	case "rows":
		data = table.Records()
		title = "Metrics Dataset - Rows"
	case "counties":
		data = webUI.DataManager.Counties()
		title = "Metrics Dataset - Counties"
	case "coverage":
		data = table.ServiceMeans()
		title = "Metrics Dataset - Service Coverage"
	case "stats":
		data = map[string]interface{}{
			"rows":        table.Len(),
			"subCounties": table.DistinctSubCounties(),
			"counties":    len(webUI.DataManager.Counties()),
			"lastUpdated": webUI.DataManager.LastUpdated(),
		}
		title = "Metrics Dataset - Statistics"
	default:
		data = map[string]string{
			"error": "Please use one of the following: schema, rows, counties, coverage, stats.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
