package webui

import (
	"net/http"

	"afyadash.or.ke/internal/app"
)

// WebUI serves the operator-facing debug pages.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/dashboard", webUI.debugDashboardHandler)
}
