package restapi

import (
	"net/http"
	"time"

	"afyadash.or.ke/internal/app"
	"github.com/julienschmidt/httprouter"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler builds the routed API handler wrapped in per-key rate limiting.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return api.rateLimiter.Middleware(router)
}

// Shutdown stops the rate limiter's background cleanup.
func (api *RestAPI) Shutdown() {
	api.rateLimiter.Stop()
}
