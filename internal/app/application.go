package app

import (
	"log/slog"

	"afyadash.or.ke/internal/appconf"
	"afyadash.or.ke/internal/healthdata"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. It carries the Config, the structured logger, and the
// metrics dataset manager loaded at startup.
type Application struct {
	Config      Config
	Logger      *slog.Logger
	DataManager *healthdata.Manager
}

// Config holds all the configuration settings for our Application: the
// network interface and port the server listens on, the operating
// environment, the metrics data path, the accepted API keys, and the per-key
// rate limit. These are read from command-line flags when the Application
// starts.
type Config struct {
	Host      string
	Port      int
	Env       appconf.Environment
	DataPath  string
	ApiKeys   []string
	RateLimit int
	Verbose   bool
}
