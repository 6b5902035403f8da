package healthdata

import "log/slog"

// Config holds the dataset settings for the Manager.
type Config struct {
	// DataPath is the path to the sub-county metrics CSV.
	DataPath string
	// Fill is the missing-numeric-cell policy. Nil means FillZero.
	Fill FillPolicy
	// Logger receives load diagnostics. Nil is allowed.
	Logger *slog.Logger
}
