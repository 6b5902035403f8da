package healthdata

import (
	"fmt"
	"log/slog"
	"time"

	"afyadash.or.ke/internal/logging"
)

// Manager owns the load-once lifecycle of the metrics dataset. The table is
// loaded at startup and shared read-only for the life of the process; every
// query is a pure recomputation over it. There is no reload and there are no
// background goroutines.
type Manager struct {
	table       *Table
	resolver    *Resolver
	config      Config
	lastUpdated time.Time
}

// InitManager builds the county resolver from the embedded map, loads the
// metrics table from config.DataPath, and returns the Manager. A missing data
// file is returned as an error wrapping ErrDataNotFound; callers treat it as
// fatal before serving.
func InitManager(config Config) (*Manager, error) {
	countyMap, err := LoadCountyMap()
	if err != nil {
		return nil, fmt.Errorf("initializing county map: %w", err)
	}
	resolver := NewResolver(countyMap)

	table, err := Load(config.DataPath, resolver, LoadOptions{
		Fill:   config.Fill,
		Logger: config.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Manager{
		table:       table,
		resolver:    resolver,
		config:      config,
		lastUpdated: time.Now(),
	}, nil
}

// Table returns the immutable base table.
func (manager *Manager) Table() *Table {
	return manager.table
}

// Resolver returns the county resolver built at startup.
func (manager *Manager) Resolver() *Resolver {
	return manager.resolver
}

// Counties returns the distinct counties of the dataset with sub-county
// counts, sorted by name.
func (manager *Manager) Counties() []CountyCount {
	return manager.table.Counties()
}

// ServiceColumns returns the service percentage columns of the dataset.
func (manager *Manager) ServiceColumns() []string {
	return manager.table.ServiceColumns()
}

// MetricOptions returns the designated metric options present in the schema.
func (manager *Manager) MetricOptions() []MetricOption {
	var options []MetricOption
	for _, metric := range DesignatedMetrics {
		if manager.table.HasColumn(metric.Value) && manager.table.IsNumericColumn(metric.Value) {
			options = append(options, metric)
		}
	}
	return options
}

// LastUpdated returns when the dataset was loaded.
func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

// LogStatistics logs dataset statistics after a successful load.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	logging.LogOperation(logger, "metrics dataset loaded",
		slog.String("path", manager.config.DataPath),
		slog.Int("rows", manager.table.Len()),
		slog.Int("columns", len(manager.table.Columns())),
		slog.Int("service_columns", len(manager.table.ServiceColumns())),
		slog.Int("counties", len(manager.Counties())))
}
