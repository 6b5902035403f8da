package healthdata

import (
	"fmt"
	"sort"
)

// DesignatedMetrics are the metric columns the dashboard ranks and averages.
// Columns absent from a loaded schema are skipped, never errors.
var DesignatedMetrics = []MetricOption{
	{Label: "Facilities per 10k", Value: "facilities_per_10k"},
	{Label: "Beds per 10k", Value: "beds_per_10k"},
	{Label: "Beds (absolute)", Value: "beds"},
	{Label: "Total facilities", Value: "total_facilities"},
	{Label: "Operational %", Value: "pct_operational"},
}

// MetricOption pairs a metric column name with its display label.
type MetricOption struct {
	Label string
	Value string
}

// FilterSpec is one dashboard query: the selected counties (empty means no
// filter), the metric column to rank by, and the positive top-N bound.
type FilterSpec struct {
	Counties []string
	Metric   string
	TopN     int
}

// ColumnMean is the arithmetic mean of one column over a row set. N is the
// number of contributing cells; N == 0 marks the documented empty-set
// sentinel (the consumer encodes it as null rather than a number).
type ColumnMean struct {
	Column string
	Mean   float64
	N      int
}

// Aggregates are the summary figures computed over a full filtered set.
type Aggregates struct {
	SubCounties int
	MetricMeans []ColumnMean
}

// QueryResult is the complete answer to one FilterSpec: the truncated ranked
// view, the full filtered view, and the aggregates and service-coverage means
// computed over the full filtered set (never the truncation).
type QueryResult struct {
	Ranked          *Table
	Filtered        *Table
	Aggregates      Aggregates
	ServiceCoverage []ColumnMean
}

// FilterCounties returns a view holding only the rows whose county is a
// member of the given set. An empty set keeps all rows. The order of the
// selection is irrelevant; this is a membership test.
func (t *Table) FilterCounties(counties []string) *Table {
	if len(counties) == 0 {
		return t.view(t.rows)
	}
	selected := make(map[string]bool, len(counties))
	for _, c := range counties {
		selected[c] = true
	}
	var rows []Row
	for i := range t.rows {
		if selected[t.County(i)] {
			rows = append(rows, t.rows[i])
		}
	}
	return t.view(rows)
}

// RankBy returns a view of the rows sorted by the given metric column in
// descending numeric order, truncated to the first topN. The sort is stable,
// so ties keep their original row order.
func (t *Table) RankBy(metric string, topN int) (*Table, error) {
	if topN < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTopN, topN)
	}
	if !t.HasColumn(metric) || !t.IsNumericColumn(metric) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	col := t.colIndex[metric]
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return cellFloat(rows[i][col]) > cellFloat(rows[j][col])
	})

	if topN < len(rows) {
		rows = rows[:topN]
	}
	return t.view(rows), nil
}

// Summary computes the distinct sub-county count and the means of the
// designated metric columns present in the schema, over all rows of the view.
func (t *Table) Summary() Aggregates {
	agg := Aggregates{SubCounties: t.DistinctSubCounties()}
	for _, metric := range DesignatedMetrics {
		if !t.HasColumn(metric.Value) || !t.IsNumericColumn(metric.Value) {
			continue
		}
		agg.MetricMeans = append(agg.MetricMeans, t.columnMean(metric.Value))
	}
	return agg
}

// ServiceMeans computes the per-column mean of every service percentage
// column over all rows of the view, in schema order.
func (t *Table) ServiceMeans() []ColumnMean {
	means := make([]ColumnMean, 0, len(t.service))
	for _, column := range t.service {
		means = append(means, t.columnMean(column))
	}
	return means
}

func (t *Table) columnMean(column string) ColumnMean {
	col := t.colIndex[column]
	sum := 0.0
	n := 0
	for i := range t.rows {
		cell := t.rows[i][col]
		if cell == nil {
			continue
		}
		sum += cellFloat(cell)
		n++
	}
	mean := ColumnMean{Column: column, N: n}
	if n > 0 {
		mean.Mean = sum / float64(n)
	}
	return mean
}

func cellFloat(cell any) float64 {
	v, _ := cell.(float64)
	return v
}

// Query runs the full dashboard pipeline for one FilterSpec: filter once,
// then compute the ranked view plus aggregates and service coverage over the
// full filtered set.
func Query(t *Table, spec FilterSpec) (*QueryResult, error) {
	filtered := t.FilterCounties(spec.Counties)
	ranked, err := filtered.RankBy(spec.Metric, spec.TopN)
	if err != nil {
		return nil, err
	}
	return &QueryResult{
		Ranked:          ranked,
		Filtered:        filtered,
		Aggregates:      filtered.Summary(),
		ServiceCoverage: filtered.ServiceMeans(),
	}, nil
}
