package models

// MetricMean is one metric column's arithmetic mean over a filtered set.
// Mean is null when no cells contributed (the empty-set sentinel): NaN is
// unrepresentable in JSON, so absence is encoded as null rather than a number.
type MetricMean struct {
	Metric string   `json:"metric"`
	Mean   *float64 `json:"mean"`
	N      int      `json:"n"`
}

// NewMetricMean creates a MetricMean; a zero contributing-cell count yields a
// null mean.
func NewMetricMean(metric string, mean float64, n int) MetricMean {
	m := MetricMean{Metric: metric, N: n}
	if n > 0 {
		m.Mean = &mean
	}
	return m
}

// AggregatesModel carries the KPI figures for a filtered set.
type AggregatesModel struct {
	SubCounties int          `json:"subCounties"`
	Means       []MetricMean `json:"means"`
}

// NewAggregates creates an AggregatesModel with an initialized means slice.
func NewAggregates(subCounties int, means []MetricMean) AggregatesModel {
	if means == nil {
		means = []MetricMean{}
	}
	return AggregatesModel{
		SubCounties: subCounties,
		Means:       means,
	}
}

// ServiceCoverage is one service percentage column's mean over a filtered
// set. Label is the display form of the column name (suffix stripped,
// upper-cased). Mean is null when no cells contributed.
type ServiceCoverage struct {
	Service string   `json:"service"`
	Label   string   `json:"label"`
	Mean    *float64 `json:"mean"`
	N       int      `json:"n"`
}

// NewServiceCoverage creates a ServiceCoverage entry; a zero contributing-cell
// count yields a null mean.
func NewServiceCoverage(service, label string, mean float64, n int) ServiceCoverage {
	sc := ServiceCoverage{Service: service, Label: label, N: n}
	if n > 0 {
		sc.Mean = &mean
	}
	return sc
}

// MetricOptionModel is one selectable metric, as label/value pairs the way
// the dashboard's metric dropdown consumes them.
type MetricOptionModel struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// QueryEntry is the composite dashboard query answer: the ranked rows, the
// full filtered rows, and the aggregates and service coverage computed over
// the full filtered set.
type QueryEntry struct {
	Ranked          []map[string]any  `json:"ranked"`
	Rows            []map[string]any  `json:"rows"`
	Aggregates      AggregatesModel   `json:"aggregates"`
	ServiceCoverage []ServiceCoverage `json:"serviceCoverage"`
}

// CountyEntry is the single-county view: that county's rows plus aggregates
// and service coverage over them.
type CountyEntry struct {
	County          string            `json:"county"`
	Rows            []map[string]any  `json:"rows"`
	Aggregates      AggregatesModel   `json:"aggregates"`
	ServiceCoverage []ServiceCoverage `json:"serviceCoverage"`
}
