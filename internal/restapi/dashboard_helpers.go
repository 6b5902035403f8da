package restapi

import (
	"net/url"

	"afyadash.or.ke/internal/healthdata"
	"afyadash.or.ke/internal/models"
	"afyadash.or.ke/internal/utils"
)

const (
	defaultMetric = "facilities_per_10k"
	defaultTopN   = 20
)

// parseFilterSpec reads the counties/metric/topN query parameters, applying
// the dashboard defaults and collecting validation problems per field.
func parseFilterSpec(params url.Values) (healthdata.FilterSpec, map[string][]string) {
	fieldErrors := make(map[string][]string)

	counties := utils.ParseListParam(params, "counties")
	for _, county := range counties {
		if err := utils.ValidateCountyName(county); err != nil {
			fieldErrors["counties"] = append(fieldErrors["counties"], err.Error())
		}
	}

	metric := utils.ParseStringParam(params, "metric", defaultMetric)
	if err := utils.ValidateMetricName(metric); err != nil {
		fieldErrors["metric"] = append(fieldErrors["metric"], err.Error())
	}

	topN, fieldErrors := utils.ParseIntParam(params, "topN", defaultTopN, fieldErrors)
	if len(fieldErrors["topN"]) == 0 {
		if err := utils.ValidateTopN(topN); err != nil {
			fieldErrors["topN"] = append(fieldErrors["topN"], err.Error())
		}
	}

	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}

	return healthdata.FilterSpec{Counties: counties, Metric: metric, TopN: topN}, fieldErrors
}

// parseCounties reads only the counties parameter, for the non-ranking views.
func parseCounties(params url.Values) ([]string, map[string][]string) {
	fieldErrors := make(map[string][]string)

	counties := utils.ParseListParam(params, "counties")
	for _, county := range counties {
		if err := utils.ValidateCountyName(county); err != nil {
			fieldErrors["counties"] = append(fieldErrors["counties"], err.Error())
		}
	}

	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}
	return counties, fieldErrors
}

// countyReferences builds the references block naming the counties involved
// in a view, with their sub-county counts.
func countyReferences(t *healthdata.Table) models.ReferencesModel {
	references := models.NewEmptyReferences()
	for _, county := range t.Counties() {
		references.Counties = append(references.Counties,
			models.NewCountyReference(county.Name, county.SubCounties))
	}
	return references
}

func buildAggregates(agg healthdata.Aggregates) models.AggregatesModel {
	means := make([]models.MetricMean, 0, len(agg.MetricMeans))
	for _, m := range agg.MetricMeans {
		means = append(means, models.NewMetricMean(m.Column, m.Mean, m.N))
	}
	return models.NewAggregates(agg.SubCounties, means)
}

func buildServiceCoverage(means []healthdata.ColumnMean) []models.ServiceCoverage {
	coverage := make([]models.ServiceCoverage, 0, len(means))
	for _, m := range means {
		coverage = append(coverage,
			models.NewServiceCoverage(m.Column, healthdata.ServiceLabel(m.Column), m.Mean, m.N))
	}
	return coverage
}
