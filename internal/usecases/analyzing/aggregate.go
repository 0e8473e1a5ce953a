package analyzing

import (
	"sort"
	"strings"

	"github.com/vfg2006/creative-performance-api/internal/domain"
	"github.com/vfg2006/creative-performance-api/pkg/utils"
)

// RawAdRecord é uma linha por anúncio depois da normalização, antes da
// agregação por criativo.
type RawAdRecord struct {
	AdName        string
	AdSetName     string
	Family        domain.CreativeFamily
	Spend         float64
	Purchases     int
	Registrations int
	Revenue       float64
}

// FamilyFromAdSetName infere a família do criativo pela convenção de nome do
// conjunto de anúncios.
func FamilyFromAdSetName(adSetName string) domain.CreativeFamily {
	if strings.Contains(adSetName, "DA") {
		return domain.FamilyDA
	}
	if strings.Contains(adSetName, "VA") {
		return domain.FamilyVA
	}
	return domain.FamilyOther
}

type metricKey struct {
	AdName string
	Family domain.CreativeFamily
}

// Aggregate agrupa os registros por (nome do criativo, família) e soma
// gasto, compras, cadastros e receita. As razões derivadas são calculadas
// depois da soma para não distorcer a ponderação. A saída é determinística:
// ordenada por família e nome.
func Aggregate(records []RawAdRecord) []domain.CreativeMetric {
	groups := make(map[metricKey]*domain.CreativeMetric)

	for _, record := range records {
		key := metricKey{AdName: record.AdName, Family: record.Family}

		metric, ok := groups[key]
		if !ok {
			metric = &domain.CreativeMetric{AdName: record.AdName, Family: record.Family}
			groups[key] = metric
		}

		metric.Spend += record.Spend
		metric.Purchases += record.Purchases
		metric.Registrations += record.Registrations
		metric.Revenue += record.Revenue
	}

	metrics := make([]domain.CreativeMetric, 0, len(groups))
	for _, metric := range groups {
		metric.ROAS = ratio(metric.Revenue, metric.Spend) * 100
		metric.CPAPurchase = ratio(metric.Spend, float64(metric.Purchases))
		metric.CPARegistration = ratio(metric.Spend, float64(metric.Registrations))

		metric.ROAS = utils.RoundWithTwoDecimalPlace(metric.ROAS)
		metric.CPAPurchase = utils.RoundWithTwoDecimalPlace(metric.CPAPurchase)
		metric.CPARegistration = utils.RoundWithTwoDecimalPlace(metric.CPARegistration)

		metrics = append(metrics, *metric)
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].Family != metrics[j].Family {
			return metrics[i].Family < metrics[j].Family
		}
		return metrics[i].AdName < metrics[j].AdName
	})

	return metrics
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
