package analyzing

import (
	"sort"

	"github.com/vfg2006/creative-performance-api/internal/domain"
)

// Classify separa os criativos de baixa performance em duas listas, uma por
// família, ordenadas por gasto decrescente (maior desperdício primeiro).
// Um criativo só é baixa performance quando as duas condições valem ao mesmo
// tempo: ROAS abaixo do limite E gasto acima do mínimo. Gasto baixo demais é
// ruído estatístico e fica de fora independente do ROAS.
func Classify(
	metrics []domain.CreativeMetric,
	minSpend float64,
	lowROASThreshold float64,
) (lowDA []domain.CreativeMetric, lowVA []domain.CreativeMetric) {
	lowDA = make([]domain.CreativeMetric, 0)
	lowVA = make([]domain.CreativeMetric, 0)

	for _, metric := range metrics {
		if metric.ROAS >= lowROASThreshold || metric.Spend < minSpend {
			continue
		}

		switch metric.Family {
		case domain.FamilyDA:
			lowDA = append(lowDA, metric)
		case domain.FamilyVA:
			lowVA = append(lowVA, metric)
		}
	}

	bySpendDesc := func(list []domain.CreativeMetric) func(i, j int) bool {
		return func(i, j int) bool {
			if list[i].Spend != list[j].Spend {
				return list[i].Spend > list[j].Spend
			}
			return list[i].AdName < list[j].AdName
		}
	}

	sort.Slice(lowDA, bySpendDesc(lowDA))
	sort.Slice(lowVA, bySpendDesc(lowVA))

	return lowDA, lowVA
}
