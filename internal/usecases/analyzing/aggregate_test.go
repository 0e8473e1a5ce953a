package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

func TestFamilyFromAdSetName(t *testing.T) {
	tests := []struct {
		name      string
		adSetName string
		expected  domain.CreativeFamily
	}{
		{
			name:      "Conjunto DA",
			adSetName: "campanha_DA_broad",
			expected:  domain.FamilyDA,
		},
		{
			name:      "Conjunto VA",
			adSetName: "campanha_VA_lookalike",
			expected:  domain.FamilyVA,
		},
		{
			name:      "Sem marcador de família",
			adSetName: "conjunto_generico",
			expected:  domain.FamilyOther,
		},
		{
			name:      "DA tem precedência quando os dois aparecem",
			adSetName: "DA_VA_misto",
			expected:  domain.FamilyDA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FamilyFromAdSetName(tt.adSetName))
		})
	}
}

func TestAggregate(t *testing.T) {
	t.Run("Agrupa por criativo e família somando antes das razões", func(t *testing.T) {
		records := []RawAdRecord{
			{AdName: "criativo_a", Family: domain.FamilyDA, Spend: 300000, Purchases: 2, Registrations: 10, Revenue: 150000},
			{AdName: "criativo_a", Family: domain.FamilyDA, Spend: 700000, Purchases: 3, Registrations: 10, Revenue: 350000},
			{AdName: "criativo_b", Family: domain.FamilyVA, Spend: 100000, Purchases: 0, Registrations: 0, Revenue: 0},
		}

		metrics := Aggregate(records)
		require.Len(t, metrics, 2)

		creativeA := metrics[0]
		assert.Equal(t, "criativo_a", creativeA.AdName)
		assert.Equal(t, domain.FamilyDA, creativeA.Family)
		assert.Equal(t, 1000000.0, creativeA.Spend)
		assert.Equal(t, 5, creativeA.Purchases)
		assert.Equal(t, 20, creativeA.Registrations)
		assert.Equal(t, 500000.0, creativeA.Revenue)

		// ROAS e CPAs calculados depois da soma, não como média das linhas
		assert.Equal(t, 50.0, creativeA.ROAS)
		assert.Equal(t, 200000.0, creativeA.CPAPurchase)
		assert.Equal(t, 50000.0, creativeA.CPARegistration)
	})

	t.Run("Mesmo nome em famílias diferentes não se mistura", func(t *testing.T) {
		records := []RawAdRecord{
			{AdName: "criativo_x", Family: domain.FamilyDA, Spend: 100, Revenue: 100},
			{AdName: "criativo_x", Family: domain.FamilyVA, Spend: 200, Revenue: 100},
		}

		metrics := Aggregate(records)
		require.Len(t, metrics, 2)
		assert.Equal(t, domain.FamilyDA, metrics[0].Family)
		assert.Equal(t, domain.FamilyVA, metrics[1].Family)
	})

	t.Run("Razões com denominador zero ficam em zero", func(t *testing.T) {
		records := []RawAdRecord{
			{AdName: "sem_conversao", Family: domain.FamilyDA, Spend: 500000},
		}

		metrics := Aggregate(records)
		require.Len(t, metrics, 1)
		assert.Equal(t, 0.0, metrics[0].ROAS)
		assert.Equal(t, 0.0, metrics[0].CPAPurchase)
		assert.Equal(t, 0.0, metrics[0].CPARegistration)
	})

	t.Run("Resultado independe da ordem dos registros", func(t *testing.T) {
		records := []RawAdRecord{
			{AdName: "b", Family: domain.FamilyVA, Spend: 10, Revenue: 5},
			{AdName: "a", Family: domain.FamilyDA, Spend: 20, Revenue: 10},
			{AdName: "a", Family: domain.FamilyDA, Spend: 30, Revenue: 15},
		}
		reversed := []RawAdRecord{records[2], records[1], records[0]}

		assert.Equal(t, Aggregate(records), Aggregate(reversed))
	})
}
