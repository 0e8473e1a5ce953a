package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

func TestMaintainCourseMessage(t *testing.T) {
	message := MaintainCourseMessage(85)

	assert.Equal(
		t,
		"Todos os criativos mantêm ROAS acima de 85%. Mantenha a estratégia atual e teste novos criativos para buscar escala.",
		message,
	)
}

func TestBuildExpertAnalysis(t *testing.T) {
	t.Run("Sem criativos de baixa performance devolve a mensagem de manter o curso", func(t *testing.T) {
		all := []domain.CreativeMetric{
			{AdName: "criativo_bom", Spend: 500000, Revenue: 600000, Purchases: 3, ROAS: 120},
		}

		analysis := BuildExpertAnalysis(nil, nil, all, 85)

		assert.Equal(t, MaintainCourseMessage(85), analysis)
	})

	t.Run("Criativo sem nenhuma compra entra no grupo de desligamento", func(t *testing.T) {
		low := []domain.CreativeMetric{
			{AdName: "criativo_zero", Family: domain.FamilyDA, Spend: 300000, Purchases: 0, Registrations: 0},
		}
		all := append([]domain.CreativeMetric{
			{AdName: "criativo_bom", Spend: 700000, Revenue: 900000, Purchases: 5, ROAS: 128},
		}, low...)

		analysis := BuildExpertAnalysis(low, nil, all, 85)

		assert.Contains(t, analysis, "1 criativos sem nenhuma compra")
		assert.Contains(t, analysis, "sem compra e sem cadastro → desligar imediatamente")
		assert.NotContains(t, analysis, "geram cadastro mas não compra")
	})

	t.Run("Cadastro sem compra é tratado como vazamento de funil", func(t *testing.T) {
		low := []domain.CreativeMetric{
			{AdName: "criativo_leak", Family: domain.FamilyVA, Spend: 200000, Purchases: 0, Registrations: 8, CPARegistration: 25000},
		}

		analysis := BuildExpertAnalysis(nil, low, low, 85)

		assert.Contains(t, analysis, "1 criativos geram cadastro mas não compra")
		assert.Contains(t, analysis, "o funil de compra está vazando")
		assert.Contains(t, analysis, "criativos só com cadastro")
	})

	t.Run("Criativo com compra abaixo do limite recebe linha própria", func(t *testing.T) {
		low := []domain.CreativeMetric{
			{AdName: "criativo_fraco", Family: domain.FamilyDA, Spend: 400000, Revenue: 200000, Purchases: 2, ROAS: 50},
		}

		analysis := BuildExpertAnalysis(low, nil, low, 85)

		assert.Contains(t, analysis, "criativo_fraco: 2 compras (ROAS 50%)")
		assert.Contains(t, analysis, "criativos com compra mas ROAS abaixo do limite")
	})

	t.Run("Plano de ação sempre termina com a realocação do orçamento liberado", func(t *testing.T) {
		low := []domain.CreativeMetric{
			{AdName: "criativo_zero", Family: domain.FamilyDA, Spend: 85000, Purchases: 0},
		}

		analysis := BuildExpertAnalysis(low, nil, low, 85)
		lines := strings.Split(analysis, "\n")

		require.NotEmpty(t, lines)
		last := lines[len(lines)-1]
		assert.Contains(t, last, "Orçamento liberado (85.0 mil)")
		assert.Contains(t, last, "realocar para escalar")
	})

	t.Run("Investimento dos criativos fracos aparece como proporção do total", func(t *testing.T) {
		low := []domain.CreativeMetric{
			{AdName: "criativo_a", Family: domain.FamilyDA, Spend: 250000, Purchases: 0},
		}
		all := []domain.CreativeMetric{
			{AdName: "criativo_a", Family: domain.FamilyDA, Spend: 250000, Purchases: 0},
			{AdName: "criativo_b", Family: domain.FamilyDA, Spend: 750000, Revenue: 1200000, Purchases: 4, ROAS: 160},
		}

		analysis := BuildExpertAnalysis(low, nil, all, 85)

		assert.Contains(t, analysis, "(25% de todo o investimento)")
		assert.Contains(t, analysis, "ROAS geral de 120%")
	})
}

func TestBuildReportText(t *testing.T) {
	lowDA := []domain.CreativeMetric{
		{AdName: "criativo_da", Family: domain.FamilyDA, Spend: 300000, Purchases: 0, Registrations: 2, CPARegistration: 150000},
	}

	report := BuildReportText("Acme", "18/08/2025 a 24/08/2025", lowDA, nil, "parecer de teste")

	assert.Contains(t, report, "**Acme — Relatório semanal de performance de criativos**")
	assert.Contains(t, report, "**Período de análise: 18/08/2025 a 24/08/2025**")
	assert.Contains(t, report, "**1. DA**")
	assert.Contains(t, report, "1) criativo_da")
	assert.Contains(t, report, "sem compras")
	assert.Contains(t, report, "CPA de cadastro: 150.0 mil")
	assert.Contains(t, report, "**2. VA**")
	assert.Contains(t, report, "(nenhum criativo de baixa performance)")
	assert.Contains(t, report, "parecer de teste")
}
