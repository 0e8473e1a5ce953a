// Package reporting transforma as métricas classificadas em um parecer
// diagnóstico e no texto final do relatório semanal. É síntese pura de
// texto: entrada malformada aqui é bug de programação, não falha de runtime.
package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/creative-performance-api/internal/domain"
	"github.com/vfg2006/creative-performance-api/pkg/utils"
)

// MaintainCourseMessage devolve a mensagem única usada quando nenhum
// criativo está abaixo do limite.
func MaintainCourseMessage(lowROASThreshold float64) string {
	return fmt.Sprintf(
		"Todos os criativos mantêm ROAS acima de %.0f%%. Mantenha a estratégia atual e teste novos criativos para buscar escala.",
		lowROASThreshold,
	)
}

// BuildExpertAnalysis monta o parecer diagnóstico sobre os criativos de
// baixa performance. Os três grupos (sem compra, vazamento de funil, abaixo
// do limite com compra) não são exclusivos entre si.
func BuildExpertAnalysis(
	lowDA []domain.CreativeMetric,
	lowVA []domain.CreativeMetric,
	allMetrics []domain.CreativeMetric,
	lowROASThreshold float64,
) string {
	allLow := make([]domain.CreativeMetric, 0, len(lowDA)+len(lowVA))
	allLow = append(allLow, lowDA...)
	allLow = append(allLow, lowVA...)

	if len(allLow) == 0 {
		return MaintainCourseMessage(lowROASThreshold)
	}

	var totalLowSpend, totalAllSpend, totalAllRevenue float64
	for _, metric := range allLow {
		totalLowSpend += metric.Spend
	}
	for _, metric := range allMetrics {
		totalAllSpend += metric.Spend
		totalAllRevenue += metric.Revenue
	}

	overallROAS := 0.0
	lowSpendRatio := 0.0
	if totalAllSpend > 0 {
		overallROAS = totalAllRevenue / totalAllSpend * 100
		lowSpendRatio = totalLowSpend / totalAllSpend * 100
	}

	zeroPurchase := filterMetrics(allLow, func(m domain.CreativeMetric) bool {
		return m.Purchases == 0
	})
	funnelLeak := filterMetrics(allLow, func(m domain.CreativeMetric) bool {
		return m.Purchases == 0 && m.Registrations > 0
	})
	lowWithPurchase := filterMetrics(allLow, func(m domain.CreativeMetric) bool {
		return m.Purchases > 0
	})

	lines := []string{}

	// Visão geral
	lines = append(lines, fmt.Sprintf(
		"Nesta semana, %d criativos de baixa performance consumiram %s no total (%.0f%% de todo o investimento).",
		len(allLow), utils.FormatMoney(totalLowSpend), lowSpendRatio,
	))
	lines = append(lines, fmt.Sprintf(
		"Contra um ROAS geral de %.0f%% da conta, esses criativos ficaram abaixo do limite (%.0f%%); a realocação de orçamento deve ser imediata.",
		overallROAS, lowROASThreshold,
	))
	lines = append(lines, "")

	if len(zeroPurchase) > 0 {
		var zeroSpend float64
		for _, metric := range zeroPurchase {
			zeroSpend += metric.Spend
		}
		lines = append(lines, fmt.Sprintf(
			"▸ %d criativos sem nenhuma compra consumiram %s sem conversão. A mensagem do criativo ou o próprio público provavelmente está errado; recomenda-se desligar já.",
			len(zeroPurchase), utils.FormatMoney(zeroSpend),
		))
	}

	if len(funnelLeak) > 0 {
		var cpaSum float64
		var cpaCount int
		for _, metric := range funnelLeak {
			if metric.CPARegistration > 0 {
				cpaSum += metric.CPARegistration
				cpaCount++
			}
		}
		avgCPA := 0.0
		if cpaCount > 0 {
			avgCPA = cpaSum / float64(cpaCount)
		}
		lines = append(lines, fmt.Sprintf(
			"▸ %d criativos geram cadastro mas não compra (CPA médio de cadastro %s): o gancho funciona, mas o funil de compra está vazando. Revise o CTA da landing page, o fluxo de pagamento e se o criativo promete algo que o produto não entrega.",
			len(funnelLeak), utils.FormatMoney(avgCPA),
		))
	}

	for _, metric := range lowWithPurchase {
		lines = append(lines, fmt.Sprintf(
			"▸ %s: %d compras (ROAS %.0f%%) — converte, mas abaixo da eficiência. Refine o público ou ajuste o lance e monitore por 3 dias.",
			metric.AdName, metric.Purchases, metric.ROAS,
		))
	}

	lines = append(lines, "")
	lines = append(lines, "**Plano de ação recomendado:**")

	actionNumber := 1
	if len(zeroPurchase) > 0 {
		noRegistration := filterMetrics(zeroPurchase, func(m domain.CreativeMetric) bool {
			return m.Registrations == 0
		})
		if len(noRegistration) > 0 {
			lines = append(lines, fmt.Sprintf(
				"%d. %d criativos sem compra e sem cadastro → desligar imediatamente (sem chance de recuperação)",
				actionNumber, len(noRegistration),
			))
			actionNumber++
		}
	}
	if len(funnelLeak) > 0 {
		lines = append(lines, fmt.Sprintf(
			"%d. %d criativos só com cadastro → manter apenas os 1~2 de melhor CPA, desligar o resto",
			actionNumber, len(funnelLeak),
		))
		actionNumber++
	}
	if len(lowWithPurchase) > 0 {
		lines = append(lines, fmt.Sprintf(
			"%d. %d criativos com compra mas ROAS abaixo do limite → otimizar público/lance e observar 3 dias; sem melhora, desligar",
			actionNumber, len(lowWithPurchase),
		))
		actionNumber++
	}
	lines = append(lines, fmt.Sprintf(
		"%d. Orçamento liberado (%s) → realocar para escalar os criativos de melhor ROAS",
		actionNumber, utils.FormatMoney(totalLowSpend),
	))

	return strings.Join(lines, "\n")
}

func filterMetrics(metrics []domain.CreativeMetric, keep func(domain.CreativeMetric) bool) []domain.CreativeMetric {
	result := make([]domain.CreativeMetric, 0, len(metrics))
	for _, metric := range metrics {
		if keep(metric) {
			result = append(result, metric)
		}
	}
	return result
}
