package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/creative-performance-api/internal/domain"
	"github.com/vfg2006/creative-performance-api/pkg/utils"
)

const sectionDivider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// BuildReportText monta o relatório semanal completo enviado ao cliente.
func BuildReportText(
	clientName string,
	periodLabel string,
	lowDA []domain.CreativeMetric,
	lowVA []domain.CreativeMetric,
	expertAnalysis string,
) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🚀 **%s — Relatório semanal de performance de criativos**\n\n", clientName))
	b.WriteString(fmt.Sprintf("**Período de análise: %s**\n\n", periodLabel))
	b.WriteString(sectionDivider + "\n\n")

	b.WriteString("**1. DA**\n\n")
	writeFamilySection(&b, lowDA)

	b.WriteString("**2. VA**\n\n")
	writeFamilySection(&b, lowVA)

	b.WriteString(sectionDivider + "\n\n")
	b.WriteString("💡 **Parecer da análise**\n\n")
	b.WriteString(expertAnalysis)
	b.WriteString("\n")

	return b.String()
}

func writeFamilySection(b *strings.Builder, metrics []domain.CreativeMetric) {
	if len(metrics) == 0 {
		b.WriteString("(nenhum criativo de baixa performance)\n\n")
		return
	}

	for index, metric := range metrics {
		b.WriteString(fmt.Sprintf("%d) %s\n", index+1, metric.AdName))
		b.WriteString(formatMetricLine(metric))
		b.WriteString("\n")
	}
}

// formatMetricLine formata a linha de indicadores de um criativo.
func formatMetricLine(metric domain.CreativeMetric) string {
	parts := []string{fmt.Sprintf("%s gastos", utils.FormatMoney(metric.Spend))}

	if metric.Purchases > 0 {
		parts = append(parts, fmt.Sprintf("receita %s", utils.FormatMoney(metric.Revenue)))
		parts = append(parts, fmt.Sprintf("%d compras", metric.Purchases))
		parts = append(parts, fmt.Sprintf("ROAS: %.0f%%", metric.ROAS))
		parts = append(parts, fmt.Sprintf("CPA de compra: %s", utils.FormatMoney(metric.CPAPurchase)))
	} else {
		parts = append(parts, "sem compras")
	}

	if metric.Registrations > 0 {
		parts = append(parts, fmt.Sprintf("CPA de cadastro: %s", utils.FormatMoney(metric.CPARegistration)))
	}

	return "- " + strings.Join(parts, " / ") + "\n"
}
