package analyzing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

// ResolveActiveCreatives decide quais criativos contam como ativos hoje.
// Anúncios ACTIVE entram direto. Anúncios PAUSED entram quando o conjunto
// tem orçamento diário e o gasto de hoje já alcançou o percentual da regra:
// é o caso do criativo desligado pela regra de orçamento no meio do dia, que
// ainda precisa contar como ativo para o relatório não subestimar gasto.
// Devolve também uma linha de diagnóstico por inclusão via regra.
func ResolveActiveCreatives(
	adSetBudgets map[string]int64,
	adStatus map[meta.AdKey]string,
	todaySpend map[meta.AdKey]float64,
	rulePct float64,
) (map[string]bool, []string) {
	activeNames := make(map[string]bool)
	traces := make([]string, 0)

	for key, status := range adStatus {
		switch status {
		case metadomain.StatusActive:
			activeNames[key.AdName] = true

		case metadomain.StatusPaused:
			budget := adSetBudgets[key.AdSetID]
			spend := todaySpend[key]

			if budget > 0 && spend >= float64(budget)*(rulePct/100) {
				activeNames[key.AdName] = true

				trace := fmt.Sprintf(
					"[regra OFF] %s (gasto %.0f / orçamento %d = %.0f%%)",
					key.AdName, spend, budget, spend/float64(budget)*100,
				)
				traces = append(traces, trace)

				logrus.WithFields(logrus.Fields{
					"ad_name":  key.AdName,
					"adset_id": key.AdSetID,
					"spend":    spend,
					"budget":   budget,
					"rule_pct": rulePct,
				}).Info("Criativo pausado por regra de orçamento contado como ativo")
			}
		}
	}

	return activeNames, traces
}
