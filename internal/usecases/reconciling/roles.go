// Package reconciling sincroniza as regras automáticas da conta (pausa por
// orçamento e religamento diário) com o conjunto de criativos ativos.
package reconciling

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta"
	"github.com/vfg2006/creative-performance-api/internal/domain"
	"github.com/vfg2006/creative-performance-api/pkg/utils"
)

// A decodificação de papéis a partir dos nomes fica isolada aqui: são as
// convenções de nomenclatura das campanhas/conjuntos, testáveis sem rede.

// CampaignShortName reduz o nome da campanha ao apelido usado nos nomes de
// regras.
func CampaignShortName(name string) string {
	if strings.Contains(name, "web&app") {
		return "WebApp"
	}
	if strings.Contains(name, "web_purchase") {
		return "WebCompra"
	}

	runes := []rune(name)
	if len(runes) > 8 {
		return string(runes[:8])
	}
	return name
}

// TargetingShortName reduz o nome do conjunto ao apelido da segmentação.
func TargetingShortName(adSetName string) string {
	if strings.Contains(adSetName, "interest_businessai") {
		return "BusinessAI"
	}
	if strings.Contains(adSetName, "broad") {
		return "Broad"
	}
	if strings.Contains(adSetName, "lookalike") {
		return "Lookalike"
	}

	return strings.Split(adSetName, "_")[0]
}

// AdSetFamily decodifica a família (DA/VA) dos segmentos do nome do
// conjunto.
func AdSetFamily(adSetName string) domain.CreativeFamily {
	parts := strings.Split(strings.ToUpper(adSetName), "_")
	if slices.Contains(parts, "DA") {
		return domain.FamilyDA
	}
	if slices.Contains(parts, "VA") {
		return domain.FamilyVA
	}
	return domain.FamilyOther
}

// PauseRuleName monta o nome determinístico de uma regra de pausa. A data no
// prefixo faz um segundo reset no mesmo dia colidir no nome, o que a
// plataforma detecta, em vez de duplicar estado em silêncio.
func PauseRuleName(date time.Time, group RuleGroup) string {
	return fmt.Sprintf(
		"%s_%s_%s_%s_OFF_%s",
		date.Format("060102"),
		group.CampaignShort,
		group.Targeting,
		group.Family,
		utils.FormatThresholdLabel(group.Threshold),
	)
}

// ResumeRuleName monta o nome determinístico da regra de religamento de uma
// família.
func ResumeRuleName(date time.Time, family domain.CreativeFamily) string {
	return fmt.Sprintf("%s_TODOS_%s_ON", date.Format("060102"), family)
}

// IsPauseRule reconhece regras de pausa pelo marcador no nome.
func IsPauseRule(ruleName string) bool {
	return strings.Contains(ruleName, "_OFF_")
}

// ResumeRuleFamily devolve a família de uma regra de religamento, ou Other
// quando o nome não decodifica.
func ResumeRuleFamily(ruleName string) domain.CreativeFamily {
	if strings.Contains(ruleName, "_TODOS_DA_ON") {
		return domain.FamilyDA
	}
	if strings.Contains(ruleName, "_TODOS_VA_ON") {
		return domain.FamilyVA
	}
	return domain.FamilyOther
}

// RuleGroup é um conjunto de anúncios decodificado para o vocabulário das
// regras: apelidos, família, limite de gasto e criativos ativos.
type RuleGroup struct {
	CampaignShort string
	Targeting     string
	Family        domain.CreativeFamily
	DailyBudget   int64
	Threshold     int64
	AdIDs         []string
	AdNames       map[string]string
}

// BuildRuleGroups decodifica os conjuntos ativos e acumula, por família, a
// união dos criativos ativos de todos os grupos.
func BuildRuleGroups(groups []meta.AdSetGroup, budgetRulePct float64) ([]RuleGroup, map[domain.CreativeFamily][]string) {
	ruleGroups := make([]RuleGroup, 0, len(groups))
	familyAds := map[domain.CreativeFamily][]string{}

	for _, group := range groups {
		family := AdSetFamily(group.AdSetName)

		adIDs := make([]string, 0, len(group.Ads))
		adNames := make(map[string]string, len(group.Ads))
		for _, ad := range group.Ads {
			adIDs = append(adIDs, ad.ID)
			adNames[ad.ID] = ad.Name
		}
		sort.Strings(adIDs)

		ruleGroup := RuleGroup{
			CampaignShort: CampaignShortName(group.CampaignName),
			Targeting:     TargetingShortName(group.AdSetName),
			Family:        family,
			DailyBudget:   group.DailyBudget,
			Threshold:     group.DailyBudget * int64(budgetRulePct) / 100,
			AdIDs:         adIDs,
			AdNames:       adNames,
		}
		ruleGroups = append(ruleGroups, ruleGroup)

		if family == domain.FamilyDA || family == domain.FamilyVA {
			familyAds[family] = append(familyAds[family], adIDs...)
		}
	}

	for family := range familyAds {
		sort.Strings(familyAds[family])
	}

	return ruleGroups, familyAds
}

// MatchPauseRule encontra o grupo correspondente a uma regra de pausa pelo
// padrão embutido no nome. Devolve nil quando nenhum grupo atual casa.
func MatchPauseRule(ruleName string, groups []RuleGroup) *RuleGroup {
	for index := range groups {
		group := &groups[index]
		pattern := fmt.Sprintf("%s_%s_%s_OFF", group.CampaignShort, group.Targeting, group.Family)
		if strings.Contains(ruleName, pattern) {
			return group
		}
	}
	return nil
}
