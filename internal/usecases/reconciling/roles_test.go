package reconciling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

func TestCampaignShortName(t *testing.T) {
	tests := []struct {
		name     string
		campaign string
		expected string
	}{
		{
			name:     "Campanha web&app",
			campaign: "conversao_web&app_2025",
			expected: "WebApp",
		},
		{
			name:     "Campanha web_purchase",
			campaign: "web_purchase_principal",
			expected: "WebCompra",
		},
		{
			name:     "Nome longo sem convenção corta em oito caracteres",
			campaign: "campanha_generica",
			expected: "campanha",
		},
		{
			name:     "Nome curto fica inteiro",
			campaign: "retarget",
			expected: "retarget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CampaignShortName(tt.campaign))
		})
	}
}

func TestTargetingShortName(t *testing.T) {
	tests := []struct {
		name     string
		adSet    string
		expected string
	}{
		{
			name:     "Segmentação por interesse businessai",
			adSet:    "DA_interest_businessai_v2",
			expected: "BusinessAI",
		},
		{
			name:     "Segmentação broad",
			adSet:    "VA_broad_geral",
			expected: "Broad",
		},
		{
			name:     "Segmentação lookalike",
			adSet:    "DA_lookalike_1pct",
			expected: "Lookalike",
		},
		{
			name:     "Sem convenção usa o primeiro segmento",
			adSet:    "teste_custom_publico",
			expected: "teste",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TargetingShortName(tt.adSet))
		})
	}
}

func TestAdSetFamily(t *testing.T) {
	assert.Equal(t, domain.FamilyDA, AdSetFamily("campanha_da_broad"))
	assert.Equal(t, domain.FamilyVA, AdSetFamily("VA_lookalike"))
	assert.Equal(t, domain.FamilyOther, AdSetFamily("conjunto_generico"))

	// Só segmento exato conta; "DATA" não marca família DA
	assert.Equal(t, domain.FamilyOther, AdSetFamily("conjunto_DATA_teste"))
}

func TestRuleNames(t *testing.T) {
	date := time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC)

	group := RuleGroup{
		CampaignShort: "WebApp",
		Targeting:     "Broad",
		Family:        domain.FamilyDA,
		Threshold:     50000,
	}

	assert.Equal(t, "250825_WebApp_Broad_DA_OFF_50mil", PauseRuleName(date, group))
	assert.Equal(t, "250825_TODOS_DA_ON", ResumeRuleName(date, domain.FamilyDA))
	assert.Equal(t, "250825_TODOS_VA_ON", ResumeRuleName(date, domain.FamilyVA))
}

func TestRuleRecognition(t *testing.T) {
	assert.True(t, IsPauseRule("250825_WebApp_Broad_DA_OFF_50mil"))
	assert.False(t, IsPauseRule("250825_TODOS_DA_ON"))

	assert.Equal(t, domain.FamilyDA, ResumeRuleFamily("250825_TODOS_DA_ON"))
	assert.Equal(t, domain.FamilyVA, ResumeRuleFamily("250825_TODOS_VA_ON"))
	assert.Equal(t, domain.FamilyOther, ResumeRuleFamily("regra_manual_qualquer"))
}

func TestBuildRuleGroups(t *testing.T) {
	groups := []meta.AdSetGroup{
		{
			CampaignName: "conversao_web&app_2025",
			AdSetName:    "DA_broad_geral",
			DailyBudget:  100000,
			Ads: []metadomain.Ad{
				{ID: "ad2", Name: "criativo_b"},
				{ID: "ad1", Name: "criativo_a"},
			},
		},
		{
			CampaignName: "conversao_web&app_2025",
			AdSetName:    "VA_lookalike_1pct",
			DailyBudget:  200000,
			Ads: []metadomain.Ad{
				{ID: "ad3", Name: "criativo_c"},
			},
		},
	}

	ruleGroups, familyAds := BuildRuleGroups(groups, 50)

	require.Len(t, ruleGroups, 2)

	first := ruleGroups[0]
	assert.Equal(t, "WebApp", first.CampaignShort)
	assert.Equal(t, "Broad", first.Targeting)
	assert.Equal(t, domain.FamilyDA, first.Family)
	assert.Equal(t, int64(50000), first.Threshold)
	assert.Equal(t, []string{"ad1", "ad2"}, first.AdIDs)
	assert.Equal(t, "criativo_a", first.AdNames["ad1"])

	assert.Equal(t, []string{"ad1", "ad2"}, familyAds[domain.FamilyDA])
	assert.Equal(t, []string{"ad3"}, familyAds[domain.FamilyVA])
}

func TestMatchPauseRule(t *testing.T) {
	groups := []RuleGroup{
		{CampaignShort: "WebApp", Targeting: "Broad", Family: domain.FamilyDA},
		{CampaignShort: "WebApp", Targeting: "Lookalike", Family: domain.FamilyVA},
	}

	match := MatchPauseRule("250825_WebApp_Broad_DA_OFF_50mil", groups)
	require.NotNil(t, match)
	assert.Equal(t, "Broad", match.Targeting)

	// Regra antiga com outra data ainda casa pelo padrão interno
	match = MatchPauseRule("250801_WebApp_Lookalike_VA_OFF_100mil", groups)
	require.NotNil(t, match)
	assert.Equal(t, "Lookalike", match.Targeting)

	assert.Nil(t, MatchPauseRule("250825_Outro_Broad_DA_OFF_50mil", groups))
}
