package reconciling

import (
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// RulePlatform é o recorte da plataforma de anúncios que o reconciliador
// precisa: conjuntos ativos, regras habilitadas e as operações de escrita.
type RulePlatform interface {
	ActiveAdSetGroups(accountID string, targetNames []string) ([]meta.AdSetGroup, error)
	EnabledRules(accountID string) ([]metadomain.AdRule, error)
	UpdateRuleTargets(ruleID string, spec *metadomain.EvaluationSpec) error
	DeleteRule(ruleID string) error
	CreateRule(accountID string, params metaclient.CreateAdRuleParams) error
}

// PlatformFactory cria uma sessão da plataforma com o token de um perfil.
type PlatformFactory func(accessToken string) RulePlatform

// Reconciler sincroniza e recria as regras automáticas de um perfil.
type Reconciler interface {
	Sync(profile *domain.ClientProfile, dryRun bool) (*Result, error)
	Reset(profile *domain.ClientProfile, dryRun bool) (*Result, error)
	Status(profile *domain.ClientProfile) ([]RuleStatus, error)
}
