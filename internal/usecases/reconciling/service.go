package reconciling

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-performance-api/internal/config"
	"github.com/vfg2006/creative-performance-api/internal/domain"
	"github.com/vfg2006/creative-performance-api/pkg/utils"
)

// RuleAction é o que o reconciliador fez (ou faria, em dry-run) com uma regra.
type RuleAction string

const (
	ActionInSync    RuleAction = "em_sincronia"
	ActionUpdated   RuleAction = "atualizada"
	ActionDeleted   RuleAction = "excluida"
	ActionCreated   RuleAction = "criada"
	ActionUnmatched RuleAction = "sem_correspondencia"
	ActionFailed    RuleAction = "falha"
)

// RuleOutcome é o resultado da reconciliação de uma única regra.
type RuleOutcome struct {
	RuleName string     `json:"rule_name"`
	Action   RuleAction `json:"action"`
	Added    []string   `json:"added,omitempty"`
	Removed  []string   `json:"removed,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// Result agrega os resultados de um passe de sincronização ou reset.
type Result struct {
	ClientName string        `json:"client_name"`
	DryRun     bool          `json:"dry_run"`
	Outcomes   []RuleOutcome `json:"outcomes"`
	Changes    int           `json:"changes"`
}

// RuleStatus é a fotografia de uma regra habilitada na conta.
type RuleStatus struct {
	RuleName string `json:"rule_name"`
	Targets  int    `json:"targets"`
	Managed  bool   `json:"managed"`
}

// AuditRecorder persiste o rastro das ações do reconciliador. A gravação é
// melhor esforço: falha de auditoria não derruba o passe.
type AuditRecorder interface {
	Record(entry domain.RuleAuditEntry) error
}

type Service struct {
	cfg       *config.Config
	platforms PlatformFactory
	audit     AuditRecorder
	now       func() time.Time
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
		platforms: func(accessToken string) RulePlatform {
			return meta.New(cfg, metaclient.NewClient(cfg, accessToken))
		},
		now: time.Now,
	}
}

// WithPlatformFactory troca a fábrica de sessões; usado nos testes.
func (s *Service) WithPlatformFactory(factory PlatformFactory) *Service {
	s.platforms = factory
	return s
}

// WithAudit liga a gravação de auditoria das ações.
func (s *Service) WithAudit(audit AuditRecorder) *Service {
	s.audit = audit
	return s
}

// WithClock fixa o relógio usado nos nomes de regra; usado nos testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Sync alinha os alvos das regras habilitadas com os criativos ativos de
// hoje. Regras de pausa recebem os anúncios do seu grupo; regras de
// religamento recebem a união da família. Nada é criado nem excluído. A
// falha em uma regra não interrompe as demais.
func (s *Service) Sync(profile *domain.ClientProfile, dryRun bool) (*Result, error) {
	platform := s.platforms(profile.AccessToken)

	ruleGroups, familyAds, err := s.currentGroups(platform, profile)
	if err != nil {
		return nil, err
	}

	rules, err := platform.EnabledRules(profile.AdAccountID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar regras habilitadas: %w", err)
	}

	result := &Result{ClientName: profile.Name, DryRun: dryRun}

	for _, rule := range rules {
		outcome := s.syncRule(platform, rule, ruleGroups, familyAds, dryRun)
		if outcome == nil {
			continue
		}

		if outcome.Action == ActionUpdated {
			result.Changes++
		}

		result.Outcomes = append(result.Outcomes, *outcome)
		s.recordAudit(profile.Name, *outcome, dryRun)
	}

	logrus.WithFields(logrus.Fields{
		"client_name": profile.Name,
		"rules":       len(result.Outcomes),
		"changes":     result.Changes,
		"dry_run":     dryRun,
	}).Info("Sincronização de regras concluída")

	return result, nil
}

func (s *Service) syncRule(
	platform RulePlatform,
	rule metadomain.AdRule,
	ruleGroups []RuleGroup,
	familyAds map[domain.CreativeFamily][]string,
	dryRun bool,
) *RuleOutcome {
	var desired []string

	switch {
	case IsPauseRule(rule.Name):
		group := MatchPauseRule(rule.Name, ruleGroups)
		if group == nil {
			logrus.WithField("rule_name", rule.Name).Warn("Regra de pausa sem grupo ativo correspondente")
			return &RuleOutcome{
				RuleName: rule.Name,
				Action:   ActionUnmatched,
				Message:  "nenhum conjunto ativo corresponde ao nome da regra",
			}
		}
		desired = group.AdIDs

	case ResumeRuleFamily(rule.Name) != domain.FamilyOther:
		desired = familyAds[ResumeRuleFamily(rule.Name)]

	default:
		// Regra que não segue a nomenclatura gerenciada fica intocada.
		return nil
	}

	added, removed := diffTargets(rule.TargetAdIDs(), desired)
	if len(added) == 0 && len(removed) == 0 {
		return &RuleOutcome{RuleName: rule.Name, Action: ActionInSync}
	}

	outcome := &RuleOutcome{
		RuleName: rule.Name,
		Action:   ActionUpdated,
		Added:    added,
		Removed:  removed,
	}

	if dryRun {
		return outcome
	}

	if rule.EvaluationSpec == nil {
		outcome.Action = ActionFailed
		outcome.Message = "regra sem spec de avaliação"
		return outcome
	}

	if err := platform.UpdateRuleTargets(rule.ID, rule.EvaluationSpec.WithTargetAdIDs(desired)); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id":   rule.ID,
			"rule_name": rule.Name,
		}).WithError(err).Error("Falha ao atualizar alvos da regra")

		outcome.Action = ActionFailed
		outcome.Message = err.Error()
	}

	return outcome
}

// Reset recria o estado diário: exclui todas as regras habilitadas da conta,
// gerenciadas ou não, e cria uma regra de pausa por grupo ativo e uma de
// religamento por família. A proteção de regras fora da nomenclatura vale só
// para o Sync.
func (s *Service) Reset(profile *domain.ClientProfile, dryRun bool) (*Result, error) {
	platform := s.platforms(profile.AccessToken)

	ruleGroups, familyAds, err := s.currentGroups(platform, profile)
	if err != nil {
		return nil, err
	}

	rules, err := platform.EnabledRules(profile.AdAccountID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar regras habilitadas: %w", err)
	}

	result := &Result{ClientName: profile.Name, DryRun: dryRun}

	for _, rule := range rules {
		outcome := RuleOutcome{RuleName: rule.Name, Action: ActionDeleted}

		if !dryRun {
			if err := platform.DeleteRule(rule.ID); err != nil {
				logrus.WithField("rule_name", rule.Name).WithError(err).Error("Falha ao excluir regra")
				outcome.Action = ActionFailed
				outcome.Message = err.Error()
			}
		}

		if outcome.Action == ActionDeleted {
			result.Changes++
		}
		result.Outcomes = append(result.Outcomes, outcome)
		s.recordAudit(profile.Name, outcome, dryRun)
	}

	today := s.now()

	for _, group := range ruleGroups {
		if len(group.AdIDs) == 0 {
			continue
		}

		outcome := s.createRule(platform, profile.AdAccountID, metaclient.CreateAdRuleParams{
			Name:           PauseRuleName(today, group),
			EvaluationSpec: pauseEvaluationSpec(group),
			ExecutionSpec:  metadomain.ExecutionSpec{ExecutionType: metadomain.RuleExecutionPause},
			ScheduleSpec:   metadomain.ScheduleSpec{ScheduleType: metadomain.RuleScheduleSemiHourly},
		}, dryRun)

		if outcome.Action == ActionCreated {
			result.Changes++
		}
		result.Outcomes = append(result.Outcomes, outcome)
		s.recordAudit(profile.Name, outcome, dryRun)
	}

	for _, family := range []domain.CreativeFamily{domain.FamilyDA, domain.FamilyVA} {
		adIDs := familyAds[family]
		if len(adIDs) == 0 {
			continue
		}

		outcome := s.createRule(platform, profile.AdAccountID, metaclient.CreateAdRuleParams{
			Name:           ResumeRuleName(today, family),
			EvaluationSpec: resumeEvaluationSpec(adIDs),
			ExecutionSpec:  metadomain.ExecutionSpec{ExecutionType: metadomain.RuleExecutionUnpause},
			ScheduleSpec:   metadomain.ScheduleSpec{ScheduleType: metadomain.RuleScheduleDaily},
		}, dryRun)

		if outcome.Action == ActionCreated {
			result.Changes++
		}
		result.Outcomes = append(result.Outcomes, outcome)
		s.recordAudit(profile.Name, outcome, dryRun)
	}

	logrus.WithFields(logrus.Fields{
		"client_name": profile.Name,
		"changes":     result.Changes,
		"dry_run":     dryRun,
	}).Info("Reset de regras concluído")

	return result, nil
}

func (s *Service) createRule(
	platform RulePlatform,
	accountID string,
	params metaclient.CreateAdRuleParams,
	dryRun bool,
) RuleOutcome {
	outcome := RuleOutcome{RuleName: params.Name, Action: ActionCreated}

	if dryRun {
		return outcome
	}

	if err := platform.CreateRule(accountID, params); err != nil {
		logrus.WithField("rule_name", params.Name).WithError(err).Error("Falha ao criar regra")
		outcome.Action = ActionFailed
		outcome.Message = err.Error()
	}

	return outcome
}

// Status fotografa as regras habilitadas da conta sem alterar nada.
func (s *Service) Status(profile *domain.ClientProfile) ([]RuleStatus, error) {
	platform := s.platforms(profile.AccessToken)

	rules, err := platform.EnabledRules(profile.AdAccountID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar regras habilitadas: %w", err)
	}

	statuses := make([]RuleStatus, 0, len(rules))
	for _, rule := range rules {
		statuses = append(statuses, RuleStatus{
			RuleName: rule.Name,
			Targets:  len(rule.TargetAdIDs()),
			Managed:  IsPauseRule(rule.Name) || ResumeRuleFamily(rule.Name) != domain.FamilyOther,
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].RuleName < statuses[j].RuleName
	})

	return statuses, nil
}

func (s *Service) currentGroups(
	platform RulePlatform,
	profile *domain.ClientProfile,
) ([]RuleGroup, map[domain.CreativeFamily][]string, error) {
	groups, err := platform.ActiveAdSetGroups(profile.AdAccountID, profile.TargetCampaigns)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao listar conjuntos ativos: %w", err)
	}

	rulePct := profile.BudgetRulePct
	if rulePct <= 0 {
		rulePct = s.cfg.Analysis.BudgetRulePct
	}

	ruleGroups, familyAds := BuildRuleGroups(groups, rulePct)
	return ruleGroups, familyAds, nil
}

func (s *Service) recordAudit(clientName string, outcome RuleOutcome, dryRun bool) {
	if s.audit == nil {
		return
	}

	entryID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Falha ao gerar id da auditoria")
		return
	}

	entry := domain.RuleAuditEntry{
		ID:         entryID,
		ClientName: clientName,
		RuleName:   outcome.RuleName,
		Action:     string(outcome.Action),
		AddedAds:   outcome.Added,
		RemovedAds: outcome.Removed,
		DryRun:     dryRun,
		Message:    outcome.Message,
		CreatedAt:  s.now(),
	}

	if err := s.audit.Record(entry); err != nil {
		logrus.WithField("rule_name", outcome.RuleName).WithError(err).Warn("Falha ao gravar auditoria da regra")
	}
}

func pauseEvaluationSpec(group RuleGroup) metadomain.EvaluationSpec {
	return metadomain.EvaluationSpec{
		EvaluationType: metadomain.RuleEvaluationSchedule,
		Filters: []metadomain.RuleFilter{
			{Field: metadomain.RuleFieldTodaySpent, Value: group.Threshold, Operator: metadomain.RuleOperatorGreaterThan},
			{Field: metadomain.RuleFieldAdID, Value: group.AdIDs, Operator: metadomain.RuleOperatorIn},
			{Field: metadomain.RuleFieldEntityType, Value: "AD", Operator: metadomain.RuleOperatorEqual},
			{Field: metadomain.RuleFieldTimePreset, Value: "TODAY", Operator: metadomain.RuleOperatorEqual},
		},
	}
}

func resumeEvaluationSpec(adIDs []string) metadomain.EvaluationSpec {
	return metadomain.EvaluationSpec{
		EvaluationType: metadomain.RuleEvaluationSchedule,
		Filters: []metadomain.RuleFilter{
			{Field: metadomain.RuleFieldAdID, Value: adIDs, Operator: metadomain.RuleOperatorIn},
			{Field: metadomain.RuleFieldEntityType, Value: "AD", Operator: metadomain.RuleOperatorEqual},
			{Field: metadomain.RuleFieldTimePreset, Value: "MAXIMUM", Operator: metadomain.RuleOperatorEqual},
		},
	}
}

// diffTargets calcula as diferenças entre os alvos atuais e os desejados,
// com as listas ordenadas para saída determinística.
func diffTargets(current, desired []string) (added, removed []string) {
	currentSet := make(map[string]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}

	desiredSet := make(map[string]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	for id := range desiredSet {
		if !currentSet[id] {
			added = append(added, id)
		}
	}
	for id := range currentSet {
		if !desiredSet[id] {
			removed = append(removed, id)
		}
	}

	sort.Strings(added)
	sort.Strings(removed)
	return added, removed
}
