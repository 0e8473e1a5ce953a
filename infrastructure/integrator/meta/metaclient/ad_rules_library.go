package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

// CreateAdRuleParams reúne as specs de uma regra nova. As specs vão
// serializadas como JSON nos parâmetros do POST, como o Graph API exige.
type CreateAdRuleParams struct {
	Name           string
	EvaluationSpec metadomain.EvaluationSpec
	ExecutionSpec  metadomain.ExecutionSpec
	ScheduleSpec   metadomain.ScheduleSpec
}

func (c *MetaClient) GetAdRulesByAccountID(accountID string) ([]metadomain.AdRule, error) {
	requestURL := fmt.Sprintf("%s/act_%s/adrules_library", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status,evaluation_spec")

	return getAllPages[metadomain.AdRule](c, requestURL, params)
}

func (c *MetaClient) CreateAdRule(accountID string, ruleParams CreateAdRuleParams) error {
	requestURL := fmt.Sprintf("%s/act_%s/adrules_library", c.Cfg.Meta.URL, accountID)

	evaluationSpec, err := json.Marshal(ruleParams.EvaluationSpec)
	if err != nil {
		return err
	}

	executionSpec, err := json.Marshal(ruleParams.ExecutionSpec)
	if err != nil {
		return err
	}

	scheduleSpec, err := json.Marshal(ruleParams.ScheduleSpec)
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Add("name", ruleParams.Name)
	params.Add("evaluation_spec", string(evaluationSpec))
	params.Add("execution_spec", string(executionSpec))
	params.Add("schedule_spec", string(scheduleSpec))

	if _, err := c.doRequest(http.MethodPost, requestURL, params); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_name": ruleParams.Name,
			"error":     err.Error(),
		}).Error("Erro ao criar regra automática")
		return err
	}

	return nil
}

// UpdateAdRuleTargets substitui a spec de avaliação da regra em uma única
// chamada de atualização.
func (c *MetaClient) UpdateAdRuleTargets(ruleID string, spec *metadomain.EvaluationSpec) error {
	requestURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, ruleID)

	evaluationSpec, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Add("evaluation_spec", string(evaluationSpec))

	if _, err := c.doRequest(http.MethodPost, requestURL, params); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": ruleID,
			"error":   err.Error(),
		}).Error("Erro ao atualizar regra automática")
		return err
	}

	return nil
}

func (c *MetaClient) DeleteAdRule(ruleID string) error {
	requestURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, ruleID)

	if _, err := c.doRequest(http.MethodDelete, requestURL, nil); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": ruleID,
			"error":   err.Error(),
		}).Error("Erro ao excluir regra automática")
		return err
	}

	return nil
}
