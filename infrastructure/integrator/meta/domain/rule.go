package metadomain

const (
	RuleStatusEnabled = "ENABLED"

	RuleFieldAdID       = "ad.id"
	RuleFieldTodaySpent = "today_spent"
	RuleFieldEntityType = "entity_type"
	RuleFieldTimePreset = "time_preset"

	RuleEvaluationSchedule = "SCHEDULE"

	RuleOperatorIn          = "IN"
	RuleOperatorEqual       = "EQUAL"
	RuleOperatorGreaterThan = "GREATER_THAN"

	RuleExecutionPause   = "PAUSE"
	RuleExecutionUnpause = "UNPAUSE"

	RuleScheduleSemiHourly = "SEMI_HOURLY"
	RuleScheduleDaily      = "DAILY"
)

// RuleFilter é um filtro da spec de avaliação de uma regra automática.
// O valor pode ser string, lista de IDs ou objeto, conforme o campo.
type RuleFilter struct {
	Field    string      `json:"field"`
	Value    interface{} `json:"value"`
	Operator string      `json:"operator"`
}

type EvaluationSpec struct {
	EvaluationType string       `json:"evaluation_type"`
	Filters        []RuleFilter `json:"filters"`
}

type ExecutionSpec struct {
	ExecutionType    string       `json:"execution_type"`
	ExecutionOptions []RuleFilter `json:"execution_options,omitempty"`
}

type ScheduleSpec struct {
	ScheduleType string `json:"schedule_type"`
}

// AdRule é uma regra da biblioteca de regras automáticas da conta.
type AdRule struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	EvaluationSpec *EvaluationSpec `json:"evaluation_spec,omitempty"`
}

// TargetAdIDs extrai os IDs de anúncio do filtro "ad.id" da regra.
func (r AdRule) TargetAdIDs() []string {
	if r.EvaluationSpec == nil {
		return nil
	}

	for _, filter := range r.EvaluationSpec.Filters {
		if filter.Field != RuleFieldAdID {
			continue
		}

		switch value := filter.Value.(type) {
		case []string:
			return value
		case []interface{}:
			ids := make([]string, 0, len(value))
			for _, item := range value {
				if id, ok := item.(string); ok {
					ids = append(ids, id)
				}
			}
			return ids
		}
	}

	return nil
}

// WithTargetAdIDs devolve uma cópia da spec de avaliação com o filtro "ad.id"
// substituído pela nova lista. Os demais filtros são preservados como estão.
func (s EvaluationSpec) WithTargetAdIDs(adIDs []string) *EvaluationSpec {
	newSpec := &EvaluationSpec{
		EvaluationType: s.EvaluationType,
		Filters:        make([]RuleFilter, 0, len(s.Filters)),
	}

	for _, filter := range s.Filters {
		if filter.Field == RuleFieldAdID {
			newSpec.Filters = append(newSpec.Filters, RuleFilter{
				Field:    RuleFieldAdID,
				Value:    adIDs,
				Operator: RuleOperatorIn,
			})
			continue
		}
		newSpec.Filters = append(newSpec.Filters, filter)
	}

	return newSpec
}
