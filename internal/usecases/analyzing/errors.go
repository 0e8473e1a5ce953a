package analyzing

import "errors"

// Resultados vazios esperados, não falhas. O chamador converte em status
// legível para o usuário, nunca em stack trace.
var (
	ErrNoActiveTargets  = errors.New("nenhuma campanha-alvo ativa encontrada")
	ErrNoQualifyingData = errors.New("nenhum dado de anúncio qualificado no período")
)
