package metaclient

import (
	"errors"
	"fmt"
	"time"

	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

// RetryExhaustedError indica que a operação continuou recebendo rate limit
// depois de todas as tentativas. Distingue esgotamento esperado de falhas de
// programação: quem chama decide se trata ou propaga.
type RetryExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("chamada à API falhou após %d tentativas: %v", e.Attempts, e.LastErr)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.LastErr
}

// RetryOptions parametriza o WithRetry. Sleep existe para os testes não
// esperarem minutos reais; em produção fica o time.Sleep padrão.
type RetryOptions struct {
	MaxAttempts int
	InitialWait time.Duration
	OnProgress  func(message string)
	Sleep       func(d time.Duration)
}

func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxAttempts: 5,
		InitialWait: 60 * time.Second,
	}
}

// WithRetry executa a operação e, quando o Meta sinaliza limite de
// requisições, espera initialWait × 2^tentativa e tenta de novo. Qualquer
// outro erro propaga imediatamente. A espera bloqueia a goroutine chamadora
// de verdade: no pior caso são minutos.
func WithRetry[T any](operation func() (T, error), opts RetryOptions) (T, error) {
	var zero T

	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	if opts.InitialWait <= 0 {
		opts.InitialWait = 60 * time.Second
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		var apiErr *metadomain.APIError
		if !errors.As(err, &apiErr) || !apiErr.IsRateLimited() {
			return zero, err
		}

		lastErr = err
		wait := opts.InitialWait * (1 << attempt)
		if opts.OnProgress != nil {
			opts.OnProgress(fmt.Sprintf(
				"Limite da API atingido. Aguardando %s antes de tentar de novo... (%d/%d)",
				wait, attempt+1, opts.MaxAttempts,
			))
		}
		sleep(wait)
	}

	return zero, &RetryExhaustedError{Attempts: opts.MaxAttempts, LastErr: lastErr}
}
