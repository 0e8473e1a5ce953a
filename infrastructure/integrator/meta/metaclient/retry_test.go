package metaclient

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

func rateLimitError() *metadomain.APIError {
	return &metadomain.APIError{
		StatusCode: 400,
		Response: metadomain.ErrorResponse{
			Error: metadomain.ErrorDetails{
				Code:    17,
				Type:    "OAuthException",
				Message: "User request limit reached",
			},
		},
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("Duas falhas de rate limit e sucesso, com backoff 60s e 120s", func(t *testing.T) {
		var sleeps []time.Duration
		calls := 0

		result, err := WithRetry(func() (string, error) {
			calls++
			if calls <= 2 {
				return "", rateLimitError()
			}
			return "ok", nil
		}, RetryOptions{
			MaxAttempts: 5,
			InitialWait: 60 * time.Second,
			Sleep:       func(d time.Duration) { sleeps = append(sleeps, d) },
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []time.Duration{60 * time.Second, 120 * time.Second}, sleeps)
	})

	t.Run("Erro que não é rate limit propaga sem nova tentativa", func(t *testing.T) {
		calls := 0
		boom := errors.New("falha de rede")

		_, err := WithRetry(func() (string, error) {
			calls++
			return "", boom
		}, RetryOptions{
			MaxAttempts: 5,
			InitialWait: time.Second,
			Sleep:       func(time.Duration) {},
		})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("Rate limit persistente esgota as tentativas", func(t *testing.T) {
		calls := 0

		_, err := WithRetry(func() (string, error) {
			calls++
			return "", rateLimitError()
		}, RetryOptions{
			MaxAttempts: 3,
			InitialWait: time.Second,
			Sleep:       func(time.Duration) {},
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)

		var exhausted *RetryExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.Equal(t, 3, exhausted.Attempts)

		var apiErr *metadomain.APIError
		assert.ErrorAs(t, err, &apiErr)
	})

	t.Run("Mensagem de progresso informa a espera e a tentativa", func(t *testing.T) {
		var messages []string
		calls := 0

		_, err := WithRetry(func() (string, error) {
			calls++
			if calls == 1 {
				return "", rateLimitError()
			}
			return "ok", nil
		}, RetryOptions{
			MaxAttempts: 5,
			InitialWait: 60 * time.Second,
			OnProgress:  func(message string) { messages = append(messages, message) },
			Sleep:       func(time.Duration) {},
		})

		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Contains(t, messages[0], "1m0s")
		assert.Contains(t, messages[0], "(1/5)")
	})
}
