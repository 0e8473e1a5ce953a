package discord

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotifier() *WebhookNotifier {
	return &WebhookNotifier{httpClient: &http.Client{Timeout: 5 * time.Second}}
}

func TestSendReport(t *testing.T) {
	t.Run("Relatório curto vai como mensagem de texto puro", func(t *testing.T) {
		var received webhookPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		result := testNotifier().SendReport(server.URL, "relatório curto")

		assert.True(t, result.Success)
		assert.Equal(t, "relatório curto", received.Content)
		assert.Empty(t, received.Embeds)
	})

	t.Run("Relatório longo vai como embed com descrição truncada", func(t *testing.T) {
		var received webhookPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		longReport := strings.Repeat("a", embedDescriptionLimit+500)
		result := testNotifier().SendReport(server.URL, longReport)

		assert.True(t, result.Success)
		assert.Empty(t, received.Content)
		require.Len(t, received.Embeds, 1)
		assert.Len(t, received.Embeds[0].Description, embedDescriptionLimit)
	})

	t.Run("Relatório entre os dois limites vai como embed sem truncar", func(t *testing.T) {
		var received webhookPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		report := strings.Repeat("b", plainContentLimit+100)
		result := testNotifier().SendReport(server.URL, report)

		assert.True(t, result.Success)
		require.Len(t, received.Embeds, 1)
		assert.Len(t, received.Embeds[0].Description, plainContentLimit+100)
	})

	t.Run("Texto multibyte é truncado em fronteira de caractere", func(t *testing.T) {
		var received webhookPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		report := strings.Repeat("━", embedDescriptionLimit+50)
		result := testNotifier().SendReport(server.URL, report)

		assert.True(t, result.Success)
		require.Len(t, received.Embeds, 1)

		description := received.Embeds[0].Description
		assert.Equal(t, embedDescriptionLimit, utf8.RuneCountInString(description))
		assert.True(t, utf8.ValidString(description))
		assert.True(t, strings.HasPrefix(report, description))
	})

	t.Run("Limite de mensagem simples conta caracteres, não bytes", func(t *testing.T) {
		var received webhookPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		// 1990 caracteres acentuados ocupam mais de 2000 bytes
		report := strings.Repeat("é", plainContentLimit-10)
		result := testNotifier().SendReport(server.URL, report)

		assert.True(t, result.Success)
		assert.Equal(t, report, received.Content)
		assert.Empty(t, received.Embeds)
	})

	t.Run("Webhook vazio falha sem tentar chamada HTTP", func(t *testing.T) {
		result := testNotifier().SendReport("", "relatório")

		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "Webhook do Discord não configurado")
	})

	t.Run("Resposta de erro do Discord vira falha com o status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		result := testNotifier().SendReport(server.URL, "relatório")

		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "429")
	})

	t.Run("Servidor inalcançável vira falha de comunicação", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		result := testNotifier().SendReport(server.URL, "relatório")

		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "Erro de comunicação com o Discord")
	})
}
