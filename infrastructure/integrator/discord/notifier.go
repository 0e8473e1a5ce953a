// Package discord envia relatórios por webhook do Discord. A entrega é best
// effort: falhas voltam como resultado estruturado, nunca derrubam a análise
// que já terminou.
package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/internal/config"
)

const (
	// Limite de mensagem simples do Discord, em caracteres
	plainContentLimit = 2000
	// Limite da descrição de um embed, em caracteres
	embedDescriptionLimit = 4096
)

// DeliveryResult é o desfecho de um envio. Success=false carrega o motivo
// legível; não existe erro "lançado" para entrega.
type DeliveryResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Notifier interface {
	SendReport(webhookURL, reportText string) DeliveryResult
}

type WebhookNotifier struct {
	httpClient *http.Client
}

func NewNotifier(cfg *config.Config) Notifier {
	timeout := time.Duration(cfg.Discord.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebhookNotifier{
		httpClient: &http.Client{Timeout: timeout},
	}
}

type webhookPayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []webhookEmbed `json:"embeds,omitempty"`
}

type webhookEmbed struct {
	Description string `json:"description"`
}

// SendReport envia o texto do relatório. Até o limite de mensagem simples
// vai como texto puro; acima disso vai como embed com truncamento duro.
func (n *WebhookNotifier) SendReport(webhookURL, reportText string) DeliveryResult {
	if webhookURL == "" {
		return DeliveryResult{Success: false, Message: "Webhook do Discord não configurado para este cliente"}
	}

	payload := webhookPayload{}
	if utf8.RuneCountInString(reportText) <= plainContentLimit {
		payload.Content = reportText
	} else {
		payload.Embeds = []webhookEmbed{{Description: truncateRunes(reportText, embedDescriptionLimit)}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return DeliveryResult{Success: false, Message: fmt.Sprintf("Erro ao montar o payload: %v", err)}
	}

	resp, err := n.httpClient.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao enviar relatório para o Discord")
		return DeliveryResult{Success: false, Message: fmt.Sprintf("Erro de comunicação com o Discord: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"detail":      string(detail),
		}).Error("Discord recusou o relatório")

		return DeliveryResult{
			Success: false,
			Message: fmt.Sprintf("Discord respondeu %d", resp.StatusCode),
		}
	}

	return DeliveryResult{Success: true, Message: "Relatório enviado com sucesso"}
}

// truncateRunes corta o texto no limite de caracteres sem partir uma runa no
// meio. O relatório carrega emoji e acentos, então cortar por bytes corrompe
// o final da mensagem.
func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
