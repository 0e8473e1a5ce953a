package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// APIError embrulha um ErrorResponse como erro Go, preservando o código para
// que camadas superiores distingam rate limit de falhas definitivas.
type APIError struct {
	StatusCode int
	Response   ErrorResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf(
		"meta api: %s (code=%d, subcode=%d, http=%d)",
		e.Response.Error.Message,
		e.Response.Error.Code,
		e.Response.Error.ErrorSubcode,
		e.StatusCode,
	)
}

// IsRateLimited verifica se o erro é de limite de requisições
func (e *APIError) IsRateLimited() bool {
	// O código 17 representa "User request limit reached" nas respostas da API do Meta
	return e.Response.Error.Code == 17
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *APIError) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Response.Error.Code == 190 ||
		(e.Response.Error.Type == "OAuthException" &&
			(e.Response.Error.ErrorSubcode == 460 || e.Response.Error.ErrorSubcode == 463 || e.Response.Error.ErrorSubcode == 467))
}
