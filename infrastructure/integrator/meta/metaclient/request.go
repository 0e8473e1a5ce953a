package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// paging segue o formato de paginação por cursor do Graph API.
type paging struct {
	Next string `json:"next"`
}

type listResponse[T any] struct {
	Data   []T    `json:"data"`
	Paging paging `json:"paging"`
}

func (c *MetaClient) doRequest(method, requestURL string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.AccessToken)

	var req *http.Request
	var err error

	switch method {
	case http.MethodGet, http.MethodDelete:
		req, err = http.NewRequest(method, requestURL+"?"+params.Encode(), nil)
	default:
		req, err = http.NewRequest(method, requestURL, strings.NewReader(params.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse lê o corpo e converte respostas de erro do Graph API em
// *metadomain.APIError, preservando o código para o tratamento de rate limit.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errResponse metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResponse); err != nil {
		return nil, fmt.Errorf("meta api: resposta inesperada (http=%d): %s", resp.StatusCode, string(body))
	}

	return nil, &metadomain.APIError{
		StatusCode: resp.StatusCode,
		Response:   errResponse,
	}
}

// getAllPages consome todas as páginas de uma listagem do Graph API.
func getAllPages[T any](c *MetaClient, requestURL string, params url.Values) ([]T, error) {
	var results []T

	body, err := c.doRequest(http.MethodGet, requestURL, params)
	if err != nil {
		return nil, err
	}

	for {
		var response listResponse[T]
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		results = append(results, response.Data...)

		if response.Paging.Next == "" {
			return results, nil
		}

		// A URL "next" já carrega token e parâmetros
		body, err = c.doNext(response.Paging.Next)
		if err != nil {
			return nil, err
		}
	}
}

func (c *MetaClient) doNext(nextURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, nextURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar a próxima página")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}
