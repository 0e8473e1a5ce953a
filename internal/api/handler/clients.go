package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/clientstore"
	"github.com/vfg2006/creative-performance-api/internal/domain"
	"github.com/vfg2006/creative-performance-api/pkg/apiErrors"
)

// maskedToken esconde o access token nas respostas; o valor completo só vive
// no arquivo de perfis.
const maskedToken = "***"

func sanitizeProfile(profile *domain.ClientProfile) domain.ClientProfile {
	sanitized := *profile
	if sanitized.AccessToken != "" {
		sanitized.AccessToken = maskedToken
	}
	return sanitized
}

// ListClients lista os perfis cadastrados, com os tokens mascarados
func ListClients(store clientstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := store.List()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar perfis de clientes")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar clientes", nil)
			return
		}

		sanitized := make([]domain.ClientProfile, 0, len(profiles))
		for _, profile := range profiles {
			sanitized = append(sanitized, sanitizeProfile(profile))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sanitized)
	}
}

// GetClient retorna um perfil pelo nome
func GetClient(store clientstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		profile, err := store.Get(name)
		if err != nil {
			logrus.WithField("client_name", name).WithError(err).Error("Erro ao buscar perfil de cliente")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar cliente", nil)
			return
		}

		if profile == nil {
			apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)
			return
		}

		sanitized := sanitizeProfile(profile)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sanitized)
	}
}

// SaveClient cria ou atualiza um perfil de cliente
func SaveClient(store clientstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile domain.ClientProfile

		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if profile.Name == "" || profile.AdAccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e conta de anúncios são obrigatórios", nil)
			return
		}

		// Não sobrescrever o token guardado quando o cliente envia o valor mascarado
		if profile.AccessToken == maskedToken {
			existing, err := store.Get(profile.Name)
			if err == nil && existing != nil {
				profile.AccessToken = existing.AccessToken
			}
		}

		if err := store.Save(&profile); err != nil {
			logrus.WithField("client_name", profile.Name).WithError(err).Error("Erro ao salvar perfil de cliente")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao salvar cliente", nil)
			return
		}

		sanitized := sanitizeProfile(&profile)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sanitized)
	}
}

// DeleteClient remove um perfil pelo nome
func DeleteClient(store clientstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		profile, err := store.Get(name)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar cliente", nil)
			return
		}

		if profile == nil {
			apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)
			return
		}

		if err := store.Delete(name); err != nil {
			logrus.WithField("client_name", name).WithError(err).Error("Erro ao remover perfil de cliente")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao remover cliente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
