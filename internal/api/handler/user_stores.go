package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/middleware"
)

type UserStoresRequest struct {
	StoreIDs []string `json:"store_ids"`
}

// GetUserStores retorna as lojas vinculadas ao usuário logado
func GetUserStores(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ver as lojas deste usuário", nil)
			return
		}

		// Buscar lojas vinculadas
		stores, err := service.GetUserLinkedStores(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar lojas vinculadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stores); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateUserStores atualiza as lojas vinculadas a um usuário
func UpdateUserStores(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Extrair ID do usuário da URL
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		// Verificar permissões: apenas administradores podem alterar lojas vinculadas
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar as lojas vinculadas", nil)
			return
		}

		// Decodificar o corpo da requisição
		var req UserStoresRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Atualizar lojas vinculadas
		err = service.ManageUserStores(id, req.StoreIDs)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar lojas vinculadas", nil)
			return
		}

		// Resposta de sucesso
		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"message":   "Lojas vinculadas atualizadas com sucesso",
			"user_id":   id,
			"store_ids": req.StoreIDs,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// LinkUserStore adiciona múltiplas lojas vinculadas a um usuário.
// Recebe uma lista de IDs de lojas no corpo da requisição para vincular a um único usuário.
// Apenas administradores podem realizar esta operação.
func LinkUserStore(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Extrair ID do usuário da URL
		userIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if userIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário é obrigatório", nil)
			return
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		// Verificar permissões: apenas administradores podem vincular lojas
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem vincular lojas", nil)
			return
		}

		// Decodificar o corpo da requisição para obter a lista de IDs de lojas
		var req UserStoresRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if len(req.StoreIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lista de IDs de lojas não pode estar vazia", nil)
			return
		}

		// Vincular cada loja da lista ao usuário
		var successfulLinks []string
		var failedLinks []string

		for _, storeID := range req.StoreIDs {
			err = service.LinkUserStore(userID, storeID)
			if err != nil {
				logrus.Warnf("Erro ao vincular loja %s ao usuário %d: %v", storeID, userID, err)
				failedLinks = append(failedLinks, storeID)
			} else {
				successfulLinks = append(successfulLinks, storeID)
			}
		}

		// Resposta de sucesso
		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"message":          "Lojas vinculadas processadas",
			"user_id":          userID,
			"successful_links": successfulLinks,
		}

		if len(failedLinks) > 0 {
			response["failed_links"] = failedLinks
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UnlinkUserStore remove uma loja vinculada de um usuário
func UnlinkUserStore(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Extrair ID do usuário da URL
		params := httprouter.ParamsFromContext(r.Context())
		userIDStr := params.ByName("id")
		storeID := params.ByName("store_id")

		if userIDStr == "" || storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário e ID da loja são obrigatórios", nil)
			return
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		// Verificar permissões: apenas administradores podem desvincular lojas
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem desvincular lojas", nil)
			return
		}

		// Desvincular loja
		err = service.UnlinkUserStore(userID, storeID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao desvincular loja", nil)
			return
		}

		// Resposta de sucesso
		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"message":  "Loja desvinculada com sucesso",
			"user_id":  userID,
			"store_id": storeID,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
