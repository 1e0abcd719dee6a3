package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/messaging"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

// ListCustomers retorna os perfis de clientes do comércio
func ListCustomers(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customers, err := service.ListCustomers()
		if err != nil {
			logger.WithError(err).Error("messaging: failed to list customers")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logger.WithError(err).Error("messaging: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetCustomer retorna o perfil de um cliente específico
func GetCustomer(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		customer, err := service.GetCustomer(id)
		if err != nil {
			if errors.Is(err, messaging.ErrCustomerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cliente não encontrado", nil)
				return
			}

			logger.WithError(err).Error("messaging: failed to get customer")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customer); err != nil {
			logger.WithError(err).Error("messaging: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListChatMessages retorna o histórico de chat com um usuário do comércio
func ListChatMessages(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro user_id é obrigatório", nil)
			return
		}

		messages, err := service.ListMessages(userID)
		if err != nil {
			logger.WithError(err).Error("messaging: failed to list chat messages")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar mensagens", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(messages); err != nil {
			logger.WithError(err).Error("messaging: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// SendChatMessage envia uma mensagem do back-office para um usuário
func SendChatMessage(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SendChatMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		var validationErr *messaging.ValidationError

		message, err := service.SendMessage(&req)
		if err != nil {
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), nil)
				return
			}

			logger.WithError(err).Error("messaging: failed to send chat message")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao enviar mensagem", nil)
			return
		}

		logger.WithFields(log.Fields{
			"receiver_id": req.ReceiverId,
		}).Info("messaging: chat message sent")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(message)
	})
}
