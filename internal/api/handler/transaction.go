package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/transacting"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

type UpdateTransactionStatusRequest struct {
	Status string `json:"status"`
}

type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// ListTransactions retorna todas as transações do backend de comércio
func ListTransactions(service transacting.Transactor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		transactions, err := service.ListTransactions()
		if err != nil {
			logger.WithError(err).Error("transactions: failed to list transactions")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar transações", nil)
			return
		}

		logger.WithField("count", len(transactions)).Info("transactions: listed transactions")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(transactions); err != nil {
			logger.WithError(err).Error("transactions: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// UpdateTransactionStatus altera o status de uma transação respeitando o ciclo
// de vida Pending -> Processing -> Shipped -> Completed, com Cancelled
// permitido a partir de qualquer estado não terminal
func UpdateTransactionStatus(service transacting.Transactor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da transação não fornecido", nil)
			return
		}

		var req UpdateTransactionStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		newStatus, err := service.UpdateStatus(id, req.Status)
		if err != nil {
			handleTransactionError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"transaction_id": id,
			"status":         newStatus,
		}).Info("transactions: status updated")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"transaction_id": id,
			"status":         newStatus,
		})
	})
}

// AssignTransactionDriver vincula um entregador a uma transação
func AssignTransactionDriver(service transacting.Transactor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da transação não fornecido", nil)
			return
		}

		var req AssignDriverRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.DriverID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do entregador não fornecido", nil)
			return
		}

		if err := service.AssignDriver(id, req.DriverID); err != nil {
			handleTransactionError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"transaction_id": id,
			"driver_id":      req.DriverID,
		}).Info("transactions: driver assigned")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":        "Entregador vinculado com sucesso",
			"transaction_id": id,
			"driver_id":      req.DriverID,
		})
	})
}

// DeleteTransaction remove uma transação do backend de comércio
func DeleteTransaction(service transacting.Transactor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da transação não fornecido", nil)
			return
		}

		if err := service.DeleteTransaction(id); err != nil {
			handleTransactionError(w, r, err)
			return
		}

		logger.WithField("transaction_id", id).Info("transactions: transaction deleted")

		w.WriteHeader(http.StatusNoContent)
	})
}

// ListDrivers retorna os entregadores disponíveis para atribuição
func ListDrivers(service transacting.Transactor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		drivers, err := service.ListDrivers()
		if err != nil {
			logger.WithError(err).Error("transactions: failed to list drivers")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar entregadores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(drivers); err != nil {
			logger.WithError(err).Error("transactions: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// handleTransactionError mapeia os erros do serviço de transações para
// respostas padronizadas da API
func handleTransactionError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var transitionErr *transacting.TransitionError
	if errors.As(err, &transitionErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, transitionErr.Error(), map[string]any{
			"from": transitionErr.From,
			"to":   transitionErr.To,
		})
		return
	}

	switch {
	case errors.Is(err, transacting.ErrTransactionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Transação não encontrada", nil)

	case errors.Is(err, transacting.ErrDriverNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Entregador não encontrado", nil)

	case errors.Is(err, transacting.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de transação inválido", nil)

	default:
		logger.WithError(err).Error("transactions: operation failed")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao processar operação de transação", nil)
	}
}
