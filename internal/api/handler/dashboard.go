package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/reporting"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
	"github.com/vfg2006/commerce-backoffice-api/pkg/middleware"
	"github.com/vfg2006/commerce-backoffice-api/pkg/utils"
)

// GetDashboardSummary retorna o resumo agregado de vendas do dashboard.
// Aceita os filtros opcionais store_id, start_date e end_date (YYYY-MM-DD).
// Usuários não-administradores só consultam as lojas vinculadas ao seu perfil.
func GetDashboardSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := &domain.DashboardFilters{
			StoreID: r.URL.Query().Get("store_id"),
		}
		if filters.StoreID == "" {
			filters.StoreID = domain.AllStores
		}

		if raw := r.URL.Query().Get("start_date"); raw != "" {
			startDate, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"start_date": raw,
					"error":      err.Error(),
				}).Warn("dashboard: invalid start_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.StartDate = startDate
		}

		if raw := r.URL.Query().Get("end_date"); raw != "" {
			endDate, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"end_date": raw,
					"error":    err.Error(),
				}).Warn("dashboard: invalid end_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.EndDate = endDate
		}

		// Exige os dois limites quando um deles vier preenchido
		if (filters.StartDate == nil) != (filters.EndDate == nil) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe start_date e end_date juntos", nil)
			return
		}

		if filters.HasDateRange() && filters.EndDate.Before(*filters.StartDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Data final não pode ser anterior à data inicial", nil)
			return
		}

		// Restringir o escopo de consulta às lojas vinculadas do usuário
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if ok && userClaims.UserRoleID != middleware.RoleAdmin && len(userClaims.UserStores) > 0 {
			if !allowedStore(filters.StoreID, userClaims.UserStores) {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso aos dados desta loja", nil)
				return
			}
		}

		logger.WithFields(log.Fields{
			"store_id":   filters.StoreID,
			"start_date": formatOptionalDate(filters.StartDate),
			"end_date":   formatOptionalDate(filters.EndDate),
		}).Info("dashboard: building sales summary")

		summary, err := service.DashboardSummary(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build sales summary")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar dados de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func allowedStore(storeID string, linked []string) bool {
	if storeID == domain.AllStores {
		return false
	}

	for _, id := range linked {
		if id == storeID {
			return true
		}
	}

	return false
}

func formatOptionalDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(time.DateOnly)
}
