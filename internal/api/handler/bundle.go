package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/catalog"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

// ListBundles retorna todos os bundles do catálogo
func ListBundles(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		bundles, err := service.ListBundles()
		if err != nil {
			logger.WithError(err).Error("catalog: failed to list bundles")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar bundles", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(bundles); err != nil {
			logger.WithError(err).Error("catalog: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// CreateBundle cadastra um novo bundle composto por produtos existentes
func CreateBundle(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateBundleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		bundle, err := service.CreateBundle(&req)
		if err != nil {
			handleCatalogError(w, r, err)
			return
		}

		logger.WithField("bundle_id", bundle.Id).Info("catalog: bundle created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(bundle)
	})
}
