package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/storefront"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

// ListStores retorna todas as lojas cadastradas
func ListStores(service storefront.Storefronter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stores, err := service.ListStores()
		if err != nil {
			logger.WithError(err).Error("stores: failed to list stores")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stores); err != nil {
			logger.WithError(err).Error("stores: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// CreateStore cadastra uma nova loja no backend de comércio
func CreateStore(service storefront.Storefronter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateStoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		store, err := service.CreateStore(&req)
		if err != nil {
			handleStorefrontError(w, r, err)
			return
		}

		logger.WithField("store_id", store.Id).Info("stores: store created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(store)
	})
}

// AttachProductToStore vincula um produto do catálogo a uma loja
func AttachProductToStore(service storefront.Storefronter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		storeID := params.ByName("id")
		productID := params.ByName("product_id")

		if storeID == "" || productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja e do produto são obrigatórios", nil)
			return
		}

		if err := service.AttachProductToStore(storeID, productID); err != nil {
			handleStorefrontError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"store_id":   storeID,
			"product_id": productID,
		}).Info("stores: product attached to store")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":    "Produto vinculado à loja com sucesso",
			"store_id":   storeID,
			"product_id": productID,
		})
	})
}

// AttachBundleToStore vincula um bundle do catálogo a uma loja
func AttachBundleToStore(service storefront.Storefronter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		storeID := params.ByName("id")
		bundleID := params.ByName("bundle_id")

		if storeID == "" || bundleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja e do bundle são obrigatórios", nil)
			return
		}

		if err := service.AttachBundleToStore(storeID, bundleID); err != nil {
			handleStorefrontError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"store_id":  storeID,
			"bundle_id": bundleID,
		}).Info("stores: bundle attached to store")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":   "Bundle vinculado à loja com sucesso",
			"store_id":  storeID,
			"bundle_id": bundleID,
		})
	})
}

func handleStorefrontError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var validationErr *storefront.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, storefront.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Loja não encontrada", nil)

	case errors.Is(err, storefront.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", nil)

	case errors.Is(err, storefront.ErrBundleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Bundle não encontrado", nil)

	default:
		logger.WithError(err).Error("stores: operation failed")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao processar operação de loja", nil)
	}
}
