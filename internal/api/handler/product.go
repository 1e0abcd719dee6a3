package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/catalog"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

// ListProducts retorna todos os produtos do catálogo
func ListProducts(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.ListProducts()
		if err != nil {
			logger.WithError(err).Error("catalog: failed to list products")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("catalog: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// CreateProduct cadastra um novo produto no catálogo
func CreateProduct(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		product, err := service.CreateProduct(&req)
		if err != nil {
			handleCatalogError(w, r, err)
			return
		}

		logger.WithField("product_id", product.Id).Info("catalog: product created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(product)
	})
}

// UpdateProduct atualiza um produto existente do catálogo
func UpdateProduct(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.Id = id

		product, err := service.UpdateProduct(&req)
		if err != nil {
			handleCatalogError(w, r, err)
			return
		}

		logger.WithField("product_id", id).Info("catalog: product updated")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(product)
	})
}

// DeleteProduct remove um produto do catálogo
func DeleteProduct(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		if err := service.DeleteProduct(id); err != nil {
			handleCatalogError(w, r, err)
			return
		}

		logger.WithField("product_id", id).Info("catalog: product deleted")

		w.WriteHeader(http.StatusNoContent)
	})
}

func handleCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var validationErr *catalog.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", nil)

	case errors.Is(err, catalog.ErrCategoryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Categoria não encontrada", nil)

	case errors.Is(err, catalog.ErrBundleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Bundle não encontrado", nil)

	default:
		logger.WithError(err).Error("catalog: operation failed")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao processar operação de catálogo", nil)
	}
}
