package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/catalog"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

// ListCategories retorna todas as categorias do catálogo
func ListCategories(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		categories, err := service.ListCategories()
		if err != nil {
			logger.WithError(err).Error("catalog: failed to list categories")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar categorias", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(categories); err != nil {
			logger.WithError(err).Error("catalog: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// CreateCategory cadastra uma nova categoria
func CreateCategory(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		category, err := service.CreateCategory(&req)
		if err != nil {
			handleCatalogError(w, r, err)
			return
		}

		logger.WithField("category_id", category.Id).Info("catalog: category created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(category)
	})
}

// AssignProductToCategory vincula um produto existente a uma categoria
func AssignProductToCategory(service catalog.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		categoryID := params.ByName("id")
		productID := params.ByName("product_id")

		if categoryID == "" || productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da categoria e do produto são obrigatórios", nil)
			return
		}

		if err := service.AssignProductToCategory(categoryID, productID); err != nil {
			handleCatalogError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"category_id": categoryID,
			"product_id":  productID,
		}).Info("catalog: product assigned to category")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":     "Produto vinculado à categoria com sucesso",
			"category_id": categoryID,
			"product_id":  productID,
		})
	})
}
