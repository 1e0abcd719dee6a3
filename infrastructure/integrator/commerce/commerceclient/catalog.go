package commerceclient

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// ListStores busca todas as lojas cadastradas
func (c *CommerceClient) ListStores(session *Session) ([]domain.Store, error) {
	var response []domain.Store
	if err := c.doJSON(session, http.MethodGet, "/Store", nil, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// CreateStore cria uma loja no upstream
func (c *CommerceClient) CreateStore(session *Session, req *domain.CreateStoreRequest) (*domain.Store, error) {
	var response domain.Store
	if err := c.doJSON(session, http.MethodPost, "/Store", nil, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// AttachProductToStore associa um produto existente a uma loja
func (c *CommerceClient) AttachProductToStore(session *Session, storeID, productID string) error {
	subPath := fmt.Sprintf("/Store/%s/products/%s", storeID, productID)
	return c.doJSON(session, http.MethodPost, subPath, nil, nil, nil)
}

// AttachBundleToStore associa um bundle existente a uma loja
func (c *CommerceClient) AttachBundleToStore(session *Session, storeID, bundleID string) error {
	subPath := fmt.Sprintf("/Store/%s/bundles/%s", storeID, bundleID)
	return c.doJSON(session, http.MethodPost, subPath, nil, nil, nil)
}

// ListProducts busca o catálogo completo de produtos
func (c *CommerceClient) ListProducts(session *Session) ([]domain.Product, error) {
	var response []domain.Product
	if err := c.doJSON(session, http.MethodGet, "/Products", nil, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// CreateProduct cria um produto no upstream
func (c *CommerceClient) CreateProduct(session *Session, req *domain.CreateProductRequest) (*domain.Product, error) {
	var response domain.Product
	if err := c.doJSON(session, http.MethodPost, "/Products", nil, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateProduct atualiza um produto existente; campos nulos no request mantêm
// o valor atual
func (c *CommerceClient) UpdateProduct(session *Session, req *domain.UpdateProductRequest) (*domain.Product, error) {
	var response domain.Product
	subPath := fmt.Sprintf("/Products/%s", req.Id)
	if err := c.doJSON(session, http.MethodPut, subPath, nil, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteProduct remove um produto do catálogo
func (c *CommerceClient) DeleteProduct(session *Session, productID string) error {
	subPath := fmt.Sprintf("/Products/%s", productID)
	return c.doJSON(session, http.MethodDelete, subPath, nil, nil, nil)
}

// ListBundles busca todos os bundles de desconto
func (c *CommerceClient) ListBundles(session *Session) ([]domain.Bundle, error) {
	var response []domain.Bundle
	if err := c.doJSON(session, http.MethodGet, "/Bundle", nil, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// CreateBundle cria um bundle de desconto no upstream
func (c *CommerceClient) CreateBundle(session *Session, req *domain.CreateBundleRequest) (*domain.Bundle, error) {
	var response domain.Bundle
	if err := c.doJSON(session, http.MethodPost, "/Bundle", nil, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ListCategories busca todas as categorias do catálogo
func (c *CommerceClient) ListCategories(session *Session) ([]domain.Category, error) {
	var response []domain.Category
	if err := c.doJSON(session, http.MethodGet, "/Categories", nil, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// CreateCategory cria uma categoria no upstream
func (c *CommerceClient) CreateCategory(session *Session, req *domain.CreateCategoryRequest) (*domain.Category, error) {
	var response domain.Category
	if err := c.doJSON(session, http.MethodPost, "/Categories", nil, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// AssignProductToCategory associa um produto a uma categoria
func (c *CommerceClient) AssignProductToCategory(session *Session, categoryID, productID string) error {
	subPath := fmt.Sprintf("/Categories/%s/products/%s", categoryID, productID)
	return c.doJSON(session, http.MethodPost, subPath, nil, nil, nil)
}
