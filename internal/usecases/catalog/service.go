package catalog

import (
	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// Cataloger define as operações de catálogo: produtos, bundles e categorias.
// Os payloads de escrita são validados aqui, na borda do serviço, antes de
// chegar ao upstream.
type Cataloger interface {
	ListProducts() ([]domain.Product, error)
	CreateProduct(req *domain.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(productID string) error

	ListBundles() ([]domain.Bundle, error)
	CreateBundle(req *domain.CreateBundleRequest) (*domain.Bundle, error)

	ListCategories() ([]domain.Category, error)
	CreateCategory(req *domain.CreateCategoryRequest) (*domain.Category, error)
	AssignProductToCategory(categoryID, productID string) error
}

type Service struct {
	commerceService commerce.CommerceIntegrator
	validate        *validator.Validate
}

// NewService cria uma nova instância do serviço de catálogo
func NewService(commerceService commerce.CommerceIntegrator) Cataloger {
	return &Service{
		commerceService: commerceService,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) ListProducts() ([]domain.Product, error) {
	return s.commerceService.ListProducts()
}

func (s *Service) CreateProduct(req *domain.CreateProductRequest) (*domain.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Err: err}
	}
	return s.commerceService.CreateProduct(req)
}

func (s *Service) UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Err: err}
	}

	if err := s.ensureProductExists(req.Id); err != nil {
		return nil, err
	}

	return s.commerceService.UpdateProduct(req)
}

func (s *Service) DeleteProduct(productID string) error {
	if err := s.ensureProductExists(productID); err != nil {
		return err
	}
	return s.commerceService.DeleteProduct(productID)
}

func (s *Service) ListBundles() ([]domain.Bundle, error) {
	return s.commerceService.ListBundles()
}

func (s *Service) CreateBundle(req *domain.CreateBundleRequest) (*domain.Bundle, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Err: err}
	}

	// Todos os produtos do bundle devem existir no catálogo
	products, err := s.commerceService.ListProducts()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(products))
	for _, product := range products {
		known[product.Id] = true
	}

	for _, item := range req.Items {
		if !known[item.ProductId] {
			return nil, ErrProductNotFound
		}
	}

	return s.commerceService.CreateBundle(req)
}

func (s *Service) ListCategories() ([]domain.Category, error) {
	return s.commerceService.ListCategories()
}

func (s *Service) CreateCategory(req *domain.CreateCategoryRequest) (*domain.Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Err: err}
	}
	return s.commerceService.CreateCategory(req)
}

func (s *Service) AssignProductToCategory(categoryID, productID string) error {
	if err := s.ensureProductExists(productID); err != nil {
		return err
	}

	categories, err := s.commerceService.ListCategories()
	if err != nil {
		return err
	}

	for _, category := range categories {
		if category.Id == categoryID {
			return s.commerceService.AssignProductToCategory(categoryID, productID)
		}
	}

	return ErrCategoryNotFound
}

func (s *Service) ensureProductExists(productID string) error {
	products, err := s.commerceService.ListProducts()
	if err != nil {
		return err
	}

	for _, product := range products {
		if product.Id == productID {
			return nil
		}
	}

	return ErrProductNotFound
}
