package storefront

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// Storefronter define as operações administrativas sobre lojas
type Storefronter interface {
	ListStores() ([]domain.Store, error)
	CreateStore(req *domain.CreateStoreRequest) (*domain.Store, error)

	// AttachProductToStore vincula um produto existente do catálogo à loja
	AttachProductToStore(storeID, productID string) error

	// AttachBundleToStore vincula um bundle existente do catálogo à loja
	AttachBundleToStore(storeID, bundleID string) error
}

type Service struct {
	commerceService commerce.CommerceIntegrator
	validate        *validator.Validate
}

// NewService cria uma nova instância do serviço de lojas
func NewService(commerceService commerce.CommerceIntegrator) Storefronter {
	return &Service{
		commerceService: commerceService,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) ListStores() ([]domain.Store, error) {
	return s.commerceService.ListStores()
}

func (s *Service) CreateStore(req *domain.CreateStoreRequest) (*domain.Store, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Err: err}
	}

	store, err := s.commerceService.CreateStore(req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"store_id": store.Id,
		"name":     store.Name,
	}).Info("Loja criada")

	return store, nil
}

func (s *Service) AttachProductToStore(storeID, productID string) error {
	if err := s.ensureStoreExists(storeID); err != nil {
		return err
	}

	products, err := s.commerceService.ListProducts()
	if err != nil {
		return err
	}

	found := false
	for _, product := range products {
		if product.Id == productID {
			found = true
			break
		}
	}
	if !found {
		return ErrProductNotFound
	}

	return s.commerceService.AttachProductToStore(storeID, productID)
}

func (s *Service) AttachBundleToStore(storeID, bundleID string) error {
	if err := s.ensureStoreExists(storeID); err != nil {
		return err
	}

	bundles, err := s.commerceService.ListBundles()
	if err != nil {
		return err
	}

	found := false
	for _, bundle := range bundles {
		if bundle.Id == bundleID {
			found = true
			break
		}
	}
	if !found {
		return ErrBundleNotFound
	}

	return s.commerceService.AttachBundleToStore(storeID, bundleID)
}

func (s *Service) ensureStoreExists(storeID string) error {
	stores, err := s.commerceService.ListStores()
	if err != nil {
		return err
	}

	for _, store := range stores {
		if store.Id == storeID {
			return nil
		}
	}

	return ErrStoreNotFound
}
