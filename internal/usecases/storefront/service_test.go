package storefront

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	commercemocks "github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCreateStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}

	t.Run("Payload válido - deve criar a loja", func(t *testing.T) {
		req := &domain.CreateStoreRequest{
			Name:      "Loja Centro",
			Provinces: "São Paulo",
			Cities:    "São Paulo",
			Districts: "Sé",
			Latitude:  -23.55,
			Longitude: -46.63,
		}

		mockIntegrator.EXPECT().
			CreateStore(req).
			Return(&domain.Store{Id: "store-1", Name: "Loja Centro"}, nil)

		store, err := service.CreateStore(req)

		assert.NoError(t, err)
		assert.Equal(t, "store-1", store.Id)
	})

	t.Run("Campos obrigatórios ausentes - deve falhar na validação", func(t *testing.T) {
		req := &domain.CreateStoreRequest{Name: "Loja Sem Endereço"}

		store, err := service.CreateStore(req)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Nil(t, store)
	})

	t.Run("Latitude fora do intervalo - deve falhar na validação", func(t *testing.T) {
		req := &domain.CreateStoreRequest{
			Name:      "Loja Polo Norte",
			Provinces: "A",
			Cities:    "B",
			Districts: "C",
			Latitude:  91,
		}

		store, err := service.CreateStore(req)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Nil(t, store)
	})
}

func TestAttachProductToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}

	stores := []domain.Store{{Id: "store-1", Name: "Loja Centro"}}
	products := []domain.Product{{Id: "prod-1", Name: "Café Especial"}}

	t.Run("Loja e produto existentes - deve vincular", func(t *testing.T) {
		mockIntegrator.EXPECT().ListStores().Return(stores, nil)
		mockIntegrator.EXPECT().ListProducts().Return(products, nil)
		mockIntegrator.EXPECT().AttachProductToStore("store-1", "prod-1").Return(nil)

		err := service.AttachProductToStore("store-1", "prod-1")

		assert.NoError(t, err)
	})

	t.Run("Loja inexistente - deve falhar antes de listar produtos", func(t *testing.T) {
		mockIntegrator.EXPECT().ListStores().Return(stores, nil)

		err := service.AttachProductToStore("store-ghost", "prod-1")

		assert.ErrorIs(t, err, ErrStoreNotFound)
	})

	t.Run("Produto inexistente", func(t *testing.T) {
		mockIntegrator.EXPECT().ListStores().Return(stores, nil)
		mockIntegrator.EXPECT().ListProducts().Return(products, nil)

		err := service.AttachProductToStore("store-1", "prod-ghost")

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestAttachBundleToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}

	stores := []domain.Store{{Id: "store-1", Name: "Loja Centro"}}
	bundles := []domain.Bundle{{Id: "bun-1", Name: "Kit Café da Manhã"}}

	t.Run("Loja e bundle existentes - deve vincular", func(t *testing.T) {
		mockIntegrator.EXPECT().ListStores().Return(stores, nil)
		mockIntegrator.EXPECT().ListBundles().Return(bundles, nil)
		mockIntegrator.EXPECT().AttachBundleToStore("store-1", "bun-1").Return(nil)

		err := service.AttachBundleToStore("store-1", "bun-1")

		assert.NoError(t, err)
	})

	t.Run("Bundle inexistente", func(t *testing.T) {
		mockIntegrator.EXPECT().ListStores().Return(stores, nil)
		mockIntegrator.EXPECT().ListBundles().Return(bundles, nil)

		err := service.AttachBundleToStore("store-1", "bun-ghost")

		assert.ErrorIs(t, err, ErrBundleNotFound)
	})
}
