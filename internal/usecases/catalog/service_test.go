package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	commercemocks "github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}

	t.Run("Payload válido - deve criar o produto no upstream", func(t *testing.T) {
		req := &domain.CreateProductRequest{
			Name:  "Café Especial",
			Price: 24.90,
			Stock: 100,
		}

		mockIntegrator.EXPECT().
			CreateProduct(req).
			Return(&domain.Product{Id: "prod-1", Name: "Café Especial"}, nil)

		product, err := service.CreateProduct(req)

		assert.NoError(t, err)
		assert.Equal(t, "prod-1", product.Id)
	})

	t.Run("Nome ausente - deve falhar na validação sem chamar o upstream", func(t *testing.T) {
		req := &domain.CreateProductRequest{Price: 10}

		product, err := service.CreateProduct(req)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Nil(t, product)
	})

	t.Run("Preço negativo - deve falhar na validação", func(t *testing.T) {
		req := &domain.CreateProductRequest{Name: "Café", Price: -1}

		product, err := service.CreateProduct(req)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Nil(t, product)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}

	products := []domain.Product{{Id: "prod-1", Name: "Café Especial"}}

	t.Run("Produto existente - deve aplicar a atualização", func(t *testing.T) {
		newName := "Café Gourmet"
		req := &domain.UpdateProductRequest{Id: "prod-1", Name: &newName}

		mockIntegrator.EXPECT().ListProducts().Return(products, nil)
		mockIntegrator.EXPECT().
			UpdateProduct(req).
			Return(&domain.Product{Id: "prod-1", Name: newName}, nil)

		product, err := service.UpdateProduct(req)

		assert.NoError(t, err)
		assert.Equal(t, newName, product.Name)
	})

	t.Run("Produto inexistente", func(t *testing.T) {
		req := &domain.UpdateProductRequest{Id: "prod-ghost"}

		mockIntegrator.EXPECT().ListProducts().Return(products, nil)

		product, err := service.UpdateProduct(req)

		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Nil(t, product)
	})
}

func TestCreateBundle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}

	products := []domain.Product{
		{Id: "prod-1", Name: "Café Especial"},
		{Id: "prod-2", Name: "Filtro de Papel"},
	}

	validRequest := func() *domain.CreateBundleRequest {
		return &domain.CreateBundleRequest{
			Name:               "Kit Café da Manhã",
			DiscountPercentage: 15,
			StartDate:          time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:            time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
			Items: []domain.BundleItem{
				{ProductId: "prod-1", Quantity: 2},
				{ProductId: "prod-2", Quantity: 1},
			},
		}
	}

	t.Run("Todos os produtos existem - deve criar o bundle", func(t *testing.T) {
		req := validRequest()

		mockIntegrator.EXPECT().ListProducts().Return(products, nil)
		mockIntegrator.EXPECT().
			CreateBundle(req).
			Return(&domain.Bundle{Id: "bun-1", Name: req.Name}, nil)

		bundle, err := service.CreateBundle(req)

		assert.NoError(t, err)
		assert.Equal(t, "bun-1", bundle.Id)
	})

	t.Run("Item referenciando produto inexistente - deve rejeitar o bundle", func(t *testing.T) {
		req := validRequest()
		req.Items = append(req.Items, domain.BundleItem{ProductId: "prod-ghost", Quantity: 1})

		mockIntegrator.EXPECT().ListProducts().Return(products, nil)

		bundle, err := service.CreateBundle(req)

		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Nil(t, bundle)
	})

	t.Run("Bundle sem itens - deve falhar na validação", func(t *testing.T) {
		req := validRequest()
		req.Items = nil

		bundle, err := service.CreateBundle(req)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Nil(t, bundle)
	})

	t.Run("Janela de validade invertida - deve falhar na validação", func(t *testing.T) {
		req := validRequest()
		req.EndDate = req.StartDate.AddDate(0, 0, -1)

		bundle, err := service.CreateBundle(req)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Nil(t, bundle)
	})
}

func TestAssignProductToCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}

	products := []domain.Product{{Id: "prod-1"}}
	categories := []domain.Category{{Id: "cat-1", Name: "Bebidas"}}

	t.Run("Categoria e produto existentes - deve vincular", func(t *testing.T) {
		mockIntegrator.EXPECT().ListProducts().Return(products, nil)
		mockIntegrator.EXPECT().ListCategories().Return(categories, nil)
		mockIntegrator.EXPECT().AssignProductToCategory("cat-1", "prod-1").Return(nil)

		err := service.AssignProductToCategory("cat-1", "prod-1")

		assert.NoError(t, err)
	})

	t.Run("Categoria inexistente", func(t *testing.T) {
		mockIntegrator.EXPECT().ListProducts().Return(products, nil)
		mockIntegrator.EXPECT().ListCategories().Return(categories, nil)

		err := service.AssignProductToCategory("cat-ghost", "prod-1")

		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("Produto inexistente - deve falhar antes de listar categorias", func(t *testing.T) {
		mockIntegrator.EXPECT().ListProducts().Return(products, nil)

		err := service.AssignProductToCategory("cat-1", "prod-ghost")

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Falha ao listar produtos - deve propagar o erro", func(t *testing.T) {
		mockIntegrator.EXPECT().ListProducts().Return(nil, errors.New("upstream indisponível"))

		err := service.AssignProductToCategory("cat-1", "prod-1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrProductNotFound)
	})
}
