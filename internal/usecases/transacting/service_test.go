package transacting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	commercemocks "github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
	}

	transactions := []domain.Transaction{
		{
			Id:              "tx-pending",
			StoreId:         "store-1",
			Status:          domain.StatusPending,
			TransactionDate: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Id:              "tx-completed",
			StoreId:         "store-1",
			Status:          domain.StatusCompleted,
			TransactionDate: time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	testCases := []struct {
		name          string
		transactionID string
		status        string
		setup         func()
		validate      func(t *testing.T, newStatus domain.TransactionStatus, err error)
	}{
		{
			name:          "Transição válida - Pending para Processing",
			transactionID: "tx-pending",
			status:        "Processing",
			setup: func() {
				mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)
				mockIntegrator.EXPECT().
					UpdateTransactionStatus("tx-pending", domain.StatusProcessing).
					Return(nil)
			},
			validate: func(t *testing.T, newStatus domain.TransactionStatus, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusProcessing, newStatus)
			},
		},
		{
			name:          "Status aceito sem diferenciar maiúsculas de minúsculas",
			transactionID: "tx-pending",
			status:        "cancelled",
			setup: func() {
				mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)
				mockIntegrator.EXPECT().
					UpdateTransactionStatus("tx-pending", domain.StatusCancelled).
					Return(nil)
			},
			validate: func(t *testing.T, newStatus domain.TransactionStatus, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusCancelled, newStatus)
			},
		},
		{
			name:          "Transição inválida - Pending direto para Completed",
			transactionID: "tx-pending",
			status:        "Completed",
			setup: func() {
				mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)
			},
			validate: func(t *testing.T, newStatus domain.TransactionStatus, err error) {
				var transitionErr *TransitionError
				assert.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, domain.StatusPending, transitionErr.From)
				assert.Equal(t, domain.StatusCompleted, transitionErr.To)
			},
		},
		{
			name:          "Estado terminal - Completed não admite nenhuma transição",
			transactionID: "tx-completed",
			status:        "Cancelled",
			setup: func() {
				mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)
			},
			validate: func(t *testing.T, newStatus domain.TransactionStatus, err error) {
				var transitionErr *TransitionError
				assert.ErrorAs(t, err, &transitionErr)
			},
		},
		{
			name:          "Status desconhecido - deve falhar antes de buscar a transação",
			transactionID: "tx-pending",
			status:        "Teleported",
			setup:         func() {},
			validate: func(t *testing.T, newStatus domain.TransactionStatus, err error) {
				assert.ErrorIs(t, err, ErrInvalidStatus)
			},
		},
		{
			name:          "Transação inexistente",
			transactionID: "tx-ghost",
			status:        "Processing",
			setup: func() {
				mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)
			},
			validate: func(t *testing.T, newStatus domain.TransactionStatus, err error) {
				assert.ErrorIs(t, err, ErrTransactionNotFound)
			},
		},
		{
			name:          "Falha no upstream ao aplicar a mudança",
			transactionID: "tx-pending",
			status:        "Processing",
			setup: func() {
				mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)
				mockIntegrator.EXPECT().
					UpdateTransactionStatus("tx-pending", domain.StatusProcessing).
					Return(errors.New("upstream indisponível"))
			},
			validate: func(t *testing.T, newStatus domain.TransactionStatus, err error) {
				assert.Error(t, err)
				assert.Empty(t, newStatus)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			newStatus, err := service.UpdateStatus(tc.transactionID, tc.status)
			tc.validate(t, newStatus, err)
		})
	}
}

func TestAssignDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
	}

	transactions := []domain.Transaction{
		{Id: "tx-1", StoreId: "store-1", Status: domain.StatusProcessing},
	}
	drivers := []domain.Driver{
		{Id: "driver-1", FullName: "João Entregas"},
		{Id: "driver-2", FullName: "Maria Rotas"},
	}

	t.Run("Entregador existente - deve vincular na transação", func(t *testing.T) {
		mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)
		mockIntegrator.EXPECT().ListDrivers().Return(drivers, nil)
		mockIntegrator.EXPECT().AssignDriver("tx-1", "driver-2").Return(nil)

		err := service.AssignDriver("tx-1", "driver-2")

		assert.NoError(t, err)
	})

	t.Run("Entregador inexistente - deve falhar sem chamar o upstream", func(t *testing.T) {
		mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)
		mockIntegrator.EXPECT().ListDrivers().Return(drivers, nil)

		err := service.AssignDriver("tx-1", "driver-ghost")

		assert.ErrorIs(t, err, ErrDriverNotFound)
	})

	t.Run("Transação inexistente - deve falhar antes de listar entregadores", func(t *testing.T) {
		mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)

		err := service.AssignDriver("tx-ghost", "driver-1")

		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		commerceService: mockIntegrator,
	}

	transactions := []domain.Transaction{
		{Id: "tx-1", StoreId: "store-1", Status: domain.StatusCancelled},
	}

	t.Run("Transação existente - deve remover no upstream", func(t *testing.T) {
		mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)
		mockIntegrator.EXPECT().DeleteTransaction("tx-1").Return(nil)

		err := service.DeleteTransaction("tx-1")

		assert.NoError(t, err)
	})

	t.Run("Transação inexistente", func(t *testing.T) {
		mockIntegrator.EXPECT().ListTransactions().Return(transactions, nil)

		err := service.DeleteTransaction("tx-ghost")

		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}
