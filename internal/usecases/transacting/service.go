package transacting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// Transactor define as operações administrativas sobre transações
type Transactor interface {
	ListTransactions() ([]domain.Transaction, error)

	// UpdateStatus valida o novo status contra o ciclo de vida da transação
	// antes de propagar a mudança ao upstream
	UpdateStatus(transactionID, status string) (domain.TransactionStatus, error)

	// AssignDriver vincula um entregador existente a uma transação
	AssignDriver(transactionID, driverID string) error

	DeleteTransaction(transactionID string) error

	ListDrivers() ([]domain.Driver, error)
}

type Service struct {
	commerceService commerce.CommerceIntegrator
}

// NewService cria uma nova instância do serviço de transações
func NewService(commerceService commerce.CommerceIntegrator) Transactor {
	return &Service{
		commerceService: commerceService,
	}
}

func (s *Service) ListTransactions() ([]domain.Transaction, error) {
	return s.commerceService.ListTransactions()
}

func (s *Service) UpdateStatus(transactionID, status string) (domain.TransactionStatus, error) {
	newStatus, err := domain.ParseTransactionStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}

	transaction, err := s.findTransaction(transactionID)
	if err != nil {
		return "", err
	}

	if !transaction.Status.CanTransitionTo(newStatus) {
		return "", &TransitionError{From: transaction.Status, To: newStatus}
	}

	if err := s.commerceService.UpdateTransactionStatus(transactionID, newStatus); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"transaction_id": transactionID,
		"from":           transaction.Status,
		"to":             newStatus,
	}).Info("Status da transação atualizado")

	return newStatus, nil
}

func (s *Service) AssignDriver(transactionID, driverID string) error {
	if _, err := s.findTransaction(transactionID); err != nil {
		return err
	}

	drivers, err := s.commerceService.ListDrivers()
	if err != nil {
		return err
	}

	found := false
	for _, driver := range drivers {
		if driver.Id == driverID {
			found = true
			break
		}
	}
	if !found {
		return ErrDriverNotFound
	}

	return s.commerceService.AssignDriver(transactionID, driverID)
}

func (s *Service) DeleteTransaction(transactionID string) error {
	if _, err := s.findTransaction(transactionID); err != nil {
		return err
	}

	return s.commerceService.DeleteTransaction(transactionID)
}

func (s *Service) ListDrivers() ([]domain.Driver, error) {
	return s.commerceService.ListDrivers()
}

// findTransaction localiza uma transação na listagem do upstream; o upstream
// não expõe busca por id
func (s *Service) findTransaction(transactionID string) (*domain.Transaction, error) {
	transactions, err := s.commerceService.ListTransactions()
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		if transactions[i].Id == transactionID {
			return &transactions[i], nil
		}
	}

	return nil, ErrTransactionNotFound
}
