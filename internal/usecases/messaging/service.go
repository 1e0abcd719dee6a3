package messaging

import (
	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// Messenger define as operações de atendimento: perfis de clientes e o chat
// entre o back-office e os usuários do comércio
type Messenger interface {
	ListCustomers() ([]domain.Customer, error)
	GetCustomer(customerID string) (*domain.Customer, error)

	ListMessages(userID string) ([]domain.ChatMessage, error)
	SendMessage(req *domain.SendChatMessageRequest) (*domain.ChatMessage, error)
}

type Service struct {
	commerceService commerce.CommerceIntegrator
	validate        *validator.Validate
}

// NewService cria uma nova instância do serviço de atendimento
func NewService(commerceService commerce.CommerceIntegrator) Messenger {
	return &Service{
		commerceService: commerceService,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) ListCustomers() ([]domain.Customer, error) {
	return s.commerceService.ListCustomers()
}

func (s *Service) GetCustomer(customerID string) (*domain.Customer, error) {
	customer, err := s.commerceService.GetCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	return customer, nil
}

func (s *Service) ListMessages(userID string) ([]domain.ChatMessage, error) {
	return s.commerceService.ListChatMessages(userID)
}

func (s *Service) SendMessage(req *domain.SendChatMessageRequest) (*domain.ChatMessage, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Err: err}
	}

	return s.commerceService.SendChatMessage(req)
}
