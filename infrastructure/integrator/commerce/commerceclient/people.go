package commerceclient

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

type driverListResponse struct {
	Data []domain.Driver `json:"Data"`
}

// ListDrivers busca os entregadores disponíveis. O upstream envelopa esta
// listagem em um campo Data.
func (c *CommerceClient) ListDrivers(session *Session) ([]domain.Driver, error) {
	var response driverListResponse
	if err := c.doJSON(session, http.MethodGet, "/Drivers", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// ListCustomers busca os perfis de todos os clientes
func (c *CommerceClient) ListCustomers(session *Session) ([]domain.Customer, error) {
	var response []domain.Customer
	if err := c.doJSON(session, http.MethodGet, "/Customer/profile", nil, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetCustomer busca o perfil de um cliente específico
func (c *CommerceClient) GetCustomer(session *Session, customerID string) (*domain.Customer, error) {
	var response domain.Customer
	subPath := fmt.Sprintf("/Customer/profile/%s", customerID)
	if err := c.doJSON(session, http.MethodGet, subPath, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
