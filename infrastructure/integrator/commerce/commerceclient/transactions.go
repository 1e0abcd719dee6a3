package commerceclient

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// ListTransactions busca a lista completa de transações do tenant, com itens e
// histórico de status aninhados. O upstream não pagina esta listagem.
func (c *CommerceClient) ListTransactions(session *Session) ([]domain.Transaction, error) {
	var response []domain.Transaction

	if err := c.doJSON(session, http.MethodGet, "/Transactions", nil, nil, &response); err != nil {
		return nil, err
	}

	// O invariante de referência dos itens (ProductId ou BundleId, nunca ambos)
	// é verificado na borda, rejeitando o lote quando o payload está malformado
	for ti := range response {
		for ii := range response[ti].Items {
			if err := response[ti].Items[ii].Validate(); err != nil {
				return nil, fmt.Errorf("transação %s com item inválido: %w", response[ti].Id, err)
			}
		}
	}

	return response, nil
}

type updateStatusRequest struct {
	Status domain.TransactionStatus `json:"Status"`
}

// UpdateTransactionStatus altera o status de uma transação no upstream
func (c *CommerceClient) UpdateTransactionStatus(session *Session, transactionID string, status domain.TransactionStatus) error {
	subPath := fmt.Sprintf("/Transactions/%s/status", transactionID)
	return c.doJSON(session, http.MethodPut, subPath, nil, updateStatusRequest{Status: status}, nil)
}

type assignDriverRequest struct {
	TransactionId string `json:"TransactionId"`
	DriverId      string `json:"DriverId"`
}

// AssignDriver vincula um entregador a uma transação
func (c *CommerceClient) AssignDriver(session *Session, transactionID, driverID string) error {
	return c.doJSON(session, http.MethodPut, "/Transactions/assign-driver", nil, assignDriverRequest{
		TransactionId: transactionID,
		DriverId:      driverID,
	}, nil)
}

// DeleteTransaction remove uma transação no upstream
func (c *CommerceClient) DeleteTransaction(session *Session, transactionID string) error {
	subPath := fmt.Sprintf("/Transactions/%s", transactionID)
	return c.doJSON(session, http.MethodDelete, subPath, nil, nil, nil)
}
