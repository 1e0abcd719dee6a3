// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strings"
	"time"
)

// TransactionStatus representa o estado de uma transação no seu ciclo de vida
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "Pending"
	StatusProcessing TransactionStatus = "Processing"
	StatusShipped    TransactionStatus = "Shipped"
	StatusCompleted  TransactionStatus = "Completed"
	StatusCancelled  TransactionStatus = "Cancelled"
)

// transições permitidas; Completed e Cancelled são estados terminais
var statusTransitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// ParseTransactionStatus converte uma string em TransactionStatus, ignorando maiúsculas/minúsculas
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	for status := range statusTransitions {
		if strings.EqualFold(string(status), s) {
			return status, nil
		}
	}
	return "", fmt.Errorf("status de transação inválido: %q", s)
}

// IsValid verifica se o status pertence ao conjunto conhecido
func (s TransactionStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsTerminal indica se o status não admite mais transições
func (s TransactionStatus) IsTerminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo verifica se a transição de status é permitida
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ItemType identifica se o item de uma transação referencia um produto ou um bundle
type ItemType string

const (
	ItemTypeProduct ItemType = "Product"
	ItemTypeBundle  ItemType = "Bundle"
)

// TransactionItem é uma linha de uma transação. O ItemType determina qual
// das referências (ProductId ou BundleId) está preenchida; exatamente uma delas
// deve estar presente.
type TransactionItem struct {
	Id         string   `json:"Id"`
	ItemType   ItemType `json:"ItemType"`
	ProductId  *string  `json:"ProductId"`
	BundleId   *string  `json:"BundleId"`
	Quantity   int      `json:"Quantity"`
	UnitPrice  float64  `json:"UnitPrice"`
	TotalPrice float64  `json:"TotalPrice"`
}

// Validate verifica o invariante de referência mutuamente exclusiva do item
func (i *TransactionItem) Validate() error {
	switch i.ItemType {
	case ItemTypeProduct:
		if i.ProductId == nil || *i.ProductId == "" {
			return fmt.Errorf("item do tipo Product sem ProductId")
		}
		if i.BundleId != nil && *i.BundleId != "" {
			return fmt.Errorf("item do tipo Product com BundleId preenchido")
		}
	case ItemTypeBundle:
		if i.BundleId == nil || *i.BundleId == "" {
			return fmt.Errorf("item do tipo Bundle sem BundleId")
		}
		if i.ProductId != nil && *i.ProductId != "" {
			return fmt.Errorf("item do tipo Bundle com ProductId preenchido")
		}
	default:
		return fmt.Errorf("tipo de item desconhecido: %q", i.ItemType)
	}
	return nil
}

// StatusHistory registra uma mudança de status da transação
type StatusHistory struct {
	Status    TransactionStatus `json:"Status"`
	ChangedAt time.Time         `json:"ChangedAt"`
}

// Transaction é uma venda registrada no backend de comércio. As tags JSON
// seguem o formato PascalCase usado pela API upstream.
type Transaction struct {
	Id              string            `json:"Id"`
	InvoiceNumber   string            `json:"InvoiceNumber"`
	StoreId         string            `json:"StoreId"`
	DriverId        *string           `json:"DriverId"`
	PaymentMethod   string            `json:"PaymentMethod"`
	DeliveryMethod  string            `json:"DeliveryMethod"`
	TotalAmount     float64           `json:"TotalAmount"`
	Status          TransactionStatus `json:"Status"`
	TransactionDate time.Time         `json:"TransactionDate"`
	Items           []TransactionItem `json:"Items"`
	StatusHistories []StatusHistory   `json:"StatusHistories"`
}
