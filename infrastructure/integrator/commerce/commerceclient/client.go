package commerceclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

const requestTimeout = 30 * time.Second

// Client é o contrato de acesso à API upstream de comércio. Todas as chamadas
// recebem a sessão explicitamente; não há token global escondido.
type Client interface {
	Login(email, password string) (*Session, error)

	ListTransactions(session *Session) ([]domain.Transaction, error)
	UpdateTransactionStatus(session *Session, transactionID string, status domain.TransactionStatus) error
	AssignDriver(session *Session, transactionID, driverID string) error
	DeleteTransaction(session *Session, transactionID string) error

	ListStores(session *Session) ([]domain.Store, error)
	CreateStore(session *Session, req *domain.CreateStoreRequest) (*domain.Store, error)
	AttachProductToStore(session *Session, storeID, productID string) error
	AttachBundleToStore(session *Session, storeID, bundleID string) error

	ListProducts(session *Session) ([]domain.Product, error)
	CreateProduct(session *Session, req *domain.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(session *Session, req *domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(session *Session, productID string) error

	ListBundles(session *Session) ([]domain.Bundle, error)
	CreateBundle(session *Session, req *domain.CreateBundleRequest) (*domain.Bundle, error)

	ListCategories(session *Session) ([]domain.Category, error)
	CreateCategory(session *Session, req *domain.CreateCategoryRequest) (*domain.Category, error)
	AssignProductToCategory(session *Session, categoryID, productID string) error

	ListDrivers(session *Session) ([]domain.Driver, error)
	ListCustomers(session *Session) ([]domain.Customer, error)
	GetCustomer(session *Session, customerID string) (*domain.Customer, error)

	ListChatMessages(session *Session, userID string) ([]domain.ChatMessage, error)
	SendChatMessage(session *Session, req *domain.SendChatMessageRequest) (*domain.ChatMessage, error)
}

type CommerceClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API de comércio
func NewClient(cfg *config.Config) Client {
	return &CommerceClient{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		config: cfg,
	}
}

// StatusError representa uma resposta não-2xx da API upstream
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

// IsUnauthorized indica resposta 401 da API upstream (sessão inválida/expirada)
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// endpoint monta a URL completa de um caminho da API upstream
func (c *CommerceClient) endpoint(subPath string, query url.Values) (string, error) {
	endpoint, err := url.Parse(c.config.Commerce.URL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, subPath)

	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}

// doJSON executa uma requisição autenticada e decodifica a resposta JSON em
// out (quando out não é nil). Corpos de requisição são serializados como JSON.
func (c *CommerceClient) doJSON(session *Session, method, subPath string, query url.Values, body any, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	endpoint, err := c.endpoint(subPath, query)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != nil {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(data),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
