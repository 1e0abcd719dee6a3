package commerce

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce/commerceclient"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// DashboardData reúne as quatro listas necessárias para a agregação do
// dashboard. Só é produzida completa: uma falha em qualquer busca descarta o
// conjunto inteiro, para nunca agregar dados parciais.
type DashboardData struct {
	Transactions []domain.Transaction
	Stores       []domain.Store
	Products     []domain.Product
	Bundles      []domain.Bundle
}

// CommerceIntegrator expõe as operações da API upstream já com a sessão
// resolvida pelo gerenciador
type CommerceIntegrator interface {
	FetchDashboardData() (*DashboardData, error)

	ListTransactions() ([]domain.Transaction, error)
	UpdateTransactionStatus(transactionID string, status domain.TransactionStatus) error
	AssignDriver(transactionID, driverID string) error
	DeleteTransaction(transactionID string) error

	ListStores() ([]domain.Store, error)
	CreateStore(req *domain.CreateStoreRequest) (*domain.Store, error)
	AttachProductToStore(storeID, productID string) error
	AttachBundleToStore(storeID, bundleID string) error

	ListProducts() ([]domain.Product, error)
	CreateProduct(req *domain.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(productID string) error

	ListBundles() ([]domain.Bundle, error)
	CreateBundle(req *domain.CreateBundleRequest) (*domain.Bundle, error)

	ListCategories() ([]domain.Category, error)
	CreateCategory(req *domain.CreateCategoryRequest) (*domain.Category, error)
	AssignProductToCategory(categoryID, productID string) error

	ListDrivers() ([]domain.Driver, error)
	ListCustomers() ([]domain.Customer, error)
	GetCustomer(customerID string) (*domain.Customer, error)

	ListChatMessages(userID string) ([]domain.ChatMessage, error)
	SendChatMessage(req *domain.SendChatMessageRequest) (*domain.ChatMessage, error)
}

type CommerceService struct {
	cfg      *config.Config
	Client   commerceclient.Client
	Sessions *commerceclient.SessionManager
}

func New(cfg *config.Config, client commerceclient.Client, sessions *commerceclient.SessionManager) CommerceIntegrator {
	return &CommerceService{
		cfg:      cfg,
		Client:   client,
		Sessions: sessions,
	}
}

// session resolve a sessão atual, invalidando e tentando um novo login quando
// o upstream rejeita o token
func (s *CommerceService) session() (*commerceclient.Session, error) {
	return s.Sessions.EnsureSession()
}

// retryUnauthorized reexecuta a operação uma única vez após renovar a sessão
// quando o upstream responde 401
func (s *CommerceService) retryUnauthorized(op func(session *commerceclient.Session) error) error {
	session, err := s.session()
	if err != nil {
		return err
	}

	err = op(session)
	if err == nil {
		return nil
	}

	var statusErr *commerceclient.StatusError
	if errors.As(err, &statusErr) && statusErr.IsUnauthorized() {
		s.Sessions.Invalidate()

		session, sessionErr := s.session()
		if sessionErr != nil {
			return sessionErr
		}
		return op(session)
	}

	return err
}

// FetchDashboardData busca transações, lojas, produtos e bundles em paralelo e
// só retorna quando as quatro listas resolverem (join, não pipeline)
func (s *CommerceService) FetchDashboardData() (*DashboardData, error) {
	session, err := s.session()
	if err != nil {
		return nil, err
	}

	var (
		transactions []domain.Transaction
		stores       []domain.Store
		products     []domain.Product
		bundles      []domain.Bundle

		transactionsErr error
		storesErr       error
		productsErr     error
		bundlesErr      error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		transactions, transactionsErr = s.Client.ListTransactions(session)
	}()

	go func() {
		defer wg.Done()
		stores, storesErr = s.Client.ListStores(session)
	}()

	go func() {
		defer wg.Done()
		products, productsErr = s.Client.ListProducts(session)
	}()

	go func() {
		defer wg.Done()
		bundles, bundlesErr = s.Client.ListBundles(session)
	}()

	wg.Wait()

	for _, fetchErr := range []error{transactionsErr, storesErr, productsErr, bundlesErr} {
		if fetchErr != nil {
			return nil, fetchErr
		}
	}

	return &DashboardData{
		Transactions: transactions,
		Stores:       stores,
		Products:     products,
		Bundles:      bundles,
	}, nil
}

func (s *CommerceService) ListTransactions() ([]domain.Transaction, error) {
	var result []domain.Transaction
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.ListTransactions(session)
		return opErr
	})
	return result, err
}

func (s *CommerceService) UpdateTransactionStatus(transactionID string, status domain.TransactionStatus) error {
	return s.retryUnauthorized(func(session *commerceclient.Session) error {
		return s.Client.UpdateTransactionStatus(session, transactionID, status)
	})
}

func (s *CommerceService) AssignDriver(transactionID, driverID string) error {
	return s.retryUnauthorized(func(session *commerceclient.Session) error {
		return s.Client.AssignDriver(session, transactionID, driverID)
	})
}

func (s *CommerceService) DeleteTransaction(transactionID string) error {
	return s.retryUnauthorized(func(session *commerceclient.Session) error {
		return s.Client.DeleteTransaction(session, transactionID)
	})
}

func (s *CommerceService) ListStores() ([]domain.Store, error) {
	var result []domain.Store
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.ListStores(session)
		return opErr
	})
	return result, err
}

func (s *CommerceService) CreateStore(req *domain.CreateStoreRequest) (*domain.Store, error) {
	var result *domain.Store
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.CreateStore(session, req)
		return opErr
	})
	return result, err
}

func (s *CommerceService) AttachProductToStore(storeID, productID string) error {
	return s.retryUnauthorized(func(session *commerceclient.Session) error {
		return s.Client.AttachProductToStore(session, storeID, productID)
	})
}

func (s *CommerceService) AttachBundleToStore(storeID, bundleID string) error {
	return s.retryUnauthorized(func(session *commerceclient.Session) error {
		return s.Client.AttachBundleToStore(session, storeID, bundleID)
	})
}

func (s *CommerceService) ListProducts() ([]domain.Product, error) {
	var result []domain.Product
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.ListProducts(session)
		return opErr
	})
	return result, err
}

func (s *CommerceService) CreateProduct(req *domain.CreateProductRequest) (*domain.Product, error) {
	var result *domain.Product
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.CreateProduct(session, req)
		return opErr
	})
	return result, err
}

func (s *CommerceService) UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error) {
	var result *domain.Product
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.UpdateProduct(session, req)
		return opErr
	})
	return result, err
}

func (s *CommerceService) DeleteProduct(productID string) error {
	return s.retryUnauthorized(func(session *commerceclient.Session) error {
		return s.Client.DeleteProduct(session, productID)
	})
}

func (s *CommerceService) ListBundles() ([]domain.Bundle, error) {
	var result []domain.Bundle
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.ListBundles(session)
		return opErr
	})
	return result, err
}

func (s *CommerceService) CreateBundle(req *domain.CreateBundleRequest) (*domain.Bundle, error) {
	var result *domain.Bundle
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.CreateBundle(session, req)
		return opErr
	})
	return result, err
}

func (s *CommerceService) ListCategories() ([]domain.Category, error) {
	var result []domain.Category
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.ListCategories(session)
		return opErr
	})
	return result, err
}

func (s *CommerceService) CreateCategory(req *domain.CreateCategoryRequest) (*domain.Category, error) {
	var result *domain.Category
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.CreateCategory(session, req)
		return opErr
	})
	return result, err
}

func (s *CommerceService) AssignProductToCategory(categoryID, productID string) error {
	return s.retryUnauthorized(func(session *commerceclient.Session) error {
		return s.Client.AssignProductToCategory(session, categoryID, productID)
	})
}

func (s *CommerceService) ListDrivers() ([]domain.Driver, error) {
	var result []domain.Driver
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.ListDrivers(session)
		return opErr
	})
	return result, err
}

func (s *CommerceService) ListCustomers() ([]domain.Customer, error) {
	var result []domain.Customer
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.ListCustomers(session)
		return opErr
	})
	return result, err
}

func (s *CommerceService) GetCustomer(customerID string) (*domain.Customer, error) {
	var result *domain.Customer
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.GetCustomer(session, customerID)
		return opErr
	})
	return result, err
}

func (s *CommerceService) ListChatMessages(userID string) ([]domain.ChatMessage, error) {
	var result []domain.ChatMessage
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.ListChatMessages(session, userID)
		return opErr
	})
	return result, err
}

func (s *CommerceService) SendChatMessage(req *domain.SendChatMessageRequest) (*domain.ChatMessage, error) {
	var result *domain.ChatMessage
	err := s.retryUnauthorized(func(session *commerceclient.Session) error {
		var opErr error
		result, opErr = s.Client.SendChatMessage(session, req)
		return opErr
	})
	return result, err
}
