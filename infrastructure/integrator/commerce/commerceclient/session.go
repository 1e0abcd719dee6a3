package commerceclient

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Session é o contexto de autorização das chamadas à API upstream. É um valor
// explícito passado a cada chamada, e não um estado global do processo.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// ExpiresWithin indica se a sessão expira dentro da janela informada
func (s *Session) ExpiresWithin(window time.Duration) bool {
	if s == nil || s.Token == "" {
		return true
	}
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Until(s.ExpiresAt) < window
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"Token"`
	ExpiresAt time.Time `json:"ExpiresAt"`
}

// tempo de vida assumido quando o upstream não informa a expiração do token
const defaultSessionTTL = 24 * time.Hour

// Login autentica as credenciais administrativas no upstream e retorna a sessão
func (c *CommerceClient) Login(email, password string) (*Session, error) {
	var response loginResponse

	err := c.doJSON(nil, http.MethodPost, "/Auth/login", nil, loginRequest{
		Email:    email,
		Password: password,
	}, &response)
	if err != nil {
		return nil, fmt.Errorf("erro ao autenticar no upstream: %w", err)
	}

	session := &Session{
		Token:     response.Token,
		ExpiresAt: response.ExpiresAt,
	}
	if session.ExpiresAt.IsZero() {
		session.ExpiresAt = time.Now().Add(defaultSessionTTL)
	}

	return session, nil
}

// SessionManager mantém uma sessão válida com a API upstream, renovando o
// token antes da expiração
type SessionManager struct {
	client       Client
	email        string
	password     string
	sessionMutex sync.Mutex
	session      *Session
	stopRefresh  chan struct{}
}

// janela de antecedência para renovar a sessão antes de expirar
const refreshWindow = 5 * time.Minute

// NewSessionManager cria um novo gerenciador de sessões do upstream
func NewSessionManager(client Client, email, password string) *SessionManager {
	return &SessionManager{
		client:      client,
		email:       email,
		password:    password,
		stopRefresh: make(chan struct{}),
	}
}

// EnsureSession retorna a sessão atual, autenticando ou renovando se necessário
func (sm *SessionManager) EnsureSession() (*Session, error) {
	sm.sessionMutex.Lock()
	defer sm.sessionMutex.Unlock()

	if sm.session != nil && !sm.session.ExpiresWithin(refreshWindow) {
		return sm.session, nil
	}

	session, err := sm.client.Login(sm.email, sm.password)
	if err != nil {
		return nil, err
	}

	sm.session = session
	return sm.session, nil
}

// Invalidate descarta a sessão atual, forçando um novo login na próxima chamada
func (sm *SessionManager) Invalidate() {
	sm.sessionMutex.Lock()
	defer sm.sessionMutex.Unlock()
	sm.session = nil
}

// StartAutoRefresh inicia uma goroutine que renova a sessão periodicamente
func (sm *SessionManager) StartAutoRefresh() {
	if _, err := sm.EnsureSession(); err != nil {
		logrus.Errorf("Erro ao iniciar a sessão do upstream: %v", err)
	}

	refreshInterval := defaultSessionTTL - time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica da sessão do upstream")
			sm.Invalidate()
			if _, err := sm.EnsureSession(); err != nil {
				logrus.Errorf("Erro na renovação periódica da sessão: %v", err)

				// Se falhar, tente novamente em um intervalo mais curto
				ticker.Reset(10 * time.Minute)
			} else {
				logrus.Info("Renovação periódica da sessão concluída com sucesso")
				ticker.Reset(refreshInterval)
			}
		case <-sm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica da sessão")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (sm *SessionManager) StopAutoRefresh() {
	close(sm.stopRefresh)
}
