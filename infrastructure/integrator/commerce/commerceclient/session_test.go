package commerceclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		Commerce: config.Commerce{URL: serverURL},
	})
}

func TestLogin(t *testing.T) {
	t.Run("Credenciais aceitas - deve retornar sessão com o token do upstream", func(t *testing.T) {
		expiresAt := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/Auth/login", r.URL.Path)

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin@backoffice.local", body["email"])

			json.NewEncoder(w).Encode(map[string]any{
				"Token":     "token-123",
				"ExpiresAt": expiresAt,
			})
		}))
		defer server.Close()

		session, err := newTestClient(server.URL).Login("admin@backoffice.local", "senha")

		assert.NoError(t, err)
		assert.Equal(t, "token-123", session.Token)
		assert.Equal(t, expiresAt, session.ExpiresAt.UTC())
	})

	t.Run("Upstream sem data de expiração - deve assumir o TTL padrão", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"Token": "token-123"})
		}))
		defer server.Close()

		session, err := newTestClient(server.URL).Login("admin@backoffice.local", "senha")

		assert.NoError(t, err)
		assert.False(t, session.ExpiresAt.IsZero())
		assert.False(t, session.ExpiresWithin(refreshWindow))
	})

	t.Run("Credenciais rejeitadas - deve propagar o erro de status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		session, err := newTestClient(server.URL).Login("admin@backoffice.local", "senha-errada")

		assert.Error(t, err)
		assert.Nil(t, session)
	})
}

func TestSessionManagerEnsureSession(t *testing.T) {
	var logins atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logins.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"Token":     "token-123",
			"ExpiresAt": time.Now().Add(2 * time.Hour),
		})
	}))
	defer server.Close()

	manager := NewSessionManager(newTestClient(server.URL), "admin@backoffice.local", "senha")

	first, err := manager.EnsureSession()
	assert.NoError(t, err)
	assert.Equal(t, "token-123", first.Token)

	// Sessão válida deve ser reutilizada sem novo login
	second, err := manager.EnsureSession()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), logins.Load())

	// Após invalidar, a próxima chamada autentica de novo
	manager.Invalidate()
	_, err = manager.EnsureSession()
	assert.NoError(t, err)
	assert.Equal(t, int32(2), logins.Load())
}

func TestSessionManagerRenewsExpiringSession(t *testing.T) {
	var logins atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logins.Add(1)
		// expira dentro da janela de renovação
		json.NewEncoder(w).Encode(map[string]any{
			"Token":     "token-curto",
			"ExpiresAt": time.Now().Add(time.Minute),
		})
	}))
	defer server.Close()

	manager := NewSessionManager(newTestClient(server.URL), "admin@backoffice.local", "senha")

	_, err := manager.EnsureSession()
	assert.NoError(t, err)

	_, err = manager.EnsureSession()
	assert.NoError(t, err)
	assert.Equal(t, int32(2), logins.Load())
}

func TestStatusError(t *testing.T) {
	unauthorized := &StatusError{StatusCode: http.StatusUnauthorized, Status: "401 Unauthorized"}
	forbidden := &StatusError{StatusCode: http.StatusForbidden, Status: "403 Forbidden"}

	assert.True(t, unauthorized.IsUnauthorized())
	assert.False(t, forbidden.IsUnauthorized())
	assert.Contains(t, unauthorized.Error(), "401")
}
