package commerceclient

import (
	"net/http"
	"net/url"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// ListChatMessages busca o histórico de mensagens trocadas com um cliente
func (c *CommerceClient) ListChatMessages(session *Session, userID string) ([]domain.ChatMessage, error) {
	query := url.Values{}
	query.Set("userId", userID)

	var response []domain.ChatMessage
	if err := c.doJSON(session, http.MethodGet, "/Chat/messages", query, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// SendChatMessage envia uma mensagem para um cliente
func (c *CommerceClient) SendChatMessage(session *Session, req *domain.SendChatMessageRequest) (*domain.ChatMessage, error) {
	var response domain.ChatMessage
	if err := c.doJSON(session, http.MethodPost, "/Chat", nil, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
