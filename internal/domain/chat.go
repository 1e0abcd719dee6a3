package domain

import "time"

// ChatMessage é uma mensagem trocada entre o back-office e um cliente
type ChatMessage struct {
	Id         string    `json:"Id"`
	SenderId   string    `json:"SenderId"`
	ReceiverId string    `json:"ReceiverId"`
	Message    string    `json:"Message"`
	SentAt     time.Time `json:"SentAt"`
}

// SendChatMessageRequest é o payload de envio de mensagem
type SendChatMessageRequest struct {
	SenderId   string `json:"SenderId" validate:"required"`
	ReceiverId string `json:"ReceiverId" validate:"required"`
	Message    string `json:"Message" validate:"required,max=2000"`
}
