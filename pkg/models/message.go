package models

type Recipient struct {
	Address string  `json:"address"`
	Name    *string `json:"name,omitempty"`
}

type SendMessageRequest struct {
	Type       MessageType      `json:"type"`
	Recipients []Recipient      `json:"recipients"`
	Subject    *string          `json:"subject,omitempty"`
	Body       string           `json:"body"`
	Priority   *MessagePriority `json:"priority,omitempty"`
	SendAt     *string          `json:"sendAt,omitempty"`
}

type MessageListRequest struct {
	Status    *MessageStatus
	PageSize  *int
	PageIndex *int
	FromDate  *string
	ToDate    *string
}
