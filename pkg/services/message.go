package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const (
	pathMessages = "api/nsk/{version}/messages"
	pathMessage  = pathMessages + "/{messageKey}"
)

type MessageService struct {
	base
}

func NewMessageService(t transport.Transport, version string) *MessageService {
	return &MessageService{base: newBase("message", version, t)}
}

func (s *MessageService) Send(ctx context.Context, req models.SendMessageRequest) (*transport.Response, error) {
	if err := validation.ValidateSendMessage(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathMessages)
	r.Body = req
	return s.do(ctx, r)
}

func (s *MessageService) List(ctx context.Context, req models.MessageListRequest) (*transport.Response, error) {
	if err := validation.ValidateMessageList(req); err != nil {
		return nil, err
	}
	var status *string
	if req.Status != nil {
		status = models.Ptr(string(*req.Status))
	}
	r := s.request(http.MethodGet, pathMessages)
	r.Query = newQuery().
		str("Status", status).
		num("PageSize", req.PageSize).
		num("PageIndex", req.PageIndex).
		str("FromDate", req.FromDate).
		str("ToDate", req.ToDate).
		values()
	return s.do(ctx, r)
}

func (s *MessageService) Get(ctx context.Context, messageKey string) (*transport.Response, error) {
	return s.byKey(ctx, http.MethodGet, pathMessage, messageKey)
}

func (s *MessageService) MarkRead(ctx context.Context, messageKey string) (*transport.Response, error) {
	return s.byKey(ctx, http.MethodPut, pathMessage+"/read", messageKey)
}

func (s *MessageService) Delete(ctx context.Context, messageKey string) (*transport.Response, error) {
	return s.byKey(ctx, http.MethodDelete, pathMessage, messageKey)
}

// SendEmail sends a single email with normal priority.
func (s *MessageService) SendEmail(ctx context.Context, to, subject, body string) (*transport.Response, error) {
	return s.Send(ctx, models.SendMessageRequest{
		Type:       models.MessageEmail,
		Recipients: []models.Recipient{{Address: to}},
		Subject:    &subject,
		Body:       body,
	})
}

func (s *MessageService) byKey(ctx context.Context, method, template, messageKey string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyMessage, messageKey); err != nil {
		return nil, err
	}
	r := s.request(method, template)
	r.Params = map[string]string{"messageKey": messageKey}
	return s.do(ctx, r)
}
