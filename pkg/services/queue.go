package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const (
	pathQueues       = "api/nsk/{version}/queues"
	pathBookingQueue = "api/nsk/{version}/booking/queue"
)

type QueueService struct {
	base
}

func NewQueueService(t transport.Transport, version string) *QueueService {
	return &QueueService{base: newBase("queue", version, t)}
}

func (s *QueueService) List(ctx context.Context, req models.QueueListRequest) (*transport.Response, error) {
	if err := validation.ValidateQueueList(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathQueues)
	r.Query = newQuery().
		str("QueueCategoryCode", req.QueueCategoryCode).
		num("PageSize", req.PageSize).
		str("LastPageKey", req.LastPageKey).
		values()
	return s.do(ctx, r)
}

func (s *QueueService) GetItems(ctx context.Context, queueCode string, req models.QueueItemsRequest) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyQueueCode, queueCode); err != nil {
		return nil, err
	}
	if err := validation.ValidateQueueItems(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathQueues+"/{queueCode}/items")
	r.Params = map[string]string{"queueCode": queueCode}
	r.Query = newQuery().
		num("PageSize", req.PageSize).
		str("SubQueueCode", req.SubQueueCode).
		str("StartDate", req.StartDate).
		str("EndDate", req.EndDate).
		values()
	return s.do(ctx, r)
}

// AddBooking places the booking in session on a queue.
func (s *QueueService) AddBooking(ctx context.Context, req models.QueueBookingRequest) (*transport.Response, error) {
	if err := validation.ValidateQueueBooking(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathBookingQueue)
	r.Body = req
	return s.do(ctx, r)
}

func (s *QueueService) RemoveBooking(ctx context.Context, req models.QueueBookingRequest) (*transport.Response, error) {
	if err := validation.ValidateQueueBooking(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodDelete, pathBookingQueue)
	r.Body = req
	return s.do(ctx, r)
}

func (s *QueueService) Dequeue(ctx context.Context, queueCode string, req models.DequeueRequest) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyQueueCode, queueCode); err != nil {
		return nil, err
	}
	if err := validation.ValidateDequeue(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathQueues+"/{queueCode}/next")
	r.Params = map[string]string{"queueCode": queueCode}
	r.Body = req
	return s.do(ctx, r)
}

func (s *QueueService) MoveItem(ctx context.Context, queueItemKey string, req models.MoveQueueItemRequest) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyQueueItem, queueItemKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateMoveQueueItem(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPut, pathQueues+"/items/{queueItemKey}")
	r.Params = map[string]string{"queueItemKey": queueItemKey}
	r.Body = req
	return s.do(ctx, r)
}

// AddBookingToQueue queues the booking in session as a manual entry.
func (s *QueueService) AddBookingToQueue(ctx context.Context, queueCode string, notes *string) (*transport.Response, error) {
	return s.AddBooking(ctx, models.QueueBookingRequest{
		QueueCode:      queueCode,
		QueueEventType: models.QueueEventTypeManualEntry,
		Notes:          notes,
	})
}
