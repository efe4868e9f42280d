package models

type QueueListRequest struct {
	QueueCategoryCode *string
	PageSize          *int
	LastPageKey       *string
}

type QueueItemsRequest struct {
	PageSize     *int
	SubQueueCode *string
	StartDate    *string
	EndDate      *string
}

type QueueBookingRequest struct {
	QueueCode      string  `json:"queueCode"`
	QueueEventType int     `json:"type"`
	Notes          *string `json:"notes,omitempty"`
	SubQueueCode   *string `json:"subQueueCode,omitempty"`
	Priority       *int    `json:"priority,omitempty"`
	RecordLocator  *string `json:"recordLocator,omitempty"`
}

type DequeueRequest struct {
	QueueCategoryCode   string `json:"queueCategoryCode"`
	LockDurationMinutes *int   `json:"lockDurationMinutes,omitempty"`
}

type MoveQueueItemRequest struct {
	TargetQueueCode string  `json:"targetQueueCode"`
	QueueEventType  int     `json:"type"`
	Notes           *string `json:"notes,omitempty"`
}
