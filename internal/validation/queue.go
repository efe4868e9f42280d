package validation

import (
	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

const (
	minQueuePageSize = 10
	maxQueuePageSize = 5000
	maxQueueNotes    = 255
)

// ValidateQueueEventType rejects the platform's Default event type (0),
// which it refuses on queue writes, and anything past the last defined type.
func ValidateQueueEventType(field string, eventType int) error {
	if eventType == models.QueueEventTypeDefault {
		return fail("%s 0 is reserved: queue event type Default is invalid for this operation", field)
	}
	return IntRange(field, eventType, models.QueueEventTypeManualEntry, models.QueueEventTypeMaximum)
}

func ValidateQueueList(req models.QueueListRequest) error {
	if err := LengthBetweenPtr("queueCategoryCode", req.QueueCategoryCode, 1, 1); err != nil {
		return err
	}
	if err := IntRangePtr("pageSize", req.PageSize, minQueuePageSize, maxQueuePageSize); err != nil {
		return err
	}
	return validateKeyPtr("lastPageKey", KeyPageKey, req.LastPageKey)
}

func ValidateQueueItems(req models.QueueItemsRequest) error {
	if err := IntRangePtr("pageSize", req.PageSize, minQueuePageSize, maxQueuePageSize); err != nil {
		return err
	}
	if err := LengthBetweenPtr("subQueueCode", req.SubQueueCode, 1, 10); err != nil {
		return err
	}
	if err := MatchFormatPtr("startDate", req.StartDate, FormatDate); err != nil {
		return err
	}
	if err := MatchFormatPtr("endDate", req.EndDate, FormatDate); err != nil {
		return err
	}
	if req.StartDate != nil && req.EndDate != nil {
		return DateOrder("startDate", *req.StartDate, "endDate", *req.EndDate)
	}
	return nil
}

func ValidateQueueBooking(req models.QueueBookingRequest) error {
	if err := validateKeyField("queueCode", KeyQueueCode, req.QueueCode); err != nil {
		return err
	}
	if err := ValidateQueueEventType("type", req.QueueEventType); err != nil {
		return err
	}
	if err := MaxLengthPtr("notes", req.Notes, maxQueueNotes); err != nil {
		return err
	}
	if err := LengthBetweenPtr("subQueueCode", req.SubQueueCode, 1, 10); err != nil {
		return err
	}
	if err := IntRangePtr("priority", req.Priority, 0, 9); err != nil {
		return err
	}
	return validateKeyPtr("recordLocator", KeyRecordLocator, req.RecordLocator)
}

func ValidateDequeue(req models.DequeueRequest) error {
	if err := Required("queueCategoryCode", req.QueueCategoryCode); err != nil {
		return err
	}
	if err := LengthBetween("queueCategoryCode", req.QueueCategoryCode, 1, 1); err != nil {
		return err
	}
	return IntRangePtr("lockDurationMinutes", req.LockDurationMinutes, 1, 120)
}

func ValidateMoveQueueItem(req models.MoveQueueItemRequest) error {
	if err := validateKeyField("targetQueueCode", KeyQueueCode, req.TargetQueueCode); err != nil {
		return err
	}
	if err := ValidateQueueEventType("type", req.QueueEventType); err != nil {
		return err
	}
	return MaxLengthPtr("notes", req.Notes, maxQueueNotes)
}
