package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

func TestValidateQueueEventType(t *testing.T) {
	tests := []struct {
		eventType int
		wantErr   string
	}{
		{0, "Default is invalid"},
		{1, ""},
		{80, ""},
		{100, ""},
		{101, "type must be between 1 and 100, got 101"},
		{-1, "type must be between 1 and 100"},
	}

	for _, tt := range tests {
		err := ValidateQueueEventType("type", tt.eventType)
		if tt.wantErr == "" {
			assert.NoError(t, err, "event type %d", tt.eventType)
			continue
		}
		requireValidationError(t, err, tt.wantErr)
	}
}

func TestValidateQueueBooking(t *testing.T) {
	req := models.QueueBookingRequest{QueueCode: "SCHED", QueueEventType: models.QueueEventTypeManualEntry}
	assert.NoError(t, ValidateQueueBooking(req))

	req.Notes = models.Ptr(strings.Repeat("n", 256))
	requireValidationError(t, ValidateQueueBooking(req), "notes must be at most 255")

	req.Notes = nil
	req.Priority = models.Ptr(10)
	requireValidationError(t, ValidateQueueBooking(req), "priority must be between 0 and 9")

	req.Priority = nil
	req.QueueCode = "sched"
	requireValidationError(t, ValidateQueueBooking(req), "queueCode must be 1-10 uppercase")
}

func TestValidateQueueList(t *testing.T) {
	assert.NoError(t, ValidateQueueList(models.QueueListRequest{QueueCategoryCode: models.Ptr("A"), PageSize: models.Ptr(10)}))
	requireValidationError(t, ValidateQueueList(models.QueueListRequest{QueueCategoryCode: models.Ptr("AB")}),
		"queueCategoryCode must be at most 1 characters")
	requireValidationError(t, ValidateQueueList(models.QueueListRequest{PageSize: models.Ptr(9)}),
		"pageSize must be between 10 and 5000")
	requireValidationError(t, ValidateQueueList(models.QueueListRequest{PageSize: models.Ptr(5001)}),
		"pageSize must be between 10 and 5000")
}

func TestValidateQueueItemsAndDequeue(t *testing.T) {
	requireValidationError(t, ValidateQueueItems(models.QueueItemsRequest{
		StartDate: models.Ptr("2030-02-01"), EndDate: models.Ptr("2030-01-01"),
	}), "endDate must not be before startDate")

	assert.NoError(t, ValidateDequeue(models.DequeueRequest{QueueCategoryCode: "Q", LockDurationMinutes: models.Ptr(120)}))
	requireValidationError(t, ValidateDequeue(models.DequeueRequest{QueueCategoryCode: "Q", LockDurationMinutes: models.Ptr(121)}),
		"lockDurationMinutes must be between 1 and 120")
	requireValidationError(t, ValidateDequeue(models.DequeueRequest{}), "queueCategoryCode is required")
}

func TestValidateMoveQueueItem(t *testing.T) {
	requireValidationError(t, ValidateMoveQueueItem(models.MoveQueueItemRequest{TargetQueueCode: "NEXT"}), "Default is invalid")
	assert.NoError(t, ValidateMoveQueueItem(models.MoveQueueItemRequest{
		TargetQueueCode: "NEXT", QueueEventType: models.QueueEventTypeScheduleChg,
	}))
}
