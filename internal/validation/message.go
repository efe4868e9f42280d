package validation

import (
	"fmt"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

const (
	maxRecipients     = 50
	maxSubjectLength  = 200
	maxMessageLength  = 5000
	maxMessagePerPage = 100
)

func ValidateSendMessage(req models.SendMessageRequest) error {
	if err := OneOf("type", req.Type, models.MessageTypes()); err != nil {
		return err
	}
	if err := CountBetween("recipients", req.Recipients, 1, maxRecipients); err != nil {
		return err
	}
	for i, r := range req.Recipients {
		if err := validateRecipient(fmt.Sprintf("recipients[%d]", i), req.Type, r); err != nil {
			return err
		}
	}
	if req.Type == models.MessageEmail {
		if req.Subject == nil || Required("subject", *req.Subject) != nil {
			return fail("subject is required for Email messages")
		}
	}
	if err := LengthBetweenPtr("subject", req.Subject, 1, maxSubjectLength); err != nil {
		return err
	}
	if err := Required("body", req.Body); err != nil {
		return err
	}
	if err := LengthBetween("body", req.Body, 1, maxMessageLength); err != nil {
		return err
	}
	if err := OneOfPtr("priority", req.Priority, models.MessagePriorities()); err != nil {
		return err
	}
	if req.SendAt != nil {
		at, ok := parseDateTime(*req.SendAt)
		if !ok {
			return MatchFormat("sendAt", *req.SendAt, FormatDateTime)
		}
		if at.Before(now()) {
			return fail("sendAt must not be in the past, got '%s'", *req.SendAt)
		}
	}
	return nil
}

func validateRecipient(field string, t models.MessageType, r models.Recipient) error {
	if err := Required(field+".address", r.Address); err != nil {
		return err
	}
	switch t {
	case models.MessageEmail:
		if err := MatchFormat(field+".address", r.Address, FormatEmail); err != nil {
			return err
		}
	case models.MessageSms:
		if err := MatchFormat(field+".address", r.Address, FormatPhone); err != nil {
			return err
		}
	}
	return MaxLengthPtr(field+".name", r.Name, 100)
}

func ValidateMessageList(req models.MessageListRequest) error {
	if err := OneOfPtr("status", req.Status, models.MessageStatuses()); err != nil {
		return err
	}
	if err := IntRangePtr("pageSize", req.PageSize, 1, maxMessagePerPage); err != nil {
		return err
	}
	if req.PageIndex != nil && *req.PageIndex < 0 {
		return fail("pageIndex must not be negative, got %d", *req.PageIndex)
	}
	if err := MatchFormatPtr("fromDate", req.FromDate, FormatDate); err != nil {
		return err
	}
	if err := MatchFormatPtr("toDate", req.ToDate, FormatDate); err != nil {
		return err
	}
	if req.FromDate != nil && req.ToDate != nil {
		return DateOrder("fromDate", *req.FromDate, "toDate", *req.ToDate)
	}
	return nil
}
