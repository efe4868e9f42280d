package validation

import (
	"fmt"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

const (
	maxComments      = 10
	maxCommentLength = 1000
)

func ValidateRetrieveBooking(req models.RetrieveBookingRequest) error {
	if err := validateKeyField("recordLocator", KeyRecordLocator, req.RecordLocator); err != nil {
		return err
	}
	if isBlank(req.LastName) && isBlank(req.EmailAddress) && isBlank(req.CustomerNumber) {
		return fail("one of lastName, emailAddress or customerNumber is required to retrieve a booking")
	}
	if err := LengthBetweenPtr("lastName", req.LastName, 1, 64); err != nil {
		return err
	}
	if err := LengthBetweenPtr("firstName", req.FirstName, 1, 64); err != nil {
		return err
	}
	if err := MatchFormatPtr("emailAddress", req.EmailAddress, FormatEmail); err != nil {
		return err
	}
	if err := LengthBetweenPtr("customerNumber", req.CustomerNumber, 1, 20); err != nil {
		return err
	}
	return MatchFormatPtr("originStationCode", req.OriginStationCode, FormatAirportCode)
}

func ValidateCommitBooking(req models.CommitBookingRequest) error {
	if err := MaxLengthPtr("receivedBy", req.ReceivedBy, 64); err != nil {
		return err
	}
	if req.HoldDate != nil {
		hold, ok := parseDateTime(*req.HoldDate)
		if !ok {
			return MatchFormat("holdDate", *req.HoldDate, FormatDateTime)
		}
		if !hold.After(now()) {
			return fail("holdDate must be in the future, got '%s'", *req.HoldDate)
		}
	}
	if len(req.Comments) > 0 {
		return validateComments("comments", req.Comments)
	}
	return nil
}

func ValidateComments(req models.CommentsRequest) error {
	return validateComments("comments", req.Comments)
}

func validateComments(field string, comments []models.Comment) error {
	if err := CountBetween(field, comments, 1, maxComments); err != nil {
		return err
	}
	for i, c := range comments {
		path := fmt.Sprintf("%s[%d]", field, i)
		if err := OneOf(path+".type", c.Type, models.CommentTypes()); err != nil {
			return err
		}
		if err := Required(path+".text", c.Text); err != nil {
			return err
		}
		if err := LengthBetween(path+".text", c.Text, 1, maxCommentLength); err != nil {
			return err
		}
	}
	return nil
}

func ValidateContact(req models.ContactRequest) error {
	if err := Required("contactTypeCode", req.ContactTypeCode); err != nil {
		return err
	}
	if err := LengthBetween("contactTypeCode", req.ContactTypeCode, 1, 1); err != nil {
		return err
	}
	if err := validateName("name", req.Name); err != nil {
		return err
	}
	if err := MatchFormatPtr("emailAddress", req.EmailAddress, FormatEmail); err != nil {
		return err
	}
	for i, p := range req.PhoneNumbers {
		if err := validatePhoneNumber(fmt.Sprintf("phoneNumbers[%d]", i), p); err != nil {
			return err
		}
	}
	if req.Address != nil {
		if err := validateAddress("address", *req.Address); err != nil {
			return err
		}
	}
	if err := validateCultureCode("cultureCode", req.CultureCode); err != nil {
		return err
	}
	return MaxLengthPtr("companyName", req.CompanyName, 64)
}

func ValidatePassengerUpdate(req models.PassengerUpdateRequest) error {
	if req.Name == nil && req.Info == nil && req.CustomerNumber == nil {
		return fail("passenger update must change at least one of name, info or customerNumber")
	}
	if req.Name != nil {
		if err := validateName("name", *req.Name); err != nil {
			return err
		}
	}
	if req.Info != nil {
		if err := validatePassengerInfo("info", *req.Info); err != nil {
			return err
		}
	}
	return LengthBetweenPtr("customerNumber", req.CustomerNumber, 1, 20)
}

func validatePassengerInfo(field string, info models.PassengerInfo) error {
	if err := OneOfPtr(field+".gender", info.Gender, models.Genders()); err != nil {
		return err
	}
	if info.DateOfBirth != nil {
		if _, err := DateNotInFuture(field+".dateOfBirth", *info.DateOfBirth); err != nil {
			return err
		}
	}
	if err := MatchFormatPtr(field+".nationality", info.Nationality, FormatCountryCode); err != nil {
		return err
	}
	return MatchFormatPtr(field+".residentCountry", info.ResidentCountry, FormatCountryCode)
}

func ValidateTravelDocument(req models.TravelDocumentRequest) error {
	if err := OneOf("documentTypeCode", req.DocumentType, models.DocumentTypes()); err != nil {
		return err
	}
	if err := Required("number", req.Number); err != nil {
		return err
	}
	if err := LengthBetween("number", req.Number, 1, 35); err != nil {
		return err
	}
	if err := matchPattern("number", req.Number, alnumRegex, "letters or digits only"); err != nil {
		return err
	}
	if err := Required("issuedByCode", req.IssuedByCode); err != nil {
		return err
	}
	if err := MatchFormat("issuedByCode", req.IssuedByCode, FormatCountryCode); err != nil {
		return err
	}
	if err := MatchFormatPtr("nationality", req.Nationality, FormatCountryCode); err != nil {
		return err
	}
	if req.IssuedDate != nil {
		if _, err := DateNotInFuture("issuedDate", *req.IssuedDate); err != nil {
			return err
		}
	}
	if err := Required("expirationDate", req.ExpirationDate); err != nil {
		return err
	}
	expires, err := DateNotInPast("expirationDate", req.ExpirationDate)
	if err != nil {
		return err
	}
	if req.IssuedDate != nil {
		issued, _ := parseDate(*req.IssuedDate)
		if !expires.After(issued) {
			return fail("expirationDate must be after issuedDate")
		}
	}
	if req.BirthDate != nil {
		if _, err := DateNotInFuture("birthDate", *req.BirthDate); err != nil {
			return err
		}
	}
	if req.Name != nil {
		if err := validateName("name", *req.Name); err != nil {
			return err
		}
	}
	return OneOfPtr("gender", req.Gender, models.Genders())
}

func isBlank(s *string) bool {
	return s == nil || Required("", *s) != nil
}
