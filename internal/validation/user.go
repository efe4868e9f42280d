package validation

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	minUserAge        = 13
	maxUserAge        = 120
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9]{3,50}$`)

// userUpdateFields are the keys a user PATCH may carry.
var userUpdateFields = []string{
	"firstName", "lastName", "email", "phone", "dateOfBirth",
	"gender", "cultureCode", "status", "marketingOptIn",
}

// ValidateUsername accepts an email address or 3-50 letters and digits.
func ValidateUsername(field, username string) error {
	if err := Required(field, username); err != nil {
		return err
	}
	if conforms(FormatEmail, username) || usernameRegex.MatchString(username) {
		return nil
	}
	return fail("%s must be an email address or 3-50 letters and digits, got '%s'", field, username)
}

func ValidatePassword(field, password string) error {
	if err := Required(field, password); err != nil {
		return err
	}
	if err := LengthBetween(field, password, minPasswordLength, maxPasswordLength); err != nil {
		return err
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		return fail("%s must contain at least one letter and one digit", field)
	}
	return nil
}

func ValidateCreateUser(req models.CreateUserRequest) error {
	if err := ValidateUsername("username", req.Username); err != nil {
		return err
	}
	if err := ValidatePassword("password", req.Password); err != nil {
		return err
	}
	if err := validatePerson("person", req.Person); err != nil {
		return err
	}
	for i, role := range req.RoleCodes {
		if err := LengthBetween(fmt.Sprintf("roleCodes[%d]", i), role, 1, 10); err != nil {
			return err
		}
	}
	if err := Distinct("roleCodes", req.RoleCodes); err != nil {
		return err
	}
	return validateCultureCode("cultureCode", req.CultureCode)
}

func validatePerson(field string, p models.Person) error {
	if err := validateName(field+".name", p.Name); err != nil {
		return err
	}
	if err := Required(field+".dateOfBirth", p.DateOfBirth); err != nil {
		return err
	}
	if err := validateAge(field+".dateOfBirth", p.DateOfBirth); err != nil {
		return err
	}
	if err := OneOfPtr(field+".gender", p.Gender, models.Genders()); err != nil {
		return err
	}
	if err := Required(field+".email", p.Email); err != nil {
		return err
	}
	if err := MatchFormat(field+".email", p.Email, FormatEmail); err != nil {
		return err
	}
	if p.Phone != nil {
		if err := validatePhoneNumber(field+".phone", *p.Phone); err != nil {
			return err
		}
	}
	if p.Address != nil {
		if err := validateAddress(field+".address", *p.Address); err != nil {
			return err
		}
	}
	return MatchFormatPtr(field+".nationality", p.Nationality, FormatCountryCode)
}

func validateAge(field, dateOfBirth string) error {
	born, err := DateNotInFuture(field, dateOfBirth)
	if err != nil {
		return err
	}
	t := today()
	age := t.Year() - born.Year()
	if t.Month() < born.Month() || (t.Month() == born.Month() && t.Day() < born.Day()) {
		age--
	}
	if age < minUserAge || age > maxUserAge {
		return fail("%s gives an age of %d, users must be between %d and %d years old", field, age, minUserAge, maxUserAge)
	}
	return nil
}

// ValidateUserUpdate checks a partial user update. Only keys that are set
// are validated, and unknown keys are rejected.
func ValidateUserUpdate(fields map[string]any) error {
	if len(fields) == 0 {
		return fail("user update must contain at least one field")
	}
	p := Payload(fields)
	if err := AllowedKeys(p, userUpdateFields); err != nil {
		return err
	}
	one, nameMax := 1, 64
	for _, name := range []string{"firstName", "lastName"} {
		if err := StringLengthIfPresent(p, name, &one, &nameMax); err != nil {
			return err
		}
	}
	if err := MatchFormatIfPresent(p, "email", FormatEmail); err != nil {
		return err
	}
	if err := MatchFormatIfPresent(p, "phone", FormatPhone); err != nil {
		return err
	}
	if err := MatchFormatIfPresent(p, "dateOfBirth", FormatDate); err != nil {
		return err
	}
	if p.set("dateOfBirth") {
		if err := validateAge("dateOfBirth", fmt.Sprint(p["dateOfBirth"])); err != nil {
			return err
		}
	}
	if err := EnumIfPresent(p, "gender", stringValues(models.Genders())); err != nil {
		return err
	}
	if err := EnumIfPresent(p, "status", stringValues(models.UserStatuses())); err != nil {
		return err
	}
	if p.set("cultureCode") {
		s, ok := p["cultureCode"].(string)
		if !ok || !cultureCodeRegex.MatchString(s) {
			return fail("cultureCode must be a culture code such as en-US")
		}
	}
	return BooleanType(p, "marketingOptIn")
}

func ValidateChangePassword(req models.ChangePasswordRequest) error {
	if err := Required("currentPassword", req.CurrentPassword); err != nil {
		return err
	}
	if err := ValidatePassword("newPassword", req.NewPassword); err != nil {
		return err
	}
	if req.NewPassword == req.CurrentPassword {
		return fail("newPassword must be different from currentPassword")
	}
	return nil
}

func ValidateResetPassword(req models.ResetPasswordRequest) error {
	if err := ValidateUsername("username", req.Username); err != nil {
		return err
	}
	return MatchFormatPtr("email", req.Email, FormatEmail)
}

func ValidateUserPreferences(req models.UserPreferencesRequest) error {
	if err := validateCurrencyPtr("currencyCode", req.CurrencyCode); err != nil {
		return err
	}
	if err := validateCultureCode("cultureCode", req.CultureCode); err != nil {
		return err
	}
	return MatchFormatPtr("defaultOrigin", req.DefaultOrigin, FormatAirportCode)
}

func stringValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
