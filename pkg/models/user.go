package models

type Person struct {
	Name        Name         `json:"name"`
	DateOfBirth string       `json:"dateOfBirth"`
	Gender      *Gender      `json:"gender,omitempty"`
	Email       string       `json:"email"`
	Phone       *PhoneNumber `json:"phone,omitempty"`
	Address     *Address     `json:"address,omitempty"`
	Nationality *string      `json:"nationality,omitempty"`
}

type CreateUserRequest struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Person      Person   `json:"person"`
	RoleCodes   []string `json:"roleCodes,omitempty"`
	CultureCode *string  `json:"cultureCode,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ResetPasswordRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
}

type UserPreferencesRequest struct {
	CurrencyCode  *string `json:"currencyCode,omitempty"`
	CultureCode   *string `json:"cultureCode,omitempty"`
	DefaultOrigin *string `json:"defaultOrigin,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
}
