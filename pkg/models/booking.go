package models

type RetrieveBookingRequest struct {
	RecordLocator     string  `json:"recordLocator"`
	LastName          *string `json:"lastName,omitempty"`
	FirstName         *string `json:"firstName,omitempty"`
	EmailAddress      *string `json:"emailAddress,omitempty"`
	CustomerNumber    *string `json:"customerNumber,omitempty"`
	OriginStationCode *string `json:"originStationCode,omitempty"`
}

type Comment struct {
	Type CommentType `json:"type"`
	Text string      `json:"text"`
}

type CommitBookingRequest struct {
	ReceivedBy          *string   `json:"receivedBy,omitempty"`
	RestrictionOverride *bool     `json:"restrictionOverride,omitempty"`
	HoldDate            *string   `json:"hold,omitempty"`
	NotifyContacts      *bool     `json:"notifyContacts,omitempty"`
	Comments            []Comment `json:"comments,omitempty"`
}

type ContactRequest struct {
	ContactTypeCode string        `json:"contactTypeCode"`
	Name            Name          `json:"name"`
	EmailAddress    *string       `json:"emailAddress,omitempty"`
	PhoneNumbers    []PhoneNumber `json:"phoneNumbers,omitempty"`
	Address         *Address      `json:"address,omitempty"`
	CultureCode     *string       `json:"cultureCode,omitempty"`
	CompanyName     *string       `json:"companyName,omitempty"`
}

type PassengerInfo struct {
	Gender          *Gender `json:"gender,omitempty"`
	DateOfBirth     *string `json:"dateOfBirth,omitempty"`
	Nationality     *string `json:"nationality,omitempty"`
	ResidentCountry *string `json:"residentCountry,omitempty"`
}

type PassengerUpdateRequest struct {
	Name           *Name          `json:"name,omitempty"`
	Info           *PassengerInfo `json:"info,omitempty"`
	CustomerNumber *string        `json:"customerNumber,omitempty"`
}

type TravelDocumentRequest struct {
	DocumentType   DocumentType `json:"documentTypeCode"`
	Number         string       `json:"number"`
	IssuedByCode   string       `json:"issuedByCode"`
	Nationality    *string      `json:"nationality,omitempty"`
	IssuedDate     *string      `json:"issuedDate,omitempty"`
	ExpirationDate string       `json:"expirationDate"`
	BirthDate      *string      `json:"birthDate,omitempty"`
	Name           *Name        `json:"name,omitempty"`
	Gender         *Gender      `json:"gender,omitempty"`
}

type CommentsRequest struct {
	Comments []Comment `json:"comments"`
}
