package models

type PassengerTypeCount struct {
	Type         string  `json:"type"`
	Count        int     `json:"count"`
	DiscountCode *string `json:"discountCode,omitempty"`
}

type Passengers struct {
	Types           []PassengerTypeCount `json:"types"`
	ResidentCountry *string              `json:"residentCountry,omitempty"`
}

// PassengerCounts is the shorthand accepted by the convenience search helpers.
type PassengerCounts struct {
	Adults   int
	Children int
	Infants  int
}

// Passengers expands the counts into the typed list the platform expects.
// Only the zero value yields the single-adult default. Negative counts are
// kept so that passenger validation rejects them.
func (c PassengerCounts) Passengers() Passengers {
	if c == (PassengerCounts{}) {
		return Passengers{Types: []PassengerTypeCount{{Type: string(PassengerTypeAdult), Count: 1}}}
	}
	var types []PassengerTypeCount
	for _, pc := range []struct {
		t PassengerType
		n int
	}{
		{PassengerTypeAdult, c.Adults},
		{PassengerTypeChild, c.Children},
		{PassengerTypeInfant, c.Infants},
	} {
		if pc.n != 0 {
			types = append(types, PassengerTypeCount{Type: string(pc.t), Count: pc.n})
		}
	}
	return Passengers{Types: types}
}

type Name struct {
	Title  *string `json:"title,omitempty"`
	First  string  `json:"first"`
	Middle *string `json:"middle,omitempty"`
	Last   string  `json:"last"`
	Suffix *string `json:"suffix,omitempty"`
}

type Address struct {
	LineOne       string  `json:"lineOne"`
	LineTwo       *string `json:"lineTwo,omitempty"`
	City          string  `json:"city"`
	ProvinceState *string `json:"provinceState,omitempty"`
	CountryCode   string  `json:"countryCode"`
	PostalCode    *string `json:"postalCode,omitempty"`
}

type PhoneNumber struct {
	Type   PhoneType `json:"type"`
	Number string    `json:"number"`
}

// Ptr returns a pointer to v, for filling optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
