package models

type StationListRequest struct {
	CountryCode *string
	CultureCode *string
	ActiveOnly  *bool
}

type MarketListRequest struct {
	Origin      *string
	Destination *string
}
