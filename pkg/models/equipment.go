package models

type EquipmentSearchRequest struct {
	EquipmentTypes []string
	MarketingCode  *string
	ActiveOnly     *bool
	StartIndex     *int
	ItemCount      *int
}
