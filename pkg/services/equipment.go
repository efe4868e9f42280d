package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const pathEquipment = "api/nsk/{version}/resources/equipment"

type EquipmentService struct {
	base
}

func NewEquipmentService(t transport.Transport, version string) *EquipmentService {
	return &EquipmentService{base: newBase("equipment", version, t)}
}

// Get returns one equipment type. suffix is optional.
func (s *EquipmentService) Get(ctx context.Context, equipmentType string, suffix *string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyEquipmentType, equipmentType); err != nil {
		return nil, err
	}
	if err := validation.ValidateEquipmentSuffix(suffix); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathEquipment+"/{equipmentType}")
	r.Params = map[string]string{"equipmentType": equipmentType}
	r.Query = newQuery().str("EquipmentSuffix", suffix).values()
	return s.do(ctx, r)
}

func (s *EquipmentService) Search(ctx context.Context, req models.EquipmentSearchRequest) (*transport.Response, error) {
	if err := validation.ValidateEquipmentSearch(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathEquipment)
	r.Query = newQuery().
		list("EquipmentTypes", req.EquipmentTypes).
		str("MarketingCode", req.MarketingCode).
		flag("ActiveOnly", req.ActiveOnly).
		num("StartIndex", req.StartIndex).
		num("ItemCount", req.ItemCount).
		values()
	return s.do(ctx, r)
}

func (s *EquipmentService) GetConfiguration(ctx context.Context, equipmentType, configurationCode string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyEquipmentType, equipmentType); err != nil {
		return nil, err
	}
	if err := validation.ValidateKey(validation.KeyConfiguration, configurationCode); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathEquipment+"/{equipmentType}/configurations/{configurationCode}")
	r.Params = map[string]string{"equipmentType": equipmentType, "configurationCode": configurationCode}
	return s.do(ctx, r)
}
