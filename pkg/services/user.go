package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const (
	pathUsers = "api/nsk/{version}/users"
	pathUser  = pathUsers + "/{userKey}"
)

type UserService struct {
	base
}

func NewUserService(t transport.Transport, version string) *UserService {
	return &UserService{base: newBase("user", version, t)}
}

func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*transport.Response, error) {
	if err := validation.ValidateCreateUser(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathUsers)
	r.Body = req
	return s.do(ctx, r)
}

func (s *UserService) Get(ctx context.Context, userKey string) (*transport.Response, error) {
	return s.byKey(ctx, http.MethodGet, userKey, nil)
}

// GetCurrent returns the user bound to the session token.
func (s *UserService) GetCurrent(ctx context.Context) (*transport.Response, error) {
	return s.do(ctx, s.request(http.MethodGet, "api/nsk/{version}/user"))
}

func (s *UserService) Delete(ctx context.Context, userKey string) (*transport.Response, error) {
	return s.byKey(ctx, http.MethodDelete, userKey, nil)
}

// Update sends a partial update. Only the keys present in fields change.
func (s *UserService) Update(ctx context.Context, userKey string, fields map[string]any) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyUser, userKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateUserUpdate(fields); err != nil {
		return nil, err
	}
	return s.byKey(ctx, http.MethodPatch, userKey, fields)
}

func (s *UserService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*transport.Response, error) {
	if err := validation.ValidateChangePassword(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/{version}/user/password/change")
	r.Body = req
	return s.do(ctx, r)
}

func (s *UserService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*transport.Response, error) {
	if err := validation.ValidateResetPassword(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathUsers+"/password/reset")
	r.Body = req
	return s.do(ctx, r)
}

func (s *UserService) UpdatePreferences(ctx context.Context, req models.UserPreferencesRequest) (*transport.Response, error) {
	if err := validation.ValidateUserPreferences(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPut, "api/nsk/{version}/user/preferences")
	r.Body = req
	return s.do(ctx, r)
}

func (s *UserService) Register(ctx context.Context, username, password, firstName, lastName, email, dateOfBirth string) (*transport.Response, error) {
	return s.Create(ctx, models.CreateUserRequest{
		Username: username,
		Password: password,
		Person: models.Person{
			Name:        models.Name{First: firstName, Last: lastName},
			DateOfBirth: dateOfBirth,
			Email:       email,
		},
	})
}

func (s *UserService) byKey(ctx context.Context, method, userKey string, body any) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyUser, userKey); err != nil {
		return nil, err
	}
	r := s.request(method, pathUser)
	r.Params = map[string]string{"userKey": userKey}
	r.Body = body
	return s.do(ctx, r)
}
