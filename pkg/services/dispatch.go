// Package services holds one façade per functional area of the booking
// platform. Every operation validates its input, builds a Request and hands
// it to the shared Transport. Validation failures return a
// *models.ValidationError before any network call; transport failures
// return a *models.APIError.
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dharmasatrya/bookingsdk/internal/logging"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

// Request describes one platform call. Template may contain {version} and
// {name} placeholders which Path fills from Version and Params.
type Request struct {
	Method   string
	Template string
	Version  string
	Params   map[string]string
	Query    url.Values
	Body     any
}

func (r Request) Path() string {
	path := strings.ReplaceAll(r.Template, "{version}", r.Version)
	for name, value := range r.Params {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	return path
}

type base struct {
	module    string
	version   string
	transport transport.Transport
}

func newBase(module, version string, t transport.Transport) base {
	return base{module: module, version: version, transport: t}
}

func (b base) Module() string  { return b.module }
func (b base) Version() string { return b.version }

func (b base) request(method, template string) Request {
	return Request{Method: method, Template: template, Version: b.version}
}

// do sends req through the transport. Any failure comes back as an APIError.
func (b base) do(ctx context.Context, req Request) (*transport.Response, error) {
	if req.Version == "" {
		req.Version = b.version
	}
	path := req.Path()
	logging.Debug().Str("module", b.module).Str("method", req.Method).Str("path", path).Msg("dispatching request")

	ctx = transport.WithModule(ctx, b.module)

	var (
		resp *transport.Response
		err  error
	)
	switch req.Method {
	case http.MethodGet:
		resp, err = b.transport.Get(ctx, path, req.Query)
	case http.MethodPost:
		resp, err = b.transport.Post(ctx, path, req.Body)
	case http.MethodPut:
		resp, err = b.transport.Put(ctx, path, req.Body)
	case http.MethodPatch:
		resp, err = b.transport.Patch(ctx, path, req.Body)
	case http.MethodDelete:
		resp, err = b.transport.Delete(ctx, path, req.Query, req.Body)
	default:
		err = fmt.Errorf("unsupported method %s", req.Method)
	}
	if err != nil {
		return nil, models.WrapAPIError(err)
	}
	return resp, nil
}

func versionString(v int) string {
	return "v" + strconv.Itoa(v)
}

// queryBuilder collects optional query parameters, skipping unset ones.
type queryBuilder url.Values

func newQuery() queryBuilder { return queryBuilder(url.Values{}) }

func (q queryBuilder) str(key string, v *string) queryBuilder {
	if v != nil {
		url.Values(q).Set(key, *v)
	}
	return q
}

func (q queryBuilder) num(key string, v *int) queryBuilder {
	if v != nil {
		url.Values(q).Set(key, strconv.Itoa(*v))
	}
	return q
}

func (q queryBuilder) flag(key string, v *bool) queryBuilder {
	if v != nil {
		url.Values(q).Set(key, strconv.FormatBool(*v))
	}
	return q
}

func (q queryBuilder) list(key string, values []string) queryBuilder {
	for _, v := range values {
		url.Values(q).Add(key, v)
	}
	return q
}

func (q queryBuilder) values() url.Values {
	if len(q) == 0 {
		return nil
	}
	return url.Values(q)
}
