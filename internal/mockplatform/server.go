// Package mockplatform is a stand-in for the booking platform's REST API.
// It serves canned fixtures for a handful of read paths and echoes every
// other request back, so the SDK can be exercised end to end without the
// real platform.
package mockplatform

import (
	"context"
	"embed"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/dharmasatrya/bookingsdk/internal/logging"
)

// StatusHeader makes the server answer with the given HTTP status instead
// of a normal response.
const StatusHeader = "X-Mock-Status"

//go:embed fixtures/*.json
var fixtureFS embed.FS

var versionPrefix = regexp.MustCompile(`^/api/nsk/(v\d+)/`)

// fixtures maps "METHOD route" (route without api/nsk/vN/) to a file.
var fixtures = map[string]string{
	"GET resources/stations":          "fixtures/resources_stations.json",
	"GET resources/currencies":        "fixtures/resources_currencies.json",
	"POST availability/search/simple": "fixtures/availability_search_simple.json",
	"GET booking":                     "fixtures/booking.json",
}

type Config struct {
	// Token, when set, must match the Authorization header of every API call.
	Token   string
	Latency time.Duration
}

type Server struct {
	echo *echo.Echo
	cfg  Config
	log  zerolog.Logger

	mu   sync.Mutex
	hits map[string]int
}

func New(cfg Config) *Server {
	s := &Server{
		echo: echo.New(),
		cfg:  cfg,
		log:  logging.Component("mockplatform"),
		hits: make(map[string]int),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Debug().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))

	s.echo.GET("/health", s.health)
	api := s.echo.Group("/api/nsk")
	if cfg.Token != "" {
		api.Use(s.requireToken)
	}
	api.Any("/*", s.handle)
	return s
}

// Handler exposes the server for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(addr string) error {
	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Hits returns how many times "METHOD /full/path" was served.
func (s *Server) Hits(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[method+" "+path]
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) != s.cfg.Token {
			return errorResponse(c, http.StatusUnauthorized, "Missing or invalid session token")
		}
		return next(c)
	}
}

func (s *Server) handle(c echo.Context) error {
	req := c.Request()
	s.mu.Lock()
	s.hits[req.Method+" "+req.URL.Path]++
	s.mu.Unlock()

	if s.cfg.Latency > 0 {
		select {
		case <-time.After(s.cfg.Latency):
		case <-req.Context().Done():
			return req.Context().Err()
		}
	}

	if raw := req.Header.Get(StatusHeader); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil || status < 100 || status > 599 {
			return errorResponse(c, http.StatusBadRequest, "invalid "+StatusHeader+" header: "+raw)
		}
		return errorResponse(c, status, "injected failure")
	}

	m := versionPrefix.FindStringSubmatch(req.URL.Path)
	if m == nil {
		return errorResponse(c, http.StatusNotFound, "unknown API path "+req.URL.Path)
	}
	route := strings.TrimPrefix(req.URL.Path, m[0])

	if file, ok := fixtures[req.Method+" "+route]; ok {
		data, err := fixtureFS.ReadFile(file)
		if err != nil {
			return errorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return c.JSONBlob(http.StatusOK, data)
	}
	return s.echoRequest(c, m[1], route)
}

// echoRequest answers with a description of the request itself. Writes also
// get a generated key, standing in for the platform's created resource.
func (s *Server) echoRequest(c echo.Context, version, route string) error {
	req := c.Request()

	var body any
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "read body: "+err.Error())
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return errorResponse(c, http.StatusBadRequest, "request body is not valid JSON")
		}
	}

	data := map[string]any{
		"method":    req.Method,
		"version":   version,
		"route":     route,
		"query":     req.URL.Query(),
		"body":      body,
		"requestId": req.Header.Get(echo.HeaderXRequestID),
	}
	status := http.StatusOK
	if req.Method == http.MethodPost {
		data["key"] = uuid.NewString()
		status = http.StatusCreated
	}

	out, err := json.Marshal(map[string]any{"data": data})
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSONBlob(status, out)
}

func errorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{
		"errors": []map[string]string{{"message": message}},
	})
}
