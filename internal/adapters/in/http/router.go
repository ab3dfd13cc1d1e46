package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	healthTimeout = 2 * time.Second
	maxBodySize   = "1M"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterConfig collects everything NewRouter wires together.
type RouterConfig struct {
	Server  ServerInterface
	Tokens  *TokenIssuer
	OpenAPI *openapi3.T
	Metrics *Metrics
	DB      Pinger
	Logger  *slog.Logger
}

type structValidator struct {
	validate *validator.Validate
}

func (v *structValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// NewRouter builds the echo instance with every route and middleware.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	document, err := cfg.OpenAPI.MarshalJSON()
	if err != nil {
		return nil, err
	}

	validateRequest, err := RequestValidator(cfg.OpenAPI)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Validator = &structValidator{validate: validator.New()}
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	requestLogger := cfg.Logger.With("component", "http")
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogError:     true,
			HandleError:  true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				level := slog.LevelInfo
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
				attrs := []slog.Attr{
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency),
					slog.String("request_id", v.RequestID),
				}
				if claims, ok := ClaimsFrom(c); ok {
					attrs = append(attrs, slog.String("user", claims.User))
				}
				requestLogger.LogAttrs(c.Request().Context(), level, "request", attrs...)
				return nil
			},
		}),
		middleware.Recover(),
		middleware.BodyLimit(maxBodySize),
		cfg.Metrics.Middleware(),
	)

	e.GET("/health", healthHandler(cfg.DB))
	e.GET("/metrics", cfg.Metrics.Handler())
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, document)
	})
	e.GET("/api-docs/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	RegisterHandlers(e, cfg.Server,
		[]echo.MiddlewareFunc{validateRequest},
		[]echo.MiddlewareFunc{BearerAuth(cfg.Tokens), validateRequest},
	)

	return e, nil
}

func healthHandler(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return c.String(http.StatusServiceUnavailable, "Unhealthy")
		}

		return c.String(http.StatusOK, "Healthy")
	}
}
