package cmd

import (
	"log/slog"
	"net/http"

	"checkout/docs"
	httpin "checkout/internal/adapters/in/http"
	"checkout/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewWebServer builds the echo instance: middleware, health check, swagger
// UI and the validated API routes.
func NewWebServer(root *CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger.With("component", "http"))))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = docs.Register(swagger); err != nil {
		return nil, err
	}
	validator, err := httpin.NewRequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	api := e.Group("", validator)
	servers.RegisterHandlers(api, root.CreateHTTPServer())

	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}
