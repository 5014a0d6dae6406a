package http

import (
	"log/slog"
	"net/http"

	_ "school/internal/generated/docs" // swagger registration
	"school/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance serving server: recovery, request
// logging, OpenAPI request validation, /health and /swagger/*.
func NewEcho(server *Server, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := newRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.OFF)
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.InfoContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}
