package server

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	pkgmdw "github.com/nguyentranbao-ct/catalog-console/internal/server/middleware"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"go.uber.org/fx"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
	socket *SocketHandler,
) error {
	e, err := NewEcho(conf, handler, socket)
	if err != nil {
		return err
	}
	log := logger.MustNamed("server")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := conf.Server.Addr()
				log.Infow("starting HTTP server", "addr", addr)
				if err := e.Start(addr); !errors.Is(err, http.ErrServerClosed) {
					log.Errorw("HTTP server stopped", "error", err)
					_ = sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
	return nil
}

// NewEcho builds the HTTP server with every route registered.
func NewEcho(conf *config.Config, handler Controller, socket *SocketHandler) (*echo.Echo, error) {
	origins, err := regexp.Compile(conf.Server.CORSOrigin)
	if err != nil {
		return nil, err
	}
	httpLog := logger.MustNamed("http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(httpLog)

	logConfig := pkgmdw.LogRequestConfig{
		Logger: httpLog,
		Enabled: func(c echo.Context) bool {
			uri := c.Request().URL.Path
			return uri != "/health" && uri != "/metrics" && !strings.HasSuffix(uri, "/ws")
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.CORS(origins))
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			httpLog.Errorw("PANIC RECOVER", "error", err, "stack", string(stack), "request_id", pkgmdw.GetRequestID(c))
			return err
		},
	}))

	e.GET("/health", handler.Health)

	api := e.Group("/api/v1")

	products := api.Group("/products")
	products.GET("", handler.ListProducts)
	products.POST("", handler.CreateProduct)
	products.GET("/:id", handler.GetProduct)
	products.PUT("/:id", handler.UpdateProduct)
	products.DELETE("/:id", handler.DeleteProduct)

	display := api.Group("/display")
	display.GET("", pkgmdw.WrapHandler(handler.GetDisplay))
	display.POST("/load", pkgmdw.WrapHandler(handler.LoadDisplay))
	display.GET("/listing", handler.GetDisplayListing)
	display.GET("/ws", socket.ServeDisplay)

	console := api.Group("/console")
	console.GET("", pkgmdw.WrapHandler(handler.GetConsole))
	console.PUT("", pkgmdw.WrapHandler(handler.UpdateConsole))
	console.POST("/clear", pkgmdw.WrapHandler(handler.ClearConsole))
	console.POST("/send", pkgmdw.WrapHandler(handler.SendConsole))

	return e, nil
}
