package server

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/apperr"
	mw "github.com/DjordjeVuckovic/ledger-explorer/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/ledger-explorer/pkg/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

const (
	GracefulShutdownTimeout = 10 * time.Second

	rateLimitExpiry = 3 * time.Minute
)

type Server struct {
	Echo *echo.Echo

	cfg           *Config
	healthChecker pkgserver.HealthChecker
	// operational endpoints skipped by access logs and the rate limiter
	opsPaths map[string]struct{}

	ctx  context.Context
	stop context.CancelFunc
}

// New creates the server. Its context is cancelled on SIGINT or SIGTERM.
func New(cfg *Config, healthChecker pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:          e,
		cfg:           cfg,
		healthChecker: healthChecker,
		opsPaths:      make(map[string]struct{}),
		ctx:           ctx,
		stop:          stop,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Pre(middleware.RemoveTrailingSlash())
	s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(mw.Logger(mw.WithSkipper(s.isOpsPath)))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	if s.cfg.RateLimitRPS > 0 {
		s.Echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: s.isOpsPath,
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(s.cfg.RateLimitRPS),
				Burst:     int(math.Ceil(s.cfg.RateLimitRPS)),
				ExpiresIn: rateLimitExpiry,
			}),
		}))
		slog.Info("Rate limiting enabled", "rps", s.cfg.RateLimitRPS)
	}

	return s
}

func (s *Server) SetupErrorHandler(opts ...apperr.HandlerOpt) *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler(opts...)
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.opsPaths[path] = struct{}{}
	s.Echo.GET(path, func(c echo.Context) error {
		if s.healthChecker == nil || !s.healthChecker.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.opsPaths[path] = struct{}{}
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

func (s *Server) SetupMetrics(path string, handler http.Handler) *Server {
	s.opsPaths[path] = struct{}{}
	s.Echo.GET(path, echo.WrapHandler(handler))
	return s
}

// Context is cancelled once shutdown begins
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

// Shutdown triggers the same path as an OS signal
func (s *Server) Shutdown() {
	s.stop()
}

// Start serves until the server context is cancelled, then drains in-flight
// requests for up to GracefulShutdownTimeout.
func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", s.cfg.Port, "http2", s.cfg.UseHttp2)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-s.ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("Server stopped")
	return nil
}

func (s *Server) isOpsPath(c echo.Context) bool {
	_, ok := s.opsPaths[c.Path()]
	return ok
}
