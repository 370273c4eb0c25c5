// Package api отдаёт календарь по HTTP (echo): диапазон, день, выгрузка в Excel и картинка недели.
package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/service"
)

// CalendarReader часть CalendarService, нужная API
type CalendarReader interface {
	Range(ctx context.Context, from, to time.Time) (*service.RangeView, error)
	Day(ctx context.Context, date time.Time) ([]model.DisplayOccurrence, error)
	Week(ctx context.Context, date time.Time) (*service.WeekView, error)
	Location() *time.Location
	Now() time.Time
}

type Exporter interface {
	ExportRange(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error)
}

type (
	Options struct {
		Address        string
		Debug          bool
		DisableReqLogs bool
		Calendar       CalendarReader
		Export         Exporter
		Logger         *zap.Logger
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.HideBanner = true
	s.app.HidePort = true
	s.app.Debug = s.opts.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(requestLogger(s.opts.Logger))
	}
	// в режиме отладки паника должна быть видна сразу
	if !s.opts.Debug {
		s.app.Use(middleware.Recover())
	}

	s.app.HTTPErrorHandler = newHTTPErrorHandler(s.opts.Logger)

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	registerCalendarAPI(v1, s.opts.Calendar, s.opts.Export)
}

// Start блокирует до остановки сервера
func (s *server) Start() error {
	s.opts.Logger.Info("Starting HTTP API", zap.String("address", s.opts.Address))
	if err := s.app.Start(s.opts.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "School calendar API")
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Warn("HTTP request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("HTTP request", fields...)
			return nil
		},
	})
}
