package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/point-of-sales/storefront-service/config"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/controller"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/countdown"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/fetcher"
	circuitbreaker "github.com/alimikegami/point-of-sales/storefront-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/infrastructure/metrics"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/infrastructure/scheduler"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/infrastructure/tracing"
	custommiddleware "github.com/alimikegami/point-of-sales/storefront-service/internal/middleware"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/repository"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/richtext"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/service"
	"github.com/alimikegami/point-of-sales/storefront-service/pkg/httpclient"
	"github.com/alimikegami/point-of-sales/storefront-service/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	kafkago "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config *config.Config
	Server *echo.Echo

	// Registry receives the HTTP and fetch metrics. Nil means the Prometheus default
	// registry.
	Registry *prometheus.Registry

	Clock *countdown.Clock

	scheduler      gocron.Scheduler
	tracerProvider *trace.TracerProvider
	kafkaConn      *kafkago.Conn
	metricsServer  *echo.Echo
	cancel         context.CancelFunc
}

// SetupLogger installs the global zerolog logger at the given level, defaulting to info.
func SetupLogger(level string) {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func (app *App) registerer() prometheus.Registerer {
	if app.Registry != nil {
		return app.Registry
	}
	return prometheus.DefaultRegisterer
}

func (app *App) gatherer() prometheus.Gatherer {
	if app.Registry != nil {
		return app.Registry
	}
	return prometheus.DefaultGatherer
}

// Build wires every component and registers the routes without starting any listener.
func (app *App) Build() error {
	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost, app.Config.Environment)
	if err != nil {
		log.Error().Err(err).Str("component", "Tracing").Msg("Failed to initialize tracing")
	}
	app.tracerProvider = traceProvider

	observers := []fetcher.Observer{fetcher.LogObserver{}}
	fetchMetrics, err := metrics.NewFetchObserver(app.registerer())
	if err != nil {
		return fmt.Errorf("registering fetch metrics: %w", err)
	}
	observers = append(observers, fetchMetrics)
	if publisher := app.attemptPublisher(); publisher != nil {
		go publisher.Run(ctx)
		observers = append(observers, publisher)
	}

	endpoints, err := config.LoadEndpoints(app.Config.BackendConfig.EndpointsFile)
	if err != nil {
		return err
	}
	repo := repository.CreateNewRepository(
		fetcher.New(observers...),
		httpclient.NewClient(app.Config.BackendConfig.Timeout, app.Config.BackendConfig.MaxBodyBytes),
		circuitbreaker.NewRegistry(),
		app.Config.BackendConfig.BaseURL,
		endpoints,
	)

	if app.Clock == nil {
		app.Clock = countdown.NewClock(countdown.FromDuration(app.Config.PromoConfig.Countdown))
	}
	if app.scheduler, err = scheduler.CreateScheduler(); err != nil {
		return err
	}
	tickInterval := app.Config.PromoConfig.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	if err := app.Clock.Mount(app.scheduler, tickInterval); err != nil {
		return fmt.Errorf("mounting countdown: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	if app.tracerProvider != nil {
		tracer := app.tracerProvider.Tracer(tracing.ServiceName)
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				c.SetRequest(c.Request().WithContext(ctx))
				return next(c)
			}
		})
	}

	// no subsystem prefix, so request metrics aggregate with the other services
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "",
		Registerer: app.registerer(),
	}))

	g := e.Group("/api/v1")
	g.Use(custommiddleware.Logger)
	g.Use(custommiddleware.ForwardAuthorization)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	storefrontService := service.CreateStorefrontService(repo, app.Clock, richtext.NewRenderer(), app.Config)
	dashboardService := service.CreateDashboardService(repo, app.Config)
	controller.CreateStorefrontController(g, storefrontService)
	controller.CreateDashboardController(g, dashboardService)

	app.Server = e
	return nil
}

func (app *App) attemptPublisher() *kafka.AttemptPublisher {
	if app.Config.KafkaConfig.BrokerAddress == "" {
		return nil
	}

	conn, err := kafka.CreateKafkaProducer(app.Config)
	if err != nil {
		log.Error().Err(err).Str("component", "Kafka").Msg("fetch attempt events disabled")
		return nil
	}
	app.kafkaConn = conn
	return kafka.NewAttemptPublisher(conn)
}

func (app *App) Start() error {
	SetupLogger(app.Config.LogLevel)

	if err := app.Build(); err != nil {
		return err
	}
	app.scheduler.Start()

	app.metricsServer = echo.New()
	app.metricsServer.HideBanner = true
	app.metricsServer.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: app.gatherer()}))
	go func() {
		if err := app.metricsServer.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	log.Info().Str("component", "App").Str("port", app.Config.ServicePort).Msg("starting storefront service")
	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// StopServer shuts the listeners down and releases the tick job, tracer and broker
// connection. It is safe to call after a failed Build.
func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errList []error
	if app.Server != nil {
		errList = append(errList, app.Server.Shutdown(ctx))
	}
	if app.metricsServer != nil {
		errList = append(errList, app.metricsServer.Shutdown(ctx))
	}
	if app.Clock != nil {
		errList = append(errList, app.Clock.Unmount())
	}
	if app.scheduler != nil {
		errList = append(errList, app.scheduler.Shutdown())
	}
	if app.cancel != nil {
		app.cancel()
	}
	if app.kafkaConn != nil {
		errList = append(errList, app.kafkaConn.Close())
	}
	if app.tracerProvider != nil {
		errList = append(errList, app.tracerProvider.Shutdown(ctx))
	}
	return errors.Join(errList...)
}
