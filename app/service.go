package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/kilianp07/renewables/api"
	"github.com/kilianp07/renewables/api/forecast"
	"github.com/kilianp07/renewables/config"
	"github.com/kilianp07/renewables/core/dataset"
	coremetrics "github.com/kilianp07/renewables/core/metrics"
	coremqtt "github.com/kilianp07/renewables/core/mqtt"
	"github.com/kilianp07/renewables/core/projection"
	"github.com/kilianp07/renewables/core/session"
	"github.com/kilianp07/renewables/infra/logger"
	"github.com/kilianp07/renewables/infra/metrics"
	"github.com/kilianp07/renewables/infra/mqtt"
	"github.com/kilianp07/renewables/internal/eventbus"
)

// busBuffer is the per-subscriber capacity of the update bus.
const busBuffer = 32

// Service wires the projection engine, the session and the outer adapters.
type Service struct {
	Session   *session.Session
	Projector projection.Projector
	Data      *dataset.Dataset
	Policy    projection.Policy

	bus         *eventbus.Bus[session.Update]
	sink        coremetrics.ProjectionSink
	publisher   coremqtt.Publisher
	httpAddr    string
	token       string
	metricsAddr string
	autoplay    bool
	log         logger.Logger
	ready       chan string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.Setup(logger.Options{Level: cfg.Logging.Level, Console: cfg.Logging.Console}); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logg := logger.New("service")

	proj, err := NewProjector(cfg.Forecast)
	if err != nil {
		return nil, err
	}
	sink, err := coremetrics.NewProjectionSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sinks: %w", err)
	}

	data := dataset.Default()
	policy := cfg.Forecast.Policy()
	bus := eventbus.NewBuffered[session.Update](busBuffer)
	sess, err := session.New(proj, data, policy, bus, logger.New("session"), cfg.Timeline.Options(cfg.Forecast.Horizon))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	svc := &Service{
		Session:     sess,
		Projector:   proj,
		Data:        data,
		Policy:      policy,
		bus:         bus,
		sink:        sink,
		httpAddr:    cfg.HTTP.Address,
		token:       cfg.HTTP.Token,
		metricsAddr: cfg.Metrics.Address,
		autoplay:    cfg.Timeline.Autoplay,
		log:         logg,
		ready:       make(chan string, 1),
	}
	if cfg.MQTT.Broker != "" {
		pub, err := mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		svc.publisher = pub
	}
	return svc, nil
}

// NewProjector builds the engine from the forecast section, memoized unless
// the cache is disabled.
func NewProjector(cfg config.ForecastConfig) (projection.Projector, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("scenario catalog: %w", err)
	}
	var proj projection.Projector = projection.NewEngine(catalog)
	if cfg.CacheSize > 0 {
		proj = projection.NewCache(proj, cfg.CacheSize)
	}
	return proj, nil
}

// Handler returns the API routes served by Run.
func (s *Service) Handler() http.Handler {
	return api.NewRouter(api.Options{
		Forecast: forecast.Deps{Projector: s.Projector, Data: s.Data, Policy: s.Policy},
		Timeline: s.Session,
		Token:    s.token,
	})
}

// Ready yields the API listen address once the server accepts connections.
func (s *Service) Ready() <-chan string { return s.ready }

// Run starts every component and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if _, nop := s.sink.(coremetrics.NopSink); !nop {
		metrics.StartCollector(ctx, s.bus, s.sink, logger.New("collector"))
	}
	if s.publisher != nil {
		mqtt.StartForwarder(ctx, s.bus, s.publisher, logger.New("forwarder"))
	}
	// the initial projection was computed before anyone subscribed
	s.bus.Publish(s.Session.Current())

	if s.autoplay {
		if _, err := s.Session.TogglePlay(); err != nil {
			s.log.Errorf("autoplay: %v", err)
		}
	}
	go func() {
		if err := s.Session.Run(ctx); err != nil {
			s.log.Errorf("timeline: %v", err)
		}
	}()
	if s.metricsAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.metricsAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	return s.serve(ctx)
}

func (s *Service) serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpAddr, err)
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()
	s.log.Infof("serving api on %s", ln.Addr())
	s.ready <- ln.Addr().String()
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.publisher != nil {
		s.publisher.Close()
	}
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	s.bus.Close()
	return nil
}
