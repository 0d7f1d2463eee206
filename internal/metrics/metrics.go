package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const namespace = "gamerbot"

// Outcomes recorded for handled commands.
const (
	OutcomeOK        = "ok"
	OutcomeUsage     = "usage"
	OutcomeError     = "error"
	OutcomeThrottled = "throttled"
)

type Metrics struct {
	Commands        *prometheus.CounterVec
	BackendRequests *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Number of chat commands dispatched, by trigger and outcome.",
			},
			[]string{"command", "outcome"},
		),
		BackendRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "backend",
				Name:      "requests_total",
				Help:      "Number of backend API requests, by method, path and status code.",
			},
			[]string{"method", "path", "status"},
		),
	}
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Commands,
		m.BackendRequests,
	}
}

func (m *Metrics) CommandHandled(command string, outcome string) {
	m.Commands.WithLabelValues(command, outcome).Inc()
}

func (m *Metrics) BackendRequest(method, path string, status int) {
	m.BackendRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// Serve exposes the collectors on GET /metrics until ctx is done.
func (m *Metrics) Serve(ctx context.Context, listen string) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(m.Collectors()...)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))

	l, err := net.Listen("tcp", listen)
	if err != nil {
		return fmt.Errorf("couldn't start metrics server: %w", err)
	}

	srv := http.Server{
		Handler:     mux,
		ReadTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		log.Info().Str("addr", l.Addr().String()).Msg("metrics server listening")
		err := srv.Serve(l)
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		log.Err(err).Msg("metrics server closed")
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
