package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type Metrics struct {
	HTTPRequests  metric.Int64Counter
	HTTPDuration  metric.Float64Histogram
	SessionHits   metric.Int64Counter
	SessionMisses metric.Int64Counter
	Notifications metric.Int64Counter
}

func Setup(serviceName string) (*Metrics, http.Handler, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	m := &Metrics{}

	m.HTTPRequests, err = meter.Int64Counter(
		"ink_http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, nil, err
	}

	m.HTTPDuration, err = meter.Float64Histogram(
		"ink_http_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
	)
	if err != nil {
		return nil, nil, err
	}

	m.SessionHits, err = meter.Int64Counter(
		"ink_session_store_hits_total",
		metric.WithDescription("Total number of refresh-token session store hits"),
	)
	if err != nil {
		return nil, nil, err
	}

	m.SessionMisses, err = meter.Int64Counter(
		"ink_session_store_misses_total",
		metric.WithDescription("Total number of refresh-token session store misses"),
	)
	if err != nil {
		return nil, nil, err
	}

	m.Notifications, err = meter.Int64Counter(
		"ink_notifications_created_total",
		metric.WithDescription("Total number of notifications fanned out"),
	)
	if err != nil {
		return nil, nil, err
	}

	handler := promhttp.Handler()
	return m, handler, nil
}

func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	labels := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.Int("status", status),
	)

	m.HTTPRequests.Add(ctx, 1, labels)
	m.HTTPDuration.Record(ctx, duration.Seconds(), labels)
}

func (m *Metrics) RecordSessionHit(ctx context.Context) {
	m.SessionHits.Add(ctx, 1)
}

func (m *Metrics) RecordSessionMiss(ctx context.Context) {
	m.SessionMisses.Add(ctx, 1)
}

func (m *Metrics) RecordNotification(ctx context.Context, notificationType string) {
	m.Notifications.Add(ctx, 1, metric.WithAttributes(attribute.String("type", notificationType)))
}
