// Package middleware provides HTTP middleware for the hostel API.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type httpMetrics struct {
	requests     telemetry.Counter
	latency      telemetry.Histogram
	requestSize  telemetry.Histogram
	responseSize telemetry.Histogram
	inFlight     telemetry.UpDownCounter
}

// HTTPMetrics records request count, latency, body sizes and in-flight
// requests on meter. A nil meter disables it.
func HTTPMetrics(meter metric.Meter) gin.HandlerFunc {
	if meter == nil {
		return noop
	}
	in := telemetry.NewInstruments(meter)
	m := &httpMetrics{
		requests: in.Counter("http_server_request_total", "{request}", "Total number of HTTP requests"),
		latency: in.Histogram("http_server_request_duration_seconds", "s",
			"HTTP request latency distribution in seconds", telemetry.HTTPDurationBuckets...),
		requestSize: in.Histogram("http_server_request_size_bytes", "By",
			"HTTP request body size distribution in bytes", telemetry.BodySizeBuckets...),
		// receipts can be PDFs, so responses share the wide buckets
		responseSize: in.Histogram("http_server_response_size_bytes", "By",
			"HTTP response body size distribution in bytes", telemetry.BodySizeBuckets...),
		inFlight: in.UpDownCounter("http_server_active_requests", "{request}", "Number of currently active HTTP requests"),
	}
	if in.Err() != nil {
		return noop
	}
	return m.handle
}

func (m *httpMetrics) handle(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()

	m.inFlight.Add(ctx, 1)
	c.Next()
	m.inFlight.Add(ctx, -1)

	route := []attribute.KeyValue{
		telemetry.AttrHTTPMethod.String(c.Request.Method),
		telemetry.AttrHTTPRoute.String(routePattern(c)),
	}
	outcome := append(route[:len(route):len(route)], telemetry.AttrHTTPStatusCode.Int(c.Writer.Status()))
	if id, ok := GetIdentity(c); ok {
		outcome = append(outcome, telemetry.AttrPrivileged.Bool(id.IsPrivileged()))
	}

	m.requests.Inc(ctx, outcome...)
	m.latency.Seconds(ctx, time.Since(start), route...)
	if n := c.Request.ContentLength; n > 0 {
		m.requestSize.Record(ctx, float64(n), route...)
	}
	if n := c.Writer.Size(); n > 0 {
		m.responseSize.Record(ctx, float64(n), route...)
	}
}

// routePattern keeps one series per route instead of per raw path.
func routePattern(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unknown"
}

func noop(c *gin.Context) { c.Next() }
