package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withIdentity(id identity.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(IdentityKey, id)
		c.Next()
	}
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func TestHTTPMetrics_RecordsRequests(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	r := gin.New()
	r.Use(withIdentity(identity.Identity{UserID: uuid.New(), Privileged: true}))
	r.Use(HTTPMetrics(mp.Meter("test")))
	r.GET("/api/v1/rooms/:id", func(c *gin.Context) { c.String(http.StatusOK, "room") })

	serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/123", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/456", nil))

	data := collect(t, reader)

	total, ok := data["http_server_request_total"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, total.DataPoints, 1, "route pattern keeps a single series")
	dp := total.DataPoints[0]
	assert.Equal(t, int64(2), dp.Value)
	route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
	assert.Equal(t, "/api/v1/rooms/:id", route.AsString())
	privileged, _ := dp.Attributes.Value(telemetry.AttrPrivileged)
	assert.True(t, privileged.AsBool())

	duration, ok := data["http_server_request_duration_seconds"].(metricdata.Histogram[float64])
	require.True(t, ok)
	assert.Equal(t, uint64(2), duration.DataPoints[0].Count)

	active, ok := data["http_server_active_requests"].(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(0), active.DataPoints[0].Value)
}

func TestHTTPMetrics_NilMeter(t *testing.T) {
	r := gin.New()
	r.Use(HTTPMetrics(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestTracing_EnrichesAndMarksErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	userID := uuid.New()
	r := gin.New()
	r.Use(RequestID())
	r.Use(Tracing(TracingConfig{Enabled: true, ServiceName: "hostel-test", TracerProvider: tp}))
	r.Use(SpanErrorMarker())
	r.Use(withIdentity(identity.Identity{UserID: userID, Username: "warden", Privileged: true}))
	r.Use(TracingAttributeInjector())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))

	ended := recorder.Ended()
	require.Len(t, ended, 2)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, userID.String(), attrs["user_id"].AsString())
	assert.True(t, attrs["privileged"].AsBool())
	assert.NotEmpty(t, attrs["request_id"].AsString())
	assert.NotEqual(t, codes.Error, ended[0].Status().Code)

	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, "Not Found", ended[1].Status().Description)
}

func TestTracing_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(Tracing(TracingConfig{}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestProfiling_PassesThrough(t *testing.T) {
	var hits []string
	r := gin.New()
	r.Use(Profiling(DefaultProfilingConfig()))
	handler := func(c *gin.Context) {
		hits = append(hits, c.FullPath())
		c.Status(http.StatusOK)
	}
	r.GET("/health", handler)
	r.GET("/api/v1/bills/:id", handler)
	r.GET("/swagger/*any", handler)

	for _, path := range []string{"/health", "/api/v1/bills/1", "/swagger/index.html"} {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, path, nil)).Code)
	}
	assert.Equal(t, []string{"/health", "/api/v1/bills/:id", "/swagger/*any"}, hits)

	cfg := DefaultProfilingConfig()
	assert.True(t, cfg.skipped("/health"))
	assert.True(t, cfg.skipped("/swagger/doc.json"))
	assert.False(t, cfg.skipped("/healthz"))
	assert.False(t, cfg.skipped("/api/v1/rooms"))

	disabled := gin.New()
	disabled.Use(Profiling(ProfilingConfig{}))
	disabled.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	assert.Equal(t, http.StatusTeapot, serve(disabled, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestMemoryLimiter_Cleanup(t *testing.T) {
	l := NewMemoryLimiter(1, time.Millisecond)
	_, _, _ = l.Allow(context.Background(), "k")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Cleanup(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.windows) == 0
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
