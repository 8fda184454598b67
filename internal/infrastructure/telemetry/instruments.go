package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// ErrNoMeter is returned by Err when Instruments was built without a meter.
var ErrNoMeter = errors.New("telemetry: meter is nil")

// Instruments creates instruments on one meter and keeps the first failure,
// so a whole set is checked once with Err. Failed instruments are no-ops.
type Instruments struct {
	meter metric.Meter
	err   error
}

func NewInstruments(meter metric.Meter) *Instruments {
	in := &Instruments{meter: meter}
	if meter == nil {
		in.meter = noop.NewMeterProvider().Meter("")
		in.err = ErrNoMeter
	}
	return in
}

// Err reports the first instrument that could not be created.
func (in *Instruments) Err() error { return in.err }

func (in *Instruments) fail(name string, err error) {
	if in.err == nil {
		in.err = fmt.Errorf("failed to create instrument %s: %w", name, err)
	}
}

// Counter is a monotonic int64 sum.
type Counter struct{ c metric.Int64Counter }

func (in *Instruments) Counter(name, unit, description string) Counter {
	c, err := in.meter.Int64Counter(name, metric.WithUnit(unit), metric.WithDescription(description))
	if err != nil {
		in.fail(name, err)
		return Counter{noop.Int64Counter{}}
	}
	return Counter{c}
}

func (c Counter) Add(ctx context.Context, n int64, attrs ...attribute.KeyValue) {
	c.c.Add(ctx, n, metric.WithAttributes(attrs...))
}

func (c Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.Add(ctx, 1, attrs...)
}

// UpDownCounter is an int64 sum that may go down, such as requests in flight.
type UpDownCounter struct{ c metric.Int64UpDownCounter }

func (in *Instruments) UpDownCounter(name, unit, description string) UpDownCounter {
	c, err := in.meter.Int64UpDownCounter(name, metric.WithUnit(unit), metric.WithDescription(description))
	if err != nil {
		in.fail(name, err)
		return UpDownCounter{noop.Int64UpDownCounter{}}
	}
	return UpDownCounter{c}
}

func (c UpDownCounter) Add(ctx context.Context, n int64, attrs ...attribute.KeyValue) {
	c.c.Add(ctx, n, metric.WithAttributes(attrs...))
}

// Histogram is a float64 distribution. Buckets are explicit when given.
type Histogram struct{ h metric.Float64Histogram }

func (in *Instruments) Histogram(name, unit, description string, buckets ...float64) Histogram {
	opts := []metric.Float64HistogramOption{metric.WithUnit(unit), metric.WithDescription(description)}
	if len(buckets) > 0 {
		opts = append(opts, metric.WithExplicitBucketBoundaries(buckets...))
	}
	h, err := in.meter.Float64Histogram(name, opts...)
	if err != nil {
		in.fail(name, err)
		return Histogram{noop.Float64Histogram{}}
	}
	return Histogram{h}
}

func (h Histogram) Record(ctx context.Context, v float64, attrs ...attribute.KeyValue) {
	h.h.Record(ctx, v, metric.WithAttributes(attrs...))
}

// Seconds records d in seconds.
func (h Histogram) Seconds(ctx context.Context, d time.Duration, attrs ...attribute.KeyValue) {
	h.Record(ctx, d.Seconds(), attrs...)
}

// Gauge holds the last int64 value set.
type Gauge struct{ g metric.Int64Gauge }

func (in *Instruments) Gauge(name, unit, description string) Gauge {
	g, err := in.meter.Int64Gauge(name, metric.WithUnit(unit), metric.WithDescription(description))
	if err != nil {
		in.fail(name, err)
		return Gauge{noop.Int64Gauge{}}
	}
	return Gauge{g}
}

func (g Gauge) Set(ctx context.Context, v int64, attrs ...attribute.KeyValue) {
	g.g.Record(ctx, v, metric.WithAttributes(attrs...))
}

var (
	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPStatusCode = attribute.Key("http.status_code")
	AttrHTTPRoute      = attribute.Key("http.route")
	AttrPrivileged     = attribute.Key("privileged")

	AttrDBOperation = attribute.Key("db.operation")
	AttrDBTable     = attribute.Key("db.table")
)

// Bucket boundaries in seconds and bytes.
var (
	HTTPDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	DBDurationBuckets   = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
	BodySizeBuckets     = []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000, 5000000}
)
