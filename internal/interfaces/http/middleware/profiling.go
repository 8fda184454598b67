package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
)

// ProfilingConfig controls request labels on CPU profiles.
type ProfilingConfig struct {
	Enabled bool
	// Skip lists paths that are not labelled. A trailing "*" matches a prefix.
	Skip []string
}

func DefaultProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Enabled: true,
		Skip:    []string{"/health", "/swagger/*"},
	}
}

func (cfg ProfilingConfig) skipped(path string) bool {
	for _, pattern := range cfg.Skip {
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		} else if path == pattern {
			return true
		}
	}
	return false
}

// Profiling labels the samples taken while a request runs with its route
// pattern and method, so Pyroscope can break CPU time down per endpoint.
func Profiling(cfg ProfilingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return noop
	}
	return func(c *gin.Context) {
		if cfg.skipped(c.Request.URL.Path) {
			c.Next()
			return
		}
		labels := telemetry.HTTPRequestLabels(c.FullPath(), c.Request.Method)
		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
