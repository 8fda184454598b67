package config

import (
	"errors"
	"fmt"
	"slices"
)

func (c *Config) validate() error {
	db := c.Database
	switch {
	case db.Driver != "postgres" && db.Driver != "sqlite":
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", db.Driver)
	case db.MaxOpenConns <= 0:
		return errors.New("database.max_open_conns must be positive")
	case db.MaxIdleConns < 0:
		return errors.New("database.max_idle_conns cannot be negative")
	case db.MaxIdleConns > db.MaxOpenConns:
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			db.MaxIdleConns, db.MaxOpenConns)
	case c.Auth.MaxLoginAttempts < 1:
		return errors.New("auth.max_login_attempts must be at least 1")
	case c.Telemetry.SamplingRatio < 0 || c.Telemetry.SamplingRatio > 1:
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	case c.Storage.Enabled && c.Storage.Bucket == "":
		return errors.New("storage.bucket is required when storage is enabled")
	}

	if c.App.IsProduction() {
		return c.validateProduction()
	}
	return nil
}

// validateProduction rejects settings that are only acceptable on a
// developer machine.
func (c *Config) validateProduction() error {
	checks := []struct {
		bad bool
		msg string
	}{
		{c.JWT.Secret == "", "jwt.secret is required in production"},
		{c.JWT.Secret == DefaultJWTSecret, "jwt.secret must not use the development default in production"},
		{len(c.JWT.Secret) < 32, "jwt.secret must be at least 32 characters in production"},
		{c.Database.Driver == "sqlite", "database.driver sqlite is not supported in production"},
		{c.Database.Password == "", "database.password is required in production"},
		{slices.Contains(c.HTTP.CORSAllowOrigins, "*"), "http.cors_allow_origins cannot be '*' in production"},
		{c.Swagger.Enabled && !c.Swagger.RequireAuth && len(c.Swagger.AllowedIPs) == 0,
			"swagger endpoint must be disabled, require authentication, or be IP restricted in production"},
		{c.Telemetry.DBLogFullSQL, "telemetry.db_log_full_sql must be false in production"},
	}
	for _, check := range checks {
		if check.bad {
			return errors.New(check.msg)
		}
	}
	return nil
}
