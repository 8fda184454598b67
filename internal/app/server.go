// Package app assembles the hostel backend from configuration: database,
// services, event subscribers, receipt pipeline and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	apphostel "github.com/hostel/backend/internal/application/hostel"
	appidentity "github.com/hostel/backend/internal/application/identity"
	"github.com/hostel/backend/internal/infrastructure/auth"
	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/hostel/backend/internal/infrastructure/event"
	"github.com/hostel/backend/internal/infrastructure/persistence"
	"github.com/hostel/backend/internal/infrastructure/printing"
	"github.com/hostel/backend/internal/infrastructure/storage"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"github.com/hostel/backend/internal/interfaces/http/handler"
	"github.com/hostel/backend/internal/interfaces/http/middleware"
	"github.com/hostel/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// Server is a fully wired HTTP server with its background workers
type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *persistence.Database
	engine  *gin.Engine
	http    *http.Server
	bus     *event.InMemoryEventBus
	metrics *telemetry.BusinessMetrics
	closers []func() error
}

// NewServer wires every component. Background workers run until ctx is
// done or Close is called.
func NewServer(ctx context.Context, cfg *config.Config, log *zap.Logger, tel *Telemetry) (*Server, error) {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.SetupValidator(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	db, err := OpenDatabase(cfg, log)
	if err != nil {
		return nil, err
	}
	s := &Server{cfg: cfg, log: log, db: db}
	s.closers = append(s.closers, db.Close)
	log.Info("Database connected", zap.String("driver", db.Driver))

	if tel.Pipeline.MetricsEnabled() {
		dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, tel.Pipeline.Meter("hostel.database"), log)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to register database metrics: %w", err)
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			dbMetrics.SamplePool(ctx, sqlDB, cfg.Telemetry.MetricsInterval)
		}
		s.closers = append(s.closers, func() error { dbMetrics.Stop(); return nil })
	}

	blacklist, closeBlacklist := auth.NewTokenBlacklist(ctx, cfg.Redis, log)
	s.closers = append(s.closers, closeBlacklist)

	// Identity adapter
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := appidentity.NewAuthService(
		persistence.NewGormUserRepository(db.DB),
		jwtService,
		blacklist,
		appidentity.AuthServiceConfig{
			MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
			LockDuration:     cfg.Auth.LockDuration,
			RevokeTTL:        cfg.JWT.RefreshTokenExpiration,
		},
		log,
	)

	// Hostel services share one transaction scope and one access gate
	scope := persistence.NewGormTransactionScope(db.DB)
	gate := apphostel.NewGate(authService)
	roomService := apphostel.NewRoomService(scope, gate, log)
	tenantService := apphostel.NewTenantService(scope, gate, log)
	billService := apphostel.NewBillService(scope, gate, log)
	complaintService := apphostel.NewComplaintService(scope, gate, log)
	dashboardService := apphostel.NewDashboardService(scope, gate)

	if err := s.startEvents(ctx, tel, roomService, tenantService, billService, complaintService); err != nil {
		_ = s.Close()
		return nil, err
	}

	receiptService, err := s.newReceiptService(ctx, scope, gate)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	authMW := middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})
	guards := router.Guards{
		Authenticate:  authMW,
		Privileged:    middleware.RequirePrivileged(),
		AuthRateLimit: s.authRateLimit(ctx),
		AfterAuth:     []gin.HandlerFunc{middleware.TracingAttributeInjector()},
	}
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService, tenantService),
		Room:      handler.NewRoomHandler(roomService),
		Tenant:    handler.NewTenantHandler(tenantService, dashboardService),
		Bill:      handler.NewBillHandler(billService, receiptService),
		Complaint: handler.NewComplaintHandler(complaintService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	security := middleware.DefaultSecurityConfig()
	security.HSTSEnabled = cfg.App.IsProduction()
	profiling := middleware.DefaultProfilingConfig()
	profiling.Enabled = tel.Profiler.IsEnabled()

	s.engine = router.NewEngine(router.EngineConfig{
		Logger:   log,
		HTTP:     cfg.HTTP,
		Security: security,
		Tracing: middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		},
		Profiling: profiling,
		Meter:     tel.HTTPMeter(),
	})
	router.SystemRoutes(s.engine, handler.NewHealthHandler(db, Version), cfg.Swagger, authMW)
	api := router.Mount(s.engine, handlers, guards)
	log.Info("Routes registered", zap.String("base_path", api.BasePath()), zap.Int("routes", len(api.Routes())))

	s.http = &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        s.engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}
	return s, nil
}

// startEvents runs the in-memory bus with the activity log and business
// metrics subscribers and hands it to the services as their publisher.
func (s *Server) startEvents(ctx context.Context, tel *Telemetry, rooms *apphostel.RoomService, tenants *apphostel.TenantService, bills *apphostel.BillService, complaints *apphostel.ComplaintService) error {
	metrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:  tel.Pipeline.Meter("hostel.business"),
		Logger: s.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create business metrics: %w", err)
	}
	s.metrics = metrics
	s.closers = append(s.closers, func() error { metrics.Stop(); return nil })
	if tel.Pipeline.MetricsEnabled() {
		metrics.StartPeriodicCollection(ctx, persistence.NewGormStatsProvider(s.db.DB), s.cfg.Telemetry.MetricsInterval)
	}

	s.bus = event.NewInMemoryEventBus(s.log)
	activity := event.NewActivityLogHandler(event.NewHostelCodec(), s.log)
	recorder := event.NewMetricsHandler(metrics)
	s.bus.Subscribe(activity)
	s.bus.Subscribe(recorder)
	if err := s.bus.Start(ctx); err != nil {
		return fmt.Errorf("failed to start event bus: %w", err)
	}
	s.closers = append(s.closers, func() error { return s.bus.Stop(context.Background()) })

	rooms.SetEventPublisher(s.bus)
	tenants.SetEventPublisher(s.bus)
	bills.SetEventPublisher(s.bus)
	complaints.SetEventPublisher(s.bus)

	s.log.Info("Event handlers registered",
		zap.Strings("activity_events", activity.EventTypes()),
		zap.Strings("metrics_events", recorder.EventTypes()),
	)
	return nil
}

// newReceiptService builds the receipt pipeline: the HTML template always,
// headless Chrome for PDFs and S3 for download links when configured.
func (s *Server) newReceiptService(ctx context.Context, scope apphostel.TransactionScope, gate *apphostel.Gate) (*apphostel.ReceiptService, error) {
	rc := s.cfg.Receipt
	renderer, err := printing.NewReceiptRenderer(printing.RendererConfig{
		Locale:   rc.Locale,
		Currency: rc.Currency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load receipt template: %w", err)
	}

	format := apphostel.ReceiptFormatHTML
	if rc.PDFEnabled {
		format = apphostel.ReceiptFormatPDF
	}
	receipts := apphostel.NewReceiptService(scope, gate, renderer, apphostel.ReceiptServiceConfig{
		HostelName:     rc.HostelName,
		LinkExpiration: s.cfg.Storage.PresignExpiration,
		DefaultFormat:  format,
	}, s.log)

	if rc.PDFEnabled {
		converter, err := printing.NewChromedpConverter(printing.ChromedpConfig{
			ExecPath:    rc.ChromePath,
			Timeout:     rc.Timeout,
			NoSandbox:   os.Geteuid() == 0,
			PaperWidth:  rc.PaperWidth,
			PaperHeight: rc.PaperHeight,
			Logger:      s.log,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create PDF converter: %w", err)
		}
		receipts.SetPDFConverter(converter)
		s.closers = append(s.closers, converter.Close)
		s.log.Info("PDF receipts enabled")
	}

	if s.cfg.Storage.Enabled {
		store, err := storage.NewS3ReceiptStore(&s.cfg.Storage,
			storage.WithLogger(s.log),
			storage.WithPresignExpiration(s.cfg.Storage.PresignExpiration))
		if err != nil {
			return nil, fmt.Errorf("failed to create receipt store: %w", err)
		}
		if err := store.EnsureBucket(ctx); err != nil {
			s.log.Warn("Receipt bucket not ready", zap.String("bucket", store.Bucket()), zap.Error(err))
		}
		receipts.SetStore(store)
		s.log.Info("Receipt storage enabled", zap.String("bucket", store.Bucket()))
	}

	return receipts, nil
}

// authRateLimit throttles login and sign-up per client IP, sharing counters
// through Redis when it is reachable.
func (s *Server) authRateLimit(ctx context.Context) gin.HandlerFunc {
	hc := s.cfg.HTTP
	if !hc.AuthRateLimitEnabled {
		return nil
	}

	if s.cfg.Redis.Enabled {
		client, err := auth.NewRedisClient(ctx, s.cfg.Redis)
		if err == nil {
			s.closers = append(s.closers, client.Close)
			s.log.Info("Auth rate limiting enabled (redis)",
				zap.Int("requests", hc.AuthRateLimitRequests),
				zap.Duration("window", hc.AuthRateLimitWindow))
			return middleware.RateLimit(middleware.NewRedisLimiter(client, hc.AuthRateLimitRequests, hc.AuthRateLimitWindow), s.log)
		}
		s.log.Warn("Redis unavailable, rate limiting in memory", zap.Error(err))
	}

	limiter := middleware.NewMemoryLimiter(hc.AuthRateLimitRequests, hc.AuthRateLimitWindow)
	go limiter.Cleanup(ctx, hc.AuthRateLimitWindow)
	s.log.Info("Auth rate limiting enabled (memory)",
		zap.Int("requests", hc.AuthRateLimitRequests),
		zap.Duration("window", hc.AuthRateLimitWindow))
	return middleware.RateLimit(limiter, s.log)
}

// Handler exposes the gin engine, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is done, then shuts down gracefully within the
// configured timeout
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server starting", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.log.Info("Server exited gracefully")
	return nil
}

// Close releases resources in reverse order of acquisition
func (s *Server) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
