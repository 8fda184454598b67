package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	apphostel "github.com/hostel/backend/internal/application/hostel"
	appidentity "github.com/hostel/backend/internal/application/identity"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/infrastructure/auth"
	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/hostel/backend/internal/infrastructure/persistence"
	"github.com/hostel/backend/internal/infrastructure/persistence/models"
	"github.com/hostel/backend/internal/infrastructure/printing"
	"github.com/hostel/backend/internal/infrastructure/storage"
	"github.com/hostel/backend/internal/interfaces/http/dto"
	"github.com/hostel/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
}

type fakePDFConverter struct{}

func (fakePDFConverter) ConvertHTML(_ context.Context, _, title string) ([]byte, error) {
	return []byte("%PDF-1.4 " + title), nil
}

// testServer wires the handlers to real services over in-memory SQLite
type testServer struct {
	t        *testing.T
	engine   *gin.Engine
	db       *gorm.DB
	jwt      *auth.JWTService
	store    *storage.MemoryReceiptStore
	receipts *apphostel.ReceiptService
	admin    identity.Identity
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	log := zap.NewNop()
	scope := persistence.NewGormTransactionScope(db)
	gate := apphostel.NewGate(nil)
	users := persistence.NewGormUserRepository(db)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "handler-test-secret-32-characters!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "hostel-test",
		MaxRefreshCount:        5,
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	authService := appidentity.NewAuthService(users, jwtService, blacklist, appidentity.DefaultAuthServiceConfig(), log)

	renderer, err := printing.NewReceiptRenderer(printing.RendererConfig{Currency: "INR"})
	require.NoError(t, err)
	receipts := apphostel.NewReceiptService(scope, gate, renderer, apphostel.ReceiptServiceConfig{
		HostelName:     "Test Hostel",
		LinkExpiration: time.Hour,
		StoragePrefix:  "receipts",
	}, log)

	rooms := apphostel.NewRoomService(scope, gate, log)
	tenants := apphostel.NewTenantService(scope, gate, log)
	bills := apphostel.NewBillService(scope, gate, log)
	complaints := apphostel.NewComplaintService(scope, gate, log)
	dashboard := apphostel.NewDashboardService(scope, gate)

	authHandler := NewAuthHandler(authService, tenants)
	roomHandler := NewRoomHandler(rooms)
	tenantHandler := NewTenantHandler(tenants, dashboard)
	billHandler := NewBillHandler(bills, receipts)
	complaintHandler := NewComplaintHandler(complaints)
	dashboardHandler := NewDashboardHandler(dashboard)
	healthHandler := NewHealthHandler(sqlDB, "test")

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/health", healthHandler.Health)

	v1 := r.Group("/api/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/refresh", authHandler.RefreshToken)

	protected := v1.Group("", middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	}))
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", authHandler.Me)
	protected.PUT("/auth/password", authHandler.ChangePassword)
	protected.GET("/tenant/dashboard", tenantHandler.Dashboard)
	protected.GET("/tenant/profile", tenantHandler.Profile)
	protected.PUT("/tenant/profile", tenantHandler.UpdateProfile)
	protected.GET("/bills", billHandler.List)
	protected.GET("/bills/:id", billHandler.GetByID)
	protected.POST("/bills/:id/pay", billHandler.Pay)
	protected.GET("/bills/:id/receipt", billHandler.Receipt)
	protected.GET("/complaints", complaintHandler.List)
	protected.POST("/complaints", complaintHandler.File)

	admin := protected.Group("/admin", middleware.RequirePrivileged())
	admin.GET("/dashboard", dashboardHandler.Stats)
	admin.GET("/rooms", roomHandler.List)
	admin.POST("/rooms", roomHandler.Create)
	admin.GET("/rooms/:id", roomHandler.GetByID)
	admin.PUT("/rooms/:id", roomHandler.Update)
	admin.DELETE("/rooms/:id", roomHandler.Delete)
	admin.GET("/tenants", tenantHandler.List)
	admin.GET("/tenants/:id", tenantHandler.GetByID)
	admin.PUT("/tenants/:id/room", tenantHandler.AssignRoom)
	admin.PUT("/tenants/:id/profile", tenantHandler.UpdateTenantProfile)
	admin.GET("/bills", billHandler.List)
	admin.POST("/bills", billHandler.Create)
	admin.PUT("/bills/:id", billHandler.Update)
	admin.DELETE("/bills/:id", billHandler.Delete)
	admin.GET("/complaints", complaintHandler.List)
	admin.POST("/complaints/:id/resolve", complaintHandler.Resolve)

	warden, err := identity.NewStaffUser("warden", "warden-pass1")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), warden))

	return &testServer{
		t:        t,
		engine:   r,
		db:       db,
		jwt:      jwtService,
		store:    storage.NewMemoryReceiptStore("http://files.test"),
		receipts: receipts,
		admin:    warden.Identity(),
	}
}

func (s *testServer) tokenFor(id identity.Identity) string {
	s.t.Helper()
	pair, err := s.jwt.GenerateTokenPair(id)
	require.NoError(s.t, err)
	return pair.AccessToken
}

func (s *testServer) adminToken() string {
	return s.tokenFor(s.admin)
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// envelope decodes the response envelope, unmarshalling data into out when set
func envelope(t *testing.T, w *httptest.ResponseRecorder, out any) dto.Response {
	t.Helper()
	var raw struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *dto.ErrorInfo  `json:"error"`
		Meta    *dto.Meta       `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), w.Body.String())
	if out != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, out))
	}
	return dto.Response{Success: raw.Success, Error: raw.Error, Meta: raw.Meta}
}

// registerTenant signs a resident up through the API and logs them in
func (s *testServer) registerTenant(username string) (apphostel.TenantResponse, string) {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"username": username,
		"password": "resident-pass1",
		"phone":    "0123456789",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var tenant apphostel.TenantResponse
	envelope(s.t, w, &tenant)

	w = s.do(http.MethodPost, "/api/v1/auth/login", "", LoginRequest{Username: username, Password: "resident-pass1"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var login LoginResponse
	envelope(s.t, w, &login)
	return tenant, login.Token.AccessToken
}

func (s *testServer) createRoom(number string, capacity int, rent string) apphostel.RoomResponse {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/admin/rooms", s.adminToken(), map[string]any{
		"room_number": number,
		"capacity":    capacity,
		"rent":        rent,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var room apphostel.RoomResponse
	envelope(s.t, w, &room)
	return room
}

func (s *testServer) createBill(tenantID, month, amount string) apphostel.BillResponse {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/admin/bills", s.adminToken(), map[string]any{
		"tenant_id": tenantID,
		"month":     month,
		"amount":    amount,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var bill apphostel.BillResponse
	envelope(s.t, w, &bill)
	return bill
}
