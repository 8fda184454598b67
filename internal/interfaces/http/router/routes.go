package router

import (
	"github.com/gin-gonic/gin"
	"github.com/hostel/backend/internal/interfaces/http/handler"
)

// Handlers bundles the HTTP handlers mounted under the API prefix
type Handlers struct {
	Auth      *handler.AuthHandler
	Room      *handler.RoomHandler
	Tenant    *handler.TenantHandler
	Bill      *handler.BillHandler
	Complaint *handler.ComplaintHandler
	Dashboard *handler.DashboardHandler
}

// Guards holds the middleware that protects route groups. Authenticate and
// Privileged are required; the rest may be nil.
type Guards struct {
	// Authenticate validates the bearer token and sets the caller identity
	Authenticate gin.HandlerFunc
	// Privileged rejects callers that are not administrators
	Privileged gin.HandlerFunc
	// AuthRateLimit throttles login and sign-up
	AuthRateLimit gin.HandlerFunc
	// AfterAuth runs after Authenticate on every protected group
	AfterAuth []gin.HandlerFunc
}

func (g Guards) authenticated() []gin.HandlerFunc {
	return append([]gin.HandlerFunc{g.Authenticate}, g.AfterAuth...)
}

// HostelRoutes declares the hostel API: public auth endpoints, resident
// self-service and the administrator area
func HostelRoutes(h Handlers, g Guards) []*DomainGroup {
	authRoutes := NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", g.AuthRateLimit, h.Auth.Register)
	authRoutes.POST("/login", g.AuthRateLimit, h.Auth.Login)
	authRoutes.POST("/refresh", h.Auth.RefreshToken)

	session := authRoutes.Group("session", "").Use(g.authenticated()...)
	session.POST("/logout", h.Auth.Logout)
	session.GET("/me", h.Auth.Me)
	session.PUT("/password", h.Auth.ChangePassword)

	tenantRoutes := NewDomainGroup("tenant", "/tenant").Use(g.authenticated()...)
	tenantRoutes.GET("/dashboard", h.Tenant.Dashboard)
	tenantRoutes.GET("/profile", h.Tenant.Profile)
	tenantRoutes.PUT("/profile", h.Tenant.UpdateProfile)

	billRoutes := NewDomainGroup("bills", "/bills").Use(g.authenticated()...)
	billRoutes.GET("", h.Bill.List)
	billRoutes.GET("/:id", h.Bill.GetByID)
	billRoutes.POST("/:id/pay", h.Bill.Pay)
	billRoutes.GET("/:id/receipt", h.Bill.Receipt)

	complaintRoutes := NewDomainGroup("complaints", "/complaints").Use(g.authenticated()...)
	complaintRoutes.GET("", h.Complaint.List)
	complaintRoutes.POST("", h.Complaint.File)

	adminRoutes := NewDomainGroup("admin", "/admin").Use(g.authenticated()...).Use(g.Privileged)
	adminRoutes.GET("/dashboard", h.Dashboard.Stats)

	rooms := adminRoutes.Group("rooms", "/rooms")
	rooms.GET("", h.Room.List)
	rooms.POST("", h.Room.Create)
	rooms.GET("/:id", h.Room.GetByID)
	rooms.PUT("/:id", h.Room.Update)
	rooms.DELETE("/:id", h.Room.Delete)

	tenants := adminRoutes.Group("tenants", "/tenants")
	tenants.GET("", h.Tenant.List)
	tenants.GET("/:id", h.Tenant.GetByID)
	tenants.PUT("/:id/room", h.Tenant.AssignRoom)
	tenants.PUT("/:id/profile", h.Tenant.UpdateTenantProfile)

	bills := adminRoutes.Group("bills", "/bills")
	bills.GET("", h.Bill.List)
	bills.POST("", h.Bill.Create)
	bills.GET("/:id", h.Bill.GetByID)
	bills.PUT("/:id", h.Bill.Update)
	bills.DELETE("/:id", h.Bill.Delete)

	complaints := adminRoutes.Group("complaints", "/complaints")
	complaints.GET("", h.Complaint.List)
	complaints.POST("/:id/resolve", h.Complaint.Resolve)

	return []*DomainGroup{authRoutes, tenantRoutes, billRoutes, complaintRoutes, adminRoutes}
}
