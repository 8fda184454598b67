package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apphostel "github.com/hostel/backend/internal/application/hostel"
	"github.com/hostel/backend/internal/interfaces/http/dto"
)

// TenantHandler handles resident profiles, both self-service and administrative
type TenantHandler struct {
	BaseHandler
	tenantService    *apphostel.TenantService
	dashboardService *apphostel.DashboardService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *apphostel.TenantService, dashboardService *apphostel.DashboardService) *TenantHandler {
	return &TenantHandler{
		tenantService:    tenantService,
		dashboardService: dashboardService,
	}
}

// Dashboard godoc
// @ID           tenantDashboard
// @Summary      Resident dashboard
// @Description  The caller's profile, room, bills, complaints and bill totals
// @Tags         tenant
// @Produce      json
// @Success      200 {object} dto.Response{data=apphostel.TenantDashboard}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tenant/dashboard [get]
func (h *TenantHandler) Dashboard(c *gin.Context) {
	overview, err := h.dashboardService.TenantOverview(c.Request.Context(), h.Actor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// Profile godoc
// @ID           getTenantProfile
// @Summary      Own tenant profile
// @Tags         tenant
// @Produce      json
// @Success      200 {object} dto.Response{data=apphostel.TenantResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tenant/profile [get]
func (h *TenantHandler) Profile(c *gin.Context) {
	tenant, err := h.tenantService.Mine(c.Request.Context(), h.Actor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// UpdateProfile godoc
// @ID           updateTenantProfile
// @Summary      Update own profile
// @Description  Change the caller's phone number and address
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        request body apphostel.UpdateProfileInput true "Contact details"
// @Success      200 {object} dto.Response{data=apphostel.TenantResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tenant/profile [put]
func (h *TenantHandler) UpdateProfile(c *gin.Context) {
	var req apphostel.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenant, err := h.tenantService.UpdateMyProfile(c.Request.Context(), h.Actor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// List godoc
// @ID           listTenants
// @Summary      List tenants
// @Tags         tenants
// @Produce      json
// @Param        page       query int    false "Page number"    default(1)
// @Param        page_size  query int    false "Page size"      default(20)
// @Param        search     query string false "Phone or address contains"
// @Param        room_id    query string false "Only tenants of this room" format(uuid)
// @Param        unassigned query bool   false "Only tenants without a room"
// @Success      200 {object} dto.Response{data=[]apphostel.TenantResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	var filter apphostel.TenantListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.tenantService.List(c.Request.Context(), h.Actor(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(*page))
}

// GetByID godoc
// @ID           getTenant
// @Summary      Get tenant by ID
// @Tags         tenants
// @Produce      json
// @Param        id path string true "Tenant ID" format(uuid)
// @Success      200 {object} dto.Response{data=apphostel.TenantResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/tenants/{id} [get]
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.Get(c.Request.Context(), h.Actor(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// AssignRoom godoc
// @ID           assignRoom
// @Summary      Assign or clear a tenant's room
// @Description  A null room_id moves the tenant out. The target room must have a free place.
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Tenant ID" format(uuid)
// @Param        request body apphostel.AssignRoomInput true "Target room"
// @Success      200 {object} dto.Response{data=apphostel.TenantResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/tenants/{id}/room [put]
func (h *TenantHandler) AssignRoom(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	var req apphostel.AssignRoomInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenant, err := h.tenantService.AssignRoom(c.Request.Context(), h.Actor(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// UpdateTenantProfile godoc
// @ID           adminUpdateTenantProfile
// @Summary      Update a tenant's profile
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Tenant ID" format(uuid)
// @Param        request body apphostel.UpdateProfileInput true "Contact details"
// @Success      200 {object} dto.Response{data=apphostel.TenantResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/tenants/{id}/profile [put]
func (h *TenantHandler) UpdateTenantProfile(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	var req apphostel.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenant, err := h.tenantService.UpdateProfile(c.Request.Context(), h.Actor(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}
