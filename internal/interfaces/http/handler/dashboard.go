package handler

import (
	"github.com/gin-gonic/gin"
	apphostel "github.com/hostel/backend/internal/application/hostel"
)

// DashboardHandler serves the administrator overview
type DashboardHandler struct {
	BaseHandler
	dashboardService *apphostel.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *apphostel.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// @ID           dashboardStats
// @Summary      Administrator dashboard
// @Description  Counts of tenants, rooms, unpaid bills and pending complaints with the five most recent of each
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.Response{data=apphostel.DashboardStats}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context(), h.Actor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
