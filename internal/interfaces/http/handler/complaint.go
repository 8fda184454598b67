package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apphostel "github.com/hostel/backend/internal/application/hostel"
	"github.com/hostel/backend/internal/interfaces/http/dto"
)

// ComplaintHandler handles resident complaints
type ComplaintHandler struct {
	BaseHandler
	complaintService *apphostel.ComplaintService
}

// NewComplaintHandler creates a new ComplaintHandler
func NewComplaintHandler(complaintService *apphostel.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// List godoc
// @Summary      List complaints
// @Description  Residents see their own complaints. Administrators see all and may filter by tenant.
// @Tags         complaints
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size"   default(20)
// @Param        tenant_id query string false "Tenant ID" format(uuid)
// @Param        status    query string false "Pending or Resolved"
// @Success      200 {object} dto.Response{data=[]apphostel.ComplaintResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /complaints [get]
// @Router       /admin/complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	var filter apphostel.ComplaintListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.complaintService.List(c.Request.Context(), h.Actor(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(*page))
}

// File godoc
// @ID           fileComplaint
// @Summary      File a complaint
// @Description  Residents file for themselves. Administrators must pass tenant_id.
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        request body apphostel.FileComplaintInput true "Complaint"
// @Success      201 {object} dto.Response{data=apphostel.ComplaintResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /complaints [post]
func (h *ComplaintHandler) File(c *gin.Context) {
	var req apphostel.FileComplaintInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	complaint, err := h.complaintService.File(c.Request.Context(), h.Actor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, complaint)
}

// Resolve godoc
// @ID           resolveComplaint
// @Summary      Resolve a complaint
// @Description  Close a pending complaint. Resolving twice is rejected with 409.
// @Tags         complaints
// @Produce      json
// @Param        id path string true "Complaint ID" format(uuid)
// @Success      200 {object} dto.Response{data=apphostel.ComplaintResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/complaints/{id}/resolve [post]
func (h *ComplaintHandler) Resolve(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	complaint, err := h.complaintService.Resolve(c.Request.Context(), h.Actor(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, complaint)
}
