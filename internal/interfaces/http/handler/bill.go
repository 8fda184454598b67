package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apphostel "github.com/hostel/backend/internal/application/hostel"
	"github.com/hostel/backend/internal/interfaces/http/dto"
)

// BillListResponse is the data of a bill page. Totals is present when the
// page belongs to a single tenant.
type BillListResponse struct {
	Bills  []apphostel.BillResponse      `json:"bills"`
	Totals *apphostel.BillTotalsResponse `json:"totals,omitempty"`
}

// ReceiptLinkResponse points at a stored receipt
type ReceiptLinkResponse struct {
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
}

// ReceiptQuery selects how a receipt is delivered
type ReceiptQuery struct {
	Format   string `form:"format" binding:"omitempty,oneof=html pdf"`
	Delivery string `form:"delivery" binding:"omitempty,oneof=inline attachment link"`
}

// BillHandler handles monthly rent bills
type BillHandler struct {
	BaseHandler
	billService    *apphostel.BillService
	receiptService *apphostel.ReceiptService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(billService *apphostel.BillService, receiptService *apphostel.ReceiptService) *BillHandler {
	return &BillHandler{
		billService:    billService,
		receiptService: receiptService,
	}
}

// List godoc
// @Summary      List bills
// @Description  Residents see their own bills. Administrators may filter by tenant, status and month.
// @Tags         bills
// @Produce      json
// @Param        page       query int    false "Page number" default(1)
// @Param        page_size  query int    false "Page size"   default(20)
// @Param        tenant_id  query string false "Tenant ID" format(uuid)
// @Param        status     query string false "Unpaid or Paid"
// @Param        month      query string false "Billing month label"
// @Success      200 {object} dto.Response{data=BillListResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /bills [get]
// @Router       /admin/bills [get]
func (h *BillHandler) List(c *gin.Context) {
	var filter apphostel.BillListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.billService.List(c.Request.Context(), h.Actor(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := dto.NewPageResponse(result.Paginated)
	resp.Data = BillListResponse{
		Bills:  resp.Data.([]apphostel.BillResponse),
		Totals: result.Totals,
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary      Get bill by ID
// @Tags         bills
// @Produce      json
// @Param        id path string true "Bill ID" format(uuid)
// @Success      200 {object} dto.Response{data=apphostel.BillResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /bills/{id} [get]
// @Router       /admin/bills/{id} [get]
func (h *BillHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.Get(c.Request.Context(), h.Actor(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bill)
}

// Pay godoc
// @ID           payBill
// @Summary      Pay a bill
// @Description  Mark an unpaid bill as paid. Paying a paid bill is rejected with 409.
// @Tags         bills
// @Produce      json
// @Param        id path string true "Bill ID" format(uuid)
// @Success      200 {object} dto.Response{data=apphostel.BillResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /bills/{id}/pay [post]
func (h *BillHandler) Pay(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.Pay(c.Request.Context(), h.Actor(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bill)
}

// Receipt godoc
// @ID           billReceipt
// @Summary      Download a bill receipt
// @Description  Render the receipt of a paid bill as HTML or PDF. delivery=link returns a presigned URL when object storage is configured.
// @Tags         bills
// @Produce      html
// @Produce      application/pdf
// @Produce      json
// @Param        id       path  string true  "Bill ID" format(uuid)
// @Param        format   query string false "html or pdf"
// @Param        delivery query string false "inline, attachment or link"
// @Success      200 {file} binary
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /bills/{id}/receipt [get]
func (h *BillHandler) Receipt(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	var query ReceiptQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	receipt, err := h.receiptService.Generate(c.Request.Context(), h.Actor(c), id, query.Format)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if query.Delivery == "link" && receipt.DownloadURL != "" {
		h.Success(c, ReceiptLinkResponse{FileName: receipt.FileName, DownloadURL: receipt.DownloadURL})
		return
	}

	disposition := "attachment"
	if query.Delivery == "inline" {
		disposition = "inline"
	}
	c.Header("Content-Disposition", disposition+`; filename="`+receipt.FileName+`"`)
	c.Data(http.StatusOK, receipt.ContentType, receipt.Content)
}

// Create godoc
// @ID           createBill
// @Summary      Create a bill
// @Description  Bill a tenant for one month. A tenant has at most one bill per month.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body apphostel.CreateBillInput true "Bill details"
// @Success      201 {object} dto.Response{data=apphostel.BillResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req apphostel.CreateBillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	bill, err := h.billService.Create(c.Request.Context(), h.Actor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, bill)
}

// Update godoc
// @ID           updateBill
// @Summary      Update a bill
// @Description  Change the month or amount of an unpaid bill
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Bill ID" format(uuid)
// @Param        request body apphostel.UpdateBillInput true "Fields to change"
// @Success      200 {object} dto.Response{data=apphostel.BillResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/bills/{id} [put]
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	var req apphostel.UpdateBillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	bill, err := h.billService.Update(c.Request.Context(), h.Actor(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bill)
}

// Delete godoc
// @ID           deleteBill
// @Summary      Delete a bill
// @Tags         bills
// @Param        id path string true "Bill ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/bills/{id} [delete]
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	if err := h.billService.Delete(c.Request.Context(), h.Actor(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
