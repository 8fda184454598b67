package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apphostel "github.com/hostel/backend/internal/application/hostel"
	"github.com/hostel/backend/internal/interfaces/http/dto"
)

// RoomHandler handles room administration
type RoomHandler struct {
	BaseHandler
	roomService *apphostel.RoomService
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(roomService *apphostel.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// Create godoc
// @ID           createRoom
// @Summary      Create a room
// @Description  Add a room with a unique number, a capacity of at least one and a non-negative rent
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body apphostel.CreateRoomInput true "Room details"
// @Success      201 {object} dto.Response{data=apphostel.RoomResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req apphostel.CreateRoomInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), h.Actor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, room)
}

// GetByID godoc
// @ID           getRoom
// @Summary      Get room by ID
// @Tags         rooms
// @Produce      json
// @Param        id path string true "Room ID" format(uuid)
// @Success      200 {object} dto.Response{data=apphostel.RoomResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	room, err := h.roomService.Get(c.Request.Context(), h.Actor(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, room)
}

// List godoc
// @ID           listRooms
// @Summary      List rooms
// @Description  Page through rooms with their current occupancy
// @Tags         rooms
// @Produce      json
// @Param        page       query int    false "Page number"    default(1)
// @Param        page_size  query int    false "Page size"      default(20)
// @Param        search     query string false "Room number contains"
// @Param        order_by   query string false "room_number, capacity, rent or created_at"
// @Param        order_dir  query string false "asc or desc"
// @Success      200 {object} dto.Response{data=[]apphostel.RoomResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var filter apphostel.RoomListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.roomService.List(c.Request.Context(), h.Actor(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(*page))
}

// Update godoc
// @ID           updateRoom
// @Summary      Update a room
// @Description  Change number, capacity or rent. Capacity may not drop below the current occupancy.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Room ID" format(uuid)
// @Param        request body apphostel.UpdateRoomInput true "Fields to change"
// @Success      200 {object} dto.Response{data=apphostel.RoomResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	var req apphostel.UpdateRoomInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), h.Actor(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, room)
}

// Delete godoc
// @ID           deleteRoom
// @Summary      Delete a room
// @Description  Remove an empty room. Rooms with assigned tenants are rejected with 409.
// @Tags         rooms
// @Param        id path string true "Room ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUID(c, "id")
	if !ok {
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), h.Actor(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
