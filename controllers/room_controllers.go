package controllers

import (
	"strconv"

	"bff/dto"
	"bff/response"
	"bff/services"

	"github.com/gin-gonic/gin"
)

// RoomController phục vụ trang danh sách phòng và trang chi tiết loại phòng
type RoomController struct {
	catalog *services.CatalogStore
}

func NewRoomController(catalog *services.CatalogStore) *RoomController {
	return &RoomController{catalog: catalog}
}

// GetRoomsPage trả về dữ liệu cho trang danh sách phòng:
// toàn bộ loại phòng kèm toàn bộ phòng vật lý
func (ct *RoomController) GetRoomsPage(c *gin.Context) {
	ctx := c.Request.Context()

	if err := ct.catalog.FetchRoomTypes(ctx); err != nil {
		response.UpstreamError(c, ct.catalog.LastError())
		return
	}
	if err := ct.catalog.FetchRooms(ctx); err != nil {
		response.UpstreamError(c, ct.catalog.LastError())
		return
	}

	response.Success(c, dto.RoomsPageResponse{
		RoomTypes: ct.catalog.RoomTypes(),
		Rooms:     ct.catalog.Rooms(),
	})
}

// GetRoomTypeDetail trả về chi tiết một loại phòng kèm danh sách phòng của nó
func (ct *RoomController) GetRoomTypeDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID loại phòng không hợp lệ")
		return
	}

	roomType, err := ct.catalog.FetchRoomTypeByID(c.Request.Context(), uint(id))
	if err != nil {
		response.UpstreamError(c, ct.catalog.LastError())
		return
	}

	response.Success(c, roomType)
}

// SearchRooms tìm loại phòng theo câu truy vấn tự do (tên, hạng phòng, tiện ích)
func (ct *RoomController) SearchRooms(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	if err := ct.catalog.FetchRoomTypes(c.Request.Context()); err != nil {
		response.UpstreamError(c, ct.catalog.LastError())
		return
	}

	results := services.SearchRoomTypes(query, ct.catalog.RoomTypes())
	response.Success(c, results)
}
