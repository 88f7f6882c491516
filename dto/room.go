package dto

import "bff/models"

// RoomTypeUpsertRequest là DTO cho request tạo/cập nhật loại phòng
type RoomTypeUpsertRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"min=0"`
	Images      []string `json:"images"`
	Facilities  []string `json:"facilities"`
}

// RoomUpsertRequest là DTO cho request tạo/cập nhật phòng vật lý
type RoomUpsertRequest struct {
	RoomNumber int  `json:"roomNumber" binding:"required"`
	RoomTypeID uint `json:"roomTypeId" binding:"required"`
}

// RoomsPageResponse là payload của trang danh sách phòng
type RoomsPageResponse struct {
	RoomTypes []models.RoomType `json:"roomTypes"`
	Rooms     []models.Room     `json:"rooms"`
}

// ScoredRoomType là loại phòng kèm điểm phù hợp với câu tìm kiếm
type ScoredRoomType struct {
	RoomType models.RoomType `json:"roomType"`
	Score    int             `json:"score"`
}
