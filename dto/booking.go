package dto

import "bff/models"

// RoomRequest là yêu cầu số lượng phòng theo loại trong một booking
type RoomRequest struct {
	RoomTypeID uint `json:"roomTypeId"`
	Quantity   int  `json:"quantity"`
}

// CreateBookingRequest là payload gửi lên backend khi đặt phòng online
type CreateBookingRequest struct {
	UserID       uint          `json:"userId"`
	RoomRequests []RoomRequest `json:"roomRequests"`
	CheckIn      string        `json:"checkIn"`
	CheckOut     string        `json:"checkOut"`
	Adults       int           `json:"adults"`
	Children     int           `json:"children"`
}

// OnlineBookData là payload data backend trả về sau khi đặt phòng;
// URL khác rỗng nghĩa là phải chuyển hướng sang cổng thanh toán
type OnlineBookData struct {
	Booking models.Booking `json:"booking"`
	URL     string         `json:"url,omitempty"`
}

// BookingSubmitResult là kết quả một lượt đặt phòng trả về cho trình duyệt
type BookingSubmitResult struct {
	Success          bool            `json:"success"`
	RedirectURL      string          `json:"redirectUrl,omitempty"`
	Booking          *models.Booking `json:"booking,omitempty"`
	Message          string          `json:"message,omitempty"`
	ProvisionalTotal float64         `json:"provisionalTotal"`
}

// SubmitBookingRequest là form đặt phòng từ trang chi tiết phòng
type SubmitBookingRequest struct {
	RoomTypeID      uint   `json:"roomTypeId" binding:"required"`
	SelectedRoomIDs []uint `json:"selectedRoomIds"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	Adults          int    `json:"adults" binding:"min=1"`
	Children        int    `json:"children" binding:"min=0"`
}

// AvailabilityPageResponse gộp hai lượt kiểm tra cho trang chi tiết phòng:
// số phòng trống theo loại và phân hoạch phòng cụ thể trống / đã đặt
type AvailabilityPageResponse struct {
	RoomTypeID       uint                      `json:"roomTypeId"`
	AvailableRooms   int                       `json:"availableRooms"`
	TotalRooms       int                       `json:"totalRooms"`
	AvailableList    []models.Room             `json:"availableList"`
	BookedRoomIDs    []uint                    `json:"bookedRoomIds"`
	AttemptState     string                    `json:"attemptState"`
	ProvisionalTotal float64                   `json:"provisionalTotal"`
	PerType          []models.TypeAvailability `json:"perType"`
}
