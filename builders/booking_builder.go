package builders

import (
	"bff/dto"
)

// BookingBuilder giúp dựng request đặt phòng theo từng bước
type BookingBuilder struct {
	request *dto.CreateBookingRequest
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		request: &dto.CreateBookingRequest{},
	}
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.request.UserID = userID
	return b
}

// WithRoomRequest thêm yêu cầu số lượng phòng cho một loại phòng
func (b *BookingBuilder) WithRoomRequest(roomTypeID uint, quantity int) *BookingBuilder {
	b.request.RoomRequests = append(b.request.RoomRequests, dto.RoomRequest{
		RoomTypeID: roomTypeID,
		Quantity:   quantity,
	})
	return b
}

// WithDates thêm khoảng ngày nhận / trả phòng
func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.request.CheckIn = checkIn
	b.request.CheckOut = checkOut
	return b
}

// WithGuests thêm số người lớn và trẻ em
func (b *BookingBuilder) WithGuests(adults, children int) *BookingBuilder {
	b.request.Adults = adults
	b.request.Children = children
	return b
}

// Build trả về request hoàn chỉnh
func (b *BookingBuilder) Build() *dto.CreateBookingRequest {
	return b.request
}
