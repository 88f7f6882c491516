package models

// TypeAvailability là số phòng trống theo loại phòng cho một khoảng ngày.
// Đây là dữ liệu suy diễn, tính lại theo từng truy vấn, không lưu trữ.
type TypeAvailability struct {
	RoomTypeID     uint `json:"roomTypeId"`
	TotalRooms     int  `json:"totalRooms"`
	AvailableRooms int  `json:"availableRooms"`
}

// RoomRef tham chiếu đến một phòng vật lý trong kết quả roomsDate
type RoomRef struct {
	RoomID uint `json:"roomId"`
}

// RoomDateStatus phân hoạch các phòng thành trống / đã đặt cho một khoảng ngày
type RoomDateStatus struct {
	Available []RoomRef `json:"available"`
	Booked    []RoomRef `json:"booked"`
}

// Valid kiểm tra bất biến của kết quả: 0 <= available <= total
func (a TypeAvailability) Valid() bool {
	return a.AvailableRooms >= 0 && a.TotalRooms >= 0 && a.AvailableRooms <= a.TotalRooms
}
