package dto

// DashboardStats là số liệu tổng hợp cho trang dashboard admin
type DashboardStats struct {
	TotalBookings int     `json:"totalBookings"`
	Revenue       float64 `json:"revenue"`
	ActiveUsers   int     `json:"activeUsers"`
	TotalRooms    int     `json:"totalRooms"`
}

// BookingSearchParams là bộ lọc của bảng booking admin,
// serialize nguyên trạng thành query param gửi lên backend
type BookingSearchParams struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Name       string `form:"name"`
	Email      string `form:"email"`
	Date       string `form:"date"`
	CheckIn    string `form:"checkIn"`
	CheckOut   string `form:"checkOut"`
	SearchTerm string `form:"searchTerm"`
}

// UserStatusRequest là DTO cho request block/unblock user
type UserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UserRoleRequest là DTO cho request đổi role user
type UserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
