package controllers

import (
	"context"
	"strconv"

	"bff/builders"
	"bff/dto"
	"bff/models"
	"bff/response"
	"bff/services"
	"bff/utils"
	"bff/validator"

	"github.com/gin-gonic/gin"
)

// BookingController phục vụ luồng đặt phòng của user: kiểm tra phòng
// trống theo ngày, gửi lượt đặt, xem và hủy booking của mình.
// Mỗi phiên trình duyệt có BookingStore riêng, lấy qua registry.
type BookingController struct {
	bookings *services.BookingStoreRegistry
	catalog  *services.CatalogStore
}

func NewBookingController(bookings *services.BookingStoreRegistry, catalog *services.CatalogStore) *BookingController {
	return &BookingController{
		bookings: bookings,
		catalog:  catalog,
	}
}

func (ct *BookingController) store(c *gin.Context) *services.BookingStore {
	return ct.bookings.ForSession(c.GetString("sessionId"))
}

// CheckAvailability gộp hai lượt kiểm tra cho trang chi tiết loại phòng:
// số phòng trống theo loại và phân hoạch phòng cụ thể trống / đã đặt.
// Kiểm tra lỗi hoặc rỗng hiển thị như "hết phòng".
func (ct *BookingController) CheckAvailability(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Query("roomTypeId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID loại phòng không hợp lệ")
		return
	}
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")

	ctx := c.Request.Context()
	store := ct.store(c)
	generation := store.BeginAvailabilityCheck()

	availability, err := store.CheckAvailability(ctx, generation, checkIn, checkOut)
	if err != nil && store.LastError() == "" {
		// Lỗi nhập liệu, chưa có request nào lên backend
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	availableRooms, totalRooms := 0, 0
	perType := availability
	for _, entry := range perType {
		if entry.RoomTypeID == uint(roomTypeID) {
			availableRooms = entry.AvailableRooms
			totalRooms = entry.TotalRooms
			break
		}
	}

	roomsDate, _ := store.CheckSpecificRoomsStatus(ctx, generation, checkIn, checkOut)
	store.ResolveAttempt(generation, availableRooms)

	availableList := ct.roomsOfType(ctx, uint(roomTypeID), roomsDate.Available)
	bookedRoomIDs := make([]uint, 0, len(roomsDate.Booked))
	for _, ref := range roomsDate.Booked {
		bookedRoomIDs = append(bookedRoomIDs, ref.RoomID)
	}

	response.Success(c, dto.AvailabilityPageResponse{
		RoomTypeID:     uint(roomTypeID),
		AvailableRooms: availableRooms,
		TotalRooms:     totalRooms,
		AvailableList:  availableList,
		BookedRoomIDs:  bookedRoomIDs,
		AttemptState:   store.AttemptState(),
		PerType:        perType,
	})
}

// roomsOfType lọc danh sách phòng trống về các phòng thuộc loại đang xem
func (ct *BookingController) roomsOfType(ctx context.Context, roomTypeID uint, available []models.RoomRef) []models.Room {
	roomType := ct.catalog.CurrentRoomType()
	if roomType == nil || roomType.ID != roomTypeID {
		fetched, err := ct.catalog.FetchRoomTypeByID(ctx, roomTypeID)
		if err != nil {
			return nil
		}
		roomType = fetched
	}

	availableSet := make(map[uint]bool, len(available))
	for _, ref := range available {
		availableSet[ref.RoomID] = true
	}

	rooms := make([]models.Room, 0, len(roomType.Rooms))
	for _, room := range roomType.Rooms {
		if availableSet[room.RoomID] {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// SubmitBooking nhận form đặt phòng, validate xong mới gửi lên backend.
// Backend trả URL thanh toán thì response yêu cầu chuyển hướng.
func (ct *BookingController) SubmitBooking(c *gin.Context) {
	var request dto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu đặt phòng không hợp lệ")
		return
	}

	if err := validator.ValidateSubmitBooking(&request); err != nil {
		response.ValidationError(c, services.ErrorMessage(err))
		return
	}

	userID := c.GetUint("userID")
	token := c.GetString("accessToken")
	ctx := c.Request.Context()

	createRequest := builders.NewBookingBuilder().
		WithUser(userID).
		WithRoomRequest(request.RoomTypeID, len(request.SelectedRoomIDs)).
		WithDates(request.CheckIn, request.CheckOut).
		WithGuests(request.Adults, request.Children).
		Build()

	result, err := ct.store(c).CreateBooking(ctx, token, *createRequest)
	if err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	// Tổng tiền tạm tính chỉ để hiển thị, backend mới là nơi chốt giá
	if roomType, err := ct.catalog.FetchRoomTypeByID(ctx, request.RoomTypeID); err == nil {
		checkIn, errIn := utils.ParseDate(request.CheckIn)
		checkOut, errOut := utils.ParseDate(request.CheckOut)
		if errIn == nil && errOut == nil {
			result.ProvisionalTotal = services.EstimateTotal(roomType.Price, len(request.SelectedRoomIDs), checkIn, checkOut)
		}
	}

	response.Success(c, result)
}

// GetMyBookings trả về toàn bộ booking của user đang đăng nhập
func (ct *BookingController) GetMyBookings(c *gin.Context) {
	userID := c.GetUint("userID")
	token := c.GetString("accessToken")
	store := ct.store(c)

	bookings, err := store.FetchUserBookings(c.Request.Context(), token, userID)
	if err != nil {
		response.UpstreamError(c, store.LastError())
		return
	}

	response.Success(c, bookings)
}

// CancelMyBooking hủy một booking của user. Booking đã hủy rồi thì
// backend từ chối và message được trả nguyên cho UI.
func (ct *BookingController) CancelMyBooking(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	token := c.GetString("accessToken")
	store := ct.store(c)
	if err := store.CancelBooking(c.Request.Context(), token, uint(bookingID)); err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	response.Success(c, store.Bookings())
}
