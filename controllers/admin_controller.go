package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"bff/commands"
	"bff/dto"
	"bff/models"
	"bff/response"
	"bff/services"
	"bff/validator"

	"github.com/gin-gonic/gin"
)

// AdminController phục vụ các bảng quản trị: booking, user, phòng,
// loại phòng và dashboard tổng hợp
type AdminController struct {
	api   *services.APIClient
	admin *services.AdminStore
}

func NewAdminController(api *services.APIClient, admin *services.AdminStore) *AdminController {
	return &AdminController{
		api:   api,
		admin: admin,
	}
}

// GetDashboardStats tổng hợp số liệu dashboard từ ba endpoint backend
func (ct *AdminController) GetDashboardStats(c *gin.Context) {
	token := c.GetString("accessToken")

	stats, err := ct.admin.FetchDashboardStats(c.Request.Context(), token)
	if err != nil {
		response.UpstreamError(c, ct.admin.LastError())
		return
	}

	response.Success(c, stats)
}

// GetBookings trả về bảng booking có phân trang; bộ lọc được forward
// nguyên trạng lên backend, kể cả tìm theo email
func (ct *AdminController) GetBookings(c *gin.Context) {
	var params dto.BookingSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Tham số tìm kiếm không hợp lệ")
		return
	}
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 10
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("limit", strconv.Itoa(params.Limit))
	for key, value := range map[string]string{
		"name":       params.Name,
		"email":      params.Email,
		"date":       params.Date,
		"checkIn":    params.CheckIn,
		"checkOut":   params.CheckOut,
		"searchTerm": params.SearchTerm,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}

	token := c.GetString("accessToken")
	envelope, err := ct.api.Get(c.Request.Context(), "/book?"+query.Encode(), token)
	if err != nil {
		response.UpstreamError(c, services.ErrorMessage(err))
		return
	}

	var paged dto.PagedList[models.Booking]
	if err := envelope.DecodeData(&paged); err != nil {
		response.UpstreamError(c, services.ErrorMessage(err))
		return
	}

	response.SuccessWithPagination(c, paged.Data, paged.Meta.Page, paged.Meta.Limit, paged.Meta.Total)
}

// CancelBooking hủy một booking bất kỳ (sau confirm modal phía UI)
func (ct *AdminController) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	token := c.GetString("accessToken")
	command := commands.NewCancelBookingCommand(uint(bookingID), token, ct.api)
	if err := command.Execute(c.Request.Context()); err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	response.Success(c, nil)
}

// GetUsers trả về danh sách user cho bảng quản trị
func (ct *AdminController) GetUsers(c *gin.Context) {
	token := c.GetString("accessToken")

	envelope, err := ct.api.Get(c.Request.Context(), "/auth", token)
	if err != nil {
		response.UpstreamError(c, services.ErrorMessage(err))
		return
	}

	var users []models.User
	if err := envelope.DecodeData(&users); err != nil {
		response.UpstreamError(c, services.ErrorMessage(err))
		return
	}

	response.Success(c, users)
}

// UpdateUserStatus block/unblock một user
func (ct *AdminController) UpdateUserStatus(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID user không hợp lệ")
		return
	}

	var request dto.UserStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Trạng thái không được để trống")
		return
	}

	token := c.GetString("accessToken")
	command := commands.NewUpdateUserStatusCommand(uint(userID), request.Status, token, ct.api)
	if err := command.Execute(c.Request.Context()); err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	response.Success(c, nil)
}

// UpdateUserRole đổi role một user (vd nâng lên PREMIUM_USER)
func (ct *AdminController) UpdateUserRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID user không hợp lệ")
		return
	}

	var request dto.UserRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Role không được để trống")
		return
	}

	token := c.GetString("accessToken")
	command := commands.NewUpdateUserRoleCommand(uint(userID), request.Role, token, ct.api)
	if err := command.Execute(c.Request.Context()); err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	response.Success(c, nil)
}

// DeleteUser xóa (mềm) một user
func (ct *AdminController) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID user không hợp lệ")
		return
	}

	token := c.GetString("accessToken")
	command := commands.NewDeleteUserCommand(uint(userID), token, ct.api)
	if err := command.Execute(c.Request.Context()); err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	response.Success(c, nil)
}

// CreateRoomType tạo loại phòng mới
func (ct *AdminController) CreateRoomType(c *gin.Context) {
	var request dto.RoomTypeUpsertRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateRoomTypeUpsert(&request); err != nil {
		response.ValidationError(c, services.ErrorMessage(err))
		return
	}

	token := c.GetString("accessToken")
	envelope, err := ct.api.Call(c.Request.Context(), http.MethodPost, "/roomCategory", token, request)
	if err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	var roomType models.RoomType
	if err := envelope.DecodeData(&roomType); err != nil {
		response.UpstreamError(c, services.ErrorMessage(err))
		return
	}
	response.Success(c, roomType)
}

// UpdateRoomType cập nhật một loại phòng
func (ct *AdminController) UpdateRoomType(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID loại phòng không hợp lệ")
		return
	}

	var request dto.RoomTypeUpsertRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateRoomTypeUpsert(&request); err != nil {
		response.ValidationError(c, services.ErrorMessage(err))
		return
	}

	token := c.GetString("accessToken")
	_, err = ct.api.Call(c.Request.Context(), http.MethodPatch, fmt.Sprintf("/roomCategory/%d", roomTypeID), token, request)
	if err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}
	response.Success(c, nil)
}

// DeleteRoomType xóa một loại phòng
func (ct *AdminController) DeleteRoomType(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID loại phòng không hợp lệ")
		return
	}

	token := c.GetString("accessToken")
	command := commands.NewDeleteRoomTypeCommand(uint(roomTypeID), token, ct.api)
	if err := command.Execute(c.Request.Context()); err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}
	response.Success(c, nil)
}

// CreateRoom tạo phòng vật lý mới
func (ct *AdminController) CreateRoom(c *gin.Context) {
	var request dto.RoomUpsertRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateRoomUpsert(&request); err != nil {
		response.ValidationError(c, services.ErrorMessage(err))
		return
	}

	token := c.GetString("accessToken")
	envelope, err := ct.api.Call(c.Request.Context(), http.MethodPost, "/room", token, request)
	if err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	var room models.Room
	if err := envelope.DecodeData(&room); err != nil {
		response.UpstreamError(c, services.ErrorMessage(err))
		return
	}
	response.Success(c, room)
}

// UpdateRoom cập nhật một phòng vật lý
func (ct *AdminController) UpdateRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var request dto.RoomUpsertRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateRoomUpsert(&request); err != nil {
		response.ValidationError(c, services.ErrorMessage(err))
		return
	}

	token := c.GetString("accessToken")
	_, err = ct.api.Call(c.Request.Context(), http.MethodPatch, fmt.Sprintf("/room/%d", roomID), token, request)
	if err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}
	response.Success(c, nil)
}

// DeleteRoom xóa một phòng vật lý
func (ct *AdminController) DeleteRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	token := c.GetString("accessToken")
	command := commands.NewDeleteRoomCommand(uint(roomID), token, ct.api)
	if err := command.Execute(c.Request.Context()); err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}
	response.Success(c, nil)
}
