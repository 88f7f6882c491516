package controllers

import (
	"strconv"

	"bff/constants"
	"bff/dto"
	"bff/response"

	"github.com/gin-gonic/gin"
)

// PaymentController phục vụ trang kết quả thanh toán sau khi cổng
// thanh toán chuyển hướng về
type PaymentController struct{}

func NewPaymentController() *PaymentController {
	return &PaymentController{}
}

// GetPaymentResult ánh xạ trạng thái cổng thanh toán về một trong ba
// kết quả hiển thị. Trạng thái lạ được xử lý như thất bại.
func (ct *PaymentController) GetPaymentResult(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		response.BadRequest(c, "Thiếu trạng thái thanh toán")
		return
	}

	var bookingID uint
	if raw := c.Query("bookingId"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			bookingID = uint(parsed)
		}
	}

	result := dto.PaymentResult{
		BookingID:     bookingID,
		PaymentStatus: status,
	}

	switch status {
	case constants.PaymentStatusCaptured:
		result.Outcome = "success"
		result.Message = "Thanh toán thành công, đặt phòng đã được xác nhận"
	case constants.PaymentStatusInitiated, constants.PaymentStatusInProgress:
		result.Outcome = "pending"
		result.Message = "Thanh toán đang được xử lý, vui lòng chờ xác nhận"
	case constants.PaymentStatusDeclined, constants.PaymentStatusCancelled, constants.PaymentStatusError:
		result.Outcome = "failure"
		result.Message = "Thanh toán không thành công, đặt phòng chưa được xác nhận"
	default:
		result.Outcome = "failure"
		result.Message = "Trạng thái thanh toán không xác định"
	}

	response.Success(c, result)
}
