package validator

import (
	"regexp"

	"bff/dto"
	"bff/errors"
	"bff/utils"
)

// ValidateSubmitBooking chặn form đặt phòng không hợp lệ trước khi
// có bất kỳ request nào được gửi lên backend
func ValidateSubmitBooking(request *dto.SubmitBookingRequest) error {
	if request.CheckIn == "" || request.CheckOut == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Vui lòng chọn ngày nhận phòng và ngày trả phòng", nil)
	}

	checkIn, err := utils.ParseDate(request.CheckIn)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := utils.ParseDate(request.CheckOut)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if len(request.SelectedRoomIDs) == 0 {
		return errors.NewAppError(errors.ErrCodeNoRoomSelected, "Vui lòng chọn ít nhất một phòng còn trống", nil)
	}

	if request.Adults < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Phải có ít nhất một người lớn", nil)
	}

	if request.Children < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số trẻ em không được âm", nil)
	}

	return nil
}

// ValidateRoomTypeUpsert validate form tạo/sửa loại phòng
func ValidateRoomTypeUpsert(request *dto.RoomTypeUpsertRequest) error {
	if request.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}

	if request.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}

	return nil
}

// ValidateRoomUpsert validate form tạo/sửa phòng vật lý
func ValidateRoomUpsert(request *dto.RoomUpsertRequest) error {
	if request.RoomNumber <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng phải là số dương", nil)
	}

	if request.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID loại phòng không được để trống", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}
