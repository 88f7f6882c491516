package validator

import (
	"testing"

	"bff/dto"
	"bff/errors"
)

func validSubmitRequest() dto.SubmitBookingRequest {
	return dto.SubmitBookingRequest{
		RoomTypeID:      1,
		SelectedRoomIDs: []uint{11, 12},
		CheckIn:         "2026-03-10",
		CheckOut:        "2026-03-13",
		Adults:          2,
		Children:        1,
	}
}

func TestValidateSubmitBooking(t *testing.T) {
	request := validSubmitRequest()
	if err := ValidateSubmitBooking(&request); err != nil {
		t.Errorf("form hợp lệ không được trả lỗi: %v", err)
	}
}

func TestValidateSubmitBookingRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.SubmitBookingRequest)
		code   errors.ErrorCode
	}{
		{
			name:   "thiếu ngày",
			mutate: func(r *dto.SubmitBookingRequest) { r.CheckIn = "" },
			code:   errors.ErrCodeRequiredField,
		},
		{
			name:   "ngày sai định dạng",
			mutate: func(r *dto.SubmitBookingRequest) { r.CheckIn = "10/03/2026" },
			code:   errors.ErrCodeInvalidFormat,
		},
		{
			name: "trả phòng trước nhận phòng",
			mutate: func(r *dto.SubmitBookingRequest) {
				r.CheckIn = "2026-03-13"
				r.CheckOut = "2026-03-10"
			},
			code: errors.ErrCodeValidation,
		},
		{
			name:   "không chọn phòng",
			mutate: func(r *dto.SubmitBookingRequest) { r.SelectedRoomIDs = nil },
			code:   errors.ErrCodeNoRoomSelected,
		},
		{
			name:   "không có người lớn",
			mutate: func(r *dto.SubmitBookingRequest) { r.Adults = 0 },
			code:   errors.ErrCodeValidation,
		},
		{
			name:   "số trẻ em âm",
			mutate: func(r *dto.SubmitBookingRequest) { r.Children = -1 },
			code:   errors.ErrCodeValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := validSubmitRequest()
			tc.mutate(&request)

			err := ValidateSubmitBooking(&request)
			if err == nil {
				t.Fatal("phải trả lỗi")
			}
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Code != tc.code {
				t.Errorf("code sai, muốn %s nhận %v", tc.code, err)
			}
		})
	}
}

func TestValidateRoomTypeUpsert(t *testing.T) {
	request := dto.RoomTypeUpsertRequest{Name: "Deluxe", Price: 200}
	if err := ValidateRoomTypeUpsert(&request); err != nil {
		t.Errorf("form hợp lệ không được trả lỗi: %v", err)
	}

	request.Price = -1
	if err := ValidateRoomTypeUpsert(&request); err == nil {
		t.Error("giá âm phải bị từ chối")
	}

	request = dto.RoomTypeUpsertRequest{Price: 100}
	if err := ValidateRoomTypeUpsert(&request); err == nil {
		t.Error("tên rỗng phải bị từ chối")
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Errorf("email hợp lệ không được trả lỗi: %v", err)
	}
	if err := ValidateEmail("not-an-email"); err == nil {
		t.Error("email không hợp lệ phải bị từ chối")
	}
}
