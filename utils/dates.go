package utils

import (
	"math"
	"time"

	"bff/errors"
)

const dateLayout = "2006-01-02"

// ParseDate parse chuỗi ngày dạng ISO (2006-01-02) hoặc RFC3339
func ParseDate(dateStr string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, dateStr); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Định dạng ngày không hợp lệ: "+dateStr, err)
	}
	return t, nil
}

// FormatDate format ngày về dạng ISO để gửi lên backend
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Nights tính số đêm của một kỳ nghỉ: max(1, ceil(số ngày)).
// Dùng cho giá hiển thị tạm tính; tổng tiền chính thức do backend tính.
func Nights(checkIn, checkOut time.Time) int {
	days := checkOut.Sub(checkIn).Hours() / 24
	nights := int(math.Ceil(days))
	if nights < 1 {
		nights = 1
	}
	return nights
}
