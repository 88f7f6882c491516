package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-03-10")
	if err != nil {
		t.Fatalf("ParseDate trả lỗi: %v", err)
	}
	if parsed.Year() != 2026 || parsed.Month() != time.March || parsed.Day() != 10 {
		t.Errorf("ParseDate sai ngày: %v", parsed)
	}

	if _, err := ParseDate("2026-03-10T14:00:00Z"); err != nil {
		t.Errorf("ParseDate phải chấp nhận RFC3339: %v", err)
	}

	if _, err := ParseDate("10/03/2026"); err == nil {
		t.Error("ParseDate phải từ chối định dạng dd/mm/yyyy")
	}
}

func TestNights(t *testing.T) {
	day := func(s string) time.Time {
		parsed, err := ParseDate(s)
		if err != nil {
			t.Fatalf("không parse được %s: %v", s, err)
		}
		return parsed
	}

	if got := Nights(day("2026-03-10"), day("2026-03-13")); got != 3 {
		t.Errorf("3 ngày phải là 3 đêm, nhận %d", got)
	}

	// Chưa tròn một ngày vẫn tính một đêm
	checkIn := day("2026-03-10")
	checkOut := checkIn.Add(5 * time.Hour)
	if got := Nights(checkIn, checkOut); got != 1 {
		t.Errorf("dưới một ngày phải là 1 đêm, nhận %d", got)
	}

	// Lẻ giờ thì làm tròn lên
	checkOut = checkIn.Add(50 * time.Hour)
	if got := Nights(checkIn, checkOut); got != 3 {
		t.Errorf("50 giờ phải làm tròn thành 3 đêm, nhận %d", got)
	}

	if got := Nights(checkIn, checkIn); got != 1 {
		t.Errorf("cùng ngày vẫn phải tính tối thiểu 1 đêm, nhận %d", got)
	}
}
