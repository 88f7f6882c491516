package models

import (
	"testing"

	"bff/constants"
)

func TestBookingStateTransitions(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusPendingPayment}

	state := GetBookingState(booking.Status)
	if err := state.Confirm(booking); err != nil {
		t.Fatalf("PENDING_PAYMENT phải confirm được: %v", err)
	}
	if booking.Status != constants.BookingStatusConfirmed {
		t.Errorf("trạng thái sau confirm phải là CONFIRMED, nhận %s", booking.Status)
	}

	state = GetBookingState(booking.Status)
	if err := state.Cancel(booking); err != nil {
		t.Fatalf("CONFIRMED phải hủy được: %v", err)
	}
	if booking.Status != constants.BookingStatusCancelled {
		t.Errorf("trạng thái sau hủy phải là CANCELLED, nhận %s", booking.Status)
	}
}

func TestCancelTwiceRejected(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusCancelled}

	state := GetBookingState(booking.Status)
	if err := state.Cancel(booking); err == nil {
		t.Error("hủy lần hai phải bị từ chối")
	}
	if booking.Status != constants.BookingStatusCancelled {
		t.Errorf("trạng thái không được thay đổi, nhận %s", booking.Status)
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusCompleted}
	state := GetBookingState(booking.Status)

	if err := state.Confirm(booking); err == nil {
		t.Error("COMPLETED không được confirm lại")
	}
	if err := state.Cancel(booking); err == nil {
		t.Error("COMPLETED không được hủy")
	}
}

func TestUserMerge(t *testing.T) {
	user := &User{ID: 7, Name: "Nguyen Van A", Email: "a@example.com", Role: constants.RoleUser}

	newName := "Nguyen Van B"
	user.Merge(UserPatch{Name: &newName})

	if user.Name != newName {
		t.Errorf("Name phải được cập nhật, nhận %s", user.Name)
	}
	if user.Email != "a@example.com" || user.Role != constants.RoleUser {
		t.Error("field không có trong patch phải giữ nguyên")
	}
}
