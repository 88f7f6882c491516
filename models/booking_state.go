package models

import (
	"errors"

	"bff/constants"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Complete(booking *Booking) error
}

// PendingPaymentState chờ thanh toán; xác nhận khi payment capture báo về
type PendingPaymentState struct{}

func (s *PendingPaymentState) Confirm(booking *Booking) error {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingPaymentState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingPaymentState) Complete(booking *Booking) error {
	return errors.New("cannot complete a booking awaiting payment")
}

// PendingState trạng thái chờ xử lý
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(booking *Booking) error {
	return errors.New("cannot complete a pending booking")
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = constants.BookingStatusCompleted
	return nil
}

// CompletedState trạng thái hoàn thành, không chuyển tiếp được nữa
type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel a completed booking")
}

func (s *CompletedState) Complete(booking *Booking) error {
	return errors.New("booking already completed")
}

// CancelledState trạng thái đã hủy, không chuyển tiếp được nữa
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm a cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Complete(booking *Booking) error {
	return errors.New("cannot complete a cancelled booking")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPendingPayment:
		return &PendingPaymentState{}
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
