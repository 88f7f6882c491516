package models

import "time"

type BookingRoom struct {
	ID        uint  `json:"id"`
	BookingID uint  `json:"bookingId"`
	RoomID    uint  `json:"roomId"`
	Room      *Room `json:"room,omitempty"`
}

type Booking struct {
	ID          uint          `json:"id"`
	UserID      uint          `json:"userId"`
	User        *User         `json:"user,omitempty"`
	CheckIn     string        `json:"checkIn"`
	CheckOut    string        `json:"checkOut"`
	TotalAmount float64       `json:"totalAmount"`
	Status      string        `json:"status"`
	Adults      int           `json:"adults"`
	Children    int           `json:"children"`
	Currency    string        `json:"currency"`
	PaymentID   string        `json:"paymentId,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	Rooms       []BookingRoom `json:"rooms"`
}
