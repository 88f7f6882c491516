package dto

// PaymentResult là kết quả trang payment-results sau khi cổng thanh
// toán chuyển hướng về. Outcome là một trong success / pending / failure.
type PaymentResult struct {
	Outcome       string `json:"outcome"`
	BookingID     uint   `json:"bookingId,omitempty"`
	PaymentStatus string `json:"paymentStatus"`
	Message       string `json:"message"`
}
