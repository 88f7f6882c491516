package constants

// User role
const (
	RoleUser        = "USER"
	RoleAdmin       = "ADMIN"
	RolePremiumUser = "PREMIUM_USER"
)

// User status
const (
	UserStatusActive  = "ACTIVE"
	UserStatusBlocked = "BLOCKED"
	UserStatusDeleted = "DELETED"
)

// Booking status
const (
	BookingStatusPendingPayment = "PENDING_PAYMENT"
	BookingStatusConfirmed      = "CONFIRMED"
	BookingStatusCancelled      = "CANCELLED"
	BookingStatusCompleted      = "COMPLETED"
	BookingStatusPending        = "PENDING"
)

// Payment result status (query param của trang payment-results)
const (
	PaymentStatusCaptured   = "CAPTURED"
	PaymentStatusInitiated  = "INITIATED"
	PaymentStatusInProgress = "IN_PROGRESS"
	PaymentStatusDeclined   = "DECLINED"
	PaymentStatusCancelled  = "CANCELLED"
	PaymentStatusError      = "error"
)

// Trạng thái của một lượt đặt phòng đang thực hiện trên client
const (
	AttemptIdle                 = "idle"
	AttemptCheckingAvailability = "checking-availability"
	AttemptSoldOut              = "sold-out"
	AttemptRoomsSelectable      = "rooms-selectable"
	AttemptSubmitting           = "submitting"
	AttemptRedirectToPayment    = "redirect-to-payment"
	AttemptConfirmed            = "confirmed"
	AttemptFailed               = "failed"
)
