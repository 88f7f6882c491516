package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"bff/constants"
	"bff/dto"
	"bff/errors"
	"bff/models"
	"bff/services/logger"
	"bff/utils"
)

// BookingStore điều phối toàn bộ luồng đặt phòng: kiểm tra phòng trống,
// kiểm tra trạng thái từng phòng cụ thể, và gửi yêu cầu đặt phòng.
// Một lượt đặt đi qua máy trạng thái:
// idle → checking-availability → (sold-out | rooms-selectable)
//      → submitting → (redirect-to-payment | confirmed | failed).
// Trạng thái dở dang không persist; bỏ ngang là mất.
type BookingStore struct {
	mu           sync.Mutex
	bookings     []models.Booking
	availability []models.TypeAvailability
	roomsDate    models.RoomDateStatus
	attemptState string
	generation   uint64
	isLoading    bool
	lastError    string

	api    *APIClient
	logger logger.Logger
}

// BookingStoreOptions chứa các dependency của BookingStore
type BookingStoreOptions struct {
	API    *APIClient
	Logger logger.Logger
}

func NewBookingStore(opts BookingStoreOptions) *BookingStore {
	return &BookingStore{
		attemptState: constants.AttemptIdle,
		api:          opts.API,
		logger:       opts.Logger,
	}
}

// FetchUserBookings nạp mọi booking của một user (backend lọc sẵn),
// thay thế danh sách đang giữ
func (s *BookingStore) FetchUserBookings(ctx context.Context, token string, userID uint) ([]models.Booking, error) {
	s.setLoading()

	envelope, err := s.api.Get(ctx, fmt.Sprintf("/book/user/%d", userID), token)
	if err != nil {
		return nil, s.fail(err)
	}

	var paged dto.PagedList[models.Booking]
	if err := envelope.DecodeData(&paged); err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.bookings = paged.Data
	s.isLoading = false
	s.mu.Unlock()
	return paged.Data, nil
}

// Bookings trả về danh sách booking đã nạp
func (s *BookingStore) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings
}

// BeginAvailabilityCheck mở một lượt kiểm tra mới và trả về số thế hệ của nó.
// Mỗi lần đổi ngày là một thế hệ mới; kết quả của thế hệ cũ hơn bị bỏ,
// nên check bị vượt mặt không thể ghi đè trạng thái mới hơn.
func (s *BookingStore) BeginAvailabilityCheck() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.attemptState = constants.AttemptCheckingAvailability
	s.lastError = ""
	return s.generation
}

// CheckAvailability hỏi backend số phòng trống theo từng loại cho một
// khoảng ngày. Kết quả lỗi hoặc rỗng được coi là "không còn phòng",
// không phải "chưa biết" — đơn giản hóa có chủ đích, giữ nguyên hành vi.
func (s *BookingStore) CheckAvailability(ctx context.Context, generation uint64, checkIn, checkOut string) ([]models.TypeAvailability, error) {
	if err := validateDateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("checkIn", checkIn)
	query.Set("checkOut", checkOut)

	envelope, err := s.api.Get(ctx, "/book/available-rooms?"+query.Encode(), "")
	if err != nil {
		s.applyAvailability(generation, nil, err)
		return nil, err
	}

	var availability []models.TypeAvailability
	if err := envelope.DecodeData(&availability); err != nil {
		s.applyAvailability(generation, nil, err)
		return nil, err
	}

	for _, entry := range availability {
		if !entry.Valid() {
			err := errors.NewAppError(errors.ErrCodeMalformedResponse,
				fmt.Sprintf("Số phòng trống không hợp lệ cho loại phòng %d", entry.RoomTypeID), nil)
			s.applyAvailability(generation, nil, err)
			return nil, err
		}
	}

	s.applyAvailability(generation, availability, nil)
	return availability, nil
}

// CheckSpecificRoomsStatus hỏi backend phân hoạch phòng cụ thể thành
// trống / đã đặt cho cùng khoảng ngày, để user chọn đích danh phòng
func (s *BookingStore) CheckSpecificRoomsStatus(ctx context.Context, generation uint64, checkIn, checkOut string) (models.RoomDateStatus, error) {
	if err := validateDateRange(checkIn, checkOut); err != nil {
		return models.RoomDateStatus{}, err
	}

	query := url.Values{}
	query.Set("checkIn", checkIn)
	query.Set("checkOut", checkOut)

	envelope, err := s.api.Get(ctx, "/book/roomsDate?"+query.Encode(), "")
	if err != nil {
		s.applyRoomsDate(generation, models.RoomDateStatus{})
		return models.RoomDateStatus{}, err
	}

	var status models.RoomDateStatus
	if err := envelope.DecodeData(&status); err != nil {
		s.applyRoomsDate(generation, models.RoomDateStatus{})
		return models.RoomDateStatus{}, err
	}

	s.applyRoomsDate(generation, status)
	return status, nil
}

// ResolveAttempt chốt trạng thái lượt đặt sau khi có kết quả kiểm tra
func (s *BookingStore) ResolveAttempt(generation uint64, availableRooms int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return
	}
	if availableRooms <= 0 {
		s.attemptState = constants.AttemptSoldOut
	} else {
		s.attemptState = constants.AttemptRoomsSelectable
	}
}

// EstimateTotal tính tổng tiền tạm tính hiển thị cho user:
// giá một đêm × số phòng chọn × max(1, ceil(số đêm)).
// Chỉ để hiển thị — tổng tiền chính thức do backend tính khi thanh toán.
func EstimateTotal(nightlyPrice float64, numRooms int, checkIn, checkOut time.Time) float64 {
	if numRooms <= 0 {
		return 0
	}
	return nightlyPrice * float64(numRooms) * float64(utils.Nights(checkIn, checkOut))
}

// CreateBooking gửi yêu cầu đặt phòng. Mọi lỗi nhập liệu bị chặn tại đây,
// trước khi có bất kỳ request nào lên backend.
func (s *BookingStore) CreateBooking(ctx context.Context, token string, request dto.CreateBookingRequest) (*dto.BookingSubmitResult, error) {
	totalRooms := 0
	for _, roomRequest := range request.RoomRequests {
		totalRooms += roomRequest.Quantity
	}
	if totalRooms <= 0 {
		err := errors.NewAppError(errors.ErrCodeNoRoomSelected, "Vui lòng chọn ít nhất một phòng", nil)
		return nil, s.failAttempt(err)
	}

	if err := validateDateRange(request.CheckIn, request.CheckOut); err != nil {
		return nil, s.failAttempt(err)
	}

	s.mu.Lock()
	s.attemptState = constants.AttemptSubmitting
	s.lastError = ""
	s.mu.Unlock()

	envelope, err := s.api.Call(ctx, http.MethodPost, "/book/online-book", token, request)
	if err != nil {
		return nil, s.failAttempt(err)
	}

	var data dto.OnlineBookData
	if err := envelope.DecodeData(&data); err != nil {
		return nil, s.failAttempt(err)
	}

	// Backend chưa gắn status thì coi như đang chờ thanh toán
	if data.Booking.Status == "" {
		data.Booking.Status = constants.BookingStatusPendingPayment
	}

	result := &dto.BookingSubmitResult{
		Success:     true,
		RedirectURL: data.URL,
		Booking:     &data.Booking,
	}

	s.mu.Lock()
	if data.URL != "" {
		s.attemptState = constants.AttemptRedirectToPayment
	} else {
		s.attemptState = constants.AttemptConfirmed
	}
	s.mu.Unlock()

	return result, nil
}

// CancelBooking hủy một booking. Hủy lần hai sẽ bị backend từ chối;
// message được trả nguyên cho UI, danh sách đang giữ không đổi.
func (s *BookingStore) CancelBooking(ctx context.Context, token string, bookingID uint) error {
	_, err := s.api.Call(ctx, http.MethodPatch, fmt.Sprintf("/book/cancel/%d", bookingID), token, nil)
	if err != nil {
		s.mu.Lock()
		s.lastError = ErrorMessage(err)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	for i := range s.bookings {
		if s.bookings[i].ID == bookingID {
			state := models.GetBookingState(s.bookings[i].Status)
			if err := state.Cancel(&s.bookings[i]); err != nil {
				s.logger.Info("Booking %d không đổi trạng thái local: %v", bookingID, err)
			}
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// AttemptState trả về trạng thái lượt đặt hiện tại
func (s *BookingStore) AttemptState() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attemptState
}

// Availability trả về kết quả kiểm tra phòng trống mới nhất
func (s *BookingStore) Availability() []models.TypeAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availability
}

// RoomsDate trả về phân hoạch phòng trống / đã đặt mới nhất
func (s *BookingStore) RoomsDate() models.RoomDateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomsDate
}

// LastError trả về message lỗi gần nhất, rỗng nếu không có
func (s *BookingStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// IsLoading báo có thao tác nào đang chạy không
func (s *BookingStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *BookingStore) applyAvailability(generation uint64, availability []models.TypeAvailability, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		// Kết quả của lượt kiểm tra đã bị vượt mặt, bỏ qua
		return
	}
	if err != nil {
		// Lỗi được ghi nhận nhưng hiển thị như "hết phòng"
		s.availability = nil
		s.lastError = ErrorMessage(err)
		return
	}
	s.availability = availability
}

func (s *BookingStore) applyRoomsDate(generation uint64, status models.RoomDateStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return
	}
	s.roomsDate = status
}

func (s *BookingStore) setLoading() {
	s.mu.Lock()
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()
}

func (s *BookingStore) fail(err error) error {
	s.mu.Lock()
	s.isLoading = false
	s.lastError = ErrorMessage(err)
	s.mu.Unlock()
	return err
}

func (s *BookingStore) failAttempt(err error) error {
	s.mu.Lock()
	s.attemptState = constants.AttemptFailed
	s.lastError = ErrorMessage(err)
	s.mu.Unlock()
	return err
}

// validateDateRange kiểm tra khoảng ngày: đủ hai ngày và trả phòng sau nhận phòng
func validateDateRange(checkIn, checkOut string) error {
	if checkIn == "" || checkOut == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Vui lòng chọn ngày nhận phòng và ngày trả phòng", nil)
	}

	checkInDate, err := utils.ParseDate(checkIn)
	if err != nil {
		return err
	}
	checkOutDate, err := utils.ParseDate(checkOut)
	if err != nil {
		return err
	}

	if !checkOutDate.After(checkInDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}
