package services

import (
	"context"
	"sync"

	"bff/constants"
	"bff/dto"
	"bff/models"
	"bff/services/logger"
)

// AdminStore tổng hợp số liệu cho trang dashboard admin
type AdminStore struct {
	mu        sync.Mutex
	stats     *dto.DashboardStats
	isLoading bool
	lastError string

	api    *APIClient
	logger logger.Logger
}

// AdminStoreOptions chứa các dependency của AdminStore
type AdminStoreOptions struct {
	API    *APIClient
	Logger logger.Logger
}

func NewAdminStore(opts AdminStoreOptions) *AdminStore {
	return &AdminStore{
		api:    opts.API,
		logger: opts.Logger,
	}
}

// FetchDashboardStats gọi ba endpoint song song rồi join đủ cả ba.
// Không có kết quả từng phần: một request lỗi là cả aggregate lỗi.
func (s *AdminStore) FetchDashboardStats(ctx context.Context, token string) (*dto.DashboardStats, error) {
	s.mu.Lock()
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()

	var (
		wg          sync.WaitGroup
		bookingPage dto.PagedList[models.Booking]
		users       []models.User
		rooms       []models.Room
		errBookings error
		errUsers    error
		errRooms    error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		envelope, err := s.api.Get(ctx, "/book?page=1&limit=1000", token)
		if err != nil {
			errBookings = err
			return
		}
		errBookings = envelope.DecodeData(&bookingPage)
	}()

	go func() {
		defer wg.Done()
		envelope, err := s.api.Get(ctx, "/auth", token)
		if err != nil {
			errUsers = err
			return
		}
		errUsers = envelope.DecodeData(&users)
	}()

	go func() {
		defer wg.Done()
		envelope, err := s.api.Get(ctx, "/room", token)
		if err != nil {
			errRooms = err
			return
		}
		errRooms = envelope.DecodeData(&rooms)
	}()

	wg.Wait()

	for _, err := range []error{errBookings, errUsers, errRooms} {
		if err != nil {
			s.mu.Lock()
			s.isLoading = false
			s.lastError = ErrorMessage(err)
			s.mu.Unlock()
			return nil, err
		}
	}

	revenue := 0.0
	for _, booking := range bookingPage.Data {
		if booking.Status != constants.BookingStatusCancelled {
			revenue += booking.TotalAmount
		}
	}

	activeUsers := 0
	for _, user := range users {
		if user.Status == constants.UserStatusActive {
			activeUsers++
		}
	}

	stats := &dto.DashboardStats{
		TotalBookings: bookingPage.Meta.Total,
		Revenue:       revenue,
		ActiveUsers:   activeUsers,
		TotalRooms:    len(rooms),
	}

	s.mu.Lock()
	s.stats = stats
	s.isLoading = false
	s.mu.Unlock()
	return stats, nil
}

// Stats trả về số liệu đã nạp gần nhất
func (s *AdminStore) Stats() *dto.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// LastError trả về message lỗi của lần tổng hợp gần nhất
func (s *AdminStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
