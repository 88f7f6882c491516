package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bff/errors"
	"bff/models"
	"bff/services/logger"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyRooms     = "catalog:rooms"
	cacheKeyRoomTypes = "catalog:roomTypes"
)

// CatalogStore giữ danh mục phòng và loại phòng cho một lượt xem trang.
// Mỗi lần fetch thay cả danh sách; cache đọc qua Redis với TTL ngắn,
// chấp nhận dữ liệu hơi cũ trong phạm vi một lượt xem.
type CatalogStore struct {
	mu              sync.Mutex
	rooms           []models.Room
	roomTypes       []models.RoomType
	currentRoomType *models.RoomType
	isLoading       bool
	lastError       string

	api      *APIClient
	rdb      *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

// CatalogStoreOptions chứa các dependency của CatalogStore
type CatalogStoreOptions struct {
	API      *APIClient
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   logger.Logger
}

func NewCatalogStore(opts CatalogStoreOptions) *CatalogStore {
	return &CatalogStore{
		api:      opts.API,
		rdb:      opts.Redis,
		cacheTTL: opts.CacheTTL,
		logger:   opts.Logger,
	}
}

// FetchRooms nạp toàn bộ danh sách phòng vật lý, thay thế danh sách cũ
func (s *CatalogStore) FetchRooms(ctx context.Context) error {
	s.setLoading()

	var rooms []models.Room
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, cacheKeyRooms, &rooms); err != nil {
			s.logger.Error("Lỗi đọc cache danh sách phòng: %v", err)
		}
	}

	if len(rooms) == 0 {
		envelope, err := s.api.Get(ctx, "/room", "")
		if err != nil {
			return s.fail(err)
		}
		if err := envelope.DecodeData(&rooms); err != nil {
			return s.fail(err)
		}
		s.writeCache(ctx, cacheKeyRooms, rooms)
	}

	s.mu.Lock()
	s.rooms = rooms
	s.isLoading = false
	s.mu.Unlock()
	return nil
}

// FetchRoomTypes nạp toàn bộ danh sách loại phòng, thay thế danh sách cũ
func (s *CatalogStore) FetchRoomTypes(ctx context.Context) error {
	s.setLoading()

	var roomTypes []models.RoomType
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, cacheKeyRoomTypes, &roomTypes); err != nil {
			s.logger.Error("Lỗi đọc cache loại phòng: %v", err)
		}
	}

	if len(roomTypes) == 0 {
		envelope, err := s.api.Get(ctx, "/roomCategory", "")
		if err != nil {
			return s.fail(err)
		}
		if err := envelope.DecodeData(&roomTypes); err != nil {
			return s.fail(err)
		}
		if err := validateRoomTypes(roomTypes); err != nil {
			return s.fail(err)
		}
		s.writeCache(ctx, cacheKeyRoomTypes, roomTypes)
	}

	for i := range roomTypes {
		roomTypes[i].DedupFacilities()
	}

	s.mu.Lock()
	s.roomTypes = roomTypes
	s.isLoading = false
	s.mu.Unlock()
	return nil
}

// FetchRoomTypeByID nạp chi tiết một loại phòng kèm danh sách phòng của nó
func (s *CatalogStore) FetchRoomTypeByID(ctx context.Context, id uint) (*models.RoomType, error) {
	s.setLoading()

	envelope, err := s.api.Get(ctx, fmt.Sprintf("/roomCategory/%d", id), "")
	if err != nil {
		return nil, s.fail(err)
	}

	var roomType models.RoomType
	if err := envelope.DecodeData(&roomType); err != nil {
		return nil, s.fail(err)
	}
	if err := validateRoomTypes([]models.RoomType{roomType}); err != nil {
		return nil, s.fail(err)
	}
	roomType.DedupFacilities()

	s.mu.Lock()
	s.currentRoomType = &roomType
	s.isLoading = false
	s.mu.Unlock()
	return &roomType, nil
}

// Rooms trả về danh sách phòng đã nạp
func (s *CatalogStore) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms
}

// RoomTypes trả về danh sách loại phòng đã nạp
func (s *CatalogStore) RoomTypes() []models.RoomType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomTypes
}

// CurrentRoomType trả về loại phòng đang xem chi tiết
func (s *CatalogStore) CurrentRoomType() *models.RoomType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentRoomType
}

// IsLoading báo có fetch nào đang chạy không
func (s *CatalogStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// LastError trả về message lỗi của lần fetch gần nhất, rỗng nếu thành công
func (s *CatalogStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *CatalogStore) setLoading() {
	s.mu.Lock()
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()
}

func (s *CatalogStore) fail(err error) error {
	s.mu.Lock()
	s.isLoading = false
	s.lastError = ErrorMessage(err)
	s.mu.Unlock()
	return err
}

func (s *CatalogStore) writeCache(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	if err := SetToRedis(ctx, s.rdb, key, value, s.cacheTTL); err != nil {
		s.logger.Error("Lỗi ghi cache %s: %v", key, err)
	}
}

// validateRoomTypes kiểm tra schema loại phòng ngay khi nhận từ backend
func validateRoomTypes(roomTypes []models.RoomType) error {
	for _, roomType := range roomTypes {
		if roomType.Price < 0 {
			return errors.NewAppError(errors.ErrCodeMalformedResponse,
				fmt.Sprintf("Loại phòng %d có giá âm", roomType.ID), nil)
		}
	}
	return nil
}
