package services

import (
	"sync"
	"time"
)

// BookingStoreRegistry cấp BookingStore theo từng phiên trình duyệt.
// Trạng thái lượt đặt (danh sách booking, thế hệ kiểm tra, attemptState)
// là của riêng mỗi phiên, không chia sẻ giữa các user.
type BookingStoreRegistry struct {
	mu      sync.Mutex
	entries map[string]*bookingStoreEntry
	opts    BookingStoreOptions
}

type bookingStoreEntry struct {
	store     *BookingStore
	touchedAt time.Time
}

func NewBookingStoreRegistry(opts BookingStoreOptions) *BookingStoreRegistry {
	return &BookingStoreRegistry{
		entries: make(map[string]*bookingStoreEntry),
		opts:    opts,
	}
}

// ForSession trả về store của phiên, tạo mới nếu chưa có
func (r *BookingStoreRegistry) ForSession(sessionID string) *BookingStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &bookingStoreEntry{store: NewBookingStore(r.opts)}
		r.entries[sessionID] = entry
	}
	entry.touchedAt = time.Now()
	return entry.store
}

// PruneIdle bỏ các store không được chạm tới trong maxIdle, trả về số đã bỏ.
// Lượt đặt dở dang vốn không persist nên bỏ store nhàn rỗi là an toàn.
func (r *BookingStoreRegistry) PruneIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	pruned := 0
	for sessionID, entry := range r.entries {
		if entry.touchedAt.Before(cutoff) {
			delete(r.entries, sessionID)
			pruned++
		}
	}
	return pruned
}
