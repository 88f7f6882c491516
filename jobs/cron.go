package jobs

import (
	"context"
	"log"
	"time"

	"bff/services"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// BookingStorePruner định nghĩa interface cho việc dọn các booking store
// theo phiên không còn hoạt động
type BookingStorePruner interface {
	PruneIdle(maxIdle time.Duration) int
}

var bookingStorePruner BookingStorePruner

// SetBookingStorePruner thiết lập implementation cho BookingStorePruner
func SetBookingStorePruner(pruner BookingStorePruner) {
	bookingStorePruner = pruner
}

// InitCronJobs khởi tạo các cron jobs dọn dẹp cache và session
func InitCronJobs(c *cron.Cron, redisCli *redis.Client) error {
	// Cron job chạy lúc 0h mỗi ngày: xả cache danh mục để sáng hôm sau
	// chắc chắn nạp dữ liệu mới từ backend
	_, err := c.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		deleted, err := services.ScanAndDelete(ctx, redisCli, "catalog:*")
		if err != nil {
			log.Printf("Lỗi khi xả cache danh mục: %v", err)
			return
		}
		log.Printf("Đã xả %d key cache danh mục lúc: %v", deleted, time.Now())
	})
	if err != nil {
		return err
	}

	// Mỗi giờ quét các session mồ côi không còn TTL
	_, err = c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		iter := redisCli.Scan(ctx, 0, "session:*", 100).Iterator()
		cleaned := 0
		for iter.Next(ctx) {
			key := iter.Val()
			ttl, err := redisCli.TTL(ctx, key).Result()
			if err != nil {
				continue
			}
			// Key không có TTL là key sót lại từ lần ghi lỗi
			if ttl == -1 {
				if err := redisCli.Del(ctx, key).Err(); err == nil {
					cleaned++
				}
			}
		}
		if err := iter.Err(); err != nil {
			log.Printf("Lỗi khi quét session: %v", err)
			return
		}
		if cleaned > 0 {
			log.Printf("Đã dọn %d session mồ côi", cleaned)
		}

		if bookingStorePruner != nil {
			if pruned := bookingStorePruner.PruneIdle(24 * time.Hour); pruned > 0 {
				log.Printf("Đã dọn %d booking store nhàn rỗi", pruned)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
