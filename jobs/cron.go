package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CacheWarmer định nghĩa interface cho việc nạp lại cache định kỳ
type CacheWarmer interface {
	WarmCache() error
}

var cacheWarmers []CacheWarmer

// RegisterCacheWarmer đăng ký một service cần nạp lại cache định kỳ
func RegisterCacheWarmer(warmer CacheWarmer) {
	cacheWarmers = append(cacheWarmers, warmer)
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày: nạp lại cache phòng và gói ăn
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang nạp lại cache lúc: %v", now)
		for _, warmer := range cacheWarmers {
			if err := warmer.WarmCache(); err != nil {
				log.Printf("Lỗi khi nạp lại cache: %v", err)
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
