package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// InitApp khởi tạo router, cron và các thành phần dùng chung
func InitApp() (*gin.Engine, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AddAllowHeaders("X-Session-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	c := cron.New()

	return router, c, nil
}

func initComponents() error {
	if _, err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	ConnectUpstream()

	if err := ConnectCloudinary(); err != nil {
		return fmt.Errorf("failed to connect to Cloudinary: %v", err)
	}

	if _, err := ConnectRedis(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("All components initialized successfully")
	return nil
}
