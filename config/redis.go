package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

var RedisClient *redis.Client

// ConnectRedis kết nối đến Redis dùng cho session và cache đọc
func ConnectRedis() (*redis.Client, error) {
	RDB := redis.NewClient(&redis.Options{
		Addr:     App.RedisAddr,
		Username: App.RedisUser,
		Password: App.RedisPassword,
		DB:       0,
	})

	res, err := RDB.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Kết nối Redis thành công:", res)
	RedisClient = RDB
	return RDB, nil
}
