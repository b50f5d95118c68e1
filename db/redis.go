package db

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

// Trigger tokens pushed onto TriggerQueueKey request an immediate pipeline
// run, independent of the cron schedules.
const (
	TriggerQueueKey = "reits:queue:trigger"

	TriggerRefresh = "refresh"
	TriggerNews    = "news"
)

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		slog.Warn("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func PushTrigger(token string) error {
	return Redis.LPush(Ctx, TriggerQueueKey, token).Err()
}

func PopTrigger(timeout time.Duration) (string, error) {
	result, err := Redis.BRPop(Ctx, timeout, TriggerQueueKey).Result()
	if err != nil {
		return "", err
	}
	return result[1], nil
}
