package cache

import (
    "context"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/greenpandorik/yatube-project-api/config"
)

// New 建立 Redis 连接；cfg.Redis.Enabled 为 false 时返回 nil，调用方按 nil 跳过缓存
func New(cfg *config.Config) (*redis.Client, error) {
    if !cfg.Redis.Enabled {
        return nil, nil
    }
    client := redis.NewClient(&redis.Options{
        Addr:     cfg.Redis.Addr,
        Password: cfg.Redis.Password,
        DB:       cfg.Redis.DB,
    })
    ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil, err
    }
    return client, nil
}
