package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"unicatalog/internal/app/config"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const photoURLPrefix = "photo_url:"

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{}

	client.cfg = cfg

	redisClient := redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	client.client = redisClient

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	logrus.Infof("redis connected: %s:%d", cfg.Host, cfg.Port)
	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// GetPhotoURL возвращает закэшированную ссылку на фото.
// ok=false, если ключа нет.
func (c *Client) GetPhotoURL(ctx context.Context, filename string) (string, bool, error) {
	url, err := c.client.Get(ctx, photoURLPrefix+filename).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (c *Client) SetPhotoURL(ctx context.Context, filename, url string, ttl time.Duration) error {
	return c.client.Set(ctx, photoURLPrefix+filename, url, ttl).Err()
}
