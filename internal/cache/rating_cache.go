package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shermian8845-code/Videoshare/internal/model"

	"github.com/redis/go-redis/v9"
)

// 评分聚合缓存键前缀
const ratingAggKeyPrefix = "rating:agg:video"

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("rating aggregate cache miss")

// RatingCache 视频评分聚合的 Redis 读穿缓存
// 仅作加速，正确性不依赖缓存；评分写入后按视频失效
type RatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRatingCache(client *redis.Client, ttl time.Duration) *RatingCache {
	return &RatingCache{client: client, ttl: ttl}
}

func (c *RatingCache) key(videoID int64) string {
	return fmt.Sprintf("%s:%d", ratingAggKeyPrefix, videoID)
}

// Get 读取视频的评分聚合，未命中返回 ErrCacheMiss
func (c *RatingCache) Get(ctx context.Context, videoID int64) (*model.RatingAggregate, error) {
	val, err := c.client.Get(ctx, c.key(videoID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var agg model.RatingAggregate
	if err := json.Unmarshal(val, &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}

// Set 写入视频的评分聚合
func (c *RatingCache) Set(ctx context.Context, videoID int64, agg *model.RatingAggregate) error {
	payload, err := json.Marshal(agg)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(videoID), payload, c.ttl).Err()
}

// Invalidate 评分变更后使缓存失效
func (c *RatingCache) Invalidate(ctx context.Context, videoID int64) error {
	return c.client.Del(ctx, c.key(videoID)).Err()
}
