package service

import (
	"context"
	"errors"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"
	"github.com/shermian8845-code/Videoshare/internal/cache"
	infraKafka "github.com/shermian8845-code/Videoshare/internal/infra/kafka"
	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RatingStore 评分存储接口
type RatingStore interface {
	Upsert(rating *model.Rating) error
	GetByUserAndVideo(userID, videoID int64) (*model.Rating, error)
	AverageByVideo(videoID int64) (*model.RatingAggregate, error)
	AverageByVideos(videoIDs []int64) (map[int64]model.RatingAggregate, error)
}

// RatingAggCache 评分聚合缓存接口
type RatingAggCache interface {
	Get(ctx context.Context, videoID int64) (*model.RatingAggregate, error)
	Set(ctx context.Context, videoID int64, agg *model.RatingAggregate) error
	Invalidate(ctx context.Context, videoID int64) error
}

type RatingService struct {
	ratings  RatingStore
	videos   VideoStore
	aggCache RatingAggCache
	events   EventPublisher
}

func NewRatingService(ratings RatingStore, videos VideoStore, aggCache RatingAggCache, events EventPublisher) *RatingService {
	return &RatingService{ratings: ratings, videos: videos, aggCache: aggCache, events: events}
}

// Upsert 写入或更新用户对视频的评分，同一用户重复评分以最后一次为准
// 返回写入后的最新聚合
func (s *RatingService) Upsert(ctx context.Context, userID, videoID int64, req *dto.RatingUpsertRequest) (*dto.RatingData, error) {
	if _, err := s.videos.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	rating := &model.Rating{
		UserID:  userID,
		VideoID: videoID,
		Value:   req.Rating,
	}
	if err := s.ratings.Upsert(rating); err != nil {
		return nil, err
	}

	// 评分变更后失效聚合缓存，失败只记日志，下一次读仍以数据库为准
	if s.aggCache != nil {
		if err := s.aggCache.Invalidate(ctx, videoID); err != nil {
			logger.Warn("Invalidate rating cache failed", zap.Int64("video_id", videoID), zap.Error(err))
		}
	}

	publishVideoEvent(s.events, infraKafka.EventRatingChanged, videoID, userID)

	agg, err := s.ratings.AverageByVideo(videoID)
	if err != nil {
		return nil, err
	}

	value := req.Rating
	return &dto.RatingData{
		UserRating:    &value,
		AverageRating: agg.Average,
		TotalRatings:  agg.Total,
	}, nil
}

// GetForUser 查询当前用户的评分和视频的评分聚合
// 用户未评分时 UserRating 为空，聚合为 {0, 0} 表示暂无评分
func (s *RatingService) GetForUser(ctx context.Context, userID, videoID int64) (*dto.RatingData, error) {
	if _, err := s.videos.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	agg, err := s.aggregate(ctx, videoID)
	if err != nil {
		return nil, err
	}

	data := &dto.RatingData{
		AverageRating: agg.Average,
		TotalRatings:  agg.Total,
	}

	rating, err := s.ratings.GetByUserAndVideo(userID, videoID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		data.UserRating = &rating.Value
	}

	return data, nil
}

// aggregate 读穿缓存获取评分聚合，缓存异常时退回数据库
func (s *RatingService) aggregate(ctx context.Context, videoID int64) (*model.RatingAggregate, error) {
	if s.aggCache != nil {
		agg, err := s.aggCache.Get(ctx, videoID)
		if err == nil {
			return agg, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn("Read rating cache failed", zap.Int64("video_id", videoID), zap.Error(err))
		}
	}

	agg, err := s.ratings.AverageByVideo(videoID)
	if err != nil {
		return nil, err
	}

	if s.aggCache != nil {
		if err := s.aggCache.Set(ctx, videoID, agg); err != nil {
			logger.Warn("Write rating cache failed", zap.Int64("video_id", videoID), zap.Error(err))
		}
	}
	return agg, nil
}
