package service

import (
	"errors"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"
	infraKafka "github.com/shermian8845-code/Videoshare/internal/infra/kafka"
	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrVideoNotFound = errors.New("视频不存在")

// VideoStore 视频存储接口
type VideoStore interface {
	GetByID(id int64) (*model.Video, error)
	GetByIDWithCreator(id int64) (*model.Video, error)
	GetByIDsWithCreator(ids []int64) ([]model.Video, error)
	Create(video *model.Video) error
	ListVideos(offset, limit int, search, genre *string, withCreator bool) ([]model.Video, int64, error)
	IncrementViews(id int64) error
}

// RatingAggregator 评分聚合读取接口
type RatingAggregator interface {
	AverageByVideo(videoID int64) (*model.RatingAggregate, error)
	AverageByVideos(videoIDs []int64) (map[int64]model.RatingAggregate, error)
}

type VideoService struct {
	videos  VideoStore
	ratings RatingAggregator
	events  EventPublisher
}

func NewVideoService(videos VideoStore, ratings RatingAggregator, events EventPublisher) *VideoService {
	return &VideoService{videos: videos, ratings: ratings, events: events}
}

// Create 创建视频记录（权限校验在中间件完成）
func (s *VideoService) Create(creatorID int64, req *dto.VideoCreateRequest) (*dto.VideoInfo, error) {
	video := &model.Video{
		CreatorID:    creatorID,
		Title:        req.Title,
		Publisher:    req.Publisher,
		Producer:     req.Producer,
		Genre:        req.Genre,
		AgeRating:    req.AgeRating,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		Duration:     req.Duration,
	}

	if err := s.videos.Create(video); err != nil {
		return nil, err
	}

	publishVideoEvent(s.events, infraKafka.EventVideoCreated, video.ID, creatorID)

	return toVideoInfo(video, &model.RatingAggregate{}, false), nil
}

// GetDetail 获取视频详情（含创作者和评分聚合），并自动增加观看次数
func (s *VideoService) GetDetail(videoID int64) (*dto.VideoInfo, error) {
	video, err := s.videos.GetByIDWithCreator(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	// 相对更新，失败不阻断详情返回
	if err := s.videos.IncrementViews(videoID); err != nil {
		logger.Warn("Increment views failed", zap.Int64("video_id", videoID), zap.Error(err))
	} else {
		video.Views++
	}

	agg, err := s.ratings.AverageByVideo(videoID)
	if err != nil {
		return nil, err
	}

	publishVideoEvent(s.events, infraKafka.EventVideoViewed, videoID, 0)

	return toVideoInfo(video, agg, true), nil
}

// List 视频列表（newest-first 分页，含创作者和评分聚合）
// search 为标题/发行方/类型的子串匹配，genre 为精确匹配
func (s *VideoService) List(query *dto.ListVideosQuery) (*dto.VideoListData, error) {
	var search, genre *string
	if query.Search != "" {
		search = &query.Search
	}
	if query.Genre != "" {
		genre = &query.Genre
	}

	videos, total, err := s.videos.ListVideos(query.Offset, query.Limit, search, genre, true)
	if err != nil {
		return nil, err
	}

	return s.buildVideoListData(videos, total, query.Limit, query.Offset)
}

// buildVideoListData 批量补齐评分聚合并组装列表响应
func (s *VideoService) buildVideoListData(videos []model.Video, total int64, limit, offset int) (*dto.VideoListData, error) {
	ids := make([]int64, 0, len(videos))
	for i := range videos {
		ids = append(ids, videos[i].ID)
	}

	aggs, err := s.ratings.AverageByVideos(ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		agg := aggs[videos[i].ID]
		items = append(items, *toVideoInfo(&videos[i], &agg, true))
	}

	return &dto.VideoListData{
		Videos: items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// toVideoInfo 将 model.Video 转换为 dto.VideoInfo
func toVideoInfo(video *model.Video, agg *model.RatingAggregate, includeCreator bool) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:            video.ID,
		CreatorID:     video.CreatorID,
		Title:         video.Title,
		Publisher:     video.Publisher,
		Producer:      video.Producer,
		Genre:         video.Genre,
		AgeRating:     video.AgeRating,
		Description:   video.Description,
		ThumbnailURL:  video.ThumbnailURL,
		VideoURL:      video.VideoURL,
		Duration:      video.Duration,
		Views:         video.Views,
		AverageRating: agg.Average,
		TotalRatings:  agg.Total,
		CreatedAt:     video.CreatedAt,
		UpdatedAt:     video.UpdatedAt,
	}

	if includeCreator && video.Creator.ID != 0 {
		info.Creator = &dto.CreatorBrief{
			ID:              video.Creator.ID,
			Username:        video.Creator.UserName,
			ProfileImageURL: video.Creator.ProfileImageURL,
		}
	}

	return info
}
