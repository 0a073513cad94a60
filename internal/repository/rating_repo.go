package repository

import (
	"time"

	"github.com/shermian8845-code/Videoshare/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert 写入评分：同一 (user_id, video_id) 已有记录时原地更新评分值
// 单条 INSERT ... ON CONFLICT DO UPDATE，唯一索引兜底，不做先查后写
func (r *RatingRepository) Upsert(rating *model.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      rating.Value,
			"updated_at": time.Now(),
		}),
	}).Create(rating).Error
}

// GetByUserAndVideo 查询用户对某视频的评分
func (r *RatingRepository) GetByUserAndVideo(userID, videoID int64) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// AverageByVideo 计算视频的平均评分和评分总数
// 无评分返回 {0, 0}
func (r *RatingRepository) AverageByVideo(videoID int64) (*model.RatingAggregate, error) {
	var agg model.RatingAggregate
	err := r.db.Model(&model.Rating{}).
		Select("COALESCE(AVG(value), 0) AS average, COUNT(id) AS total").
		Where("video_id = ?", videoID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// AverageByVideos 批量计算多个视频的评分聚合，列表页用
// 未出现在结果中的视频填零值聚合
func (r *RatingRepository) AverageByVideos(videoIDs []int64) (map[int64]model.RatingAggregate, error) {
	result := make(map[int64]model.RatingAggregate, len(videoIDs))
	for _, id := range videoIDs {
		result[id] = model.RatingAggregate{}
	}
	if len(videoIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		VideoID int64
		Average float64
		Total   int64
	}
	err := r.db.Model(&model.Rating{}).
		Select("video_id, COALESCE(AVG(value), 0) AS average, COUNT(id) AS total").
		Where("video_id IN ?", videoIDs).
		Group("video_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.VideoID] = model.RatingAggregate{Average: row.Average, Total: row.Total}
	}
	return result, nil
}
