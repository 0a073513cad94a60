package repository

import (
	"github.com/shermian8845-code/Videoshare/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithCreator 根据 ID 获取视频（含创作者信息）
func (r *VideoRepository) GetByIDWithCreator(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Creator").Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDsWithCreator 批量查询视频（含创作者信息），ES 搜索回表用
func (r *VideoRepository) GetByIDsWithCreator(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Creator").Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// ListVideos 视频列表查询，按创建时间倒序分页
// search 对标题/发行方/类型做子串匹配（不区分大小写），genre 为精确匹配，两者同时给出时取交集
func (r *VideoRepository) ListVideos(offset, limit int, search, genre *string, withCreator bool) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{})

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query = query.Where("title ILIKE ? OR publisher ILIKE ? OR genre ILIKE ?", pattern, pattern, pattern)
	}
	if genre != nil && *genre != "" {
		query = query.Where("genre = ?", *genre)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	findQuery := query.Order("created_at DESC").Offset(offset).Limit(limit)
	if withCreator {
		findQuery = findQuery.Preload("Creator")
	}

	var videos []model.Video
	if err := findQuery.Find(&videos).Error; err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// IncrementViews 观看数 +1
// 相对更新，并发自增不丢失；视频不存在时静默跳过
func (r *VideoRepository) IncrementViews(id int64) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
