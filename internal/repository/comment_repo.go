package repository

import (
	"github.com/shermian8845-code/Videoshare/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByVideo 获取视频的评论列表（含评论用户），按评论时间倒序
func (r *CommentRepository) ListByVideo(videoID int64, offset, limit int) ([]model.Comment, int64, error) {
	query := r.db.Model(&model.Comment{}).Where("video_id = ?", videoID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	err := query.Preload("User").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// CountByVideo 统计视频的评论数
func (r *CommentRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
