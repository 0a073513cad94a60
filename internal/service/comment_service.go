package service

import (
	"errors"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"
	infraKafka "github.com/shermian8845-code/Videoshare/internal/infra/kafka"
	"github.com/shermian8845-code/Videoshare/internal/model"

	"gorm.io/gorm"
)

// CommentStore 评论存储接口
type CommentStore interface {
	Create(comment *model.Comment) error
	ListByVideo(videoID int64, offset, limit int) ([]model.Comment, int64, error)
}

type CommentService struct {
	comments CommentStore
	videos   VideoStore
	events   EventPublisher
}

func NewCommentService(comments CommentStore, videos VideoStore, events EventPublisher) *CommentService {
	return &CommentService{comments: comments, videos: videos, events: events}
}

// CreateComment 发表评论，任何已登录用户都可以评论
func (s *CommentService) CreateComment(userID, videoID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	if _, err := s.videos.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		UserID:  userID,
		VideoID: videoID,
		Content: req.Content,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}

	publishVideoEvent(s.events, infraKafka.EventVideoCommented, videoID, userID)

	return toCommentInfo(comment), nil
}

// ListComments 视频评论列表，按评论时间倒序
func (s *CommentService) ListComments(videoID int64, query *dto.CommentListQuery) (*dto.CommentListData, error) {
	if _, err := s.videos.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comments, total, err := s.comments.ListByVideo(videoID, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		items = append(items, *toCommentInfo(&comments[i]))
	}

	return &dto.CommentListData{
		Comments: items,
		Total:    total,
		Limit:    query.Limit,
		Offset:   query.Offset,
	}, nil
}

// toCommentInfo 将 model.Comment 转换为 dto.CommentInfo
func toCommentInfo(comment *model.Comment) *dto.CommentInfo {
	info := &dto.CommentInfo{
		ID:        comment.ID,
		UserID:    comment.UserID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		LikeCount: comment.LikeCount,
		CreatedAt: comment.CreatedAt,
	}

	if comment.User.ID != 0 {
		info.User = &dto.CommentUser{
			ID:              comment.User.ID,
			Username:        comment.User.UserName,
			ProfileImageURL: comment.User.ProfileImageURL,
		}
	}

	return info
}
