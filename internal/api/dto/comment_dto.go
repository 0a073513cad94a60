package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// CommentListQuery 评论列表查询参数
type CommentListQuery struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// CommentUser 评论中嵌套的用户信息
type CommentUser struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// CommentInfo 评论详情
type CommentInfo struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"user_id"`
	VideoID   int64        `json:"video_id"`
	Content   string       `json:"content"`
	LikeCount int64        `json:"like_count"`
	CreatedAt time.Time    `json:"created_at"`
	User      *CommentUser `json:"user,omitempty"`
}

// CommentListData 评论列表响应数据
type CommentListData struct {
	Comments []CommentInfo `json:"comments"`
	Total    int64         `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}
