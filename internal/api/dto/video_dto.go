package dto

import "time"

// VideoCreateRequest 创建视频请求（仅创作者）
type VideoCreateRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=200"`
	Publisher    string  `json:"publisher" binding:"required,min=1,max=200"`
	Producer     string  `json:"producer" binding:"required,min=1,max=200"`
	Genre        string  `json:"genre" binding:"required,min=1,max=50"`
	AgeRating    string  `json:"age_rating" binding:"required,min=1,max=20"`
	Description  string  `json:"description" binding:"omitempty"`
	ThumbnailURL *string `json:"thumbnail_url" binding:"omitempty,max=500"`
	VideoURL     *string `json:"video_url" binding:"omitempty,max=500"`
	Duration     int     `json:"duration" binding:"omitempty,gte=0"`
}

// ListVideosQuery 视频列表查询参数
type ListVideosQuery struct {
	Search string `form:"search"`
	Genre  string `form:"genre"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// CreatorBrief 视频中嵌套的创作者简要信息
type CreatorBrief struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// VideoInfo 视频详情（含评分聚合）
type VideoInfo struct {
	ID            int64         `json:"id"`
	CreatorID     int64         `json:"creator_id"`
	Title         string        `json:"title"`
	Publisher     string        `json:"publisher"`
	Producer      string        `json:"producer"`
	Genre         string        `json:"genre"`
	AgeRating     string        `json:"age_rating"`
	Description   string        `json:"description"`
	ThumbnailURL  *string       `json:"thumbnail_url"`
	VideoURL      *string       `json:"video_url"`
	Duration      int           `json:"duration"`
	Views         int64         `json:"views"`
	AverageRating float64       `json:"average_rating"`
	TotalRatings  int64         `json:"total_ratings"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Creator       *CreatorBrief `json:"creator,omitempty"`
}

// VideoListData 视频列表响应数据
type VideoListData struct {
	Videos []VideoInfo `json:"videos"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
