package model

import "time"

// Rating 评分模型，(user_id, video_id) 唯一，写入走 upsert
type Rating struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评分记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_video_rating;index:idx_ratings_user_id;comment:评分用户ID" json:"user_id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_user_video_rating;index:idx_ratings_video_id;comment:被评分视频ID" json:"video_id"`
	Value     int       `gorm:"not null;comment:评分值（1-5）" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:首次评分时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:最近修改时间" json:"updated_at"`

	// 关联关系
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingAggregate 单个视频的评分聚合，读取时计算
// 无评分时 Average=0、Total=0，不返回空值
type RatingAggregate struct {
	Average float64 `json:"average"`
	Total   int64   `json:"total"`
}
