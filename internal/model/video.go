package model

import "time"

// Video 视频模型
type Video struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	CreatorID    int64     `gorm:"not null;index:idx_videos_creator_id;comment:创作者ID" json:"creator_id"`
	Title        string    `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Publisher    string    `gorm:"size:200;not null;comment:发行方" json:"publisher"`
	Producer     string    `gorm:"size:200;not null;comment:制作方" json:"producer"`
	Genre        string    `gorm:"size:50;not null;index:idx_videos_genre;comment:类型" json:"genre"`
	AgeRating    string    `gorm:"size:20;not null;comment:年龄分级" json:"age_rating"`
	Description  string    `gorm:"type:text;comment:视频描述" json:"description"`
	ThumbnailURL *string   `gorm:"size:500;comment:封面地址" json:"thumbnail_url"`
	VideoURL     *string   `gorm:"size:500;comment:视频播放地址" json:"video_url"`
	Duration     int       `gorm:"default:0;comment:视频时长（秒）" json:"duration"`
	Views        int64     `gorm:"not null;default:0;comment:播放量" json:"views"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_videos_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Creator  User      `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Comments []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty"`
	Ratings  []Rating  `gorm:"foreignKey:VideoID" json:"ratings,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
