package model

import "time"

// 用户角色
const (
	RoleConsumer = "consumer"
	RoleCreator  = "creator"
)

// User 用户模型
type User struct {
	ID              int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Email           string    `gorm:"size:255;not null;uniqueIndex;comment:邮箱" json:"email"`
	UserName        string    `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"username"`
	Password        string    `gorm:"size:255;not null;comment:密码哈希" json:"-"` // json:"-" 序列化时忽略密码
	FirstName       *string   `gorm:"size:255;comment:名" json:"first_name"`
	LastName        *string   `gorm:"size:255;comment:姓" json:"last_name"`
	ProfileImageURL *string   `gorm:"size:500;comment:头像地址" json:"profile_image_url"`
	Role            string    `gorm:"size:20;not null;default:'consumer';comment:用户角色" json:"role"`
	CreatedAt       time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Videos   []Video   `gorm:"foreignKey:CreatorID" json:"videos,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Ratings  []Rating  `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsCreator 是否为创作者账号
func (u *User) IsCreator() bool {
	return u.Role == RoleCreator
}
