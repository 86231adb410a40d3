package model

import "time"

// User 用户（身份由外部认证协作方签发，这里只承载关系查询所需字段）
// username 是对外的人类可读主键，关联载荷中都用它引用用户
type User struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"`
    Username  string    `gorm:"type:varchar(150);uniqueIndex:ux_user_username;not null"`
    Email     string    `gorm:"type:varchar(254);uniqueIndex:ux_user_email;not null"`
    Password  string    `gorm:"type:varchar(128);not null" json:"-"` // bcrypt hash
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
