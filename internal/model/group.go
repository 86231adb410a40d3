package model

import "time"

// Group 主题组，slug 全局唯一且对外稳定
type Group struct {
    ID          string    `gorm:"primaryKey;type:varchar(36)"`
    Title       string    `gorm:"type:varchar(200);not null"`
    Slug        string    `gorm:"type:varchar(200);uniqueIndex:ux_group_slug;not null"`
    Description string    `gorm:"type:varchar(200)"`
    CreatedAt   time.Time
    UpdatedAt   time.Time
}

func (Group) TableName() string { return "groups" }
