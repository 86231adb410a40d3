package model

import (
    "time"
)

// Follow 关注关系（user 关注 following）
type Follow struct {
    ID          string `gorm:"primaryKey;type:varchar(36)"`
    UserID      string `gorm:"type:varchar(36);index:idx_follow_user;index:idx_follow_pair,unique;not null;check:chk_follow_not_self,user_id <> following_id"`
    FollowingID string `gorm:"type:varchar(36);not null;index:idx_follow_pair,unique"`
    User        User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
    Following   User   `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
    // 复合唯一键，避免重复关注
    // idx_follow_pair = (user_id, following_id)
    // chk_follow_not_self 在存储层兜底禁止自关注
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
