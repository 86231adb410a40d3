package model

import "time"

// Comment 帖子评论
// post 由路由父级推导，客户端载荷中的同名字段一律忽略
type Comment struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"`
    AuthorID  string    `gorm:"type:varchar(36);index:idx_comment_author;not null"`
    Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
    Text      string    `gorm:"type:varchar(300);not null"`
    Created   time.Time `gorm:"index:idx_comment_created;not null"`
    PostID    string    `gorm:"type:varchar(36);index:idx_comment_post;not null"`
    Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
    UpdatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
