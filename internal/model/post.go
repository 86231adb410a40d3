package model

import "time"

// Post 内容主体
// author 永远取自请求身份；pub_date 创建时写入一次，之后不可变
// group 可空，组删除时置空（不级联删帖）
type Post struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"`
    AuthorID  string    `gorm:"type:varchar(36);index:idx_post_author;not null"`
    Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
    Text      string    `gorm:"type:text;not null"`
    PubDate   time.Time `gorm:"index:idx_post_pub_date;not null"`
    Image     *string   `gorm:"type:varchar(255)"` // 外部 blob 句柄，按引用存储
    GroupID   *string   `gorm:"type:varchar(36);index:idx_post_group"`
    Group     *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
    Comments  []Comment `gorm:"foreignKey:PostID"`
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }
