package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/greenpandorik/yatube-project-api/internal/model"
)

// CommentRepository 所有操作都以父帖子 id 为锚点：
// 评论存在但 post_id 不匹配时按 ErrNotFound 处理，
// 防止通过别的帖子的 URL 枚举或改写评论
type CommentRepository interface {
    Create(ctx context.Context, c *model.Comment) error
    Get(ctx context.Context, postID, id string) (*model.Comment, error)
    ListByPost(ctx context.Context, postID string, offset, limit int) ([]*model.Comment, error)
    Update(ctx context.Context, postID, id string, fields map[string]any) (*model.Comment, error)
    Delete(ctx context.Context, postID, id string) error
}

type commentRepository struct {
    db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
    return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *commentRepository) Get(ctx context.Context, postID, id string) (*model.Comment, error) {
    var c model.Comment
    err := r.db.WithContext(ctx).
        Preload("Author").
        First(&c, "id = ? AND post_id = ?", id, postID).Error
    if err != nil {
        return nil, translate(err)
    }
    return &c, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string, offset, limit int) ([]*model.Comment, error) {
    var res []*model.Comment
    err := r.db.WithContext(ctx).
        Preload("Author").
        Where("post_id = ?", postID).
        Order("created DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, translate(err)
}

func (r *commentRepository) Update(ctx context.Context, postID, id string, fields map[string]any) (*model.Comment, error) {
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        res := tx.Model(&model.Comment{}).Where("id = ? AND post_id = ?", id, postID).Updates(fields)
        if res.Error != nil {
            return res.Error
        }
        if res.RowsAffected == 0 {
            return ErrNotFound
        }
        return nil
    })
    if err != nil {
        return nil, translate(err)
    }
    return r.Get(ctx, postID, id)
}

func (r *commentRepository) Delete(ctx context.Context, postID, id string) error {
    res := r.db.WithContext(ctx).Where("id = ? AND post_id = ?", id, postID).Delete(&model.Comment{})
    if res.Error != nil {
        return translate(res.Error)
    }
    if res.RowsAffected == 0 {
        return ErrNotFound
    }
    return nil
}
