package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/greenpandorik/yatube-project-api/internal/model"
)

type PostRepository interface {
    Create(ctx context.Context, p *model.Post) error
    GetByID(ctx context.Context, id string) (*model.Post, error)
    List(ctx context.Context, offset, limit int) ([]*model.Post, error)
    Update(ctx context.Context, id string, fields map[string]any) (*model.Post, error)
    Delete(ctx context.Context, id string) error
}

type postRepository struct {
    db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
    return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
    var p model.Post
    err := r.db.WithContext(ctx).
        Preload("Author").
        Preload("Comments").
        First(&p, "id = ?", id).Error
    if err != nil {
        return nil, translate(err)
    }
    return &p, nil
}

func (r *postRepository) List(ctx context.Context, offset, limit int) ([]*model.Post, error) {
    var res []*model.Post
    err := r.db.WithContext(ctx).
        Preload("Author").
        Preload("Comments").
        Order("pub_date ASC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, translate(err)
}

// Update 只更新调用方显式给出的列；author/pub_date 等派生字段不在此路径上
func (r *postRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.Post, error) {
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        res := tx.Model(&model.Post{}).Where("id = ?", id).Updates(fields)
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
    return r.GetByID(ctx, id)
}

// Delete 删帖：同一事务内先删帖子下全部评论，再删帖子
func (r *postRepository) Delete(ctx context.Context, id string) error {
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
            return err
        }
        res := tx.Delete(&model.Post{}, "id = ?", id)
        if res.Error != nil {
            return res.Error
        }
        if res.RowsAffected == 0 {
            return ErrNotFound
        }
        return nil
    })
    return translate(err)
}
