package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/greenpandorik/yatube-project-api/internal/model"
)

type GroupRepository interface {
    Create(ctx context.Context, g *model.Group) error
    GetByID(ctx context.Context, id string) (*model.Group, error)
    List(ctx context.Context, offset, limit int) ([]*model.Group, error)
    Update(ctx context.Context, id string, fields map[string]any) (*model.Group, error)
    Delete(ctx context.Context, id string) error
}

type groupRepository struct {
    db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository { return &groupRepository{db: db} }

func (r *groupRepository) Create(ctx context.Context, g *model.Group) error {
    // slug 唯一性由 ux_group_slug 保证，冲突返回 ErrConflict
    return translate(r.db.WithContext(ctx).Create(g).Error)
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*model.Group, error) {
    var g model.Group
    if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
        return nil, translate(err)
    }
    return &g, nil
}

func (r *groupRepository) List(ctx context.Context, offset, limit int) ([]*model.Group, error) {
    var res []*model.Group
    err := r.db.WithContext(ctx).Order("title DESC").Offset(offset).Limit(limit).Find(&res).Error
    return res, translate(err)
}

func (r *groupRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.Group, error) {
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        res := tx.Model(&model.Group{}).Where("id = ?", id).Updates(fields)
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

// Delete 删除组：同一事务内先把引用该组的帖子 group_id 置空，再删组
// 帖子本身永不因组删除而消失
func (r *groupRepository) Delete(ctx context.Context, id string) error {
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Model(&model.Post{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
            return err
        }
        res := tx.Delete(&model.Group{}, "id = ?", id)
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
