package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/greenpandorik/yatube-project-api/internal/model"
)

type FollowRepository interface {
    Create(ctx context.Context, userID, followingID string) (*model.Follow, error)
    Delete(ctx context.Context, userID, id string) error
    Exists(ctx context.Context, userID, followingID string) (bool, error)
    ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Follow, error)
}

type followRepository struct {
    db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

// Create 单条原子插入，唯一键 idx_follow_pair 做最终裁决
// 并发下两个请求同插一条边时，后提交的一方拿到 ErrConflict；
// 这里绝不走「先查后插」，那样两次读都观察不到对方
func (r *followRepository) Create(ctx context.Context, userID, followingID string) (*model.Follow, error) {
    f := &model.Follow{ID: uuid.New().String(), UserID: userID, FollowingID: followingID}
    if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
        return nil, translate(err)
    }
    // 回读带出双方用户名
    if err := r.db.WithContext(ctx).Preload("User").Preload("Following").First(f, "id = ?", f.ID).Error; err != nil {
        return nil, translate(err)
    }
    return f, nil
}

// Delete 只允许关注者本人删自己的边；不是本人的边等同于不存在
func (r *followRepository) Delete(ctx context.Context, userID, id string) error {
    res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Follow{})
    if res.Error != nil {
        return translate(res.Error)
    }
    if res.RowsAffected == 0 {
        return ErrNotFound
    }
    return nil
}

// Exists 供上层快速预检用，结论不作数（见 Create）
func (r *followRepository) Exists(ctx context.Context, userID, followingID string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Follow{}).
        Where("user_id = ? AND following_id = ?", userID, followingID).
        Count(&cnt).Error; err != nil {
        return false, translate(err)
    }
    return cnt > 0, nil
}

func (r *followRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Follow, error) {
    var res []*model.Follow
    err := r.db.WithContext(ctx).
        Preload("User").
        Preload("Following").
        Where("user_id = ?", userID).
        Order("user_id DESC, created_at DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, translate(err)
}
