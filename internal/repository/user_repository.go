package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/greenpandorik/yatube-project-api/internal/model"
)

type UserRepository interface {
    Create(ctx context.Context, username, email, passwordHash string) (*model.User, error)
    GetByID(ctx context.Context, id string) (*model.User, error)
    GetByUsername(ctx context.Context, username string) (*model.User, error)
    Delete(ctx context.Context, id string) error
}

type userRepository struct {
    db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
    u := &model.User{ID: uuid.New().String(), Username: username, Email: email, Password: passwordHash}
    if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
        return nil, translate(err)
    }
    return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
        return nil, translate(err)
    }
    return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
        return nil, translate(err)
    }
    return &u, nil
}

// Delete 删除用户并在同一事务内级联：
// 本人帖子（连同帖子下所有评论）、本人评论、正反两个方向的关注边
func (r *userRepository) Delete(ctx context.Context, id string) error {
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var postIDs []string
        if err := tx.Model(&model.Post{}).Where("author_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
            return err
        }
        if len(postIDs) > 0 {
            if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Comment{}).Error; err != nil {
                return err
            }
        }
        if err := tx.Where("author_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
            return err
        }
        if err := tx.Where("author_id = ?", id).Delete(&model.Post{}).Error; err != nil {
            return err
        }
        if err := tx.Where("user_id = ? OR following_id = ?", id, id).Delete(&model.Follow{}).Error; err != nil {
            return err
        }
        res := tx.Delete(&model.User{}, "id = ?", id)
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
