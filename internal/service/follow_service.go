package service

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "time"

    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/greenpandorik/yatube-project-api/internal/model"
    "github.com/greenpandorik/yatube-project-api/internal/repository"
    "github.com/greenpandorik/yatube-project-api/pkg/logger"
)

const followCacheTTL = 30 * time.Second

// FollowService 关注边的域规则：
// 1. 禁止自关注，先于任何存储访问判定
// 2. 插入必须单条原子落库，唯一键冲突是重复关注的权威信号
type FollowService interface {
    Follow(ctx context.Context, userID, targetUsername string) (*model.Follow, error)
    Unfollow(ctx context.Context, userID, followID string) error
    List(ctx context.Context, userID string, page, pageSize int) ([]*model.Follow, error)
}

type followService struct {
    followRepo repository.FollowRepository
    userRepo   repository.UserRepository
    cache      *redis.Client // 可为 nil，nil 时直连存储
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository, cache *redis.Client) FollowService {
    return &followService{followRepo: followRepo, userRepo: userRepo, cache: cache}
}

func (s *followService) Follow(ctx context.Context, userID, targetUsername string) (*model.Follow, error) {
    target, err := s.userRepo.GetByUsername(ctx, targetUsername)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }
    if target.ID == userID {
        return nil, ErrSelfFollow
    }
    // 预检只为给出友好错误，省一次注定失败的写；结论不作数
    if exists, err := s.followRepo.Exists(ctx, userID, target.ID); err == nil && exists {
        return nil, ErrAlreadyFollowing
    }
    f, err := s.followRepo.Create(ctx, userID, target.ID)
    if err != nil {
        // 并发竞争下预检双双放行，最终由唯一键裁决，冲突即重复
        if errors.Is(err, repository.ErrConflict) {
            return nil, ErrAlreadyFollowing
        }
        return nil, err
    }
    s.invalidate(ctx, userID)
    return f, nil
}

func (s *followService) Unfollow(ctx context.Context, userID, followID string) error {
    if err := s.followRepo.Delete(ctx, userID, followID); err != nil {
        return err
    }
    s.invalidate(ctx, userID)
    return nil
}

func (s *followService) List(ctx context.Context, userID string, page, pageSize int) ([]*model.Follow, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 10
    }
    offset := (page - 1) * pageSize

    key := fmt.Sprintf("follows:%s:%d:%d", userID, page, pageSize)
    if s.cache != nil {
        if data, err := s.cache.Get(ctx, key).Bytes(); err == nil {
            var out []*model.Follow
            if uErr := json.Unmarshal(data, &out); uErr == nil {
                return out, nil
            }
        }
    }

    items, err := s.followRepo.ListByUser(ctx, userID, offset, pageSize)
    if err != nil {
        return nil, err
    }
    if s.cache != nil {
        if payload, err := json.Marshal(items); err == nil {
            _ = s.cache.Set(ctx, key, payload, followCacheTTL).Err()
        }
    }
    return items, nil
}

// invalidate 写路径后清掉该用户的关注列表缓存页
func (s *followService) invalidate(ctx context.Context, userID string) {
    if s.cache == nil {
        return
    }
    iter := s.cache.Scan(ctx, 0, fmt.Sprintf("follows:%s:*", userID), 100).Iterator()
    for iter.Next(ctx) {
        if err := s.cache.Del(ctx, iter.Val()).Err(); err != nil {
            logger.Warn("follow cache del failed", zap.String("key", iter.Val()), zap.Error(err))
        }
    }
    if err := iter.Err(); err != nil {
        logger.Warn("follow cache scan failed", zap.String("user", userID), zap.Error(err))
    }
}
