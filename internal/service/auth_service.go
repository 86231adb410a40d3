package service

import (
    "context"
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "golang.org/x/crypto/bcrypt"

    "github.com/greenpandorik/yatube-project-api/config"
    "github.com/greenpandorik/yatube-project-api/internal/model"
    "github.com/greenpandorik/yatube-project-api/internal/repository"
)

// AuthService 凭证协作方：注册用户并签发 JWT
// 核心业务只消费中间件解析出来的身份，不关心这里的细节
type AuthService interface {
    Register(ctx context.Context, username, email, password string) (*model.User, error)
    Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
    userRepo repository.UserRepository
    jwtCfg   config.JWTConfig
}

func NewAuthService(userRepo repository.UserRepository, jwtCfg config.JWTConfig) AuthService {
    return &authService{userRepo: userRepo, jwtCfg: jwtCfg}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }
    u, err := s.userRepo.Create(ctx, username, email, string(hash))
    if err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return nil, ErrUserExists
        }
        return nil, err
    }
    return u, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
    u, err := s.userRepo.GetByUsername(ctx, username)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return "", ErrInvalidCredentials
        }
        return "", err
    }
    if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
        return "", ErrInvalidCredentials
    }

    now := time.Now()
    claims := jwt.MapClaims{
        "sub":      u.ID,
        "username": u.Username,
        "iat":      now.Unix(),
        "exp":      now.Add(time.Duration(s.jwtCfg.ExpireHour) * time.Hour).Unix(),
    }
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString([]byte(s.jwtCfg.Secret))
}
