package service

import (
    "context"
    "testing"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/greenpandorik/yatube-project-api/config"
    "github.com/greenpandorik/yatube-project-api/internal/repository"
)

func newAuthSvc(t *testing.T) (AuthService, config.JWTConfig) {
    t.Helper()
    db := setupSvcDB(t)
    cfg := config.JWTConfig{Secret: "test-secret", ExpireHour: 1}
    return NewAuthService(repository.NewUserRepository(db), cfg), cfg
}

func TestRegisterAndLogin(t *testing.T) {
    svc, cfg := newAuthSvc(t)
    ctx := context.Background()

    u, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
    require.NoError(t, err)
    assert.Equal(t, "alice", u.Username)
    assert.NotEqual(t, "password123", u.Password)

    tokenStr, err := svc.Login(ctx, "alice", "password123")
    require.NoError(t, err)

    token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
        return []byte(cfg.Secret), nil
    })
    require.NoError(t, err)
    claims := token.Claims.(jwt.MapClaims)
    assert.Equal(t, u.ID, claims["sub"])
    assert.Equal(t, "alice", claims["username"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
    svc, _ := newAuthSvc(t)
    ctx := context.Background()

    _, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
    require.NoError(t, err)
    _, err = svc.Register(ctx, "alice", "other@example.com", "password123")
    assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
    svc, _ := newAuthSvc(t)
    ctx := context.Background()

    _, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
    require.NoError(t, err)

    _, err = svc.Login(ctx, "alice", "wrong")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
    _, err = svc.Login(ctx, "nobody", "password123")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
}
