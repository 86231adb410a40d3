package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"

    "github.com/greenpandorik/yatube-project-api/pkg/response"
)

const (
    ctxUserID   = "auth.user_id"
    ctxUsername = "auth.username"
)

// Auth 校验 Bearer token 并把已验证身份放进请求上下文
// 下游只拿 CurrentUserID 当不透明值用，不再做任何权限推断
func Auth(secret string) gin.HandlerFunc {
    return func(c *gin.Context) {
        header := c.GetHeader("Authorization")
        if !strings.HasPrefix(header, "Bearer ") {
            response.Unauthorized(c, "missing bearer token")
            c.Abort()
            return
        }
        raw := strings.TrimPrefix(header, "Bearer ")

        token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
            if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                return nil, jwt.ErrSignatureInvalid
            }
            return []byte(secret), nil
        })
        if err != nil || !token.Valid {
            response.Unauthorized(c, "invalid token")
            c.Abort()
            return
        }
        claims, ok := token.Claims.(jwt.MapClaims)
        if !ok {
            response.Unauthorized(c, "invalid token claims")
            c.Abort()
            return
        }
        sub, _ := claims["sub"].(string)
        if sub == "" {
            response.Unauthorized(c, "invalid token subject")
            c.Abort()
            return
        }
        c.Set(ctxUserID, sub)
        if name, ok := claims["username"].(string); ok {
            c.Set(ctxUsername, name)
        }
        c.Next()
    }
}

// CurrentUserID 取当前请求身份；空串表示未认证
func CurrentUserID(c *gin.Context) string {
    return c.GetString(ctxUserID)
}

func CurrentUsername(c *gin.Context) string {
    return c.GetString(ctxUsername)
}
