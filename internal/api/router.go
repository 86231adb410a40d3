package api

import (
    "regexp"

    sentrygin "github.com/getsentry/sentry-go/gin"
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    "github.com/gin-gonic/gin/binding"
    "github.com/go-playground/validator/v10"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
    "golang.org/x/time/rate"

    "github.com/greenpandorik/yatube-project-api/config"
    _ "github.com/greenpandorik/yatube-project-api/docs"
    "github.com/greenpandorik/yatube-project-api/internal/api/handler"
    "github.com/greenpandorik/yatube-project-api/internal/api/middleware"
)

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func registerValidators() {
    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        _ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
            return slugRe.MatchString(fl.Field().String())
        })
    }
}

// NewRouter 组装路由
// 评论集合整体嵌套在 /posts/:post_id 下（见 comment_handler）
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
    gin.SetMode(cfg.Server.Mode)
    registerValidators()

    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(middleware.RequestLog())
    r.Use(gzip.Gzip(gzip.DefaultCompression))
    r.Use(otelgin.Middleware("yatube-project-api"))
    if cfg.Sentry.DSN != "" {
        r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
    }
    r.Use(middleware.RateLimit(rate.Limit(50), 100))

    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    v1 := r.Group("/api/v1")
    auth := middleware.Auth(cfg.JWT.Secret)

    v1.POST("/auth/register", h.Register)
    v1.POST("/auth/login", h.Login)

    v1.GET("/groups", h.ListGroups)
    v1.GET("/groups/:group_id", h.GetGroup)
    v1.POST("/groups", auth, h.CreateGroup)
    v1.PUT("/groups/:group_id", auth, h.UpdateGroup)
    v1.PATCH("/groups/:group_id", auth, h.PatchGroup)
    v1.DELETE("/groups/:group_id", auth, h.DeleteGroup)

    v1.GET("/posts", h.ListPosts)
    v1.GET("/posts/:post_id", h.GetPost)
    v1.POST("/posts", auth, h.CreatePost)
    v1.PUT("/posts/:post_id", auth, h.UpdatePost)
    v1.PATCH("/posts/:post_id", auth, h.PatchPost)
    v1.DELETE("/posts/:post_id", auth, h.DeletePost)

    v1.GET("/posts/:post_id/comments", h.ListComments)
    v1.GET("/posts/:post_id/comments/:id", h.GetComment)
    v1.POST("/posts/:post_id/comments", auth, h.CreateComment)
    v1.PUT("/posts/:post_id/comments/:id", auth, h.UpdateComment)
    v1.PATCH("/posts/:post_id/comments/:id", auth, h.PatchComment)
    v1.DELETE("/posts/:post_id/comments/:id", auth, h.DeleteComment)

    v1.GET("/follow", auth, h.ListFollows)
    v1.POST("/follow", auth, h.CreateFollow)
    v1.DELETE("/follow/:id", auth, h.DeleteFollow)

    return r
}
