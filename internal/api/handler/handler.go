package handler

import (
    "errors"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/greenpandorik/yatube-project-api/internal/repository"
    "github.com/greenpandorik/yatube-project-api/internal/service"
    "github.com/greenpandorik/yatube-project-api/pkg/response"
)

type Handler struct {
    groupRepo   repository.GroupRepository
    postRepo    repository.PostRepository
    commentRepo repository.CommentRepository
    authSvc     service.AuthService
    followSvc   service.FollowService
}

func New(
    groupRepo repository.GroupRepository,
    postRepo repository.PostRepository,
    commentRepo repository.CommentRepository,
    authSvc service.AuthService,
    followSvc service.FollowService,
) *Handler {
    return &Handler{
        groupRepo:   groupRepo,
        postRepo:    postRepo,
        commentRepo: commentRepo,
        authSvc:     authSvc,
        followSvc:   followSvc,
    }
}

func pageParams(c *gin.Context) (page, pageSize, offset int) {
    page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
    if page < 1 {
        page = 1
    }
    if pageSize < 1 || pageSize > 100 {
        pageSize = 10
    }
    return page, pageSize, (page - 1) * pageSize
}

// renderError 把各层错误映射到统一响应
// 存储层的约束冲突在到达这里之前已被翻译成可操作的域错误，绝不吞掉
func renderError(c *gin.Context, err error) {
    switch {
    case errors.Is(err, repository.ErrNotFound):
        response.NotFound(c, "not found")
    case errors.Is(err, repository.ErrConflict):
        response.Conflict(c, err.Error())
    case errors.Is(err, service.ErrUserExists):
        response.Conflict(c, err.Error())
    case errors.Is(err, service.ErrSelfFollow),
        errors.Is(err, service.ErrAlreadyFollowing),
        errors.Is(err, service.ErrUserNotFound):
        response.BadRequest(c, err.Error())
    case errors.Is(err, service.ErrInvalidCredentials):
        response.Unauthorized(c, err.Error())
    default:
        response.InternalError(c, err)
    }
}
