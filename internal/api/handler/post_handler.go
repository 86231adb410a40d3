package handler

import (
    "errors"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"

    "github.com/greenpandorik/yatube-project-api/internal/api/middleware"
    "github.com/greenpandorik/yatube-project-api/internal/model"
    "github.com/greenpandorik/yatube-project-api/internal/repository"
    "github.com/greenpandorik/yatube-project-api/pkg/response"
)

// 入站结构体刻意没有 author/pub_date/comments：
// author 取自请求身份，pub_date 创建时写死，comments 是只读聚合
type postRequest struct {
    Text  string  `json:"text" binding:"required"`
    Image *string `json:"image" binding:"omitempty,max=255"`
    Group *string `json:"group"`
}

type postPatchRequest struct {
    Text  *string `json:"text" binding:"omitempty,min=1"`
    Image *string `json:"image" binding:"omitempty,max=255"`
    Group *string `json:"group"`
}

// checkGroupRef 校验载荷里的组引用；无效引用属于载荷错误（400），不是 404
func (h *Handler) checkGroupRef(c *gin.Context, groupID string) bool {
    if _, err := h.groupRepo.GetByID(c.Request.Context(), groupID); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            response.BadRequest(c, "group does not exist")
        } else {
            renderError(c, err)
        }
        return false
    }
    return true
}

// ListPosts 按发布时间正序列出帖子
// @Summary 帖子列表
// @Tags 帖子
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/v1/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
    page, pageSize, offset := pageParams(c)
    items, err := h.postRepo.List(c.Request.Context(), offset, pageSize)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": toPostList(items)})
}

// GetPost 帖子详情
// @Summary 帖子详情
// @Tags 帖子
// @Produce json
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id} [get]
func (h *Handler) GetPost(c *gin.Context) {
    p, err := h.postRepo.GetByID(c.Request.Context(), c.Param("post_id"))
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, toPostResponse(p))
}

// CreatePost 发帖，作者来自请求身份，载荷里写了也不认
// @Summary 发帖
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body postRequest true "帖子内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
    var req postRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if req.Group != nil && !h.checkGroupRef(c, *req.Group) {
        return
    }
    p := &model.Post{
        ID:       uuid.New().String(),
        AuthorID: middleware.CurrentUserID(c),
        Text:     req.Text,
        PubDate:  time.Now(),
        Image:    req.Image,
        GroupID:  req.Group,
    }
    if err := h.postRepo.Create(c.Request.Context(), p); err != nil {
        renderError(c, err)
        return
    }
    created, err := h.postRepo.GetByID(c.Request.Context(), p.ID)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Created(c, toPostResponse(created))
}

// UpdatePost 全量更新；author/pub_date 不可变
// @Summary 改帖
// @Tags 帖子
// @Accept json
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param request body postRequest true "帖子内容"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id} [put]
func (h *Handler) UpdatePost(c *gin.Context) {
    var req postRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if req.Group != nil && !h.checkGroupRef(c, *req.Group) {
        return
    }
    fields := map[string]any{"text": req.Text, "image": req.Image, "group_id": req.Group}
    p, err := h.postRepo.Update(c.Request.Context(), c.Param("post_id"), fields)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, toPostResponse(p))
}

// PatchPost 部分更新
// @Summary 改帖（部分）
// @Tags 帖子
// @Router /api/v1/posts/{post_id} [patch]
func (h *Handler) PatchPost(c *gin.Context) {
    var req postPatchRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    fields := map[string]any{}
    if req.Text != nil {
        fields["text"] = *req.Text
    }
    if req.Image != nil {
        fields["image"] = *req.Image
    }
    if req.Group != nil {
        if !h.checkGroupRef(c, *req.Group) {
            return
        }
        fields["group_id"] = *req.Group
    }
    if len(fields) == 0 {
        response.BadRequest(c, "no fields to update")
        return
    }
    p, err := h.postRepo.Update(c.Request.Context(), c.Param("post_id"), fields)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, toPostResponse(p))
}

// DeletePost 删帖并级联删除其下全部评论
// @Summary 删帖
// @Tags 帖子
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
    if err := h.postRepo.Delete(c.Request.Context(), c.Param("post_id")); err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, nil)
}
