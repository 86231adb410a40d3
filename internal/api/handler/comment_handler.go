package handler

import (
    "time"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"

    "github.com/greenpandorik/yatube-project-api/internal/api/middleware"
    "github.com/greenpandorik/yatube-project-api/internal/model"
    "github.com/greenpandorik/yatube-project-api/pkg/response"
)

// 评论集合整体挂在 /posts/:post_id/comments 下：
// 每个操作都以路由里的帖子 id 为锚点，载荷里的 post 字段不存在也不认

type commentRequest struct {
    Text string `json:"text" binding:"required,max=300"`
}

// resolvePost 嵌套路径先解析父帖子，不存在直接 404
func (h *Handler) resolvePost(c *gin.Context) (string, bool) {
    postID := c.Param("post_id")
    if _, err := h.postRepo.GetByID(c.Request.Context(), postID); err != nil {
        renderError(c, err)
        return "", false
    }
    return postID, true
}

// ListComments 某帖子下的评论，按创建时间倒序
// @Summary 评论列表
// @Tags 评论
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
    postID, ok := h.resolvePost(c)
    if !ok {
        return
    }
    page, pageSize, offset := pageParams(c)
    items, err := h.commentRepo.ListByPost(c.Request.Context(), postID, offset, pageSize)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": toCommentList(items)})
}

// GetComment 评论详情；评论存在但不属于该帖子时同样 404
// @Summary 评论详情
// @Tags 评论
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param id path string true "评论ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id}/comments/{id} [get]
func (h *Handler) GetComment(c *gin.Context) {
    cm, err := h.commentRepo.Get(c.Request.Context(), c.Param("post_id"), c.Param("id"))
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, toCommentResponse(cm))
}

// CreateComment 发评论，post 取路由、author 取身份
// @Summary 发评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param request body commentRequest true "评论内容"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
    postID, ok := h.resolvePost(c)
    if !ok {
        return
    }
    var req commentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    cm := &model.Comment{
        ID:       uuid.New().String(),
        AuthorID: middleware.CurrentUserID(c),
        Text:     req.Text,
        Created:  time.Now(),
        PostID:   postID,
    }
    if err := h.commentRepo.Create(c.Request.Context(), cm); err != nil {
        renderError(c, err)
        return
    }
    created, err := h.commentRepo.Get(c.Request.Context(), postID, cm.ID)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Created(c, toCommentResponse(created))
}

// UpdateComment 改评论正文；跨帖子的 id 组合按不存在处理
// @Summary 改评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param id path string true "评论ID"
// @Param request body commentRequest true "评论内容"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id}/comments/{id} [put]
func (h *Handler) UpdateComment(c *gin.Context) {
    var req commentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    cm, err := h.commentRepo.Update(c.Request.Context(), c.Param("post_id"), c.Param("id"),
        map[string]any{"text": req.Text})
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, toCommentResponse(cm))
}

// PatchComment 评论只有 text 可改，partial 与全量等价
// @Summary 改评论（部分）
// @Tags 评论
// @Router /api/v1/posts/{post_id}/comments/{id} [patch]
func (h *Handler) PatchComment(c *gin.Context) {
    h.UpdateComment(c)
}

// DeleteComment 删评论
// @Summary 删评论
// @Tags 评论
// @Param post_id path string true "帖子ID"
// @Param id path string true "评论ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id}/comments/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
    if err := h.commentRepo.Delete(c.Request.Context(), c.Param("post_id"), c.Param("id")); err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, nil)
}
