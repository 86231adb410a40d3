package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/greenpandorik/yatube-project-api/internal/api/middleware"
    "github.com/greenpandorik/yatube-project-api/pkg/response"
)

// user 字段是派生的：发起方永远是当前身份，载荷里只收 following
type followRequest struct {
    Following string `json:"following" binding:"required"`
}

// ListFollows 当前用户发出的关注边
// @Summary 关注列表
// @Tags 关注
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/follow [get]
func (h *Handler) ListFollows(c *gin.Context) {
    page, pageSize, _ := pageParams(c)
    items, err := h.followSvc.List(c.Request.Context(), middleware.CurrentUserID(c), page, pageSize)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": toFollowList(items)})
}

// CreateFollow 关注一位作者（当前身份 → following 用户名）
// 自关注 400；重复关注 400，由存储层唯一键裁决
// @Summary 关注
// @Tags 关注
// @Accept json
// @Produce json
// @Param request body followRequest true "被关注者用户名"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/follow [post]
func (h *Handler) CreateFollow(c *gin.Context) {
    var req followRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    // 解码期镜像预检：自己关注自己不必走存储
    if req.Following == middleware.CurrentUsername(c) {
        response.BadRequest(c, "cannot follow yourself")
        return
    }
    f, err := h.followSvc.Follow(c.Request.Context(), middleware.CurrentUserID(c), req.Following)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Created(c, toFollowResponse(f))
}

// DeleteFollow 取关；只能删自己的边，别人的边视同不存在
// @Summary 取关
// @Tags 关注
// @Param id path string true "关注边ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/follow/{id} [delete]
func (h *Handler) DeleteFollow(c *gin.Context) {
    if err := h.followSvc.Unfollow(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, nil)
}
