package handler

import (
    "github.com/gin-gonic/gin"
    "github.com/google/uuid"

    "github.com/greenpandorik/yatube-project-api/internal/model"
    "github.com/greenpandorik/yatube-project-api/pkg/response"
)

type groupRequest struct {
    Title       string `json:"title" binding:"required,max=200"`
    Slug        string `json:"slug" binding:"required,slug,max=200"`
    Description string `json:"description" binding:"max=200"`
}

type groupPatchRequest struct {
    Title       *string `json:"title" binding:"omitempty,max=200"`
    Slug        *string `json:"slug" binding:"omitempty,slug,max=200"`
    Description *string `json:"description" binding:"omitempty,max=200"`
}

// ListGroups 按标题倒序列出主题组
// @Summary 组列表
// @Tags 组
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/v1/groups [get]
func (h *Handler) ListGroups(c *gin.Context) {
    page, pageSize, offset := pageParams(c)
    items, err := h.groupRepo.List(c.Request.Context(), offset, pageSize)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": toGroupList(items)})
}

// GetGroup 组详情
// @Summary 组详情
// @Tags 组
// @Produce json
// @Param group_id path string true "组ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/groups/{group_id} [get]
func (h *Handler) GetGroup(c *gin.Context) {
    g, err := h.groupRepo.GetByID(c.Request.Context(), c.Param("group_id"))
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, toGroupResponse(g))
}

// CreateGroup 建组，slug 全局唯一
// @Summary 建组
// @Tags 组
// @Accept json
// @Produce json
// @Param request body groupRequest true "组信息"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/groups [post]
func (h *Handler) CreateGroup(c *gin.Context) {
    var req groupRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    g := &model.Group{
        ID:          uuid.New().String(),
        Title:       req.Title,
        Slug:        req.Slug,
        Description: req.Description,
    }
    if err := h.groupRepo.Create(c.Request.Context(), g); err != nil {
        renderError(c, err)
        return
    }
    response.Created(c, toGroupResponse(g))
}

// UpdateGroup 全量更新
// @Summary 改组
// @Tags 组
// @Accept json
// @Produce json
// @Param group_id path string true "组ID"
// @Param request body groupRequest true "组信息"
// @Success 200 {object} response.Response
// @Router /api/v1/groups/{group_id} [put]
func (h *Handler) UpdateGroup(c *gin.Context) {
    var req groupRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    fields := map[string]any{"title": req.Title, "slug": req.Slug, "description": req.Description}
    g, err := h.groupRepo.Update(c.Request.Context(), c.Param("group_id"), fields)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, toGroupResponse(g))
}

// PatchGroup 部分更新，只动给出的字段
// @Summary 改组（部分）
// @Tags 组
// @Router /api/v1/groups/{group_id} [patch]
func (h *Handler) PatchGroup(c *gin.Context) {
    var req groupPatchRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    fields := map[string]any{}
    if req.Title != nil {
        fields["title"] = *req.Title
    }
    if req.Slug != nil {
        fields["slug"] = *req.Slug
    }
    if req.Description != nil {
        fields["description"] = *req.Description
    }
    if len(fields) == 0 {
        response.BadRequest(c, "no fields to update")
        return
    }
    g, err := h.groupRepo.Update(c.Request.Context(), c.Param("group_id"), fields)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, toGroupResponse(g))
}

// DeleteGroup 删组：引用它的帖子 group 置空，帖子保留
// @Summary 删组
// @Tags 组
// @Param group_id path string true "组ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/groups/{group_id} [delete]
func (h *Handler) DeleteGroup(c *gin.Context) {
    if err := h.groupRepo.Delete(c.Request.Context(), c.Param("group_id")); err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, nil)
}
