package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/greenpandorik/yatube-project-api/pkg/response"
)

type registerRequest struct {
    Username string `json:"username" binding:"required,max=150"`
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
    Username string `json:"username" binding:"required"`
    Password string `json:"password" binding:"required"`
}

// Register 注册用户
// @Summary 注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
    var req registerRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    u, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Created(c, gin.H{"id": u.ID, "username": u.Username})
}

// Login 登录换取 token
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    token, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
    if err != nil {
        renderError(c, err)
        return
    }
    response.Success(c, gin.H{"token": token})
}
