package handlers

import (
	"net/http"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/store"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users store.UserStore
}

func NewAuthHandler(users store.UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login 用户登录，校验密码后写入会话
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}

	user, err := h.users.FindUserByUsername(req.Username)
	if err != nil {
		Fail(c, err)
		return
	}
	if user == nil || !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "用户名或密码错误"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": user})
}

// Logout 退出登录，清空会话
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "退出登录成功！")
}
