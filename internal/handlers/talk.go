package handlers

import (
	"net/http"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/middleware"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/services"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/utils"

	"github.com/gin-gonic/gin"
)

type TalkHandler struct {
	service *services.TalkService
}

func NewTalkHandler(service *services.TalkService) *TalkHandler {
	return &TalkHandler{service: service}
}

// List 说说分页列表
func (h *TalkHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	talks, count, err := h.service.FindAll(skip, limit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": talks, "count": count})
}

// Create 发布说说，作者取当前登录用户
func (h *TalkHandler) Create(c *gin.Context) {
	var input services.TalkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadParam(c, err)
		return
	}
	if user := middleware.CurrentUser(c); user != nil {
		input.UID = user.ID
	}
	talk, err := h.service.Create(input)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": talk})
}

// Remove 删除说说
func (h *TalkHandler) Remove(c *gin.Context) {
	if err := h.service.Remove(utils.StringToUint(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "删除说说成功！")
}
