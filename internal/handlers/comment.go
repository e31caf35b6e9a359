package handlers

import (
	"net/http"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/middleware"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/services"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List 某一类型下的顶层评论分页（含作者和全部回复），aid 可选
func (h *CommentHandler) List(c *gin.Context) {
	scopeType := utils.StringToInt(c.Query("type"))
	skip, limit := pagination(c)

	var aid *uint
	if v := c.Query("aid"); v != "" {
		id := utils.StringToUint(v)
		aid = &id
	}

	comments, count, err := h.service.FindComments(scopeType, skip, limit, aid)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": comments, "count": count})
}

// Recently 最近 5 条顶层评论
func (h *CommentHandler) Recently(c *gin.Context) {
	comments, err := h.service.FindRecently()
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": comments})
}

// All 所有顶层评论分页
func (h *CommentHandler) All(c *gin.Context) {
	skip, limit := pagination(c)
	comments, count, err := h.service.FindAll(skip, limit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": comments, "count": count})
}

// Create 发表评论，作者取当前登录用户
func (h *CommentHandler) Create(c *gin.Context) {
	var input services.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadParam(c, err)
		return
	}
	if user := middleware.CurrentUser(c); user != nil {
		input.UID = user.ID
	}
	comment, err := h.service.Create(input)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": comment})
}

// RemoveByID 删除单条评论
func (h *CommentHandler) RemoveByID(c *gin.Context) {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	if err := h.service.RemoveByID(req.ID); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "删除评论成功！")
}

// RemoveByIDs 批量删除评论（事务，全部成功或全部失败）
func (h *CommentHandler) RemoveByIDs(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	if err := h.service.RemoveByIDs(req.IDs); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "批量删除评论成功！")
}
