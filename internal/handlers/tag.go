package handlers

import (
	"net/http"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/services"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/utils"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	service *services.TagService
}

func NewTagHandler(service *services.TagService) *TagHandler {
	return &TagHandler{service: service}
}

// Create 新建标签
func (h *TagHandler) Create(c *gin.Context) {
	var req struct {
		TagName string `json:"tag_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	tag, err := h.service.Create(req.TagName)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": tag})
}

// List 所有标签
func (h *TagHandler) List(c *gin.Context) {
	tags, count, err := h.service.FindAll()
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": tags, "count": count})
}

// FindByID 单个标签
func (h *TagHandler) FindByID(c *gin.Context) {
	tag, err := h.service.FindByID(utils.StringToUint(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": tag})
}

// Update 更新标签名称
func (h *TagHandler) Update(c *gin.Context) {
	var req struct {
		TagName string `json:"tag_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	if err := h.service.Update(utils.StringToUint(c.Param("id")), req.TagName); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "更新标签成功！")
}

// Remove 删除标签
func (h *TagHandler) Remove(c *gin.Context) {
	if err := h.service.Remove(utils.StringToUint(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "删除标签成功！")
}
