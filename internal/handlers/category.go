package handlers

import (
	"net/http"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/services"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create 新建分类，重名返回 409
func (h *CategoryHandler) Create(c *gin.Context) {
	var req struct {
		CategoryName string `json:"category_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	category, err := h.service.Create(req.CategoryName)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": category})
}

// List 所有分类
func (h *CategoryHandler) List(c *gin.Context) {
	categories, count, err := h.service.FindAll()
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": categories, "count": count})
}

// CategoryAndCount 所有分类及各自的文章数量
func (h *CategoryHandler) CategoryAndCount(c *gin.Context) {
	counts, err := h.service.FindCategoryAndCount()
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": counts})
}

// Top10 文章数量前十的分类
func (h *CategoryHandler) Top10(c *gin.Context) {
	counts, err := h.service.FindCategoryTop10()
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": counts})
}

// FindByID 单个分类
func (h *CategoryHandler) FindByID(c *gin.Context) {
	category, err := h.service.FindByID(utils.StringToUint(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": category})
}

// Update 更新分类名称
func (h *CategoryHandler) Update(c *gin.Context) {
	var req struct {
		CategoryName string `json:"category_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	if err := h.service.Update(utils.StringToUint(c.Param("id")), req.CategoryName); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "更新分类成功！")
}

// Remove 删除分类（分类下的文章不受影响）
func (h *CategoryHandler) Remove(c *gin.Context) {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	if err := h.service.Remove(req.ID); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "删除分类成功！")
}
