package handlers

import (
	"net/http"
	"time"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/middleware"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/services"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// 热门读接口的缓存 key
const (
	cacheKeyPinned   = "article:pinned"
	cacheKeyFeatured = "article:featured"
	cacheKeyTopFive  = "article:top5"
)

type ArticleHandler struct {
	service *services.ArticleService
}

func NewArticleHandler(service *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func pagination(c *gin.Context) (skip, limit int) {
	return utils.StringToInt(c.Query("skip")), utils.StringToInt(c.Query("limit"))
}

// Archives 文章归档（按月分组）
func (h *ArticleHandler) Archives(c *gin.Context) {
	skip, limit := pagination(c)
	archives, count, err := h.service.FindArchives(skip, limit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": archives, "count": count})
}

// Pinned 置顶文章（默认取访问量最高项）
func (h *ArticleHandler) Pinned(c *gin.Context) {
	if cached := utils.GetCache().Get(cacheKeyPinned); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}
	article, err := h.service.FindPinned()
	if err != nil {
		Fail(c, err)
		return
	}
	data := gin.H{"res": article}
	utils.GetCache().Set(cacheKeyPinned, data, 1*time.Minute)
	c.JSON(http.StatusOK, data)
}

// Featured 推荐文章（访问量最高前两项，不含置顶）
func (h *ArticleHandler) Featured(c *gin.Context) {
	if cached := utils.GetCache().Get(cacheKeyFeatured); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}
	articles, err := h.service.FindFeatured()
	if err != nil {
		Fail(c, err)
		return
	}
	data := gin.H{"res": articles}
	utils.GetCache().Set(cacheKeyFeatured, data, 1*time.Minute)
	c.JSON(http.StatusOK, data)
}

// Detail 文章详情，附上一篇/下一篇；非本机访问时浏览量 +1
func (h *ArticleHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	detail, err := h.service.FindDetailByID(id, c.ClientIP())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"res":          detail,
		"content_html": utils.RenderMarkdown(detail.Content),
	})
}

// SearchAll 关键字查询所有文章
func (h *ArticleHandler) SearchAll(c *gin.Context) {
	skip, limit := pagination(c)
	articles, count, err := h.service.SearchAll(c.Query("keyword"), skip, limit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": articles, "count": count})
}

// SearchPublished 关键字查询已发布文章
func (h *ArticleHandler) SearchPublished(c *gin.Context) {
	articles, count, err := h.service.SearchAllPublished(c.Query("keyword"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": articles, "count": count})
}

// TopFive 访问量前五的文章，只返回 id/title/view_times
func (h *ArticleHandler) TopFive(c *gin.Context) {
	if cached := utils.GetCache().Get(cacheKeyTopFive); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}
	articles, err := h.service.FindTopFive()
	if err != nil {
		Fail(c, err)
		return
	}
	data := gin.H{"res": articles}
	utils.GetCache().Set(cacheKeyTopFive, data, 1*time.Minute)
	c.JSON(http.StatusOK, data)
}

// Published 已发布文章分页
func (h *ArticleHandler) Published(c *gin.Context) {
	skip, limit := pagination(c)
	articles, count, err := h.service.FindAllPublished(skip, limit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": articles, "count": count})
}

// Draft 草稿分页
func (h *ArticleHandler) Draft(c *gin.Context) {
	skip, limit := pagination(c)
	articles, count, err := h.service.FindAllDraft(skip, limit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": articles, "count": count})
}

// FindByID 单篇文章
func (h *ArticleHandler) FindByID(c *gin.Context) {
	article, err := h.service.FindByID(utils.StringToUint(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": article})
}

// Create 新建文章/草稿
func (h *ArticleHandler) Create(c *gin.Context) {
	var input services.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadParam(c, err)
		return
	}
	if user := middleware.CurrentUser(c); user != nil {
		input.AuthorID = user.ID
	}
	article, err := h.service.Create(input)
	if err != nil {
		Fail(c, err)
		return
	}
	h.clearHotCache()
	c.JSON(http.StatusOK, gin.H{"res": article})
}

type updateArticleRequest struct {
	ID uint `json:"id"`
	services.ArticleInput
}

// Update 更新文章/草稿
func (h *ArticleHandler) Update(c *gin.Context) {
	var req updateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	if err := h.service.Update(req.ID, req.ArticleInput); err != nil {
		Fail(c, err)
		return
	}
	h.clearHotCache()
	Message(c, "更新文章成功！")
}

// UpdateTop 更新置顶状态
func (h *ArticleHandler) UpdateTop(c *gin.Context) {
	var req struct {
		ID  uint `json:"id"`
		Top bool `json:"top"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	if err := h.service.UpdateTop(req.ID, req.Top); err != nil {
		Fail(c, err)
		return
	}
	h.clearHotCache()
	Message(c, "更新文章置顶状态成功！")
}

// UpdateRecommend 更新推荐状态
func (h *ArticleHandler) UpdateRecommend(c *gin.Context) {
	var req struct {
		ID        uint `json:"id"`
		Recommend bool `json:"recommend"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadParam(c, err)
		return
	}
	if err := h.service.UpdateRecommend(req.ID, req.Recommend); err != nil {
		Fail(c, err)
		return
	}
	h.clearHotCache()
	Message(c, "更新文章推荐状态成功！")
}

// Remove 删除文章
func (h *ArticleHandler) Remove(c *gin.Context) {
	if err := h.service.Remove(utils.StringToUint(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	h.clearHotCache()
	Message(c, "删除文章成功！")
}

// clearHotCache 文章变更后失效热门读缓存
func (h *ArticleHandler) clearHotCache() {
	utils.GetCache().Delete(cacheKeyPinned)
	utils.GetCache().Delete(cacheKeyFeatured)
	utils.GetCache().Delete(cacheKeyTopFive)
}
