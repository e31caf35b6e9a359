package router

import (
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/handlers"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Auth     *handlers.AuthHandler
	Article  *handlers.ArticleHandler
	Comment  *handlers.CommentHandler
	Category *handlers.CategoryHandler
	Tag      *handlers.TagHandler
	Talk     *handlers.TalkHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	// 认证
	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)

	// 文章（公开读）
	article := r.Group("/article")
	{
		article.GET("/archives", h.Article.Archives)      // 归档
		article.GET("/pinned", h.Article.Pinned)          // 置顶文章
		article.GET("/featured", h.Article.Featured)      // 推荐文章
		article.GET("/detail/:id", h.Article.Detail)      // 文章详情
		article.GET("/search-all", h.Article.SearchAll)   // 关键字查询所有文章
		article.GET("/search", h.Article.SearchPublished) // 关键字查询已发布文章
		article.GET("/top5", h.Article.TopFive)           // 访问量前五
		article.GET("/published", h.Article.Published)    // 已发布文章
		article.GET("/draft", h.Article.Draft)            // 草稿
		article.GET("/:id", h.Article.FindByID)           // 单篇文章
	}

	// 文章（需登录）
	articleAuth := r.Group("/article")
	articleAuth.Use(middleware.AuthRequired())
	{
		articleAuth.POST("", h.Article.Create)                  // 新建文章
		articleAuth.POST("/draft", h.Article.Create)            // 新建草稿
		articleAuth.PATCH("", h.Article.Update)                 // 更新文章
		articleAuth.PATCH("/draft", h.Article.Update)           // 更新草稿
		articleAuth.PATCH("/top", h.Article.UpdateTop)          // 更新置顶状态
		articleAuth.PATCH("/recommend", h.Article.UpdateRecommend) // 更新推荐状态
		articleAuth.DELETE("/:id", h.Article.Remove)            // 删除文章
	}

	// 评论
	comment := r.Group("/comment")
	{
		comment.GET("", h.Comment.List)             // 某文章/说说下的评论树
		comment.GET("/recently", h.Comment.Recently) // 最近评论
		comment.GET("/all", h.Comment.All)          // 所有顶层评论
	}
	commentAuth := r.Group("/comment")
	commentAuth.Use(middleware.AuthRequired())
	{
		commentAuth.POST("", h.Comment.Create)                 // 发表评论
		commentAuth.DELETE("/remove-one", h.Comment.RemoveByID)  // 删除单条
		commentAuth.DELETE("/remove-all", h.Comment.RemoveByIDs) // 批量删除
	}

	// 分类
	category := r.Group("/category")
	{
		category.GET("", h.Category.List)
		category.GET("/category-count", h.Category.CategoryAndCount) // 分类及文章数量
		category.GET("/top10", h.Category.Top10)                     // 文章数量前十
		category.GET("/:id", h.Category.FindByID)
	}
	categoryAuth := r.Group("/category")
	categoryAuth.Use(middleware.AuthRequired())
	{
		categoryAuth.POST("", h.Category.Create)
		categoryAuth.PATCH("/:id", h.Category.Update)
		categoryAuth.DELETE("/remove-one", h.Category.Remove)
	}

	// 标签
	tag := r.Group("/tag")
	{
		tag.GET("", h.Tag.List)
		tag.GET("/:id", h.Tag.FindByID)
	}
	tagAuth := r.Group("/tag")
	tagAuth.Use(middleware.AuthRequired())
	{
		tagAuth.POST("", h.Tag.Create)
		tagAuth.PATCH("/:id", h.Tag.Update)
		tagAuth.DELETE("/:id", h.Tag.Remove)
	}

	// 说说
	talk := r.Group("/talk")
	{
		talk.GET("", h.Talk.List)
	}
	talkAuth := r.Group("/talk")
	talkAuth.Use(middleware.AuthRequired())
	{
		talkAuth.POST("", h.Talk.Create)
		talkAuth.DELETE("/:id", h.Talk.Remove)
	}
}
