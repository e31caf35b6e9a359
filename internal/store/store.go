package store

import (
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/models"
)

// ArticleQuery 文章列表查询条件。Limit <= 0 表示不限制。
type ArticleQuery struct {
	Status    *bool
	Top       *bool
	Recommend *bool
	Keyword   string // 模糊匹配 title / description / content
	IDLt      uint   // id < IDLt（0 表示不限制）
	IDGt      uint   // id > IDGt（0 表示不限制）
	Order     string // 例如 "created_at DESC"
	Skip      int
	Limit     int
	Preload   bool     // 是否加载 Author / Category / Tags
	Fields    []string // 非空时只查询指定列
}

// CommentQuery 评论列表查询条件。Limit <= 0 表示不限制。
type CommentQuery struct {
	Type     *int
	AID      *uint
	TopLevel bool // 只取 pid 为空的顶层评论
	Order    string
	Skip     int
	Limit    int
}

// CategoryCount 分类及其文章数量
type CategoryCount struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"category_name"`
	ArticleCount int64  `json:"article_count"`
}

// ArticleStore 文章存储
type ArticleStore interface {
	FindArticles(q ArticleQuery) ([]models.Article, error)
	CountArticles(q ArticleQuery) (int64, error)
	// FirstArticle 按查询条件取第一条，未命中返回 (nil, nil)
	FirstArticle(q ArticleQuery) (*models.Article, error)
	// FindArticleByID 未命中返回 (nil, nil)
	FindArticleByID(id uint, preload bool) (*models.Article, error)
	// CreateArticle 连同关联（标签、分类）一并保存
	CreateArticle(a *models.Article) error
	// UpdateArticle 部分更新，返回受影响行数
	UpdateArticle(id uint, fields map[string]interface{}) (int64, error)
	// ReplaceArticleTags 覆盖文章的标签关联
	ReplaceArticleTags(id uint, tags []models.Tag) error
	// DeleteArticle 返回受影响行数
	DeleteArticle(id uint) (int64, error)
	IncrementArticleViews(id uint) error
}

// TagStore 标签存储
type TagStore interface {
	FindTags() ([]models.Tag, error)
	CountTags() (int64, error)
	// FindTagByID 未命中返回 (nil, nil)
	FindTagByID(id uint) (*models.Tag, error)
	CreateTag(t *models.Tag) error
	UpdateTag(id uint, fields map[string]interface{}) (int64, error)
	DeleteTag(id uint) (int64, error)
}

// CategoryStore 分类存储
type CategoryStore interface {
	FindCategories() ([]models.Category, error)
	CountCategories() (int64, error)
	// FindCategoryByID 未命中返回 (nil, nil)
	FindCategoryByID(id uint) (*models.Category, error)
	// FindCategoryByName 未命中返回 (nil, nil)
	FindCategoryByName(name string) (*models.Category, error)
	CreateCategory(c *models.Category) error
	UpdateCategory(id uint, fields map[string]interface{}) (int64, error)
	DeleteCategory(id uint) (int64, error)
	// CategoryArticleCounts 各分类的文章数量，按数量降序。limit <= 0 表示不限制。
	CategoryArticleCounts(limit int) ([]CategoryCount, error)
}

// CommentStore 评论存储
type CommentStore interface {
	FindComments(q CommentQuery) ([]models.Comment, error)
	CountComments(q CommentQuery) (int64, error)
	// FindRepliesByParentIDs 取指定父评论下的全部回复，按 id 升序
	FindRepliesByParentIDs(pids []uint) ([]models.Comment, error)
	CreateComment(c *models.Comment) error
	DeleteComment(id uint) (int64, error)
	// DeleteCommentsByIDs 在单个事务中删除，任一失败则全部回滚
	DeleteCommentsByIDs(ids []uint) error
}

// UserStore 用户读取（评论作者信息）
type UserStore interface {
	// FindUserByID 未命中返回 (nil, nil)
	FindUserByID(id uint) (*models.User, error)
	FindUsersByIDs(ids []uint) ([]models.User, error)
	// FindUserByUsername 未命中返回 (nil, nil)
	FindUserByUsername(username string) (*models.User, error)
}

// TalkStore 说说存储
type TalkStore interface {
	FindTalks(skip, limit int) ([]models.Talk, error)
	CountTalks() (int64, error)
	CreateTalk(t *models.Talk) error
	DeleteTalk(id uint) (int64, error)
	// IncrementTalkComments 调整说说的评论计数
	IncrementTalkComments(id uint, delta int) error
}

// Store 聚合所有存储能力，由 GormStore 实现
type Store interface {
	ArticleStore
	TagStore
	CategoryStore
	CommentStore
	UserStore
	TalkStore
}
