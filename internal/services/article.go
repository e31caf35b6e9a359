package services

import (
	"fmt"
	"strings"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/models"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/store"
)

// 列表排序：浏览量优先，平局时取较小 id，保证置顶/推荐/top5 口径一致
const orderByViews = "view_times DESC, id ASC"

// ArticleService 文章聚合与变更
type ArticleService struct {
	store store.Store
}

func NewArticleService(s store.Store) *ArticleService {
	return &ArticleService{store: s}
}

// ArticleInput 创建/更新文章的入参
type ArticleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Status      bool   `json:"status"` // false: 草稿, true: 发布
	Top         bool   `json:"top"`
	Recommend   bool   `json:"recommend"`
	AuthorID    uint   `json:"author_id"`
	CategoryID  *uint  `json:"category_id"`
	TagIDs      []uint `json:"tag_ids"`
}

// Archive 按月归档的一组文章
type Archive struct {
	Timeline string           `json:"timeline"`
	List     []models.Article `json:"list"`
}

// ArticleDetail 文章详情，附带按 id 顺序的上一篇/下一篇
type ArticleDetail struct {
	models.Article
	PreArticle  *models.Article `json:"pre_article"`
	NextArticle *models.Article `json:"next_article"`
}

// FindArchives 按创建时间倒序取一页文章，在内存中按 "年-月" 分组，
// 分组保持首次出现的顺序。count 为已发布文章总数，与窗口无关。
func (s *ArticleService) FindArchives(skip, limit int) ([]Archive, int64, error) {
	articles, err := s.store.FindArticles(store.ArticleQuery{
		Order: "created_at DESC",
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return nil, 0, err
	}

	archives := make([]Archive, 0)
	index := make(map[string]int)
	for _, article := range articles {
		// 月份为 1-12，不做零填充
		timeline := fmt.Sprintf("%d-%d", article.CreatedAt.Year(), int(article.CreatedAt.Month()))
		if i, ok := index[timeline]; ok {
			archives[i].List = append(archives[i].List, article)
		} else {
			index[timeline] = len(archives)
			archives = append(archives, Archive{Timeline: timeline, List: []models.Article{article}})
		}
	}

	published := true
	count, err := s.store.CountArticles(store.ArticleQuery{Status: &published})
	if err != nil {
		return nil, 0, err
	}
	return archives, count, nil
}

// FindPinned 浏览量最高的置顶文章，平局取较小 id，没有则返回 nil
func (s *ArticleService) FindPinned() (*models.Article, error) {
	top := true
	return s.store.FirstArticle(store.ArticleQuery{
		Top:     &top,
		Order:   orderByViews,
		Preload: true,
	})
}

// FindFeatured 浏览量最高的前两篇推荐文章，排除置顶文章
func (s *ArticleService) FindFeatured() ([]models.Article, error) {
	recommend, top := true, false
	return s.store.FindArticles(store.ArticleQuery{
		Recommend: &recommend,
		Top:       &top,
		Order:     orderByViews,
		Limit:     2,
		Preload:   true,
	})
}

// FindDetailByID 文章详情。pre 为 id 小于目标的最大已发布文章，没有则回绕到
// 全局最后一篇；next 为 id 大于目标的最小已发布文章，没有则回绕到全局第一篇。
// 非本机访问时浏览量 +1。
func (s *ArticleService) FindDetailByID(id uint, callerAddr string) (*ArticleDetail, error) {
	article, err := s.store.FindArticleByID(id, true)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, notFound("文章不存在")
	}

	published := true
	pre, err := s.store.FirstArticle(store.ArticleQuery{Status: &published, IDLt: id, Order: "id DESC"})
	if err != nil {
		return nil, err
	}
	if pre == nil {
		if pre, err = s.store.FirstArticle(store.ArticleQuery{Status: &published, Order: "id DESC"}); err != nil {
			return nil, err
		}
	}
	next, err := s.store.FirstArticle(store.ArticleQuery{Status: &published, IDGt: id, Order: "id ASC"})
	if err != nil {
		return nil, err
	}
	if next == nil {
		if next, err = s.store.FirstArticle(store.ArticleQuery{Status: &published, Order: "id ASC"}); err != nil {
			return nil, err
		}
	}

	if !isLoopback(callerAddr) {
		if err := s.store.IncrementArticleViews(id); err != nil {
			return nil, err
		}
		article.ViewTimes++
	}

	return &ArticleDetail{Article: *article, PreArticle: pre, NextArticle: next}, nil
}

// isLoopback 本机访问不计浏览量，兼容 IPv4-mapped-IPv6 形式
func isLoopback(addr string) bool {
	return strings.TrimPrefix(addr, "::ffff:") == "127.0.0.1"
}

// SearchAll 关键字模糊匹配标题/描述/正文，count 与窗口无关。
// 空关键字匹配全部。
func (s *ArticleService) SearchAll(keyword string, skip, limit int) ([]models.Article, int64, error) {
	articles, err := s.store.FindArticles(store.ArticleQuery{
		Keyword: keyword,
		Order:   "created_at DESC",
		Skip:    skip,
		Limit:   limit,
		Preload: true,
	})
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.CountArticles(store.ArticleQuery{Keyword: keyword})
	if err != nil {
		return nil, 0, err
	}
	return articles, count, nil
}

// SearchAllPublished 同 SearchAll，但只匹配已发布文章
func (s *ArticleService) SearchAllPublished(keyword string) ([]models.Article, int64, error) {
	published := true
	articles, err := s.store.FindArticles(store.ArticleQuery{
		Keyword: keyword,
		Status:  &published,
		Order:   "created_at DESC",
		Preload: true,
	})
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.CountArticles(store.ArticleQuery{Keyword: keyword, Status: &published})
	if err != nil {
		return nil, 0, err
	}
	return articles, count, nil
}

// FindTopFive 浏览量前五的已发布文章，只取 id/title/view_times
func (s *ArticleService) FindTopFive() ([]models.Article, error) {
	published := true
	return s.store.FindArticles(store.ArticleQuery{
		Status: &published,
		Order:  orderByViews,
		Limit:  5,
		Fields: []string{"id", "title", "view_times"},
	})
}

// FindAllPublished 已发布文章分页列表
func (s *ArticleService) FindAllPublished(skip, limit int) ([]models.Article, int64, error) {
	return s.findAllByStatus(true, skip, limit)
}

// FindAllDraft 草稿分页列表
func (s *ArticleService) FindAllDraft(skip, limit int) ([]models.Article, int64, error) {
	return s.findAllByStatus(false, skip, limit)
}

func (s *ArticleService) findAllByStatus(status bool, skip, limit int) ([]models.Article, int64, error) {
	articles, err := s.store.FindArticles(store.ArticleQuery{
		Status:  &status,
		Order:   "created_at DESC",
		Skip:    skip,
		Limit:   limit,
		Preload: true,
	})
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.CountArticles(store.ArticleQuery{Status: &status})
	if err != nil {
		return nil, 0, err
	}
	return articles, count, nil
}

// FindByID 单篇文章（含关联）
func (s *ArticleService) FindByID(id uint) (*models.Article, error) {
	article, err := s.store.FindArticleByID(id, true)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, notFound("文章不存在")
	}
	return article, nil
}

// resolveTags 逐个解析标签 id，不存在的直接跳过，不报错
func (s *ArticleService) resolveTags(ids []uint) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		tag, err := s.store.FindTagByID(id)
		if err != nil {
			return nil, err
		}
		if tag != nil {
			tags = append(tags, *tag)
		}
	}
	return tags, nil
}

// Create 创建文章（或草稿），标签/分类关联随文章一并保存。
// 不存在的 tag_id / category_id 静默跳过。
func (s *ArticleService) Create(input ArticleInput) (*models.Article, error) {
	tags, err := s.resolveTags(input.TagIDs)
	if err != nil {
		return nil, err
	}

	article := models.Article{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		Status:      input.Status,
		Top:         input.Top,
		Recommend:   input.Recommend,
		AuthorID:    input.AuthorID,
		Tags:        tags,
	}

	if input.CategoryID != nil {
		category, err := s.store.FindCategoryByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			article.CategoryID = &category.ID
			article.Category = category
		}
	}

	if err := s.store.CreateArticle(&article); err != nil {
		return nil, err
	}
	return &article, nil
}

// Update 更新文章标量字段；只有更新命中行时才重建标签/分类关联。
// tag_ids 为空时保留原有标签；category_id 未提供或不存在时保留原分类。
func (s *ArticleService) Update(id uint, input ArticleInput) error {
	fields := map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"content":     input.Content,
		"status":      input.Status,
		"top":         input.Top,
		"recommend":   input.Recommend,
	}
	affected, err := s.store.UpdateArticle(id, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，更新文章失败！")
	}

	if len(input.TagIDs) > 0 {
		tags, err := s.resolveTags(input.TagIDs)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := s.store.ReplaceArticleTags(id, tags); err != nil {
				return err
			}
		}
	}
	if input.CategoryID != nil {
		category, err := s.store.FindCategoryByID(*input.CategoryID)
		if err != nil {
			return err
		}
		if category != nil {
			if _, err := s.store.UpdateArticle(id, map[string]interface{}{"category_id": category.ID}); err != nil {
				return err
			}
		}
	}
	return nil
}

// UpdateTop 更新置顶状态
func (s *ArticleService) UpdateTop(id uint, top bool) error {
	affected, err := s.store.UpdateArticle(id, map[string]interface{}{"top": top})
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，更新文章置顶状态失败！")
	}
	return nil
}

// UpdateRecommend 更新推荐状态
func (s *ArticleService) UpdateRecommend(id uint, recommend bool) error {
	affected, err := s.store.UpdateArticle(id, map[string]interface{}{"recommend": recommend})
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，更新文章推荐失败！")
	}
	return nil
}

// Remove 删除文章
func (s *ArticleService) Remove(id uint) error {
	affected, err := s.store.DeleteArticle(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，删除文章失败！")
	}
	return nil
}
