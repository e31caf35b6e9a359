package store

import (
	"errors"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/models"

	"gorm.io/gorm"
)

// GormStore 基于 GORM 的存储实现
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) articleScope(q ArticleQuery) *gorm.DB {
	tx := s.db.Model(&models.Article{})
	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}
	if q.Top != nil {
		tx = tx.Where("top = ?", *q.Top)
	}
	if q.Recommend != nil {
		tx = tx.Where("recommend = ?", *q.Recommend)
	}
	if q.Keyword != "" {
		pattern := "%" + q.Keyword + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ? OR content ILIKE ?", pattern, pattern, pattern)
	}
	if q.IDLt > 0 {
		tx = tx.Where("id < ?", q.IDLt)
	}
	if q.IDGt > 0 {
		tx = tx.Where("id > ?", q.IDGt)
	}
	return tx
}

func (s *GormStore) FindArticles(q ArticleQuery) ([]models.Article, error) {
	tx := s.articleScope(q)
	if q.Preload {
		tx = tx.Preload("Author").Preload("Category").Preload("Tags")
	}
	if len(q.Fields) > 0 {
		tx = tx.Select(q.Fields)
	}
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	if q.Skip > 0 {
		tx = tx.Offset(q.Skip)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	var articles []models.Article
	if err := tx.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *GormStore) CountArticles(q ArticleQuery) (int64, error) {
	var count int64
	if err := s.articleScope(q).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) FirstArticle(q ArticleQuery) (*models.Article, error) {
	q.Limit = 1
	articles, err := s.FindArticles(q)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}
	return &articles[0], nil
}

func (s *GormStore) FindArticleByID(id uint, preload bool) (*models.Article, error) {
	tx := s.db
	if preload {
		tx = tx.Preload("Author").Preload("Category").Preload("Tags")
	}
	var article models.Article
	if err := tx.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (s *GormStore) CreateArticle(a *models.Article) error {
	return s.db.Create(a).Error
}

func (s *GormStore) UpdateArticle(id uint, fields map[string]interface{}) (int64, error) {
	res := s.db.Model(&models.Article{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (s *GormStore) ReplaceArticleTags(id uint, tags []models.Tag) error {
	return s.db.Model(&models.Article{ID: id}).Association("Tags").Replace(tags)
}

func (s *GormStore) DeleteArticle(id uint) (int64, error) {
	res := s.db.Select("Tags").Delete(&models.Article{ID: id})
	return res.RowsAffected, res.Error
}

func (s *GormStore) IncrementArticleViews(id uint) error {
	return s.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn("view_times", gorm.Expr("view_times + 1")).Error
}

func (s *GormStore) FindTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *GormStore) CountTags() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Tag{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) FindTagByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (s *GormStore) CreateTag(t *models.Tag) error {
	return s.db.Create(t).Error
}

func (s *GormStore) UpdateTag(id uint, fields map[string]interface{}) (int64, error) {
	res := s.db.Model(&models.Tag{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (s *GormStore) DeleteTag(id uint) (int64, error) {
	res := s.db.Delete(&models.Tag{}, id)
	return res.RowsAffected, res.Error
}

func (s *GormStore) FindCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) CountCategories() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) FindCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) FindCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("category_name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) CreateCategory(c *models.Category) error {
	return s.db.Create(c).Error
}

func (s *GormStore) UpdateCategory(id uint, fields map[string]interface{}) (int64, error) {
	res := s.db.Model(&models.Category{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteCategory 删除分类。文章上的 category_id 外键为 SET NULL，
// 不会级联删除文章。
func (s *GormStore) DeleteCategory(id uint) (int64, error) {
	res := s.db.Delete(&models.Category{}, id)
	return res.RowsAffected, res.Error
}

func (s *GormStore) CategoryArticleCounts(limit int) ([]CategoryCount, error) {
	tx := s.db.Model(&models.Category{}).
		Select("categories.id, categories.category_name, COUNT(articles.id) AS article_count").
		Joins("LEFT JOIN articles ON articles.category_id = categories.id").
		Group("categories.id, categories.category_name").
		Order("article_count DESC, categories.id ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var counts []CategoryCount
	if err := tx.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *GormStore) commentScope(q CommentQuery) *gorm.DB {
	tx := s.db.Model(&models.Comment{})
	if q.Type != nil {
		tx = tx.Where("type = ?", *q.Type)
	}
	if q.AID != nil {
		tx = tx.Where("aid = ?", *q.AID)
	}
	if q.TopLevel {
		tx = tx.Where("pid IS NULL")
	}
	return tx
}

func (s *GormStore) FindComments(q CommentQuery) ([]models.Comment, error) {
	tx := s.commentScope(q)
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	if q.Skip > 0 {
		tx = tx.Offset(q.Skip)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	var comments []models.Comment
	if err := tx.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *GormStore) CountComments(q CommentQuery) (int64, error) {
	var count int64
	if err := s.commentScope(q).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) FindRepliesByParentIDs(pids []uint) ([]models.Comment, error) {
	if len(pids) == 0 {
		return nil, nil
	}
	var replies []models.Comment
	if err := s.db.Where("pid IN ?", pids).Order("id ASC").Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

func (s *GormStore) CreateComment(c *models.Comment) error {
	return s.db.Create(c).Error
}

func (s *GormStore) DeleteComment(id uint) (int64, error) {
	res := s.db.Delete(&models.Comment{}, id)
	return res.RowsAffected, res.Error
}

func (s *GormStore) DeleteCommentsByIDs(ids []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			if err := tx.Delete(&models.Comment{}, id).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FindUsersByIDs(ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := s.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FindTalks(skip, limit int) ([]models.Talk, error) {
	tx := s.db.Order("created_at DESC")
	if skip > 0 {
		tx = tx.Offset(skip)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var talks []models.Talk
	if err := tx.Find(&talks).Error; err != nil {
		return nil, err
	}
	return talks, nil
}

func (s *GormStore) CountTalks() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Talk{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) CreateTalk(t *models.Talk) error {
	return s.db.Create(t).Error
}

func (s *GormStore) DeleteTalk(id uint) (int64, error) {
	res := s.db.Delete(&models.Talk{}, id)
	return res.RowsAffected, res.Error
}

func (s *GormStore) IncrementTalkComments(id uint, delta int) error {
	return s.db.Model(&models.Talk{}).Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count + ?", delta)).Error
}
