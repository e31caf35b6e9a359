package services

import (
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/models"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/store"
)

// CategoryService 分类管理
type CategoryService struct {
	store store.Store
}

func NewCategoryService(s store.Store) *CategoryService {
	return &CategoryService{store: s}
}

// Create 新建分类，重名返回 Conflict
func (s *CategoryService) Create(name string) (*models.Category, error) {
	exist, err := s.store.FindCategoryByName(name)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, conflict("分类已存在！")
	}
	category := models.Category{CategoryName: name}
	if err := s.store.CreateCategory(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// FindAll 所有分类及总数
func (s *CategoryService) FindAll() ([]models.Category, int64, error) {
	categories, err := s.store.FindCategories()
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.CountCategories()
	if err != nil {
		return nil, 0, err
	}
	return categories, count, nil
}

// FindByID 单个分类
func (s *CategoryService) FindByID(id uint) (*models.Category, error) {
	category, err := s.store.FindCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFound("分类不存在")
	}
	return category, nil
}

// FindCategoryAndCount 所有分类及各自的文章数量
func (s *CategoryService) FindCategoryAndCount() ([]store.CategoryCount, error) {
	return s.store.CategoryArticleCounts(0)
}

// FindCategoryTop10 文章数量前十的分类
func (s *CategoryService) FindCategoryTop10() ([]store.CategoryCount, error) {
	return s.store.CategoryArticleCounts(10)
}

// Update 更新分类名称
func (s *CategoryService) Update(id uint, name string) error {
	affected, err := s.store.UpdateCategory(id, map[string]interface{}{"category_name": name})
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，更新分类失败！")
	}
	return nil
}

// Remove 删除分类。分类下的文章不会被删除，只是失去分类。
func (s *CategoryService) Remove(id uint) error {
	affected, err := s.store.DeleteCategory(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，删除分类失败！")
	}
	return nil
}
