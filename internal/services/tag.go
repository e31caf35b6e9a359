package services

import (
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/models"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/store"
)

// TagService 标签管理
type TagService struct {
	store store.Store
}

func NewTagService(s store.Store) *TagService {
	return &TagService{store: s}
}

// Create 新建标签
func (s *TagService) Create(name string) (*models.Tag, error) {
	tag := models.Tag{TagName: name}
	if err := s.store.CreateTag(&tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindAll 所有标签及总数
func (s *TagService) FindAll() ([]models.Tag, int64, error) {
	tags, err := s.store.FindTags()
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.CountTags()
	if err != nil {
		return nil, 0, err
	}
	return tags, count, nil
}

// FindByID 单个标签
func (s *TagService) FindByID(id uint) (*models.Tag, error) {
	tag, err := s.store.FindTagByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, notFound("标签不存在")
	}
	return tag, nil
}

// Update 更新标签名称
func (s *TagService) Update(id uint, name string) error {
	affected, err := s.store.UpdateTag(id, map[string]interface{}{"tag_name": name})
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，更新标签失败！")
	}
	return nil
}

// Remove 删除标签
func (s *TagService) Remove(id uint) error {
	affected, err := s.store.DeleteTag(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，删除标签失败！")
	}
	return nil
}
