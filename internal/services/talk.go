package services

import (
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/models"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/store"
)

// TalkService 说说（短内容）管理
type TalkService struct {
	store store.Store
}

func NewTalkService(s store.Store) *TalkService {
	return &TalkService{store: s}
}

// TalkInput 发布说说的入参
type TalkInput struct {
	UID     uint   `json:"uid"`
	Content string `json:"content"`
}

// FindAll 说说分页列表（按创建时间倒序），附带作者信息
func (s *TalkService) FindAll(skip, limit int) ([]models.Talk, int64, error) {
	talks, err := s.store.FindTalks(skip, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.CountTalks()
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[uint]bool)
	var ids []uint
	for _, t := range talks {
		if !seen[t.UID] {
			seen[t.UID] = true
			ids = append(ids, t.UID)
		}
	}
	users, err := s.store.FindUsersByIDs(ids)
	if err != nil {
		return nil, 0, err
	}
	userMap := make(map[uint]models.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	for i := range talks {
		if u, ok := userMap[talks[i].UID]; ok {
			user := u
			talks[i].User = &user
		}
	}
	return talks, count, nil
}

// Create 发布说说
func (s *TalkService) Create(input TalkInput) (*models.Talk, error) {
	talk := models.Talk{UID: input.UID, Content: input.Content}
	if err := s.store.CreateTalk(&talk); err != nil {
		return nil, err
	}
	return &talk, nil
}

// Remove 删除说说
func (s *TalkService) Remove(id uint) error {
	affected, err := s.store.DeleteTalk(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，删除说说失败！")
	}
	return nil
}
