package services

import (
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/models"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/store"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/utils"
)

// CommentService 评论树组装
type CommentService struct {
	store store.Store
}

func NewCommentService(s store.Store) *CommentService {
	return &CommentService{store: s}
}

// CommentInput 发表评论的入参
type CommentInput struct {
	UID     uint   `json:"uid"`
	Type    int    `json:"type"`
	AID     *uint  `json:"aid"`
	PID     *uint  `json:"pid"`
	Content string `json:"content"`
}

// FindComments 某一类型下的顶层评论分页，aid 非空时再按文章过滤。
// 每条顶层评论附带作者信息和全部直接回复（回复不分页），
// 回复按 id 升序（即创建顺序）。count 为同条件顶层评论总数，与窗口无关。
func (s *CommentService) FindComments(scopeType int, skip, limit int, aid *uint) ([]models.Comment, int64, error) {
	q := store.CommentQuery{
		Type:     &scopeType,
		AID:      aid,
		TopLevel: true,
		Order:    "created_at DESC",
		Skip:     skip,
		Limit:    limit,
	}
	parents, err := s.store.FindComments(q)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.CountComments(store.CommentQuery{Type: &scopeType, AID: aid, TopLevel: true})
	if err != nil {
		return nil, 0, err
	}

	// 一次查出所有父评论下的回复，再按 pid 归组，
	// 分组结果与逐父查询一致
	pids := make([]uint, len(parents))
	for i, p := range parents {
		pids[i] = p.ID
	}
	replies, err := s.store.FindRepliesByParentIDs(pids)
	if err != nil {
		return nil, 0, err
	}
	if err := s.attachAuthors(parents, replies); err != nil {
		return nil, 0, err
	}
	replyMap := make(map[uint][]models.Comment)
	for _, r := range replies {
		replyMap[*r.PID] = append(replyMap[*r.PID], r)
	}
	for i := range parents {
		reply := replyMap[parents[i].ID]
		if reply == nil {
			reply = []models.Comment{}
		}
		parents[i].Reply = reply
	}
	return parents, count, nil
}

// FindRecently 最近 5 条顶层评论（所有类型），不附带回复
func (s *CommentService) FindRecently() ([]models.Comment, error) {
	comments, err := s.store.FindComments(store.CommentQuery{
		TopLevel: true,
		Order:    "created_at DESC",
		Limit:    5,
	})
	if err != nil {
		return nil, err
	}
	if err := s.attachAuthors(comments, nil); err != nil {
		return nil, err
	}
	return comments, nil
}

// FindAll 所有顶层评论分页（任意类型），不附带回复
func (s *CommentService) FindAll(skip, limit int) ([]models.Comment, int64, error) {
	q := store.CommentQuery{
		TopLevel: true,
		Order:    "created_at DESC",
		Skip:     skip,
		Limit:    limit,
	}
	comments, err := s.store.FindComments(q)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.CountComments(store.CommentQuery{TopLevel: true})
	if err != nil {
		return nil, 0, err
	}
	if err := s.attachAuthors(comments, nil); err != nil {
		return nil, 0, err
	}
	return comments, count, nil
}

// attachAuthors 按 uid 集合批量查询用户并填充到评论上
func (s *CommentService) attachAuthors(groups ...[]models.Comment) error {
	seen := make(map[uint]bool)
	var ids []uint
	for _, comments := range groups {
		for _, c := range comments {
			if !seen[c.UID] {
				seen[c.UID] = true
				ids = append(ids, c.UID)
			}
		}
	}
	users, err := s.store.FindUsersByIDs(ids)
	if err != nil {
		return err
	}
	userMap := make(map[uint]models.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	for _, comments := range groups {
		for i := range comments {
			if u, ok := userMap[comments[i].UID]; ok {
				user := u
				comments[i].User = &user
			}
		}
	}
	return nil
}

// Create 发表评论。内容先经 UGC 策略清洗；
// 说说评论会同步增加说说的评论计数。
func (s *CommentService) Create(input CommentInput) (*models.Comment, error) {
	comment := models.Comment{
		UID:     input.UID,
		Type:    input.Type,
		AID:     input.AID,
		PID:     input.PID,
		Content: utils.SanitizeUGC(input.Content),
	}
	if err := s.store.CreateComment(&comment); err != nil {
		return nil, err
	}
	if comment.Type == models.CommentTypeTalk && comment.AID != nil {
		if err := s.store.IncrementTalkComments(*comment.AID, 1); err != nil {
			return nil, err
		}
	}
	return &comment, nil
}

// RemoveByID 删除单条评论
func (s *CommentService) RemoveByID(id uint) error {
	affected, err := s.store.DeleteComment(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return badRequest("参数错误，删除评论失败！")
	}
	return nil
}

// RemoveByIDs 批量删除评论，单个事务内完成，任一失败则全部不生效
func (s *CommentService) RemoveByIDs(ids []uint) error {
	return s.store.DeleteCommentsByIDs(ids)
}
