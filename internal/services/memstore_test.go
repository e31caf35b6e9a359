package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/models"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/store"
)

// memStore 内存版 store.Store，供服务层测试使用。
// 查询语义（过滤、排序、计数与窗口无关）与 GormStore 保持一致。
type memStore struct {
	articles   []models.Article
	tags       []models.Tag
	categories []models.Category
	comments   []models.Comment
	users      []models.User
	talks      []models.Talk
	nextID     uint

	// 模拟删除指定评论时的存储故障，用于验证事务回滚
	failCommentDelete uint
	// 记录关联写入次数，用于验证失败路径没有副作用
	replaceTagsCalls int
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) id() uint {
	id := m.nextID
	m.nextID++
	return id
}

func matchArticle(a models.Article, q store.ArticleQuery) bool {
	if q.Status != nil && a.Status != *q.Status {
		return false
	}
	if q.Top != nil && a.Top != *q.Top {
		return false
	}
	if q.Recommend != nil && a.Recommend != *q.Recommend {
		return false
	}
	if q.Keyword != "" {
		kw := strings.ToLower(q.Keyword)
		if !strings.Contains(strings.ToLower(a.Title), kw) &&
			!strings.Contains(strings.ToLower(a.Description), kw) &&
			!strings.Contains(strings.ToLower(a.Content), kw) {
			return false
		}
	}
	if q.IDLt > 0 && a.ID >= q.IDLt {
		return false
	}
	if q.IDGt > 0 && a.ID <= q.IDGt {
		return false
	}
	return true
}

func sortArticles(list []models.Article, order string) {
	switch order {
	case "created_at DESC":
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	case "view_times DESC, id ASC":
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].ViewTimes != list[j].ViewTimes {
				return list[i].ViewTimes > list[j].ViewTimes
			}
			return list[i].ID < list[j].ID
		})
	case "id ASC":
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	case "id DESC":
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	}
}

func window[T any](list []T, skip, limit int) []T {
	if skip > len(list) {
		skip = len(list)
	}
	list = list[skip:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func (m *memStore) FindArticles(q store.ArticleQuery) ([]models.Article, error) {
	var result []models.Article
	for _, a := range m.articles {
		if matchArticle(a, q) {
			result = append(result, a)
		}
	}
	sortArticles(result, q.Order)
	result = window(result, q.Skip, q.Limit)
	if len(q.Fields) > 0 {
		projected := make([]models.Article, len(result))
		for i, a := range result {
			var p models.Article
			for _, f := range q.Fields {
				switch f {
				case "id":
					p.ID = a.ID
				case "title":
					p.Title = a.Title
				case "view_times":
					p.ViewTimes = a.ViewTimes
				}
			}
			projected[i] = p
		}
		result = projected
	}
	return result, nil
}

func (m *memStore) CountArticles(q store.ArticleQuery) (int64, error) {
	var count int64
	for _, a := range m.articles {
		if matchArticle(a, q) {
			count++
		}
	}
	return count, nil
}

func (m *memStore) FirstArticle(q store.ArticleQuery) (*models.Article, error) {
	q.Limit = 1
	articles, err := m.FindArticles(q)
	if err != nil || len(articles) == 0 {
		return nil, err
	}
	return &articles[0], nil
}

func (m *memStore) FindArticleByID(id uint, preload bool) (*models.Article, error) {
	for _, a := range m.articles {
		if a.ID == id {
			article := a
			return &article, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateArticle(a *models.Article) error {
	if a.ID == 0 {
		a.ID = m.id()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	m.articles = append(m.articles, *a)
	return nil
}

func (m *memStore) UpdateArticle(id uint, fields map[string]interface{}) (int64, error) {
	for i := range m.articles {
		if m.articles[i].ID != id {
			continue
		}
		a := &m.articles[i]
		for k, v := range fields {
			switch k {
			case "title":
				a.Title = v.(string)
			case "description":
				a.Description = v.(string)
			case "content":
				a.Content = v.(string)
			case "status":
				a.Status = v.(bool)
			case "top":
				a.Top = v.(bool)
			case "recommend":
				a.Recommend = v.(bool)
			case "category_id":
				cid := v.(uint)
				a.CategoryID = &cid
			}
		}
		a.UpdatedAt = time.Now()
		return 1, nil
	}
	return 0, nil
}

func (m *memStore) ReplaceArticleTags(id uint, tags []models.Tag) error {
	m.replaceTagsCalls++
	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles[i].Tags = tags
			return nil
		}
	}
	return nil
}

func (m *memStore) DeleteArticle(id uint) (int64, error) {
	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) IncrementArticleViews(id uint) error {
	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles[i].ViewTimes++
			return nil
		}
	}
	return nil
}

func (m *memStore) FindTags() ([]models.Tag, error) {
	return append([]models.Tag(nil), m.tags...), nil
}

func (m *memStore) CountTags() (int64, error) {
	return int64(len(m.tags)), nil
}

func (m *memStore) FindTagByID(id uint) (*models.Tag, error) {
	for _, t := range m.tags {
		if t.ID == id {
			tag := t
			return &tag, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateTag(t *models.Tag) error {
	if t.ID == 0 {
		t.ID = m.id()
	}
	m.tags = append(m.tags, *t)
	return nil
}

func (m *memStore) UpdateTag(id uint, fields map[string]interface{}) (int64, error) {
	for i := range m.tags {
		if m.tags[i].ID == id {
			if name, ok := fields["tag_name"]; ok {
				m.tags[i].TagName = name.(string)
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteTag(id uint) (int64, error) {
	for i := range m.tags {
		if m.tags[i].ID == id {
			m.tags = append(m.tags[:i], m.tags[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) FindCategories() ([]models.Category, error) {
	return append([]models.Category(nil), m.categories...), nil
}

func (m *memStore) CountCategories() (int64, error) {
	return int64(len(m.categories)), nil
}

func (m *memStore) FindCategoryByID(id uint) (*models.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindCategoryByName(name string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.CategoryName == name {
			category := c
			return &category, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateCategory(c *models.Category) error {
	if c.ID == 0 {
		c.ID = m.id()
	}
	m.categories = append(m.categories, *c)
	return nil
}

func (m *memStore) UpdateCategory(id uint, fields map[string]interface{}) (int64, error) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			if name, ok := fields["category_name"]; ok {
				m.categories[i].CategoryName = name.(string)
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteCategory(id uint) (int64, error) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			// 文章失去分类，但不会被删除
			for j := range m.articles {
				if m.articles[j].CategoryID != nil && *m.articles[j].CategoryID == id {
					m.articles[j].CategoryID = nil
					m.articles[j].Category = nil
				}
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) CategoryArticleCounts(limit int) ([]store.CategoryCount, error) {
	counts := make([]store.CategoryCount, 0, len(m.categories))
	for _, c := range m.categories {
		var n int64
		for _, a := range m.articles {
			if a.CategoryID != nil && *a.CategoryID == c.ID {
				n++
			}
		}
		counts = append(counts, store.CategoryCount{ID: c.ID, CategoryName: c.CategoryName, ArticleCount: n})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].ArticleCount != counts[j].ArticleCount {
			return counts[i].ArticleCount > counts[j].ArticleCount
		}
		return counts[i].ID < counts[j].ID
	})
	if limit > 0 && limit < len(counts) {
		counts = counts[:limit]
	}
	return counts, nil
}

func matchComment(c models.Comment, q store.CommentQuery) bool {
	if q.Type != nil && c.Type != *q.Type {
		return false
	}
	if q.AID != nil && (c.AID == nil || *c.AID != *q.AID) {
		return false
	}
	if q.TopLevel && c.PID != nil {
		return false
	}
	return true
}

func (m *memStore) FindComments(q store.CommentQuery) ([]models.Comment, error) {
	var result []models.Comment
	for _, c := range m.comments {
		if matchComment(c, q) {
			result = append(result, c)
		}
	}
	if q.Order == "created_at DESC" {
		sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	}
	return window(result, q.Skip, q.Limit), nil
}

func (m *memStore) CountComments(q store.CommentQuery) (int64, error) {
	var count int64
	for _, c := range m.comments {
		if matchComment(c, q) {
			count++
		}
	}
	return count, nil
}

func (m *memStore) FindRepliesByParentIDs(pids []uint) ([]models.Comment, error) {
	in := make(map[uint]bool, len(pids))
	for _, id := range pids {
		in[id] = true
	}
	var replies []models.Comment
	for _, c := range m.comments {
		if c.PID != nil && in[*c.PID] {
			replies = append(replies, c)
		}
	}
	sort.SliceStable(replies, func(i, j int) bool { return replies[i].ID < replies[j].ID })
	return replies, nil
}

func (m *memStore) CreateComment(c *models.Comment) error {
	if c.ID == 0 {
		c.ID = m.id()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	m.comments = append(m.comments, *c)
	return nil
}

func (m *memStore) DeleteComment(id uint) (int64, error) {
	for i := range m.comments {
		if m.comments[i].ID == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteCommentsByIDs(ids []uint) error {
	// 先在副本上删，模拟事务：任一失败则原数据不动
	copied := append([]models.Comment(nil), m.comments...)
	for _, id := range ids {
		if m.failCommentDelete != 0 && id == m.failCommentDelete {
			return errors.New("storage failure")
		}
		for i := range copied {
			if copied[i].ID == id {
				copied = append(copied[:i], copied[i+1:]...)
				break
			}
		}
	}
	m.comments = copied
	return nil
}

func (m *memStore) FindUserByID(id uint) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindUsersByIDs(ids []uint) ([]models.User, error) {
	in := make(map[uint]bool, len(ids))
	for _, id := range ids {
		in[id] = true
	}
	var users []models.User
	for _, u := range m.users {
		if in[u.ID] {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *memStore) FindUserByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindTalks(skip, limit int) ([]models.Talk, error) {
	talks := append([]models.Talk(nil), m.talks...)
	sort.SliceStable(talks, func(i, j int) bool { return talks[i].CreatedAt.After(talks[j].CreatedAt) })
	return window(talks, skip, limit), nil
}

func (m *memStore) CountTalks() (int64, error) {
	return int64(len(m.talks)), nil
}

func (m *memStore) CreateTalk(t *models.Talk) error {
	if t.ID == 0 {
		t.ID = m.id()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	m.talks = append(m.talks, *t)
	return nil
}

func (m *memStore) DeleteTalk(id uint) (int64, error) {
	for i := range m.talks {
		if m.talks[i].ID == id {
			m.talks = append(m.talks[:i], m.talks[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) IncrementTalkComments(id uint, delta int) error {
	for i := range m.talks {
		if m.talks[i].ID == id {
			m.talks[i].CommentCount += delta
			return nil
		}
	}
	return nil
}

var _ store.Store = (*memStore)(nil)
