package models

import (
	"time"
)

// 评论类型
const (
	CommentTypeArticle = 1 // 文章评论
	CommentTypeTalk    = 2 // 说说评论
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UID       uint      `gorm:"column:uid;not null;index" json:"uid"`
	Type      int       `gorm:"not null;index" json:"type"`
	AID       *uint     `gorm:"column:aid;index" json:"aid"` // 文章/说说 ID，可为空
	PID       *uint     `gorm:"column:pid;index" json:"pid"` // 父评论 ID，顶层评论为空
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// 非数据库字段，用于查询时填充
	User  *User     `gorm:"-" json:"user,omitempty"`
	Reply []Comment `gorm:"-" json:"reply,omitempty"`
}

// IsTopLevel 是否为顶层评论
func (c *Comment) IsTopLevel() bool {
	return c.PID == nil
}
