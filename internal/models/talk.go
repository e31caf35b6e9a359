package models

import (
	"time"
)

// Talk 说说（短内容）
type Talk struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UID          uint      `gorm:"column:uid;not null;index" json:"uid"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CommentCount int       `gorm:"default:0" json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 非数据库字段，用于查询时填充
	User *User `gorm:"-" json:"user,omitempty"`
}
