package models

import (
	"time"
)

type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryName string    `gorm:"not null;uniqueIndex" json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 非数据库字段，统计分类下的文章数量
	ArticleCount int64 `gorm:"-" json:"article_count,omitempty"`
}
