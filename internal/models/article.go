package models

import (
	"time"
)

type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content"`
	Status      bool      `gorm:"default:false;index" json:"status"` // false: 草稿, true: 已发布
	Top         bool      `gorm:"default:false" json:"top"`          // 置顶
	Recommend   bool      `gorm:"default:false" json:"recommend"`    // 推荐
	ViewTimes   int       `gorm:"default:0" json:"view_times"`       // 浏览量
	AuthorID    uint      `gorm:"index" json:"author_id"`
	Author      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CategoryID  *uint     `gorm:"index" json:"category_id"`
	Category    *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
	Tags        []Tag     `gorm:"many2many:article_tags;" json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
