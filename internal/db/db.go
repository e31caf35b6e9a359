package db

import (
	"log"
	"os"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init 建立数据库连接并完成迁移，连接句柄由调用方注入到各组件
func Init() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=blog port=5432 sslmode=disable TimeZone=Asia/Shanghai"
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	err = conn.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Article{},
		&models.Comment{},
		&models.Talk{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedCategories(conn)

	return conn
}

func seedCategories(conn *gorm.DB) {
	var count int64
	conn.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	// 创建预设分类
	categories := []models.Category{
		{CategoryName: "前端"},
		{CategoryName: "后端"},
		{CategoryName: "随笔"},
	}

	for _, category := range categories {
		if err := conn.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.CategoryName, err)
		}
	}
	log.Println("Initial categories created successfully")
}
