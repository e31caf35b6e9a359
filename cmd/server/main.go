package main

import (
	"log"
	"os"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/db"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/handlers"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/middleware"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/router"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/services"
	"github.com/hxlxx/hxlxx-blog2.0-server/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	conn := db.Init()
	st := store.NewGormStore(conn)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	cookieStore := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("blog_session", cookieStore))

	// Middleware
	r.Use(middleware.LoadUser(st))

	// Services & Handlers
	articleService := services.NewArticleService(st)
	commentService := services.NewCommentService(st)
	categoryService := services.NewCategoryService(st)
	tagService := services.NewTagService(st)
	talkService := services.NewTalkService(st)

	router.RegisterRoutes(r, router.Handlers{
		Auth:     handlers.NewAuthHandler(st),
		Article:  handlers.NewArticleHandler(articleService),
		Comment:  handlers.NewCommentHandler(commentService),
		Category: handlers.NewCategoryHandler(categoryService),
		Tag:      handlers.NewTagHandler(tagService),
		Talk:     handlers.NewTalkHandler(talkService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Blog server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
