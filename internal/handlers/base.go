package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/hxlxx/hxlxx-blog2.0-server/internal/services"

	"github.com/gin-gonic/gin"
)

// Message 统一的变更成功响应
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Fail 将领域错误映射为 HTTP 状态码，存储层错误一律 500
func Fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "服务器内部错误"})
	}
}

// BadParam 入参解析失败
func BadParam(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误：" + err.Error()})
}
