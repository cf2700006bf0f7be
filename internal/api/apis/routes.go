package apis

import (
	"github.com/gin-gonic/gin"

	"techfest/internal/api/handler"
)

// RegisterPublicRoutes 注册无需认证的路由
func RegisterPublicRoutes(router *gin.RouterGroup, announcementHandler *handler.AnnouncementHandler, contactHandler *handler.ContactHandler, photoHandler *handler.PhotoHandler) {
	router.GET("/announcements", announcementHandler.GetAnnouncements)
	router.POST("/contact", contactHandler.SubmitContact)

	photos := router.Group("/photos")
	{
		photos.GET("", photoHandler.GetGallery)
		photos.POST("", photoHandler.SubmitPhoto)
	}
}
