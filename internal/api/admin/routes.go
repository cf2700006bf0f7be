package admin

import (
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes 注册需要管理员密码的路由，auth 为管理员认证中间件
func RegisterAdminRoutes(router *gin.RouterGroup, auth gin.HandlerFunc, announcementAdminHandler *AnnouncementAdminHandler, contactAdminHandler *ContactAdminHandler, moderationHandler *ModerationHandler) {
	router.POST("/announcements", auth, announcementAdminHandler.CreateAnnouncement)
	router.GET("/contact", auth, contactAdminHandler.GetSubmissions)

	moderation := router.Group("/admin")
	moderation.Use(auth)
	{
		moderation.POST("/pending-photos", moderationHandler.GetPendingPhotos)
		moderation.PUT("/update-status", moderationHandler.UpdateStatus)
	}
}
