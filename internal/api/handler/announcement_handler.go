package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfest/internal/api/response"
	"techfest/internal/constants"
	"techfest/internal/service"
	"techfest/pkg/logger"
)

// AnnouncementHandler 公告处理器
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementHandler 创建公告处理器实例
func NewAnnouncementHandler(announcementService *service.AnnouncementService, logger *logger.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// GetAnnouncements 获取公告列表
// @Summary 获取公告列表
// @Description 获取全部公告，按发布时间倒序
// @Tags 公告
// @Produce json
// @Success 200 {object} response.Response "成功"
// @Router /api/announcements [get]
func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	announcements, err := h.announcementService.GetAnnouncements(c.Request.Context())
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, constants.SuccessGet, announcements)
}
