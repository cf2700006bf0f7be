package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"techfest/internal/api/response"
	"techfest/internal/constants"
	"techfest/internal/service"
	"techfest/pkg/logger"
)

// AnnouncementAdminHandler 公告管理处理器
type AnnouncementAdminHandler struct {
	announcementService *service.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementAdminHandler 创建公告管理处理器实例
func NewAnnouncementAdminHandler(announcementService *service.AnnouncementService, logger *logger.Logger) *AnnouncementAdminHandler {
	return &AnnouncementAdminHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// CreateAnnouncementRequest 创建公告请求结构体
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Type     string `json:"type" binding:"max=32"`
	Content  string `json:"content" binding:"required,max=10000"`
	Password string `json:"password"`
}

// CreateAnnouncement 创建公告
// @Summary 创建公告
// @Description 管理员创建新公告，密码随请求体提交
// @Tags 公告管理
// @Accept json
// @Produce json
// @Param announcement body CreateAnnouncementRequest true "公告信息"
// @Success 201 {object} response.Response "成功"
// @Router /api/announcements [post]
func (h *AnnouncementAdminHandler) CreateAnnouncement(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.logger.Warn("创建公告参数绑定失败", "error", err)
		response.Error(c, http.StatusBadRequest, constants.ErrInvalidParams+"："+err.Error())
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(c.Request.Context(), service.CreateAnnouncementInput{
		Title:   req.Title,
		Type:    req.Type,
		Content: req.Content,
	})
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	h.logger.Info("公告已创建", "id", announcement.ID, "type", announcement.Type)
	response.Success(c, http.StatusCreated, constants.SuccessCreate, announcement)
}
