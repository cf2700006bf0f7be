package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfest/internal/api/response"
	"techfest/internal/constants"
	"techfest/internal/service"
	"techfest/pkg/logger"
)

// ContactAdminHandler 表单提交管理处理器
type ContactAdminHandler struct {
	contactService *service.ContactService
	logger         *logger.Logger
}

// NewContactAdminHandler 创建表单管理处理器实例
func NewContactAdminHandler(contactService *service.ContactService, logger *logger.Logger) *ContactAdminHandler {
	return &ContactAdminHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// GetSubmissions 按提交顺序获取全部联系/赞助表单
// @Summary 获取表单提交（管理员）
// @Tags 联系
// @Produce json
// @Param X-Admin-Password header string true "管理员密码"
// @Success 200 {object} response.Response "成功"
// @Router /api/contact [get]
func (h *ContactAdminHandler) GetSubmissions(c *gin.Context) {
	submissions, err := h.contactService.GetSubmissions(c.Request.Context())
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, constants.SuccessGet, submissions)
}
