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

// ModerationHandler 照片审核处理器
type ModerationHandler struct {
	photoService *service.PhotoService
	logger       *logger.Logger
}

// NewModerationHandler 创建照片审核处理器实例
func NewModerationHandler(photoService *service.PhotoService, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		photoService: photoService,
		logger:       logger,
	}
}

// GetPendingPhotos 获取待审核照片
// @Summary 获取待审核照片
// @Tags 照片审核
// @Accept json
// @Produce json
// @Success 200 {object} response.Response "成功"
// @Router /api/admin/pending-photos [post]
func (h *ModerationHandler) GetPendingPhotos(c *gin.Context) {
	photos, err := h.photoService.GetPendingPhotos(c.Request.Context())
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, constants.SuccessGet, photos)
}

// UpdateStatusRequest 审核请求
type UpdateStatusRequest struct {
	PhotoID  string `json:"photoId" binding:"required"`
	Action   string `json:"action" binding:"required"`
	Password string `json:"password"`
}

// UpdateStatus 通过或拒绝照片
// @Summary 审核照片
// @Tags 照片审核
// @Accept json
// @Produce json
// @Param body body UpdateStatusRequest true "照片ID与审核结果"
// @Success 200 {object} response.Response "成功"
// @Router /api/admin/update-status [put]
func (h *ModerationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		response.Error(c, http.StatusBadRequest, constants.ErrInvalidParams+"："+err.Error())
		return
	}

	photo, err := h.photoService.DecidePhoto(c.Request.Context(), req.PhotoID, req.Action)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, constants.SuccessUpdate, photo)
}
