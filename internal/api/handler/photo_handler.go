package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfest/internal/api/response"
	"techfest/internal/constants"
	"techfest/internal/model"
	"techfest/internal/service"
	"techfest/pkg/logger"
)

// PhotoHandler 画廊处理器
type PhotoHandler struct {
	photoService *service.PhotoService
	logger       *logger.Logger
}

// NewPhotoHandler 创建画廊处理器实例
func NewPhotoHandler(photoService *service.PhotoService, logger *logger.Logger) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		logger:       logger,
	}
}

// SubmitPhotoRequest 照片提交请求
type SubmitPhotoRequest struct {
	ImageURL     string `json:"imageUrl" binding:"required,url,max=1000"`
	Category     string `json:"category" binding:"required,max=50"`
	UploaderName string `json:"uploaderName" binding:"required,max=100"`
	College      string `json:"college" binding:"required,max=200"`
	GroupName    string `json:"groupName" binding:"max=200"`
}

// SubmitPhoto 提交照片，等待审核
func (h *PhotoHandler) SubmitPhoto(c *gin.Context) {
	var req SubmitPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, constants.ErrInvalidParams+"："+err.Error())
		return
	}

	photo := &model.Photo{
		ImageURL:     req.ImageURL,
		Category:     req.Category,
		UploaderName: req.UploaderName,
		College:      req.College,
		GroupName:    req.GroupName,
	}
	if err := h.photoService.SubmitPhoto(c.Request.Context(), photo); err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, constants.SuccessSubmit, photo)
}

// GetGallery 获取已通过审核的照片，可按 category 过滤
func (h *PhotoHandler) GetGallery(c *gin.Context) {
	photos, err := h.photoService.GetGallery(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, constants.SuccessGet, photos)
}
