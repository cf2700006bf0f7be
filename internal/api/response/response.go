package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"techfest/internal/constants"
	"techfest/internal/service"
	"techfest/pkg/logger"
)

// Response 统一响应结构，code 与 HTTP 状态码一致
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, status int, msg string, data interface{}) {
	c.JSON(status, Response{Code: status, Msg: msg, Data: data})
}

// Error 错误响应并终止后续处理
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Response{Code: status, Msg: msg})
}

// FromError 将服务层错误转换为HTTP响应，未知错误记录日志后按500处理
func FromError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrPasswordRequired):
		Error(c, http.StatusBadRequest, constants.ErrPasswordRequired)
	case errors.Is(err, service.ErrInvalidPassword):
		Error(c, http.StatusUnauthorized, constants.ErrInvalidPassword)
	case errors.Is(err, service.ErrTooManyAttempts):
		Error(c, http.StatusTooManyRequests, constants.ErrTooManyAttempts)
	case errors.Is(err, service.ErrAdminNotConfigured):
		log.Error("管理员密码未配置", "path", c.FullPath())
		Error(c, http.StatusInternalServerError, constants.ErrAdminNotConfigured)
	case errors.Is(err, service.ErrPhotoNotFound):
		Error(c, http.StatusNotFound, constants.ErrPhotoNotFound)
	case errors.Is(err, service.ErrInvalidAction):
		Error(c, http.StatusBadRequest, constants.ErrInvalidAction)
	case errors.Is(err, service.ErrPhotoAlreadyDecided):
		Error(c, http.StatusConflict, constants.ErrPhotoAlreadyDecided)
	default:
		log.Error("请求处理失败", "path", c.FullPath(), "error", err)
		Error(c, http.StatusInternalServerError, constants.ErrInternalServer)
	}
}
