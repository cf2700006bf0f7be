package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"techfest/internal/api/response"
	"techfest/internal/service"
	"techfest/pkg/logger"
)

// AdminPasswordHeader 不带请求体的管理接口通过该请求头传递密码
const AdminPasswordHeader = "X-Admin-Password"

type passwordBody struct {
	Password string `json:"password"`
}

// AdminAuth 管理员密码认证中间件。
// 密码优先取请求头，否则取JSON请求体中的 password 字段；请求体会被缓存供后续处理器再次绑定。
func AdminAuth(authService *service.AdminAuthService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.GetHeader(AdminPasswordHeader)
		if password == "" && c.Request.Body != nil && c.Request.ContentLength != 0 {
			var body passwordBody
			if err := c.ShouldBindBodyWith(&body, binding.JSON); err == nil {
				password = body.Password
			}
		}

		if err := authService.Verify(c.Request.Context(), password, c.ClientIP()); err != nil {
			if err == service.ErrInvalidPassword || err == service.ErrTooManyAttempts {
				log.Warn("管理员认证失败", "ip", c.ClientIP(), "path", c.FullPath(), "error", err)
			}
			response.FromError(c, log, err)
			return
		}

		c.Set("admin", true)
		c.Next()
	}
}
