package constants

// 通用错误消息
const (
	// 认证相关错误
	ErrPasswordRequired   = "请提供管理员密码"
	ErrInvalidPassword    = "管理员密码错误"
	ErrAdminNotConfigured = "服务器未配置管理员密码"
	ErrTooManyAttempts    = "密码错误次数过多，请稍后重试"

	// 参数相关错误
	ErrInvalidParams  = "参数错误"
	ErrInvalidRequest = "无效请求格式"
	ErrCaptchaFailed  = "人机验证未通过"

	// 照片审核相关错误
	ErrPhotoNotFound       = "照片不存在"
	ErrInvalidAction       = "审核操作只能是 approved 或 rejected"
	ErrPhotoAlreadyDecided = "照片已审核为其他状态"

	// 系统错误
	ErrInternalServer = "服务器内部错误"
	ErrNotFound       = "接口不存在"
)

// 成功消息
const (
	SuccessCreate = "创建成功"
	SuccessUpdate = "更新成功"
	SuccessGet    = "获取成功"
	SuccessSubmit = "提交成功"
)
