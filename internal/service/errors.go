package service

import "errors"

var (
	// ErrPasswordRequired 未提供管理员密码
	ErrPasswordRequired = errors.New("password is required")
	// ErrInvalidPassword 管理员密码错误
	ErrInvalidPassword = errors.New("invalid password")
	// ErrAdminNotConfigured 服务端未配置管理员密码
	ErrAdminNotConfigured = errors.New("admin credential not configured")
	// ErrTooManyAttempts 密码错误次数过多
	ErrTooManyAttempts = errors.New("too many failed attempts")
	// ErrPhotoNotFound 照片不存在
	ErrPhotoNotFound = errors.New("photo not found")
	// ErrInvalidAction 非法的审核操作
	ErrInvalidAction = errors.New("invalid moderation action")
	// ErrPhotoAlreadyDecided 照片已审核为其他状态
	ErrPhotoAlreadyDecided = errors.New("photo already decided")
)
