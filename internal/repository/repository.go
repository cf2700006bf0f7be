package repository

import (
	"context"
	"errors"

	"techfest/internal/model"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrAdminNotConfigured 未配置管理员密码记录
	ErrAdminNotConfigured = errors.New("admin credential not configured")
	// ErrStatusConflict 记录已处于其他状态，条件更新未执行
	ErrStatusConflict = errors.New("status conflict")
)

// AnnouncementRepository 公告存储接口
type AnnouncementRepository interface {
	// List 按创建时间倒序返回全部公告
	List(ctx context.Context) ([]model.Announcement, error)
	// Create 分配ID并保存公告
	Create(ctx context.Context, a *model.Announcement) error
}

// ContactRepository 联系表单存储接口，只允许追加
type ContactRepository interface {
	// List 按提交顺序返回全部记录
	List(ctx context.Context) ([]model.ContactSubmission, error)
	Create(ctx context.Context, s *model.ContactSubmission) error
}

// PhotoRepository 画廊照片存储接口
type PhotoRepository interface {
	Create(ctx context.Context, p *model.Photo) error
	GetByID(ctx context.Context, id string) (*model.Photo, error)
	// ListByStatus 按提交时间倒序返回指定状态的照片
	ListByStatus(ctx context.Context, status string) ([]model.Photo, error)
	// UpdateStatus 仅当当前状态为 from 时改为 to。
	// 记录已是 to 时返回 nil，处于其他状态时返回 ErrStatusConflict，不存在时返回 ErrNotFound。
	UpdateStatus(ctx context.Context, id, from, to string) error
}

// AdminRepository 管理员凭据存储接口
type AdminRepository interface {
	// GetCredential 不存在时返回 ErrAdminNotConfigured
	GetCredential(ctx context.Context) (*model.AdminCredential, error)
}

// Store 一个完整的存储后端
type Store interface {
	Announcements() AnnouncementRepository
	Contacts() ContactRepository
	Photos() PhotoRepository
	Admin() AdminRepository
	Close(ctx context.Context) error
}

// ResolveStatusTransition 条件更新未命中时，根据重新读取的当前状态得出结果
func ResolveStatusTransition(current, to string) error {
	if current == to {
		return nil
	}
	return ErrStatusConflict
}
