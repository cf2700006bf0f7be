package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"techfest/internal/model"
	"techfest/internal/repository"
)

// AdminRepository 管理员凭据存储库
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository 创建管理员凭据存储库实例
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetCredential 获取共享密码摘要
func (r *AdminRepository) GetCredential(ctx context.Context) (*model.AdminCredential, error) {
	var cred model.AdminCredential
	err := r.db.GetContext(ctx, &cred, "SELECT password_hash FROM admin_credentials ORDER BY id LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrAdminNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}
