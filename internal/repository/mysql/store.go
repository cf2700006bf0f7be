package mysql

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"techfest/internal/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS announcements (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		display_date VARCHAR(32) NOT NULL,
		type VARCHAR(32) NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		INDEX idx_announcements_created_at (created_at)
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS contact_submissions (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		type VARCHAR(32) NOT NULL,
		name VARCHAR(100) NOT NULL DEFAULT '',
		email VARCHAR(254) NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		college VARCHAR(200) NOT NULL DEFAULT '',
		subject VARCHAR(200) NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		company_name VARCHAR(200) NOT NULL DEFAULT '',
		contact_person VARCHAR(100) NOT NULL DEFAULT '',
		sponsorship_tier VARCHAR(50) NOT NULL DEFAULT '',
		website VARCHAR(500) NOT NULL DEFAULT '',
		submitted_at DATETIME(6) NOT NULL
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS photos (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		image_url VARCHAR(1000) NOT NULL,
		category VARCHAR(50) NOT NULL,
		uploader_name VARCHAR(100) NOT NULL,
		college VARCHAR(200) NOT NULL,
		group_name VARCHAR(200) NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL,
		submitted_at DATETIME(6) NOT NULL,
		INDEX idx_photos_status (status, submitted_at)
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS admin_credentials (
		id TINYINT PRIMARY KEY,
		password_hash VARCHAR(255) NOT NULL
	) DEFAULT CHARSET=utf8mb4`,
}

// Store MySQL存储后端
type Store struct {
	db            *sqlx.DB
	announcements *AnnouncementRepository
	contacts      *ContactRepository
	photos        *PhotoRepository
	admin         *AdminRepository
}

// NewStore 创建MySQL存储后端并确保表结构存在
func NewStore(ctx context.Context, db *sqlx.DB) (*Store, error) {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("初始化表结构失败: %w", err)
		}
	}
	return &Store{
		db:            db,
		announcements: NewAnnouncementRepository(db),
		contacts:      NewContactRepository(db),
		photos:        NewPhotoRepository(db),
		admin:         NewAdminRepository(db),
	}, nil
}

func (s *Store) Announcements() repository.AnnouncementRepository { return s.announcements }
func (s *Store) Contacts() repository.ContactRepository           { return s.contacts }
func (s *Store) Photos() repository.PhotoRepository               { return s.photos }
func (s *Store) Admin() repository.AdminRepository                { return s.admin }

// Close 关闭数据库连接
func (s *Store) Close(ctx context.Context) error {
	return s.db.Close()
}
