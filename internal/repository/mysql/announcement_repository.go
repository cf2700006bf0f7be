package mysql

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"

	"techfest/internal/model"
)

// AnnouncementRepository 公告存储库
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository 创建公告存储库实例
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// List 获取全部公告，最新的在前
func (r *AnnouncementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	announcements := []model.Announcement{}
	query := `
		SELECT id, title, display_date, type, content, created_at FROM announcements
		ORDER BY created_at DESC, id DESC
	`
	if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
		return nil, err
	}
	return announcements, nil
}

// Create 创建公告
func (r *AnnouncementRepository) Create(ctx context.Context, a *model.Announcement) error {
	query := `
		INSERT INTO announcements (title, display_date, type, content, created_at)
		VALUES (:title, :display_date, :type, :content, :created_at)
	`
	result, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = strconv.FormatInt(id, 10)
	return nil
}
