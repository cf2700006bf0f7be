package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jmoiron/sqlx"

	"techfest/internal/model"
	"techfest/internal/repository"
)

const photoColumns = "id, image_url, category, uploader_name, college, group_name, status, submitted_at"

// PhotoRepository 画廊照片存储库
type PhotoRepository struct {
	db *sqlx.DB
}

// NewPhotoRepository 创建照片存储库实例
func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create 保存新照片
func (r *PhotoRepository) Create(ctx context.Context, p *model.Photo) error {
	query := `
		INSERT INTO photos (image_url, category, uploader_name, college, group_name, status, submitted_at)
		VALUES (:image_url, :category, :uploader_name, :college, :group_name, :status, :submitted_at)
	`
	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = strconv.FormatInt(id, 10)
	return nil
}

// GetByID 根据ID获取照片
func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var photo model.Photo
	err = r.db.GetContext(ctx, &photo, "SELECT "+photoColumns+" FROM photos WHERE id = ?", numericID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListByStatus 获取指定状态的照片
func (r *PhotoRepository) ListByStatus(ctx context.Context, status string) ([]model.Photo, error) {
	photos := []model.Photo{}
	query := "SELECT " + photoColumns + " FROM photos WHERE status = ? ORDER BY submitted_at DESC, id DESC"
	if err := r.db.SelectContext(ctx, &photos, query, status); err != nil {
		return nil, err
	}
	return photos, nil
}

// UpdateStatus 条件更新照片审核状态
func (r *PhotoRepository) UpdateStatus(ctx context.Context, id, from, to string) error {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return repository.ErrNotFound
	}

	result, err := r.db.ExecContext(ctx, "UPDATE photos SET status = ? WHERE id = ? AND status = ?", to, numericID, from)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	photo, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return repository.ResolveStatusTransition(photo.Status, to)
}
