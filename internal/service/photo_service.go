package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"techfest/internal/model"
	"techfest/internal/repository"
	"techfest/pkg/logger"
)

// PhotoService 画廊照片及审核服务
type PhotoService struct {
	photoRepo repository.PhotoRepository
	logger    *logger.Logger
	now       func() time.Time
}

// NewPhotoService 创建照片服务实例
func NewPhotoService(photoRepo repository.PhotoRepository, logger *logger.Logger) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitPhoto 提交照片，初始状态为待审核
func (s *PhotoService) SubmitPhoto(ctx context.Context, photo *model.Photo) error {
	photo.Status = model.PhotoStatusPending
	photo.SubmittedAt = s.now()
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return fmt.Errorf("保存照片失败: %w", err)
	}
	return nil
}

// GetGallery 获取已通过审核的照片，category 为空时不过滤
func (s *PhotoService) GetGallery(ctx context.Context, category string) ([]model.Photo, error) {
	photos, err := s.photoRepo.ListByStatus(ctx, model.PhotoStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("获取画廊照片失败: %w", err)
	}
	if category == "" {
		return photos, nil
	}

	filtered := []model.Photo{}
	for _, p := range photos {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetPendingPhotos 获取全部待审核照片
func (s *PhotoService) GetPendingPhotos(ctx context.Context) ([]model.Photo, error) {
	photos, err := s.photoRepo.ListByStatus(ctx, model.PhotoStatusPending)
	if err != nil {
		return nil, fmt.Errorf("获取待审核照片失败: %w", err)
	}
	return photos, nil
}

// ParseAction 将审核操作解析为目标状态
func ParseAction(action string) (string, error) {
	switch action {
	case model.PhotoStatusApproved, "approve":
		return model.PhotoStatusApproved, nil
	case model.PhotoStatusRejected, "reject":
		return model.PhotoStatusRejected, nil
	default:
		return "", ErrInvalidAction
	}
}

// DecidePhoto 审核照片。
// 重复相同的决定视为成功且不写入；已审核的照片不能改为另一种状态。
func (s *PhotoService) DecidePhoto(ctx context.Context, id, action string) (*model.Photo, error) {
	status, err := ParseAction(action)
	if err != nil {
		return nil, err
	}

	photo, err := s.photoRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("获取照片失败: %w", err)
	}

	if photo.IsDecided() {
		if photo.Status == status {
			return photo, nil
		}
		return nil, ErrPhotoAlreadyDecided
	}

	// 条件更新：并发的另一次审核先完成时由存储层报告冲突
	err = s.photoRepo.UpdateStatus(ctx, id, model.PhotoStatusPending, status)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrPhotoNotFound
	case errors.Is(err, repository.ErrStatusConflict):
		return nil, ErrPhotoAlreadyDecided
	case err != nil:
		return nil, fmt.Errorf("更新照片状态失败: %w", err)
	}

	s.logger.Info("照片审核完成", "photo_id", id, "status", status)
	photo.Status = status
	return photo, nil
}
