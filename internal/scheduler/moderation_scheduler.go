package scheduler

import (
	"context"
	"sync"
	"time"

	"techfest/internal/service"
	"techfest/pkg/logger"
)

// PendingNotifier 待审核提醒的发送方
type PendingNotifier interface {
	NotifyPendingPhotos(count int, oldest time.Time) error
}

// ModerationScheduler 每天定时提醒组织者处理待审核照片
type ModerationScheduler struct {
	photoService *service.PhotoService
	notifier     PendingNotifier
	hour         int
	logger       *logger.Logger
	now          func() time.Time
	quit         chan struct{}
	stopOnce     sync.Once
}

// NewModerationScheduler 创建待审核提醒调度器，hour 为每天运行的整点（0-23）
func NewModerationScheduler(photoService *service.PhotoService, notifier PendingNotifier, hour int, logger *logger.Logger) *ModerationScheduler {
	return &ModerationScheduler{
		photoService: photoService,
		notifier:     notifier,
		hour:         hour,
		logger:       logger,
		now:          time.Now,
		quit:         make(chan struct{}),
	}
}

// Start 启动调度器
func (s *ModerationScheduler) Start() {
	go s.schedule()
	s.logger.Info("待审核提醒调度器启动", "hour", s.hour)
}

// Stop 停止调度器，可重复调用
func (s *ModerationScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.logger.Info("待审核提醒调度器停止")
	})
}

func (s *ModerationScheduler) schedule() {
	for {
		next := nextRunTime(s.now(), s.hour)
		s.logger.Info("待审核提醒计划", "nextRunTime", next.Format("2006-01-02 15:04:05"))

		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-timer.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			s.remindPending(ctx)
			cancel()
		case <-s.quit:
			timer.Stop()
			return
		}
	}
}

// nextRunTime 返回 now 之后最近的 hour 整点
func nextRunTime(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// remindPending 有待审核照片时发送提醒，返回待审核数量
func (s *ModerationScheduler) remindPending(ctx context.Context) int {
	photos, err := s.photoService.GetPendingPhotos(ctx)
	if err != nil {
		s.logger.Error("获取待审核照片失败", "error", err)
		return 0
	}
	if len(photos) == 0 {
		s.logger.Debug("没有待审核照片")
		return 0
	}

	oldest := photos[0].SubmittedAt
	for _, p := range photos[1:] {
		if p.SubmittedAt.Before(oldest) {
			oldest = p.SubmittedAt
		}
	}

	if err := s.notifier.NotifyPendingPhotos(len(photos), oldest); err != nil {
		s.logger.Error("发送待审核提醒失败", "count", len(photos), "error", err)
	} else {
		s.logger.Info("已发送待审核提醒", "count", len(photos))
	}
	return len(photos)
}
