package service

import (
	"context"
	"fmt"
	"time"

	"techfest/internal/model"
	"techfest/internal/repository"
	"techfest/pkg/async"
	"techfest/pkg/logger"
)

const notifyTimeout = 30 * time.Second

// SubmissionNotifier 新提交通知
type SubmissionNotifier interface {
	NotifySubmission(sub model.ContactSubmission) error
}

// ContactService 联系/赞助表单服务
type ContactService struct {
	contactRepo repository.ContactRepository
	worker      *async.Worker
	notifier    SubmissionNotifier
	logger      *logger.Logger
	now         func() time.Time
}

// NewContactService 创建联系表单服务，notifier 为 nil 时不发送通知
func NewContactService(contactRepo repository.ContactRepository, worker *async.Worker, notifier SubmissionNotifier, logger *logger.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		worker:      worker,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit 记录一次表单提交，提交时间和类型由服务端确定
func (s *ContactService) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	switch sub.Type {
	case model.SubmissionTypeContact, model.SubmissionTypeSponsor:
	default:
		sub.Type = model.SubmissionTypeContact
		if sub.IsSponsorInquiry() {
			sub.Type = model.SubmissionTypeSponsor
		}
	}
	sub.SubmittedAt = s.now()

	if err := s.contactRepo.Create(ctx, sub); err != nil {
		return fmt.Errorf("保存表单提交失败: %w", err)
	}

	s.notify(*sub)
	return nil
}

// GetSubmissions 按提交顺序获取全部记录
func (s *ContactService) GetSubmissions(ctx context.Context) ([]model.ContactSubmission, error) {
	submissions, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取表单提交失败: %w", err)
	}
	return submissions, nil
}

// notify 异步发送通知，失败只记录日志
func (s *ContactService) notify(sub model.ContactSubmission) {
	if s.notifier == nil || s.worker == nil {
		return
	}
	err := s.worker.Submit(async.Task{
		ID:       fmt.Sprintf("notify_submission_%d", sub.SubmittedAt.UnixNano()),
		Timeout:  notifyTimeout,
		RetryMax: 2,
		Handler: func(ctx context.Context) error {
			return s.notifier.NotifySubmission(sub)
		},
	})
	if err != nil {
		s.logger.Warn("提交通知任务失败", "type", sub.Type, "error", err)
	}
}
