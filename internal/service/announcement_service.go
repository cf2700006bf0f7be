package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"techfest/internal/model"
	"techfest/internal/repository"
	"techfest/pkg/logger"
)

const (
	announcementVersionKey = "announcements:version"
	announcementCacheTTL   = 5 * time.Minute
)

// announcementListCacheKey 列表缓存按版本号区分，创建公告后旧版本的缓存不再被读取
func announcementListCacheKey(version int64) string {
	return fmt.Sprintf("announcements:list:v%d", version)
}

// AnnouncementService 公告服务
type AnnouncementService struct {
	announcementRepo repository.AnnouncementRepository
	redisClient      *redis.Client
	logger           *logger.Logger
	now              func() time.Time
}

// NewAnnouncementService 创建公告服务实例，redisClient 为 nil 时不缓存
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository, redisClient *redis.Client, logger *logger.Logger) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		redisClient:      redisClient,
		logger:           logger,
		now:              time.Now,
	}
}

// CreateAnnouncementInput 创建公告参数
type CreateAnnouncementInput struct {
	Title   string
	Type    string
	Content string
}

// GetAnnouncements 获取全部公告，最新的在前
func (s *AnnouncementService) GetAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	var cacheKey string
	if s.redisClient != nil {
		cacheKey = s.listCacheKey(ctx)
	}
	if cacheKey != "" {
		cachedData, err := s.redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var cached []model.Announcement
			if err := json.Unmarshal(cachedData, &cached); err == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("读取公告缓存失败", "error", err)
		}
	}

	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取公告列表失败: %w", err)
	}

	if cacheKey != "" {
		if data, err := json.Marshal(announcements); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, data, announcementCacheTTL).Err(); err != nil {
				s.logger.Warn("写入公告缓存失败", "error", err)
			}
		}
	}

	return announcements, nil
}

// CreateAnnouncement 创建公告，展示日期取服务器当前时间
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, input CreateAnnouncementInput) (*model.Announcement, error) {
	now := s.now()
	announcement := &model.Announcement{
		Title:     input.Title,
		Date:      now.Format(model.AnnouncementDateLayout),
		Type:      model.NormalizeAnnouncementType(input.Type),
		Content:   input.Content,
		CreatedAt: now,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("创建公告失败: %w", err)
	}

	s.invalidateCache(ctx)
	return announcement, nil
}

// listCacheKey 读取当前缓存版本，Redis 不可用时返回空表示不使用缓存
func (s *AnnouncementService) listCacheKey(ctx context.Context) string {
	version, err := s.redisClient.Get(ctx, announcementVersionKey).Int64()
	if err == redis.Nil {
		return announcementListCacheKey(0)
	}
	if err != nil {
		s.logger.Warn("读取公告缓存版本失败", "error", err)
		return ""
	}
	return announcementListCacheKey(version)
}

// invalidateCache 递增缓存版本，使此前写入的列表缓存失效
func (s *AnnouncementService) invalidateCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Incr(ctx, announcementVersionKey).Err(); err != nil {
		s.logger.Error("更新公告缓存版本失败", "error", err)
	}
}
