package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"techfest/internal/repository"
	"techfest/pkg/logger"
)

// AdminAuthService 校验共享的管理员密码
type AdminAuthService struct {
	adminRepo      repository.AdminRepository
	configuredHash string
	redisClient    *redis.Client
	maxFailures    int
	lockWindow     time.Duration
	logger         *logger.Logger
}

// AdminAuthOptions 管理员认证选项
type AdminAuthOptions struct {
	// PasswordHash 注入的密码摘要，为空时读取存储中的记录
	PasswordHash string
	// MaxFailures 窗口内允许的失败次数，<=0 表示不限制
	MaxFailures int
	LockWindow  time.Duration
}

// NewAdminAuthService 创建管理员认证服务，redisClient 为 nil 时不做失败次数限制
func NewAdminAuthService(adminRepo repository.AdminRepository, redisClient *redis.Client, opts AdminAuthOptions, logger *logger.Logger) *AdminAuthService {
	return &AdminAuthService{
		adminRepo:      adminRepo,
		configuredHash: opts.PasswordHash,
		redisClient:    redisClient,
		maxFailures:    opts.MaxFailures,
		lockWindow:     opts.LockWindow,
		logger:         logger,
	}
}

// Verify 校验密码。空密码在任何摘要比较之前被拒绝。
func (s *AdminAuthService) Verify(ctx context.Context, password, clientIP string) error {
	if password == "" {
		return ErrPasswordRequired
	}

	locked, err := s.isLocked(ctx, clientIP)
	if err != nil {
		s.logger.Warn("读取密码失败次数失败", "ip", clientIP, "error", err)
	}
	if locked {
		return ErrTooManyAttempts
	}

	hash, err := s.passwordHash(ctx)
	if err != nil {
		return err
	}

	if !MatchPassword(hash, password) {
		if err := s.recordFailure(ctx, clientIP); err != nil {
			s.logger.Warn("记录密码失败次数失败", "ip", clientIP, "error", err)
		}
		return ErrInvalidPassword
	}
	return nil
}

func (s *AdminAuthService) passwordHash(ctx context.Context) (string, error) {
	if s.configuredHash != "" {
		return s.configuredHash, nil
	}

	cred, err := s.adminRepo.GetCredential(ctx)
	if errors.Is(err, repository.ErrAdminNotConfigured) {
		return "", ErrAdminNotConfigured
	}
	if err != nil {
		return "", fmt.Errorf("读取管理员凭据失败: %w", err)
	}
	return cred.PasswordHash, nil
}

func failureKey(clientIP string) string {
	return "admin_auth:failures:" + clientIP
}

func (s *AdminAuthService) isLocked(ctx context.Context, clientIP string) (bool, error) {
	if s.redisClient == nil || s.maxFailures <= 0 {
		return false, nil
	}
	count, err := s.redisClient.Get(ctx, failureKey(clientIP)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= s.maxFailures, nil
}

// recordFailure 失败计数在第一次失败时开始计时，窗口到期后自动清零
func (s *AdminAuthService) recordFailure(ctx context.Context, clientIP string) error {
	if s.redisClient == nil || s.maxFailures <= 0 {
		return nil
	}
	key := failureKey(clientIP)
	count, err := s.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return s.redisClient.Expire(ctx, key, s.lockWindow).Err()
	}
	return nil
}

// MatchPassword 比较明文密码与摘要。
// 支持 bcrypt 摘要和十六进制 SHA-256 摘要，两者均为常量时间比较。
func MatchPassword(hash, password string) bool {
	if isBcryptHash(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	expected := []byte(strings.ToLower(strings.TrimSpace(hash)))
	actual := []byte(SHA256Hex(password))
	return subtle.ConstantTimeCompare(expected, actual) == 1
}

// SHA256Hex 返回密码的十六进制 SHA-256 摘要
func SHA256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}
