package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"techfest/internal/model"
	"techfest/internal/repository"
	"techfest/internal/repository/filestore"
	"techfest/pkg/logger"
)

const testPassword = "fest-admin-2025"

func newTestStore(t *testing.T) (*filestore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := filestore.NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func writeAdminFile(t *testing.T, dir, hash string) {
	t.Helper()
	content := `{"passwordHash":"` + hash + `"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "admin.json"), []byte(content), 0600))
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

// fixedClock 返回一个每次调用前进一秒的时钟
func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Second)
		return now
	}
}

// failingAnnouncements 模拟存储故障
type failingAnnouncements struct{}

var errDiskFull = errors.New("disk full")

func (failingAnnouncements) List(ctx context.Context) ([]model.Announcement, error) {
	return nil, errDiskFull
}

func (failingAnnouncements) Create(ctx context.Context, a *model.Announcement) error {
	return errDiskFull
}

var _ repository.AnnouncementRepository = failingAnnouncements{}

var nopLogger = logger.NewNop()
