package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/internal/model"
	"techfest/internal/repository"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	return s, dir
}

func TestNewStore_InitializesEmptyCollections(t *testing.T) {
	_, dir := newTestStore(t)

	for _, name := range []string{announcementsFile, contactsFile, photosFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.JSONEq(t, "[]", string(data), name)
	}
	_, err := os.Stat(filepath.Join(dir, adminFile))
	assert.True(t, os.IsNotExist(err))
}

func TestNewStore_KeepsExistingData(t *testing.T) {
	dir := t.TempDir()
	existing := `[{"id":"7","title":"Old","date":"1 Jan 2025","type":"update","content":"x","createdAt":"2025-01-01T00:00:00Z"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, announcementsFile), []byte(existing), 0644))

	s, err := NewStore(dir)
	require.NoError(t, err)

	items, err := s.Announcements().List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "7", items[0].ID)
}

func TestAnnouncements_IDsAndOrdering(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		a := &model.Announcement{Title: "t", Type: "new", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, s.Announcements().Create(ctx, a))
		assert.Equal(t, []string{"1", "2", "3"}[i], a.ID)
	}

	items, err := s.Announcements().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "1", items[2].ID)
}

func TestAnnouncements_SameTimestampNewestIDFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 12; i++ {
		require.NoError(t, s.Announcements().Create(ctx, &model.Announcement{Title: "t", CreatedAt: now}))
	}

	items, err := s.Announcements().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12", items[0].ID)
	assert.Equal(t, "10", items[2].ID)
	assert.Equal(t, "1", items[11].ID)
}

func TestAnnouncements_ConcurrentCreatesAreNotLost(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Announcements().Create(ctx, &model.Announcement{Title: "t", CreatedAt: time.Now()}))
		}()
	}
	wg.Wait()

	items, err := s.Announcements().List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, n)

	seen := map[string]bool{}
	for _, a := range items {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestContacts_AppendInInsertionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Contacts().Create(ctx, &model.ContactSubmission{Type: model.SubmissionTypeContact, Email: "a@b.com"}))
	require.NoError(t, s.Contacts().Create(ctx, &model.ContactSubmission{Type: model.SubmissionTypeSponsor, CompanyName: "Acme"}))

	items, err := s.Contacts().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a@b.com", items[0].Email)
	assert.Equal(t, "Acme", items[1].CompanyName)
}

func TestPhotos_StatusLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	p := &model.Photo{ImageURL: "https://img/1.jpg", Status: model.PhotoStatusPending, SubmittedAt: time.Now()}
	require.NoError(t, s.Photos().Create(ctx, p))
	require.Len(t, p.ID, photoIDLength)

	pending, err := s.Photos().ListByStatus(ctx, model.PhotoStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, s.Photos().UpdateStatus(ctx, p.ID, model.PhotoStatusPending, model.PhotoStatusApproved))

	pending, err = s.Photos().ListByStatus(ctx, model.PhotoStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	got, err := s.Photos().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PhotoStatusApproved, got.Status)
}

func TestPhotos_UnknownID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Photos().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, s.Photos().UpdateStatus(ctx, "missing", model.PhotoStatusPending, model.PhotoStatusApproved), repository.ErrNotFound)
}

func TestPhotos_UpdateStatusIsConditional(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	p := &model.Photo{ImageURL: "https://img/1.jpg", Status: model.PhotoStatusPending, SubmittedAt: time.Now()}
	require.NoError(t, s.Photos().Create(ctx, p))
	require.NoError(t, s.Photos().UpdateStatus(ctx, p.ID, model.PhotoStatusPending, model.PhotoStatusRejected))

	info, err := os.Stat(filepath.Join(dir, photosFile))
	require.NoError(t, err)

	// 已是目标状态：成功且不重写文件
	require.NoError(t, s.Photos().UpdateStatus(ctx, p.ID, model.PhotoStatusPending, model.PhotoStatusRejected))
	again, err := os.Stat(filepath.Join(dir, photosFile))
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), again.ModTime())

	err = s.Photos().UpdateStatus(ctx, p.ID, model.PhotoStatusPending, model.PhotoStatusApproved)
	assert.ErrorIs(t, err, repository.ErrStatusConflict)

	got, err := s.Photos().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PhotoStatusRejected, got.Status)
}

func TestPhotos_ConcurrentConditionalUpdates(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	p := &model.Photo{ImageURL: "https://img/1.jpg", Status: model.PhotoStatusPending, SubmittedAt: time.Now()}
	require.NoError(t, s.Photos().Create(ctx, p))

	targets := []string{model.PhotoStatusApproved, model.PhotoStatusRejected}
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, to := range targets {
		wg.Add(1)
		go func(i int, to string) {
			defer wg.Done()
			errs[i] = s.Photos().UpdateStatus(ctx, p.ID, model.PhotoStatusPending, to)
		}(i, to)
	}
	wg.Wait()

	got, err := s.Photos().GetByID(ctx, p.ID)
	require.NoError(t, err)
	for i, to := range targets {
		if to == got.Status {
			assert.NoError(t, errs[i])
		} else {
			assert.ErrorIs(t, errs[i], repository.ErrStatusConflict)
		}
	}
}

func TestAdmin_Credential(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	_, err := s.Admin().GetCredential(ctx)
	assert.ErrorIs(t, err, repository.ErrAdminNotConfigured)

	data, _ := json.Marshal(model.AdminCredential{PasswordHash: "abc"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, adminFile), data, 0600))

	cred, err := s.Admin().GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", cred.PasswordHash)
}

func TestCorruptFileSurfacesError(t *testing.T) {
	s, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, contactsFile), []byte("{not json"), 0644))

	_, err := s.Contacts().List(context.Background())
	assert.Error(t, err)
	err = s.Contacts().Create(context.Background(), &model.ContactSubmission{})
	assert.Error(t, err)
}
