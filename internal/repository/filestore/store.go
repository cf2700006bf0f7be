package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"k8s.io/apimachinery/pkg/util/rand"

	"techfest/internal/model"
	"techfest/internal/repository"
)

// 数据文件名
const (
	announcementsFile = "announcements.json"
	contactsFile      = "contacts.json"
	photosFile        = "photos.json"
	adminFile         = "admin.json"
)

const photoIDLength = 12

// errUnchanged 更新函数无需写回
var errUnchanged = errors.New("unchanged")

// Store 基于本地JSON文件的存储后端
type Store struct {
	dir           string
	announcements *collection[model.Announcement]
	contacts      *collection[model.ContactSubmission]
	photos        *collection[model.Photo]
}

// NewStore 在 dir 下打开存储，缺失的集合文件初始化为空数组
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}

	announcements, err := newCollection[model.Announcement](filepath.Join(dir, announcementsFile))
	if err != nil {
		return nil, err
	}
	contacts, err := newCollection[model.ContactSubmission](filepath.Join(dir, contactsFile))
	if err != nil {
		return nil, err
	}
	photos, err := newCollection[model.Photo](filepath.Join(dir, photosFile))
	if err != nil {
		return nil, err
	}

	return &Store{
		dir:           dir,
		announcements: announcements,
		contacts:      contacts,
		photos:        photos,
	}, nil
}

func (s *Store) Announcements() repository.AnnouncementRepository { return announcementRepo{s} }
func (s *Store) Contacts() repository.ContactRepository           { return contactRepo{s} }
func (s *Store) Photos() repository.PhotoRepository               { return photoRepo{s} }
func (s *Store) Admin() repository.AdminRepository                { return adminRepo{s} }

// Close 文件存储无需释放资源
func (s *Store) Close(ctx context.Context) error { return nil }

type announcementRepo struct{ s *Store }

func (r announcementRepo) List(ctx context.Context) ([]model.Announcement, error) {
	items, err := r.s.announcements.all()
	if err != nil {
		return nil, err
	}
	sortAnnouncements(items)
	return items, nil
}

// Create 新ID为当前最大数字ID加一，新记录放在文件头部
func (r announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.s.announcements.update(func(items []model.Announcement) ([]model.Announcement, error) {
		var maxID int64
		for _, item := range items {
			if id, err := strconv.ParseInt(item.ID, 10, 64); err == nil && id > maxID {
				maxID = id
			}
		}
		a.ID = strconv.FormatInt(maxID+1, 10)
		return append([]model.Announcement{*a}, items...), nil
	})
}

// sortAnnouncements 按创建时间倒序，时间相同时按数字ID倒序
func sortAnnouncements(items []model.Announcement) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		a, _ := strconv.ParseInt(items[i].ID, 10, 64)
		b, _ := strconv.ParseInt(items[j].ID, 10, 64)
		return a > b
	})
}

type contactRepo struct{ s *Store }

func (r contactRepo) List(ctx context.Context) ([]model.ContactSubmission, error) {
	return r.s.contacts.all()
}

func (r contactRepo) Create(ctx context.Context, sub *model.ContactSubmission) error {
	return r.s.contacts.update(func(items []model.ContactSubmission) ([]model.ContactSubmission, error) {
		return append(items, *sub), nil
	})
}

type photoRepo struct{ s *Store }

func (r photoRepo) Create(ctx context.Context, p *model.Photo) error {
	return r.s.photos.update(func(items []model.Photo) ([]model.Photo, error) {
		taken := make(map[string]struct{}, len(items))
		for _, item := range items {
			taken[item.ID] = struct{}{}
		}
		for {
			p.ID = rand.String(photoIDLength)
			if _, ok := taken[p.ID]; !ok {
				break
			}
		}
		return append(items, *p), nil
	})
}

func (r photoRepo) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	items, err := r.s.photos.all()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r photoRepo) ListByStatus(ctx context.Context, status string) ([]model.Photo, error) {
	items, err := r.s.photos.all()
	if err != nil {
		return nil, err
	}

	photos := []model.Photo{}
	for _, p := range items {
		if p.Status == status {
			photos = append(photos, p)
		}
	}
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].SubmittedAt.After(photos[j].SubmittedAt)
	})
	return photos, nil
}

// UpdateStatus 在集合锁内检查当前状态并更新，状态已是目标值时不写文件
func (r photoRepo) UpdateStatus(ctx context.Context, id, from, to string) error {
	err := r.s.photos.update(func(items []model.Photo) ([]model.Photo, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if items[i].Status != from {
				if err := repository.ResolveStatusTransition(items[i].Status, to); err != nil {
					return nil, err
				}
				return nil, errUnchanged
			}
			items[i].Status = to
			return items, nil
		}
		return nil, repository.ErrNotFound
	})
	if errors.Is(err, errUnchanged) {
		return nil
	}
	return err
}

type adminRepo struct{ s *Store }

// GetCredential 从 admin.json 读取密码摘要，该文件需要事先手动创建
func (r adminRepo) GetCredential(ctx context.Context) (*model.AdminCredential, error) {
	data, err := os.ReadFile(filepath.Join(r.s.dir, adminFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, repository.ErrAdminNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("读取管理员凭据失败: %w", err)
	}

	var cred model.AdminCredential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("解析管理员凭据失败: %w", err)
	}
	if cred.PasswordHash == "" {
		return nil, repository.ErrAdminNotConfigured
	}
	return &cred, nil
}
