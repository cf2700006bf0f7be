package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"techfest/internal/repository"
)

// 集合名称
const (
	collectionAnnouncements = "announcements"
	collectionContacts      = "contacts"
	collectionPhotos        = "photos"
	collectionAdmins        = "admins"
)

// Store MongoDB存储后端，进程生命周期内复用同一个客户端
type Store struct {
	client        *mongo.Client
	announcements *AnnouncementRepository
	contacts      *ContactRepository
	photos        *PhotoRepository
	admin         *AdminRepository
}

// NewStore 基于已连接的客户端创建存储后端
func NewStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		client:        client,
		announcements: &AnnouncementRepository{coll: db.Collection(collectionAnnouncements)},
		contacts:      &ContactRepository{coll: db.Collection(collectionContacts)},
		photos:        &PhotoRepository{coll: db.Collection(collectionPhotos)},
		admin:         &AdminRepository{coll: db.Collection(collectionAdmins)},
	}
}

func (s *Store) Announcements() repository.AnnouncementRepository { return s.announcements }
func (s *Store) Contacts() repository.ContactRepository           { return s.contacts }
func (s *Store) Photos() repository.PhotoRepository               { return s.photos }
func (s *Store) Admin() repository.AdminRepository                { return s.admin }

// Close 断开客户端连接
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
