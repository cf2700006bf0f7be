package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"techfest/internal/model"
)

// announcementDocument 公告文档
type announcementDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Date      string             `bson:"date"`
	Type      string             `bson:"type"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d announcementDocument) toModel() model.Announcement {
	return model.Announcement{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Date:      d.Date,
		Type:      d.Type,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
	}
}

// AnnouncementRepository 公告存储库
type AnnouncementRepository struct {
	coll *mongo.Collection
}

// List 获取全部公告，最新的在前
func (r *AnnouncementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []announcementDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	announcements := make([]model.Announcement, 0, len(docs))
	for _, d := range docs {
		announcements = append(announcements, d.toModel())
	}
	return announcements, nil
}

// Create 插入公告，ID由数据库生成
func (r *AnnouncementRepository) Create(ctx context.Context, a *model.Announcement) error {
	doc := announcementDocument{
		ID:        primitive.NewObjectID(),
		Title:     a.Title,
		Date:      a.Date,
		Type:      a.Type,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	a.ID = doc.ID.Hex()
	return nil
}
