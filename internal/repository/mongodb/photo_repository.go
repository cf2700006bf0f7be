package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"techfest/internal/model"
	"techfest/internal/repository"
)

// photoDocument 照片文档
type photoDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ImageURL     string             `bson:"imageUrl"`
	Category     string             `bson:"category"`
	UploaderName string             `bson:"uploaderName"`
	College      string             `bson:"college"`
	GroupName    string             `bson:"groupName,omitempty"`
	Status       string             `bson:"status"`
	SubmittedAt  time.Time          `bson:"submittedAt"`
}

func (d photoDocument) toModel() model.Photo {
	return model.Photo{
		ID:           d.ID.Hex(),
		ImageURL:     d.ImageURL,
		Category:     d.Category,
		UploaderName: d.UploaderName,
		College:      d.College,
		GroupName:    d.GroupName,
		Status:       d.Status,
		SubmittedAt:  d.SubmittedAt,
	}
}

// PhotoRepository 画廊照片存储库
type PhotoRepository struct {
	coll *mongo.Collection
}

// Create 保存新照片
func (r *PhotoRepository) Create(ctx context.Context, p *model.Photo) error {
	doc := photoDocument{
		ID:           primitive.NewObjectID(),
		ImageURL:     p.ImageURL,
		Category:     p.Category,
		UploaderName: p.UploaderName,
		College:      p.College,
		GroupName:    p.GroupName,
		Status:       p.Status,
		SubmittedAt:  p.SubmittedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	p.ID = doc.ID.Hex()
	return nil
}

// GetByID 根据ID获取照片，非法ID视为不存在
func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc photoDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	photo := doc.toModel()
	return &photo, nil
}

// ListByStatus 获取指定状态的照片
func (r *PhotoRepository) ListByStatus(ctx context.Context, status string) ([]model.Photo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}

	var docs []photoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	photos := make([]model.Photo, 0, len(docs))
	for _, d := range docs {
		photos = append(photos, d.toModel())
	}
	return photos, nil
}

// UpdateStatus 条件更新照片审核状态
func (r *PhotoRepository) UpdateStatus(ctx context.Context, id, from, to string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	filter := bson.M{"_id": oid, "status": from}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": to}})
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	photo, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return repository.ResolveStatusTransition(photo.Status, to)
}
