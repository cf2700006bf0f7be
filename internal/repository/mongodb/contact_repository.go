package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"techfest/internal/model"
)

// ContactRepository 联系表单存储库
type ContactRepository struct {
	coll *mongo.Collection
}

// List 按插入顺序获取全部提交
func (r *ContactRepository) List(ctx context.Context) ([]model.ContactSubmission, error) {
	// ObjectID 单调递增，按 _id 升序即插入顺序
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	submissions := []model.ContactSubmission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// Create 追加一条提交
func (r *ContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	_, err := r.coll.InsertOne(ctx, s)
	return err
}
