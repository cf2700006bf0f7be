package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"techfest/internal/model"
	"techfest/internal/repository"
)

// AdminRepository 管理员凭据存储库
type AdminRepository struct {
	coll *mongo.Collection
}

// GetCredential 获取共享密码摘要
func (r *AdminRepository) GetCredential(ctx context.Context) (*model.AdminCredential, error) {
	var cred model.AdminCredential
	err := r.coll.FindOne(ctx, bson.D{}).Decode(&cred)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrAdminNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}
