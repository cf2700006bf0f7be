package database

import (
	"context"
	"fmt"

	"techfest/config"
	"techfest/internal/repository"
	"techfest/internal/repository/filestore"
	"techfest/internal/repository/mongodb"
	"techfest/internal/repository/mysql"
)

// OpenStore 按配置的驱动打开存储后端
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		return filestore.NewStore(cfg.DataDir)
	case config.StorageMongo:
		client, err := NewMongoClient(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return mongodb.NewStore(client, cfg.Mongo.DBName), nil
	case config.StorageMySQL:
		db, err := NewMySQLConnection(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		store, err := mysql.NewStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
