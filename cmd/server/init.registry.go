package main

import (
	"context"
	"time"

	"sentiment_dashboard/config"
	coredb "sentiment_dashboard/core/database"
	"sentiment_dashboard/core/global"
	authmodels "sentiment_dashboard/internal/api/auth/models"
	reportmodels "sentiment_dashboard/internal/api/report/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	logrus.Info("Initialized registry")

	if err := coredb.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database: %v", err)
	}

	// Khởi tạo registry và đăng ký các collections
	if err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.WithField("collections", global.RegistryCollections.Names()).Info("Initialized collection registry")

	initIndexes()
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	for _, name := range coredb.CollectionNames(global.MongoDB_ColNames) {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Warnf("Collection %s already registered", name)
		}
	}
	return nil
}

// initIndexes tạo index khai báo trên model. Lỗi index chỉ log, server vẫn chạy.
func initIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	models := map[string]interface{}{
		global.MongoDB_ColNames.Reviews:        reportmodels.Review{},
		global.MongoDB_ColNames.MonthlyRollups: reportmodels.MonthlyRollup{},
		global.MongoDB_ColNames.EmotionDetails: reportmodels.EmotionDetail{},
		global.MongoDB_ColNames.Users:          authmodels.User{},
	}
	for name, model := range models {
		col, exists := global.RegistryCollections.Get(name)
		if !exists {
			continue
		}
		if err := coredb.CreateIndexes(ctx, col, model); err != nil {
			logrus.WithError(err).WithField("collection", name).Error("Failed to create indexes")
		}
	}
}
