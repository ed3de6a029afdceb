package global

import (
	"sentiment_dashboard/config"
	"sentiment_dashboard/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionNames chứa tên các collection trong MongoDB
type MongoDB_CollectionNames struct {
	Reviews          string // review đã gán nhãn sentiment
	MonthlyRollups   string // rollup theo (company, tháng)
	LifetimeInsights string // singleton Shopify lifetime insights
	EmotionDetails   string // chi tiết emotion đã tính sẵn
	PreSavedDetails  string // fallback cho EmotionDetails
	Users            string
}

// Các biến toàn cục
var Validate *validator.Validate
var MongoDB_Session *mongo.Client
var MongoDB_ServerConfig *config.Configuration
var MongoDB_ColNames MongoDB_CollectionNames

// Registry chứa các collections
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
