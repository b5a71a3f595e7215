package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/utils"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/kvstore"
)

// ConnectStorage picks the state backend from config: "sqlite" for a
// single hub (default), "postgres" for a shared server, "memory" for
// throwaway runs. The returned closer may be nil.
func ConnectStorage() (kvstore.Store, func() error, error) {
	switch utils.GetConfig("STORAGE_DRIVER") {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("database connection failed: %w", err)
		}

		store, err := kvstore.NewPostgresStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil

	case "memory":
		return kvstore.NewMemoryStore(), nil, nil

	default:
		path := utils.GetConfig("SQLITE_PATH")
		if path == "" {
			path = "./fridge.db"
		}
		return kvstore.NewSQLiteStore(path)
	}
}
