package kvstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type AppState struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"not null"`
}

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore returns a Store backed by a shared Postgres database,
// for deployments where several fridge hubs report to one server.
func NewPostgresStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&AppState{}); err != nil {
		return nil, err
	}
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var state AppState
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return state.Value, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	state := AppState{Key: key, Value: value}
	return s.db.WithContext(ctx).Save(&state).Error
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&AppState{}).Error
}
