package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/config"
	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/logger"
)

// ProvideDatabase opens the gorm connection
func ProvideDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// ProvideRedis connects to Redis. A failed ping is logged, not fatal: the
// product cache and the login limiter fail open.
func ProvideRedis(cfg *config.Config) (*redis.Client, func()) {
	if cfg.Redis.Addr == "" {
		return nil, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis ping failed")
	} else {
		logger.Logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connected")
	}

	return client, func() { _ = client.Close() }
}

// ProvideKafkaPublisher returns nil when Kafka is disabled
func ProvideKafkaPublisher(cfg *config.Config) (*kafka.Publisher, func(), error) {
	if !cfg.Kafka.Enabled {
		logger.Logger.Info().Msg("Kafka disabled, transaction events are not published")
		return nil, func() {}, nil
	}
	pub, err := kafka.NewPublisher(cfg.Kafka.Brokers)
	if err != nil {
		return nil, nil, err
	}
	return pub, func() { _ = pub.Close() }, nil
}
