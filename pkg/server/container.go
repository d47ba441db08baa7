package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"car-registry-api/internal/config"
	"car-registry-api/internal/repositories"
	dynamorepo "car-registry-api/internal/repositories/dynamodb"
)

// Container holds all application dependencies. Both deployment modes build
// one of these and hand its repository to the handlers.
type Container struct {
	Config        *config.Config
	Logger        *logrus.Logger
	CarRepository repositories.CarRepository
}

// NewContainer creates a new dependency injection container. The DynamoDB
// client it builds is shared by every request.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.IsProduction() {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	client, err := dynamorepo.NewClient(ctx, dynamorepo.ClientConfig{
		Region:    cfg.DynamoDB.Region,
		Endpoint:  cfg.DynamoDB.Endpoint,
		AccessKey: cfg.DynamoDB.AccessKey,
		SecretKey: cfg.DynamoDB.SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &Container{
		Config:        cfg,
		Logger:        logger,
		CarRepository: dynamorepo.NewCarRepository(client, cfg.DynamoDB.Table, cfg.ListPageSize, logger),
	}, nil
}

// Close cleans up container resources. The DynamoDB client holds no
// connections of its own, so this is currently a no-op kept for symmetry
// with server shutdown.
func (c *Container) Close() error {
	return nil
}
