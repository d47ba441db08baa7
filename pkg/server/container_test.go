package server

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"

	"car-registry-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		DynamoDB: config.DynamoDBConfig{
			Table:     "cars-test",
			Region:    "us-east-1",
			Endpoint:  "http://localhost:8000",
			AccessKey: "test",
			SecretKey: "test",
		},
	}
}

func TestNewContainer(t *testing.T) {
	container, err := NewContainer(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}
	defer container.Close()

	if container.CarRepository == nil {
		t.Error("container has no repository")
	}
	if container.Logger == nil {
		t.Fatal("container has no logger")
	}
	if container.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("log level = %v, want debug outside production", container.Logger.GetLevel())
	}
}

func TestNewContainerProductionLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Environment = "production"

	container, err := NewContainer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}
	defer container.Close()

	if container.Logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("log level = %v, want info in production", container.Logger.GetLevel())
	}
}
