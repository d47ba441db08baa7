package lambda

import (
	"context"
	"sync"

	"car-registry-api/internal/config"
	"car-registry-api/pkg/server"
)

// ConnectionManager caches the dependency container across Lambda
// invocations so warm starts reuse the DynamoDB client.
type ConnectionManager struct {
	mu        sync.Mutex
	container *server.Container
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the process-wide connection manager.
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// GetContainer returns the cached container, building it on the first call.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cm.container = container
	return container, nil
}
