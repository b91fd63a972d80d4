package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/config"
)

func setupRedis(t *testing.T) config.RedisConfig {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return config.RedisConfig{Host: host, Port: port.Int()}
}

func TestIntegrationStore(t *testing.T) {
	cfg := setupRedis(t)
	ctx := context.Background()

	client, err := cache.NewRedisClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	store := cache.NewStore(client, "test:")

	t.Run("miss", func(t *testing.T) {
		var v []string
		hit, err := store.GetJSON(ctx, "absent", &v)

		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.SetJSON(ctx, "names", []string{"Olite", "Tudela"}, time.Minute))

		var v []string
		hit, err := store.GetJSON(ctx, "names", &v)

		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, []string{"Olite", "Tudela"}, v)
		assert.Equal(t, int64(1), client.Exists(ctx, "test:names").Val())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.SetJSON(ctx, "gone", 1, time.Minute))
		require.NoError(t, store.Delete(ctx, "gone"))

		var v int
		hit, err := store.GetJSON(ctx, "gone", &v)

		require.NoError(t, err)
		assert.False(t, hit)
	})
}
