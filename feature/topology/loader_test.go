package topology

import (
	"testing"

	"topology-manager/core/reconcile"
	"topology-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	// Pass nil db for this test as we don't access it unless we use the service
	feature := NewFeature(nil, mockClient, storageCfg, reconcile.Config{}, zap.NewNop())

	assert.Equal(t, "topology", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
