package cache_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdiesu04/nexus/internal/cache"
	"github.com/abdiesu04/nexus/internal/repository"
)

func TestShipmentCache_SetGet(t *testing.T) {
	c := cache.NewShipmentCache()
	id := uuid.New()

	shipment := &repository.Shipment{ID: id, OrderID: "order-1", Status: repository.ShipmentStatusPending}
	c.Set(shipment)

	got, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, shipment, got)

	// The cache hands out copies; mutating one must not leak back.
	got.Status = repository.ShipmentStatusTransit
	again, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, repository.ShipmentStatusPending, again.Status)
}

func TestShipmentCache_Miss(t *testing.T) {
	c := cache.NewShipmentCache()

	got, ok := c.Get(uuid.New())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestShipmentCache_TerminalStatusEvicts(t *testing.T) {
	c := cache.NewShipmentCache()
	id := uuid.New()

	c.Set(&repository.Shipment{ID: id, Status: repository.ShipmentStatusTransit})
	_, ok := c.Get(id)
	require.True(t, ok)

	c.Set(&repository.Shipment{ID: id, Status: repository.ShipmentStatusDelivered})
	_, ok = c.Get(id)
	assert.False(t, ok)
}

func TestShipmentCache_Delete(t *testing.T) {
	c := cache.NewShipmentCache()
	id := uuid.New()

	c.Set(&repository.Shipment{ID: id, Status: repository.ShipmentStatusPending})
	c.Delete(id)

	_, ok := c.Get(id)
	assert.False(t, ok)
}

func TestShipmentCache_ConcurrentAccess(t *testing.T) {
	c := cache.NewShipmentCache()
	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := ids[i%len(ids)]
			c.Set(&repository.Shipment{ID: id, Status: repository.ShipmentStatusPending})
			c.Get(id)
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		_, ok := c.Get(id)
		assert.True(t, ok)
	}
}
