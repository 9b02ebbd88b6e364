// Package cache keeps recently used shipments in memory so the tracking
// endpoint does not hit postgres on every poll.
package cache

import (
	"sync"

	"github.com/google/uuid"

	"github.com/abdiesu04/nexus/internal/metrics"
	"github.com/abdiesu04/nexus/internal/repository"
)

type ShipmentCache struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*repository.Shipment
}

func NewShipmentCache() *ShipmentCache {
	return &ShipmentCache{items: make(map[uuid.UUID]*repository.Shipment)}
}

func (c *ShipmentCache) Get(id uuid.UUID) (*repository.Shipment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.items[id]
	if !ok {
		return nil, false
	}
	cp := *s
	return &cp, true
}

// Set stores a copy of the shipment. Terminal shipments are evicted
// instead; nobody polls them.
func (c *ShipmentCache) Set(s *repository.Shipment) {
	if isTerminalStatus(s.Status) {
		c.Delete(s.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *s
	c.items[s.ID] = &cp
	metrics.ShipmentCacheItems.Set(float64(len(c.items)))
}

func (c *ShipmentCache) Delete(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	metrics.ShipmentCacheItems.Set(float64(len(c.items)))
}

func isTerminalStatus(status string) bool {
	switch status {
	case repository.ShipmentStatusDelivered, repository.ShipmentStatusReturned, repository.ShipmentStatusFailure:
		return true
	}
	return false
}
