// Package discovery maintains the controller's view of every remote
// entity currently on the network: the EntityID-keyed cache ADP
// advertisements populate, and the periodic discovery broadcast loop
// that keeps that cache fresh.
package discovery

import (
	"bytes"
	"net"
	"sync"

	"github.com/opd-ai/avdeccore/entity"
)

// Cache holds the latest Snapshot advertised by every remote entity the
// controller has seen. It is its own monitor: every method locks
// internally, so the discovery goroutine delivering an advertisement and
// a command callback reading the cache never race each other (grounded
// on CapabilityDelegate's discovery thread).
type Cache struct {
	mu       sync.Mutex
	entities map[entity.ID]entity.Snapshot
}

// NewCache returns an empty discovery cache.
func NewCache() *Cache {
	return &Cache{entities: make(map[entity.ID]entity.Snapshot)}
}

// InsertOrReplace records snap as the current state of its EntityID,
// overwriting whatever was previously cached. It never caches selfID: a
// controller always ignores its own advertisements.
func (c *Cache) InsertOrReplace(selfID entity.ID, snap entity.Snapshot) {
	if snap.EntityID == selfID {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entities[snap.EntityID] = snap
}

// Remove evicts entityID from the cache, returning whether it was
// present.
func (c *Cache) Remove(entityID entity.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entities[entityID]; !ok {
		return false
	}
	delete(c.entities, entityID)
	return true
}

// Lookup returns the cached Snapshot for entityID, if any.
func (c *Cache) Lookup(entityID entity.ID) (entity.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, ok := c.entities[entityID]
	return snap, ok
}

// Entities returns a snapshot of every currently cached entity. The
// returned slice is a copy; mutating it doesn't affect the cache.
func (c *Cache) Entities() []entity.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Snapshot, 0, len(c.entities))
	for _, snap := range c.entities {
		out = append(out, snap)
	}
	return out
}

// LookupByMac returns the EntityID of the cached entity advertising mac as
// any of its interface MAC addresses. Used to attribute an inbound AECP
// frame (addressed by MAC, not EntityID) back to its source entity.
func (c *Cache) LookupByMac(mac net.HardwareAddr) (entity.ID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, snap := range c.entities {
		for _, iface := range snap.InterfacesInfo {
			if bytes.Equal(iface.MacAddress, mac) {
				return id, true
			}
		}
	}
	return entity.NullID, false
}

// Count returns the number of currently cached entities.
func (c *Cache) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entities)
}
