package discord

import (
	"sync"

	"rolesync/internal/domain/entities"
)

// snapshotCache keeps the last seen snapshot of each scheduled event. The
// gateway's update dispatch only carries the new state and its user-add and
// user-remove dispatches only carry ids, so the previous snapshot has to be
// remembered process-locally. The cache is primed from the platform when a
// guild becomes available and refreshed on every dispatch; it is never the
// system of record.
type snapshotCache struct {
	mu     sync.RWMutex
	events map[string]entities.ScheduledEvent
}

func newSnapshotCache() *snapshotCache {
	return &snapshotCache{events: map[string]entities.ScheduledEvent{}}
}

func (c *snapshotCache) put(event entities.ScheduledEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events[event.ID] = event
}

func (c *snapshotCache) get(eventID string) (entities.ScheduledEvent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	event, ok := c.events[eventID]
	return event, ok
}

func (c *snapshotCache) evict(eventID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.events, eventID)
}
