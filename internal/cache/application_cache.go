package cache

import (
	"context"
	"sort"

	"jtrack-backend/internal/domain"
)

// ApplicationCache mirrors the signed-in user's applications.
type ApplicationCache struct {
	state
	repo   domain.ApplicationRepository
	userID string
	apps   []domain.Application
}

func NewApplicationCache(repo domain.ApplicationRepository, userID string) *ApplicationCache {
	return &ApplicationCache{repo: repo, userID: userID}
}

// Fetch replaces the cache wholesale with the remote records, newest first.
// On error the cached records are left exactly as they were.
func (c *ApplicationCache) Fetch(ctx context.Context) error {
	c.begin()
	defer c.end()

	apps, err := c.repo.ListByUser(ctx, c.userID)
	if err != nil {
		return c.fail("Failed to fetch applications", err)
	}

	c.mu.Lock()
	c.apps = apps
	c.mu.Unlock()

	c.publish(Event{Entity: EntityApplication, Op: OpFetch})
	return nil
}

// Add inserts the draft remotely and appends the stored record to the cache
// tail. The fetch-time ordering (created_at DESC) is intentionally NOT
// restored until the next Fetch; the new item stays last.
func (c *ApplicationCache) Add(ctx context.Context, app *domain.Application) error {
	c.begin()
	defer c.end()

	app.UserID = c.userID
	if err := c.repo.Insert(ctx, app); err != nil {
		return c.fail("Failed to add application", err)
	}

	c.mu.Lock()
	c.apps = append(c.apps, *app)
	c.mu.Unlock()

	c.publish(Event{Entity: EntityApplication, Op: OpAdd, ID: app.ID})
	return nil
}

// Update patches the record remotely and replaces the matching cache entry.
// If the id is not in the cache the remote update still counts; the cache
// membership just does not change (no insert-on-miss).
func (c *ApplicationCache) Update(ctx context.Context, id string, patch domain.ApplicationPatch) (*domain.Application, error) {
	c.begin()
	defer c.end()

	updated, err := c.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, c.fail("Failed to update application", err)
	}

	c.mu.Lock()
	for i := range c.apps {
		if c.apps[i].ID == id {
			c.apps[i] = *updated
			break
		}
	}
	c.mu.Unlock()

	c.publish(Event{Entity: EntityApplication, Op: OpUpdate, ID: id})
	return updated, nil
}

// Delete removes the record remotely, then drops it from the cache. The
// cache is never mutated before the store confirms.
func (c *ApplicationCache) Delete(ctx context.Context, id string) error {
	c.begin()
	defer c.end()

	if err := c.repo.Delete(ctx, id); err != nil {
		return c.fail("Failed to delete application", err)
	}

	c.mu.Lock()
	kept := c.apps[:0]
	for _, app := range c.apps {
		if app.ID != id {
			kept = append(kept, app)
		}
	}
	c.apps = kept
	c.mu.Unlock()

	c.publish(Event{Entity: EntityApplication, Op: OpDelete, ID: id})
	return nil
}

// Get returns the cached record by id, if present.
func (c *ApplicationCache) Get(id string) (*domain.Application, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.apps {
		if c.apps[i].ID == id {
			app := c.apps[i]
			return &app, true
		}
	}
	return nil, false
}

// Snapshot copies the cached records in cache order.
func (c *ApplicationCache) Snapshot() []domain.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Application, len(c.apps))
	copy(out, c.apps)
	return out
}

// SortedByDateDesc returns the records ordered by application date, newest
// first, independent of cache order.
func (c *ApplicationCache) SortedByDateDesc() []domain.Application {
	out := c.Snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ApplicationDate.After(out[j].ApplicationDate)
	})
	return out
}

func (c *ApplicationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.apps)
}
