package cache

import (
	"context"

	"jtrack-backend/internal/domain"
)

// InterviewCache mirrors interviews either for one application or, when
// fetched with an empty filter, for every application the user owns.
type InterviewCache struct {
	state
	repo       domain.InterviewRepository
	userID     string
	filter     string // application id, or "" for all mode
	interviews []domain.Interview
}

func NewInterviewCache(repo domain.InterviewRepository, userID string) *InterviewCache {
	return &InterviewCache{repo: repo, userID: userID}
}

// Fetch replaces the cache with the interviews for applicationID, ordered by
// interview date ascending. An empty applicationID switches to all mode.
func (c *InterviewCache) Fetch(ctx context.Context, applicationID string) error {
	c.begin()
	defer c.end()

	var (
		interviews []domain.Interview
		err        error
	)
	if applicationID == "" {
		interviews, err = c.repo.ListByUser(ctx, c.userID)
	} else {
		interviews, err = c.repo.ListByApplication(ctx, applicationID)
	}
	if err != nil {
		return c.fail("Failed to fetch interviews", err)
	}

	c.mu.Lock()
	c.filter = applicationID
	c.interviews = interviews
	c.mu.Unlock()

	c.publish(Event{Entity: EntityInterview, Op: OpFetch})
	return nil
}

// Filter returns the application id the cache was last fetched for, or ""
// in all mode.
func (c *InterviewCache) Filter() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter
}

// Add appends the stored interview to the cache tail without restoring the
// date ordering. Duplicate round numbers are retained as-is.
func (c *InterviewCache) Add(ctx context.Context, iv *domain.Interview) error {
	c.begin()
	defer c.end()

	if err := c.repo.Insert(ctx, iv); err != nil {
		return c.fail("Failed to add interview", err)
	}

	c.mu.Lock()
	c.interviews = append(c.interviews, *iv)
	c.mu.Unlock()

	c.publish(Event{Entity: EntityInterview, Op: OpAdd, ID: iv.ID})
	return nil
}

func (c *InterviewCache) Update(ctx context.Context, id string, patch domain.InterviewPatch) (*domain.Interview, error) {
	c.begin()
	defer c.end()

	updated, err := c.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, c.fail("Failed to update interview", err)
	}

	c.mu.Lock()
	for i := range c.interviews {
		if c.interviews[i].ID == id {
			c.interviews[i] = *updated
			break
		}
	}
	c.mu.Unlock()

	c.publish(Event{Entity: EntityInterview, Op: OpUpdate, ID: id})
	return updated, nil
}

func (c *InterviewCache) Delete(ctx context.Context, id string) error {
	c.begin()
	defer c.end()

	if err := c.repo.Delete(ctx, id); err != nil {
		return c.fail("Failed to delete interview", err)
	}

	c.mu.Lock()
	kept := c.interviews[:0]
	for _, iv := range c.interviews {
		if iv.ID != id {
			kept = append(kept, iv)
		}
	}
	c.interviews = kept
	c.mu.Unlock()

	c.publish(Event{Entity: EntityInterview, Op: OpDelete, ID: id})
	return nil
}

func (c *InterviewCache) Get(id string) (*domain.Interview, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.interviews {
		if c.interviews[i].ID == id {
			iv := c.interviews[i]
			return &iv, true
		}
	}
	return nil, false
}

func (c *InterviewCache) Snapshot() []domain.Interview {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Interview, len(c.interviews))
	copy(out, c.interviews)
	return out
}

func (c *InterviewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.interviews)
}

// dropApplication evicts interviews belonging to a deleted application,
// mirroring the store-side cascade without a refetch.
func (c *InterviewCache) dropApplication(applicationID string) {
	c.mu.Lock()
	kept := c.interviews[:0]
	for _, iv := range c.interviews {
		if iv.ApplicationID != applicationID {
			kept = append(kept, iv)
		}
	}
	c.interviews = kept
	c.mu.Unlock()
}
