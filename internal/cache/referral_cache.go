package cache

import (
	"context"

	"jtrack-backend/internal/domain"
)

// ReferralCache mirrors referrals for one application or for all of the
// user's applications, same modes as InterviewCache.
type ReferralCache struct {
	state
	repo      domain.ReferralRepository
	userID    string
	filter    string
	referrals []domain.Referral
}

func NewReferralCache(repo domain.ReferralRepository, userID string) *ReferralCache {
	return &ReferralCache{repo: repo, userID: userID}
}

func (c *ReferralCache) Fetch(ctx context.Context, applicationID string) error {
	c.begin()
	defer c.end()

	var (
		referrals []domain.Referral
		err       error
	)
	if applicationID == "" {
		referrals, err = c.repo.ListByUser(ctx, c.userID)
	} else {
		referrals, err = c.repo.ListByApplication(ctx, applicationID)
	}
	if err != nil {
		return c.fail("Failed to fetch referrals", err)
	}

	c.mu.Lock()
	c.filter = applicationID
	c.referrals = referrals
	c.mu.Unlock()

	c.publish(Event{Entity: EntityReferral, Op: OpFetch})
	return nil
}

func (c *ReferralCache) Filter() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter
}

func (c *ReferralCache) Add(ctx context.Context, ref *domain.Referral) error {
	c.begin()
	defer c.end()

	if err := c.repo.Insert(ctx, ref); err != nil {
		return c.fail("Failed to add referral", err)
	}

	c.mu.Lock()
	c.referrals = append(c.referrals, *ref)
	c.mu.Unlock()

	c.publish(Event{Entity: EntityReferral, Op: OpAdd, ID: ref.ID})
	return nil
}

func (c *ReferralCache) Update(ctx context.Context, id string, patch domain.ReferralPatch) (*domain.Referral, error) {
	c.begin()
	defer c.end()

	updated, err := c.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, c.fail("Failed to update referral", err)
	}

	c.mu.Lock()
	for i := range c.referrals {
		if c.referrals[i].ID == id {
			c.referrals[i] = *updated
			break
		}
	}
	c.mu.Unlock()

	c.publish(Event{Entity: EntityReferral, Op: OpUpdate, ID: id})
	return updated, nil
}

func (c *ReferralCache) Delete(ctx context.Context, id string) error {
	c.begin()
	defer c.end()

	if err := c.repo.Delete(ctx, id); err != nil {
		return c.fail("Failed to delete referral", err)
	}

	c.mu.Lock()
	kept := c.referrals[:0]
	for _, ref := range c.referrals {
		if ref.ID != id {
			kept = append(kept, ref)
		}
	}
	c.referrals = kept
	c.mu.Unlock()

	c.publish(Event{Entity: EntityReferral, Op: OpDelete, ID: id})
	return nil
}

func (c *ReferralCache) Get(id string) (*domain.Referral, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.referrals {
		if c.referrals[i].ID == id {
			ref := c.referrals[i]
			return &ref, true
		}
	}
	return nil, false
}

func (c *ReferralCache) Snapshot() []domain.Referral {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Referral, len(c.referrals))
	copy(out, c.referrals)
	return out
}

func (c *ReferralCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.referrals)
}

func (c *ReferralCache) dropApplication(applicationID string) {
	c.mu.Lock()
	kept := c.referrals[:0]
	for _, ref := range c.referrals {
		if ref.ApplicationID != applicationID {
			kept = append(kept, ref)
		}
	}
	c.referrals = kept
	c.mu.Unlock()
}
