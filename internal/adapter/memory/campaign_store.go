package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"stellar-fund/internal/core/domain"
)

// CampaignStore implements port.CampaignStore in process memory. Records
// are deep-copied on the way in and out so callers never share maps with
// the store.
type CampaignStore struct {
	mu        sync.RWMutex
	campaigns map[string]domain.Campaign
	now       func() time.Time
}

func NewCampaignStore() *CampaignStore {
	return &CampaignStore{
		campaigns: make(map[string]domain.Campaign),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *CampaignStore) Get(ctx context.Context, id string) (domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, fmt.Errorf("get campaign: %w: %w", domain.ErrStoreUnavailable, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	return c.Clone(), nil
}

func (s *CampaignStore) Put(ctx context.Context, c *domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("put campaign: %w: %w", domain.ErrStoreUnavailable, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.campaigns[c.ID]
	switch {
	case c.Version == 0 && exists:
		return domain.ErrVersionConflict
	case c.Version != 0 && (!exists || stored.Version != c.Version):
		return domain.ErrVersionConflict
	}

	next := c.Clone()
	next.Version = c.Version + 1
	next.UpdatedAt = s.now()
	s.campaigns[c.ID] = next

	c.Version = next.Version
	c.UpdatedAt = next.UpdatedAt
	return nil
}

func (s *CampaignStore) List(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list campaigns: %w: %w", domain.ErrStoreUnavailable, err)
	}
	s.mu.RLock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, c.Clone())
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.Campaign) int {
		if n := a.CreatedAt.Compare(b.CreatedAt); n != 0 {
			return n
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

