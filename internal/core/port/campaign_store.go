package port

import (
	"context"

	"stellar-fund/internal/core/domain"
)

// CampaignStore is the durable record of campaigns. It is an outbound port
// in hexagonal architecture.
//
// Writes are whole-record overwrites with no merge logic, conditioned on
// the campaign's Version: Put with Version 0 inserts a new record, any
// other Version replaces the record only if the stored version still
// matches, and a successful Put advances c.Version. A stale write returns
// domain.ErrVersionConflict and leaves the stored record untouched. This
// compare-and-swap is what makes the orchestrator's load, mutate, persist
// cycle safe under concurrent finalize calls; callers reload and retry on
// conflict.
type CampaignStore interface {
	// Get returns the campaign or domain.ErrCampaignNotFound.
	Get(ctx context.Context, id string) (domain.Campaign, error)
	// Put writes c if its Version matches the stored one.
	Put(ctx context.Context, c *domain.Campaign) error
	// List returns every campaign ordered by creation time.
	List(ctx context.Context) ([]domain.Campaign, error)
}
