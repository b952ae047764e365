package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-fund/internal/config/configs"
	"stellar-fund/internal/core/domain"
	"stellar-fund/internal/db"
)

// newTestStore connects to the database named by STELLAR_FUND_TEST_PSQL
// and applies migrations. Tests are skipped when it is unset.
func newTestStore(t *testing.T) *CampaignStore {
	t.Helper()
	addr := os.Getenv("STELLAR_FUND_TEST_PSQL")
	if addr == "" {
		t.Skip("STELLAR_FUND_TEST_PSQL not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate("postgres", addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewCampaignStore(pool)
}

func TestCampaignRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	deadline := time.Date(2026, 11, 30, 18, 0, 0, 0, time.UTC)
	c, err := domain.NewCampaign(uuid.NewString(), "Ana", "GCREATOR", decimal.RequireFromString("100.5"), deadline, time.Now())
	require.NoError(t, err)
	require.NoError(t, c.IssueCreation("GPENDING"))
	require.NoError(t, store.Put(ctx, &c))

	require.NoError(t, c.MarkCreated("GPENDING", "tx-create"))
	for i, who := range []string{"D1", "D2", "D1", "D4"} {
		_, err = c.ApplySettlement(domain.Settlement{
			TxHash:      uuid.NewString(),
			Contributor: who,
			Amount:      decimal.NewFromInt(int64(i + 1)),
			SettledAt:   time.Now().UTC().Truncate(time.Microsecond),
		})
		require.NoError(t, err)
	}
	require.NoError(t, store.Put(ctx, &c))
	assert.Equal(t, int64(2), c.Version)

	got, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.Deadline.Equal(deadline))
	assert.Len(t, got.Contributions, 3)
	assert.Len(t, got.Settlements, 4)
	assert.True(t, got.Raised.Equal(decimal.NewFromInt(10)))
	assert.True(t, got.Goal.Equal(decimal.RequireFromString("100.5")))
	assert.Equal(t, domain.LifecycleAcceptingContributions, got.State)
	assert.NoError(t, got.Audit())
}

func TestConcurrentPutsConflict(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := domain.Campaign{ID: uuid.NewString(), Creator: "x", CreatorAccount: "G", Goal: decimal.NewFromInt(1), Deadline: time.Now(), State: domain.LifecycleDraft}
	require.NoError(t, store.Put(ctx, &c))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		conflicts int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cp := c.Clone()
			if err := store.Put(ctx, &cp); err != nil {
				assert.ErrorIs(t, err, domain.ErrVersionConflict)
				mu.Lock()
				conflicts++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, conflicts)
}

func TestGetUnknownCampaign(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}
