package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-fund/internal/config/configs"
	"stellar-fund/internal/core/domain"
	"stellar-fund/internal/db"
)

func openTestStore(t *testing.T) *CampaignStore {
	t.Helper()
	sqlDB, err := db.OpenSQLite(context.Background(), configs.SQLite{
		Path:          filepath.Join(t.TempDir(), "campaigns.db"),
		RunMigrations: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewCampaignStore(sqlDB)
}

func TestCampaignRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	deadline := time.Date(2026, 12, 24, 12, 30, 0, 0, time.UTC)
	c, err := domain.NewCampaign("c1", "Ana", "GCREATOR", decimal.NewFromInt(100), deadline, time.Now())
	require.NoError(t, err)
	require.NoError(t, c.IssueCreation("GPENDING"))
	require.NoError(t, store.Put(ctx, &c))
	require.Equal(t, int64(1), c.Version)

	require.NoError(t, c.MarkCreated("GPENDING", "tx-create"))
	amounts := []string{"40", "10", "0.0000001", "2.5"}
	for i, a := range amounts {
		_, err = c.ApplySettlement(domain.Settlement{
			TxHash:      "h" + a,
			Contributor: []string{"D1", "D1", "D2", "D3"}[i],
			Amount:      decimal.RequireFromString(a),
		})
		require.NoError(t, err)
	}
	require.NoError(t, store.Put(ctx, &c))

	got, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.True(t, got.Deadline.Equal(deadline))
	assert.Len(t, got.Contributions, 3)
	assert.True(t, got.Contributions["D1"].Equal(decimal.NewFromInt(50)))
	assert.True(t, got.Raised.Equal(decimal.RequireFromString("52.5000001")))
	assert.True(t, got.Raised.Equal(c.Raised))
	assert.Len(t, got.Settlements, 4)
	assert.Equal(t, "GPENDING", got.LedgerAccount)
	assert.Equal(t, domain.LifecycleAcceptingContributions, got.State)
	assert.NoError(t, got.Audit())
}

func TestPutCompareAndSwap(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	c := domain.Campaign{ID: "c1", Creator: "x", CreatorAccount: "G", Goal: decimal.NewFromInt(1), Deadline: time.Now(), State: domain.LifecycleDraft}
	require.NoError(t, store.Put(ctx, &c))

	dup := domain.Campaign{ID: "c1", Goal: decimal.NewFromInt(1), State: domain.LifecycleDraft}
	require.ErrorIs(t, store.Put(ctx, &dup), domain.ErrVersionConflict)

	first, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	second, err := store.Get(ctx, "c1")
	require.NoError(t, err)

	require.NoError(t, first.RecordContribution("D1", decimal.NewFromInt(5)))
	require.NoError(t, store.Put(ctx, &first))

	require.NoError(t, second.RecordContribution("D2", decimal.NewFromInt(7)))
	require.ErrorIs(t, store.Put(ctx, &second), domain.ErrVersionConflict)

	got, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, got.Raised.Equal(decimal.NewFromInt(5)))
	assert.NotContains(t, got.Contributions, "D2")
}

func TestGetAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"z", "y"} {
		c := domain.Campaign{ID: id, Goal: decimal.NewFromInt(1), State: domain.LifecycleDraft, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, store.Put(ctx, &c))
	}
	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "z", list[0].ID)
	assert.Equal(t, "y", list[1].ID)
}
