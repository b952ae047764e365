// Package sqlite provides a SQLite-backed campaign store for single-node
// deployments.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stellar-fund/internal/core/domain"
)

// CampaignStore implements port.CampaignStore on a database/sql handle
// opened with the modernc.org/sqlite driver. Amounts are stored as text to
// keep exact decimals; timestamps as unix milliseconds.
type CampaignStore struct {
	db *sql.DB
}

func NewCampaignStore(db *sql.DB) *CampaignStore {
	return &CampaignStore{db: db}
}

func toMillis(v time.Time) int64 { return v.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

const selectCampaign = `SELECT id, creator, creator_account, goal, deadline, pending_account,
       ledger_account, creation_tx_id, raised, contributions, settlements, state, version,
       created_at, updated_at
  FROM campaigns`

func (s *CampaignStore) Get(ctx context.Context, id string) (domain.Campaign, error) {
	row := s.db.QueryRowContext(ctx, selectCampaign+` WHERE id = ?`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("get campaign: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return c, nil
}

func (s *CampaignStore) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := s.db.QueryContext(ctx, selectCampaign+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("list campaigns: %w", err)
		}
		out = append(out, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list campaigns: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return out, nil
}

func (s *CampaignStore) Put(ctx context.Context, c *domain.Campaign) error {
	contributions, err := json.Marshal(c.Contributions)
	if err != nil {
		return fmt.Errorf("encode contributions: %w", err)
	}
	settlements, err := json.Marshal(c.Settlements)
	if err != nil {
		return fmt.Errorf("encode settlements: %w", err)
	}
	now := time.Now().UTC()

	var res sql.Result
	if c.Version == 0 {
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		res, err = s.db.ExecContext(ctx, `INSERT INTO campaigns (
		   id, creator, creator_account, goal, deadline, pending_account, ledger_account,
		   creation_tx_id, raised, contributions, settlements, state, version, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Creator, c.CreatorAccount, c.Goal.String(), toMillis(c.Deadline), c.PendingAccount,
			c.LedgerAccount, c.CreationTxID, c.Raised.String(), string(contributions), string(settlements),
			string(c.State), toMillis(createdAt), toMillis(now))
		if err == nil {
			c.CreatedAt = createdAt
		}
	} else {
		res, err = s.db.ExecContext(ctx, `UPDATE campaigns SET
		   creator = ?, creator_account = ?, goal = ?, deadline = ?, pending_account = ?,
		   ledger_account = ?, creation_tx_id = ?, raised = ?, contributions = ?, settlements = ?,
		   state = ?, version = version + 1, updated_at = ?
		 WHERE id = ? AND version = ?`,
			c.Creator, c.CreatorAccount, c.Goal.String(), toMillis(c.Deadline), c.PendingAccount,
			c.LedgerAccount, c.CreationTxID, c.Raised.String(), string(contributions), string(settlements),
			string(c.State), toMillis(now), c.ID, c.Version)
	}
	if err != nil {
		return fmt.Errorf("put campaign: %w: %w", domain.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("put campaign: %w", err)
	}
	if n == 0 {
		return domain.ErrVersionConflict
	}
	c.Version++
	c.UpdatedAt = now
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row scanner) (domain.Campaign, error) {
	var (
		c                              domain.Campaign
		goal, raised, state            string
		contributions, settlements     string
		deadline, createdAt, updatedAt int64
	)
	err := row.Scan(&c.ID, &c.Creator, &c.CreatorAccount, &goal, &deadline, &c.PendingAccount,
		&c.LedgerAccount, &c.CreationTxID, &raised, &contributions, &settlements, &state, &c.Version,
		&createdAt, &updatedAt)
	if err != nil {
		return c, err
	}
	if c.Goal, err = decimal.NewFromString(goal); err != nil {
		return c, fmt.Errorf("decode goal: %w", err)
	}
	if c.Raised, err = decimal.NewFromString(raised); err != nil {
		return c, fmt.Errorf("decode raised: %w", err)
	}
	if err = json.Unmarshal([]byte(contributions), &c.Contributions); err != nil {
		return c, fmt.Errorf("decode contributions: %w", err)
	}
	if err = json.Unmarshal([]byte(settlements), &c.Settlements); err != nil {
		return c, fmt.Errorf("decode settlements: %w", err)
	}
	c.State = domain.Lifecycle(state)
	c.Deadline = fromMillis(deadline)
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	return c.Clone(), nil
}
