package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"stellar-fund/internal/core/domain"
)

// CampaignStore implements port.CampaignStore using pgxpool for PostgreSQL.
// Each campaign is one row; contributions and settlements are JSONB
// documents rewritten with the rest of the record.
type CampaignStore struct {
	pool *pgxpool.Pool
}

// NewCampaignStore returns a new store instance.
func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

const selectCampaign = `
        SELECT
            id,
            creator,
            creator_account,
            goal::text,
            deadline,
            pending_account,
            ledger_account,
            creation_tx_id,
            raised::text,
            contributions,
            settlements,
            state,
            version,
            created_at,
            updated_at
        FROM campaigns`

// Get returns a campaign by id.
func (s *CampaignStore) Get(ctx context.Context, id string) (domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, selectCampaign+` WHERE id = $1`, id)
	if err != nil {
		return domain.Campaign{}, unavailable("get campaign", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	if err != nil {
		return domain.Campaign{}, unavailable("get campaign", err)
	}
	return c, nil
}

// List returns all campaigns, oldest first.
func (s *CampaignStore) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, selectCampaign+` ORDER BY created_at, id`)
	if err != nil {
		return nil, unavailable("list campaigns", err)
	}
	list, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, unavailable("list campaigns", err)
	}
	return list, nil
}

// Put inserts the campaign when c.Version is zero, otherwise replaces the
// row only if its version still equals c.Version.
func (s *CampaignStore) Put(ctx context.Context, c *domain.Campaign) error {
	contributions, err := json.Marshal(c.Contributions)
	if err != nil {
		return fmt.Errorf("encode contributions: %w", err)
	}
	settlements, err := json.Marshal(c.Settlements)
	if err != nil {
		return fmt.Errorf("encode settlements: %w", err)
	}
	updatedAt := time.Now().UTC()

	var tag pgconn.CommandTag
	if c.Version == 0 {
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = updatedAt
		}
		tag, err = s.pool.Exec(ctx, `
        INSERT INTO campaigns
            (id, creator, creator_account, goal, deadline, pending_account, ledger_account,
             creation_tx_id, raised, contributions, settlements, state, version, created_at, updated_at)
        VALUES ($1,$2,$3,$4::numeric,$5,$6,$7,$8,$9::numeric,$10,$11,$12,1,$13,$14)
        ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Creator, c.CreatorAccount, c.Goal.String(), c.Deadline, c.PendingAccount, c.LedgerAccount,
			c.CreationTxID, c.Raised.String(), string(contributions), string(settlements), string(c.State),
			createdAt, updatedAt)
		if err == nil && tag.RowsAffected() == 1 {
			c.CreatedAt = createdAt
		}
	} else {
		tag, err = s.pool.Exec(ctx, `
        UPDATE campaigns SET
            creator = $2,
            creator_account = $3,
            goal = $4::numeric,
            deadline = $5,
            pending_account = $6,
            ledger_account = $7,
            creation_tx_id = $8,
            raised = $9::numeric,
            contributions = $10,
            settlements = $11,
            state = $12,
            version = version + 1,
            updated_at = $13
        WHERE id = $1 AND version = $14`,
			c.ID, c.Creator, c.CreatorAccount, c.Goal.String(), c.Deadline, c.PendingAccount, c.LedgerAccount,
			c.CreationTxID, c.Raised.String(), string(contributions), string(settlements), string(c.State),
			updatedAt, c.Version)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return fmt.Errorf("put campaign %s: %w", c.ID, err)
		}
		return unavailable("put campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	c.Version++
	c.UpdatedAt = updatedAt
	return nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c                          domain.Campaign
		goal, raised, state        string
		contributions, settlements []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Creator,
		&c.CreatorAccount,
		&goal,
		&c.Deadline,
		&c.PendingAccount,
		&c.LedgerAccount,
		&c.CreationTxID,
		&raised,
		&contributions,
		&settlements,
		&state,
		&c.Version,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if c.Goal, err = decimal.NewFromString(goal); err != nil {
		return c, fmt.Errorf("decode goal: %w", err)
	}
	if c.Raised, err = decimal.NewFromString(raised); err != nil {
		return c, fmt.Errorf("decode raised: %w", err)
	}
	if err = json.Unmarshal(contributions, &c.Contributions); err != nil {
		return c, fmt.Errorf("decode contributions: %w", err)
	}
	if err = json.Unmarshal(settlements, &c.Settlements); err != nil {
		return c, fmt.Errorf("decode settlements: %w", err)
	}
	c.State = domain.Lifecycle(state)
	c.Deadline = c.Deadline.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c.Clone(), nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
