package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

const assetColumns = `id, name, group_id, balance, is_credit, credit_limit,
	bill_day, repayment_day, is_total_asset, is_no_budget, note`

// GetByID retrieves an asset by its ID
func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset by ID: %w", err)
	}
	return asset, nil
}

// Create creates a new asset
func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO assets (id, name, group_id, balance, is_credit, credit_limit,
			bill_day, repayment_day, is_total_asset, is_no_budget, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		nullableUUID(asset.GroupID),
		asset.Balance.String(),
		asset.IsCredit,
		asset.CreditLimit.String(),
		asset.BillDay,
		asset.RepaymentDay,
		asset.IsTotalAsset,
		asset.IsNoBudget,
		asset.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// Update persists the asset's descriptive fields. The balance column is
// deliberately not touched here; it only changes through UpdateBalance.
func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	query := `
		UPDATE assets
		SET name = $2, group_id = $3, is_credit = $4, credit_limit = $5,
			bill_day = $6, repayment_day = $7, is_total_asset = $8,
			is_no_budget = $9, note = $10
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		nullableUUID(asset.GroupID),
		asset.IsCredit,
		asset.CreditLimit.String(),
		asset.BillDay,
		asset.RepaymentDay,
		asset.IsTotalAsset,
		asset.IsNoBudget,
		asset.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return requireRowAffected(res, "asset")
}

// Delete removes an asset. Records and transfers referencing it are set to
// NULL by the schema's ON DELETE SET NULL constraints.
func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return requireRowAffected(res, "asset")
}

// List retrieves assets, optionally filtered by group
func (r *assetRepository) List(ctx context.Context, groupID *uuid.UUID) ([]*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets`
	args := []interface{}{}
	if groupID != nil {
		query += ` WHERE group_id = $1`
		args = append(args, *groupID)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// LockForUpdate reads an asset under FOR UPDATE, serializing against every
// concurrent balance writer on the same row until the transaction ends.
func (r *assetRepository) LockForUpdate(ctx context.Context, tx domain.Tx, id uuid.UUID) (*domain.Asset, error) {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1 FOR UPDATE`

	asset, err := scanAsset(dbTx.QueryRowContext(ctx, query, id))
	if err != nil {
		if mapped := mapSQLError(err); mapped != err {
			return nil, fmt.Errorf("asset %s: %w", id, mapped)
		}
		return nil, fmt.Errorf("failed to lock asset: %w", err)
	}
	return asset, nil
}

// UpdateBalance writes a new balance inside the caller's transaction. The
// row must already be locked via LockForUpdate.
func (r *assetRepository) UpdateBalance(ctx context.Context, tx domain.Tx, id uuid.UUID, balance decimal.Decimal) error {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return err
	}

	res, err := dbTx.ExecContext(ctx,
		`UPDATE assets SET balance = $2 WHERE id = $1`, id, balance.String())
	if err != nil {
		return fmt.Errorf("failed to update asset balance: %w", mapSQLError(err))
	}
	return requireRowAffected(res, "asset")
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var asset domain.Asset
	var groupID sql.NullString
	var balanceStr, creditLimitStr string

	err := row.Scan(
		&asset.ID,
		&asset.Name,
		&groupID,
		&balanceStr,
		&asset.IsCredit,
		&creditLimitStr,
		&asset.BillDay,
		&asset.RepaymentDay,
		&asset.IsTotalAsset,
		&asset.IsNoBudget,
		&asset.Note,
	)
	if err != nil {
		return nil, err
	}

	if asset.GroupID, err = parseNullableUUID(groupID); err != nil {
		return nil, fmt.Errorf("failed to parse group_id: %w", err)
	}
	if asset.Balance, err = decimal.NewFromString(balanceStr); err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}
	if asset.CreditLimit, err = decimal.NewFromString(creditLimitStr); err != nil {
		return nil, fmt.Errorf("failed to parse credit_limit: %w", err)
	}

	return &asset, nil
}

// nullableUUID converts an optional UUID into a driver-friendly value
func nullableUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

func parseNullableUUID(v sql.NullString) (*uuid.UUID, error) {
	if !v.Valid {
		return nil, nil
	}
	parsed, err := uuid.Parse(v.String)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// requireRowAffected maps zero-row writes to ErrNotFound
func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}
	return nil
}
