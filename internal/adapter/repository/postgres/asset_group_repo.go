package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// assetGroupRepository implements domain.AssetGroupRepository
type assetGroupRepository struct {
	db *DB
}

// NewAssetGroupRepository creates a new asset group repository
func NewAssetGroupRepository(db *DB) domain.AssetGroupRepository {
	return &assetGroupRepository{db: db}
}

// GetByID retrieves an asset group by its ID
func (r *assetGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetGroup, error) {
	var group domain.AssetGroup
	var bookID sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, book_id FROM asset_groups WHERE id = $1`, id,
	).Scan(&group.ID, &group.Name, &bookID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("asset group %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset group by ID: %w", err)
	}

	if group.BookID, err = parseNullableUUID(bookID); err != nil {
		return nil, fmt.Errorf("failed to parse book_id: %w", err)
	}
	return &group, nil
}

// Create creates a new asset group
func (r *assetGroupRepository) Create(ctx context.Context, group *domain.AssetGroup) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO asset_groups (id, name, book_id) VALUES ($1, $2, $3)`,
		group.ID, group.Name, nullableUUID(group.BookID))
	if err != nil {
		return fmt.Errorf("failed to create asset group: %w", err)
	}
	return nil
}

// Update persists changes to an asset group
func (r *assetGroupRepository) Update(ctx context.Context, group *domain.AssetGroup) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE asset_groups SET name = $2, book_id = $3 WHERE id = $1`,
		group.ID, group.Name, nullableUUID(group.BookID))
	if err != nil {
		return fmt.Errorf("failed to update asset group: %w", err)
	}
	return requireRowAffected(res, "asset group")
}

// Delete removes a group; assets keep a NULL group reference afterwards
func (r *assetGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM asset_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset group: %w", err)
	}
	return requireRowAffected(res, "asset group")
}

// List retrieves groups, optionally filtered by book
func (r *assetGroupRepository) List(ctx context.Context, bookID *uuid.UUID) ([]*domain.AssetGroup, error) {
	query := `SELECT id, name, book_id FROM asset_groups`
	args := []interface{}{}
	if bookID != nil {
		query += ` WHERE book_id = $1`
		args = append(args, *bookID)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.AssetGroup
	for rows.Next() {
		var group domain.AssetGroup
		var nullBookID sql.NullString
		if err := rows.Scan(&group.ID, &group.Name, &nullBookID); err != nil {
			return nil, fmt.Errorf("failed to scan asset group: %w", err)
		}
		if group.BookID, err = parseNullableUUID(nullBookID); err != nil {
			return nil, fmt.Errorf("failed to parse book_id: %w", err)
		}
		groups = append(groups, &group)
	}
	return groups, rows.Err()
}
