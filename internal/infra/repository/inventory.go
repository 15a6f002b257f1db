package repository

import (
	"context"

	"railbook/internal/domain/inventory"
	"railbook/internal/infra"
	"railbook/internal/infra/db"
)

type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

const insertUnitSQL = `
INSERT INTO inventory_units (
	train_number, service_date, class_code, quota_code,
	confirmed_cap, rac_cap, waitlist_cap
) VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (train_number, service_date, class_code, quota_code) DO NOTHING`

const selectUnitSQL = `
SELECT confirmed_count, rac_count, waitlist_count,
       confirmed_cap, rac_cap, waitlist_cap
FROM inventory_units
WHERE train_number = $1 AND service_date = $2 AND class_code = $3 AND quota_code = $4`

// GetOrCreate materializes the seat pool for a unit key on first
// access, seeding it with the given capacities. Concurrent first
// accesses are safe: the insert is a no-op when the row already exists.
func (r *InventoryRepository) GetOrCreate(ctx context.Context, tx db.DBTX, key inventory.UnitKey, caps inventory.Capacities) (*inventory.Unit, error) {
	_, err := tx.Exec(ctx, insertUnitSQL,
		key.TrainNumber, key.ServiceDate, string(key.Class), string(key.Quota),
		caps.Confirmed, caps.RAC, caps.Waitlist,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create inventory unit", err)
	}

	return r.fetch(ctx, tx, key, selectUnitSQL)
}

// LockForUpdate loads the unit row under FOR UPDATE, serializing all
// writers of the same key. lock_timeout is set by the surrounding
// transaction; a 55P03 surfaces here as KindLockTimeout.
func (r *InventoryRepository) LockForUpdate(ctx context.Context, tx db.DBTX, key inventory.UnitKey) (*inventory.Unit, error) {
	return r.fetch(ctx, tx, key, selectUnitSQL+" FOR UPDATE")
}

func (r *InventoryRepository) fetch(ctx context.Context, tx db.DBTX, key inventory.UnitKey, query string) (*inventory.Unit, error) {
	unit := &inventory.Unit{Key: key}
	err := tx.QueryRow(ctx, query,
		key.TrainNumber, key.ServiceDate, string(key.Class), string(key.Quota),
	).Scan(
		&unit.Counts.Confirmed, &unit.Counts.RAC, &unit.Counts.Waitlist,
		&unit.Capacities.Confirmed, &unit.Capacities.RAC, &unit.Capacities.Waitlist,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "inventory unit not found", err)
		}
		if infra.IsLockNotAvailable(err) {
			return nil, infra.WrapRepoErr(infra.KindLockTimeout, "inventory unit lock timed out", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load inventory unit", err)
	}
	return unit, nil
}

const updateCountsSQL = `
UPDATE inventory_units
SET confirmed_count = $5, rac_count = $6, waitlist_count = $7, updated_at = now()
WHERE train_number = $1 AND service_date = $2 AND class_code = $3 AND quota_code = $4`

// UpdateCounts writes back the three tier counters. Callers must hold
// the row lock taken by LockForUpdate.
func (r *InventoryRepository) UpdateCounts(ctx context.Context, tx db.DBTX, unit *inventory.Unit) error {
	tag, err := tx.Exec(ctx, updateCountsSQL,
		unit.Key.TrainNumber, unit.Key.ServiceDate, string(unit.Key.Class), string(unit.Key.Quota),
		unit.Counts.Confirmed, unit.Counts.RAC, unit.Counts.Waitlist,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update inventory counts", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "inventory unit vanished during update", nil)
	}
	return nil
}
