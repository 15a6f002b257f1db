package readstore

import (
	"context"

	"railbook/internal/domain/inventory"
	"railbook/internal/infra"
	"railbook/internal/infra/db"
)

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

const selectSnapshotSQL = `
SELECT confirmed_cap - confirmed_count,
       rac_cap - rac_count,
       waitlist_cap - waitlist_count
FROM inventory_units
WHERE train_number = $1 AND service_date = $2 AND class_code = $3 AND quota_code = $4`

// FindSnapshot reads availability without touching the row lock; the
// numbers are an MVCC snapshot and may be stale by the time a booking
// lands.
func (s *InventoryReadStore) FindSnapshot(ctx context.Context, key inventory.UnitKey) (inventory.Snapshot, error) {
	var snap inventory.Snapshot
	err := s.db.QueryRow(ctx, selectSnapshotSQL,
		key.TrainNumber, key.ServiceDate, string(key.Class), string(key.Quota),
	).Scan(&snap.ConfirmedAvailable, &snap.RACAvailable, &snap.WaitlistAvailable)
	if err != nil {
		if infra.IsNoRows(err) {
			return inventory.Snapshot{}, infra.WrapRepoErr(infra.KindNotFound, "inventory unit not found", err)
		}
		return inventory.Snapshot{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to read availability", err)
	}
	return snap, nil
}
