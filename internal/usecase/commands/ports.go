package commands

import (
	"context"
	"time"

	"railbook/internal/domain/booking"
	"railbook/internal/domain/inventory"
	"railbook/internal/domain/train"
	"railbook/internal/infra/db"
)

// Write-side ports. Repositories are stateless over DBTX so one
// instance serves every transaction.

type TrainRepository interface {
	FindByNumber(ctx context.Context, tx db.DBTX, number string) (*train.Train, error)
}

type InventoryRepository interface {
	GetOrCreate(ctx context.Context, tx db.DBTX, key inventory.UnitKey, caps inventory.Capacities) (*inventory.Unit, error)
	LockForUpdate(ctx context.Context, tx db.DBTX, key inventory.UnitKey) (*inventory.Unit, error)
	UpdateCounts(ctx context.Context, tx db.DBTX, unit *inventory.Unit) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) error
	FindByPNR(ctx context.Context, tx db.DBTX, pnr string, forUpdate bool) (*booking.Reservation, error)
	QueueFor(ctx context.Context, tx db.DBTX, key inventory.UnitKey, tier inventory.Tier) ([]inventory.QueueEntry, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, pnr string, status booking.Status) error
	MarkCancelled(ctx context.Context, tx db.DBTX, pnr string, at time.Time) error
}
