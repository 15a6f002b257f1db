//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB clears booking state between tests. The timetable reference
// tables are seeded once by the schedule importer and left alone.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE inventory_units, reservations, reservation_passengers CASCADE")
	return err
}

// CountReservations reports how many reservations currently hold the
// given status, for asserting promotion side effects directly.
func CountReservations(pool *pgxpool.Pool, status string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var n int
	err := pool.QueryRow(ctx, "SELECT count(*) FROM reservations WHERE status = $1", status).Scan(&n)
	return n, err
}
