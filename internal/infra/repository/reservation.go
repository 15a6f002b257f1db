package repository

import (
	"context"
	"time"

	"railbook/internal/domain/booking"
	"railbook/internal/domain/fare"
	"railbook/internal/domain/inventory"
	"railbook/internal/domain/train"
	"railbook/internal/infra"
	"railbook/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservations (
	pnr, train_number, service_date, class_code, quota_code,
	from_station, to_station, status, fare_paise, user_id, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const insertPassengerSQL = `
INSERT INTO reservation_passengers (pnr, seq, name, age, gender, berth_pref)
VALUES ($1, $2, $3, $4, $5, $6)`

// Create persists a reservation and its passengers. A PNR collision
// surfaces as KindDuplicateKey so the caller can regenerate and retry
// the whole transaction.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) error {
	key := res.UnitKey()
	_, err := tx.Exec(ctx, insertReservationSQL,
		res.PNR(), key.TrainNumber, key.ServiceDate, string(key.Class), string(key.Quota),
		res.FromCode(), res.ToCode(), res.Status().String(), res.Fare().Paise(),
		res.UserID(), res.CreatedAt(),
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "pnr already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create reservation", err)
	}

	for i, p := range res.Passengers() {
		_, err := tx.Exec(ctx, insertPassengerSQL,
			res.PNR(), int16(i+1), p.Name, p.Age, string(p.Gender), p.BerthPref,
		)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to create passenger", err)
		}
	}
	return nil
}

const selectReservationSQL = `
SELECT pnr, train_number, service_date, class_code, quota_code,
       from_station, to_station, status, fare_paise, user_id, created_at, cancelled_at
FROM reservations
WHERE pnr = $1`

// FindByPNR loads a reservation with its passengers. Pass the FOR
// UPDATE variant via forUpdate when the caller is about to mutate it.
func (r *ReservationRepository) FindByPNR(ctx context.Context, tx db.DBTX, pnr string, forUpdate bool) (*booking.Reservation, error) {
	query := selectReservationSQL
	if forUpdate {
		query += " FOR UPDATE"
	}

	var (
		gotPNR, trainNumber, classCode, quotaCode string
		fromCode, toCode, status                  string
		serviceDate, createdAt                    time.Time
		cancelledAt                               *time.Time
		farePaise                                 int64
		userID                                    uuid.UUID
	)
	err := tx.QueryRow(ctx, query, pnr).Scan(
		&gotPNR, &trainNumber, &serviceDate, &classCode, &quotaCode,
		&fromCode, &toCode, &status, &farePaise, &userID, &createdAt, &cancelledAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		if infra.IsLockNotAvailable(err) {
			return nil, infra.WrapRepoErr(infra.KindLockTimeout, "reservation lock timed out", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservation", err)
	}

	passengers, err := r.loadPassengers(ctx, tx, pnr)
	if err != nil {
		return nil, err
	}

	key := inventory.NewUnitKey(trainNumber, serviceDate, train.Class(classCode), train.Quota(quotaCode))
	return booking.ReconstructReservation(
		gotPNR, key, fromCode, toCode, passengers,
		booking.Status(status), fare.NewMoney(farePaise), userID, createdAt, cancelledAt,
	), nil
}

const selectPassengersSQL = `
SELECT name, age, gender, berth_pref
FROM reservation_passengers
WHERE pnr = $1
ORDER BY seq`

func (r *ReservationRepository) loadPassengers(ctx context.Context, tx db.DBTX, pnr string) ([]booking.Passenger, error) {
	rows, err := tx.Query(ctx, selectPassengersSQL, pnr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load passengers", err)
	}
	defer rows.Close()

	var passengers []booking.Passenger
	for rows.Next() {
		var p booking.Passenger
		var gender string
		if err := rows.Scan(&p.Name, &p.Age, &gender, &p.BerthPref); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan passenger", err)
		}
		p.Gender = booking.Gender(gender)
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate passengers", err)
	}
	return passengers, nil
}

const selectQueueSQL = `
SELECT r.pnr, count(p.seq)::int
FROM reservations r
JOIN reservation_passengers p ON p.pnr = r.pnr
WHERE r.train_number = $1 AND r.service_date = $2
  AND r.class_code = $3 AND r.quota_code = $4 AND r.status = $5
GROUP BY r.pnr, r.created_at
ORDER BY r.created_at, r.pnr`

// QueueFor returns the oldest-first promotion queue of active
// reservations in the given tier for a unit.
func (r *ReservationRepository) QueueFor(ctx context.Context, tx db.DBTX, key inventory.UnitKey, tier inventory.Tier) ([]inventory.QueueEntry, error) {
	rows, err := tx.Query(ctx, selectQueueSQL,
		key.TrainNumber, key.ServiceDate, string(key.Class), string(key.Quota),
		booking.StatusForTier(tier).String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load promotion queue", err)
	}
	defer rows.Close()

	var queue []inventory.QueueEntry
	for rows.Next() {
		var e inventory.QueueEntry
		if err := rows.Scan(&e.PNR, &e.Passengers); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan queue entry", err)
		}
		queue = append(queue, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate promotion queue", err)
	}
	return queue, nil
}

const updateStatusSQL = `
UPDATE reservations SET status = $2 WHERE pnr = $1 AND cancelled_at IS NULL`

// UpdateStatus moves an active reservation to a new tier status, as
// the promotion cascade does.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, pnr string, status booking.Status) error {
	tag, err := tx.Exec(ctx, updateStatusSQL, pnr, status.String())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "active reservation not found", nil)
	}
	return nil
}

const markCancelledSQL = `
UPDATE reservations SET status = $2, cancelled_at = $3
WHERE pnr = $1 AND cancelled_at IS NULL`

func (r *ReservationRepository) MarkCancelled(ctx context.Context, tx db.DBTX, pnr string, at time.Time) error {
	tag, err := tx.Exec(ctx, markCancelledSQL, pnr, booking.StatusCancelled.String(), at)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "reservation already cancelled", nil)
	}
	return nil
}
