package readstore

import (
	"context"

	"railbook/internal/infra"
	"railbook/internal/infra/db"
	"railbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const selectBookingsByUserSQL = `
SELECT r.pnr, r.train_number, t.name, r.service_date, r.class_code, r.quota_code,
       r.from_station, r.to_station, r.status, r.fare_paise, r.created_at,
       (SELECT count(*)::int FROM reservation_passengers p WHERE p.pnr = r.pnr)
FROM reservations r
JOIN trains t ON t.number = r.train_number
WHERE r.user_id = $1
ORDER BY r.created_at DESC
LIMIT $2`

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, selectBookingsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.PNR, &item.TrainNumber, &item.TrainName, &item.ServiceDate,
			&item.Class, &item.Quota, &item.FromStation, &item.ToStation,
			&item.Status, &item.FarePaise, &item.CreatedAt, &item.PassengerCount,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return items, nil
}
