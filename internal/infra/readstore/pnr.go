package readstore

import (
	"context"

	"railbook/internal/infra"
	"railbook/internal/infra/db"
	"railbook/internal/usecase/queries"
)

type PNRReadStore struct {
	db db.DBTX
}

func NewPNRReadStore(dbtx db.DBTX) *PNRReadStore {
	return &PNRReadStore{db: dbtx}
}

// queue_pos ranks active reservations of the same unit and tier by
// booking time; confirmed and cancelled rows get 0.
const selectPNRStatusSQL = `
SELECT r.pnr, r.train_number, t.name, r.service_date, r.class_code, r.quota_code,
       r.from_station, r.to_station, r.status, r.fare_paise, r.created_at, r.cancelled_at,
       CASE WHEN r.status IN ('RAC', 'WAITLISTED') THEN (
           SELECT count(*)::int FROM reservations q
           WHERE q.train_number = r.train_number AND q.service_date = r.service_date
             AND q.class_code = r.class_code AND q.quota_code = r.quota_code
             AND q.status = r.status
             AND (q.created_at, q.pnr) <= (r.created_at, r.pnr)
       ) ELSE 0 END AS queue_pos
FROM reservations r
JOIN trains t ON t.number = r.train_number
WHERE r.pnr = $1`

const selectPNRPassengersSQL = `
SELECT name, age, gender, berth_pref
FROM reservation_passengers
WHERE pnr = $1
ORDER BY seq`

func (s *PNRReadStore) FindStatusByPNR(ctx context.Context, pnr string) (*queries.PNRStatusView, error) {
	var view queries.PNRStatusView
	err := s.db.QueryRow(ctx, selectPNRStatusSQL, pnr).Scan(
		&view.PNR, &view.TrainNumber, &view.TrainName, &view.ServiceDate,
		&view.Class, &view.Quota, &view.FromStation, &view.ToStation,
		&view.Status, &view.FarePaise, &view.BookedAt, &view.CancelledAt,
		&view.QueuePos,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "pnr not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load pnr status", err)
	}

	rows, err := s.db.Query(ctx, selectPNRPassengersSQL, pnr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load pnr passengers", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p queries.PassengerView
		if err := rows.Scan(&p.Name, &p.Age, &p.Gender, &p.BerthPref); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan pnr passenger", err)
		}
		view.Passengers = append(view.Passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate pnr passengers", err)
	}

	return &view, nil
}
