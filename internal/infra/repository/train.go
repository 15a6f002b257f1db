package repository

import (
	"context"

	"railbook/internal/domain/train"
	"railbook/internal/infra"
	"railbook/internal/infra/db"
)

type TrainRepository struct{}

func NewTrainRepository() *TrainRepository {
	return &TrainRepository{}
}

const upsertStationSQL = `
INSERT INTO stations (code, name, state)
VALUES ($1, $2, $3)
ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, state = EXCLUDED.state`

func (r *TrainRepository) UpsertStation(ctx context.Context, tx db.DBTX, s train.Station) error {
	if _, err := tx.Exec(ctx, upsertStationSQL, s.Code, s.Name, s.State); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to upsert station", err)
	}
	return nil
}

const upsertTrainSQL = `
INSERT INTO trains (number, name, running_days, classes)
VALUES ($1, $2, $3, $4)
ON CONFLICT (number) DO UPDATE
SET name = EXCLUDED.name, running_days = EXCLUDED.running_days, classes = EXCLUDED.classes`

const deleteStopsSQL = `DELETE FROM train_stops WHERE train_number = $1`

const insertStopSQL = `
INSERT INTO train_stops (
	train_number, seq, station_code, station_name,
	arrival_min, departure_min, distance_km, day
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Upsert replaces a train and its full route. The schedule import runs
// this inside one transaction so readers never see a partial route.
func (r *TrainRepository) Upsert(ctx context.Context, tx db.DBTX, t *train.Train) error {
	classes := make([]string, len(t.Classes()))
	for i, c := range t.Classes() {
		classes[i] = string(c)
	}

	if _, err := tx.Exec(ctx, upsertTrainSQL, t.Number(), t.Name(), int16(t.RunningDays()), classes); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to upsert train", err)
	}
	if _, err := tx.Exec(ctx, deleteStopsSQL, t.Number()); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to clear train stops", err)
	}

	for i, s := range t.Stops() {
		_, err := tx.Exec(ctx, insertStopSQL,
			t.Number(), int16(i+1), s.StationCode, s.StationName,
			s.ArrivalMin, s.DepartureMin, s.DistanceKm, s.Day,
		)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert train stop", err)
		}
	}
	return nil
}

const selectTrainSQL = `
SELECT number, name, running_days, classes FROM trains WHERE number = $1`

const selectStopsSQL = `
SELECT station_code, station_name, arrival_min, departure_min, distance_km, day
FROM train_stops
WHERE train_number = $1
ORDER BY seq`

func (r *TrainRepository) FindByNumber(ctx context.Context, tx db.DBTX, number string) (*train.Train, error) {
	var (
		gotNumber, name string
		runningDays     int16
		classCodes      []string
	)
	err := tx.QueryRow(ctx, selectTrainSQL, number).Scan(&gotNumber, &name, &runningDays, &classCodes)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "train not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find train", err)
	}

	rows, err := tx.Query(ctx, selectStopsSQL, number)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load train stops", err)
	}
	defer rows.Close()

	var stops []train.Stop
	for rows.Next() {
		var s train.Stop
		if err := rows.Scan(&s.StationCode, &s.StationName, &s.ArrivalMin, &s.DepartureMin, &s.DistanceKm, &s.Day); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan train stop", err)
		}
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate train stops", err)
	}

	classes := make([]train.Class, len(classCodes))
	for i, c := range classCodes {
		classes[i] = train.Class(c)
	}

	t, err := train.NewTrain(gotNumber, name, stops, train.RunningDays(runningDays), classes)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored train route is invalid", err)
	}
	return t, nil
}
