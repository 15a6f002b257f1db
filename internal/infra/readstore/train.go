package readstore

import (
	"context"

	"railbook/internal/domain/train"
	"railbook/internal/infra"
	"railbook/internal/infra/db"
	"railbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type TrainReadStore struct {
	db db.DBTX
}

func NewTrainReadStore(dbtx db.DBTX) *TrainReadStore {
	return &TrainReadStore{db: dbtx}
}

const selectTrainViewSQL = `
SELECT number, name, running_days, classes FROM trains WHERE number = $1`

const selectTrainStopsSQL = `
SELECT station_code, station_name, arrival_min, departure_min, distance_km, day
FROM train_stops
WHERE train_number = $1
ORDER BY seq`

func (s *TrainReadStore) FindByNumber(ctx context.Context, number string) (*queries.TrainView, error) {
	var (
		view        queries.TrainView
		runningDays int16
	)
	err := s.db.QueryRow(ctx, selectTrainViewSQL, number).Scan(
		&view.Number, &view.Name, &runningDays, &view.Classes,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "train not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load train", err)
	}
	view.RunningDays = train.RunningDays(runningDays).Strings()

	rows, err := s.db.Query(ctx, selectTrainStopsSQL, number)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load train stops", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stop queries.StopView
		if err := rows.Scan(&stop.StationCode, &stop.StationName, &stop.ArrivalMin, &stop.DepartureMin, &stop.DistanceKm, &stop.Day); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan train stop", err)
		}
		view.Stops = append(view.Stops, stop)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate train stops", err)
	}

	return &view, nil
}

const selectAllTrainsSQL = `
SELECT t.number, t.name, t.running_days, t.classes,
       (SELECT station_name FROM train_stops WHERE train_number = t.number ORDER BY seq LIMIT 1),
       (SELECT station_name FROM train_stops WHERE train_number = t.number ORDER BY seq DESC LIMIT 1)
FROM trains t
ORDER BY t.number`

func (s *TrainReadStore) FindAll(ctx context.Context) ([]*queries.TrainListItem, error) {
	rows, err := s.db.Query(ctx, selectAllTrainsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list trains", err)
	}
	defer rows.Close()

	return scanTrainListItems(rows)
}

// A train serves the pair when both stations are on its route and the
// origin stop comes first.
const selectServingTrainsSQL = `
SELECT t.number, t.name, t.running_days, t.classes,
       (SELECT station_name FROM train_stops WHERE train_number = t.number ORDER BY seq LIMIT 1),
       (SELECT station_name FROM train_stops WHERE train_number = t.number ORDER BY seq DESC LIMIT 1)
FROM trains t
JOIN train_stops f ON f.train_number = t.number AND f.station_code = $1
JOIN train_stops d ON d.train_number = t.number AND d.station_code = $2
WHERE f.seq < d.seq
ORDER BY t.number`

func (s *TrainReadStore) FindServing(ctx context.Context, from, to string) ([]*queries.TrainListItem, error) {
	rows, err := s.db.Query(ctx, selectServingTrainsSQL, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to search trains", err)
	}
	defer rows.Close()

	return scanTrainListItems(rows)
}

func scanTrainListItems(rows pgx.Rows) ([]*queries.TrainListItem, error) {
	items := []*queries.TrainListItem{}
	for rows.Next() {
		var (
			item        queries.TrainListItem
			runningDays int16
		)
		err := rows.Scan(&item.Number, &item.Name, &runningDays, &item.Classes, &item.Origin, &item.Terminus)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan train row", err)
		}
		item.RunningDays = train.RunningDays(runningDays).Strings()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate trains", err)
	}
	return items, nil
}

const searchStationsSQL = `
SELECT code, name, state
FROM stations
WHERE code ILIKE $1 OR name ILIKE '%' || $2 || '%'
ORDER BY name
LIMIT $3`

func (s *TrainReadStore) FindStations(ctx context.Context, query string, limit int32) ([]*queries.StationView, error) {
	rows, err := s.db.Query(ctx, searchStationsSQL, query, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to search stations", err)
	}
	defer rows.Close()

	items := []*queries.StationView{}
	for rows.Next() {
		var station queries.StationView
		if err := rows.Scan(&station.Code, &station.Name, &station.State); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan station row", err)
		}
		items = append(items, &station)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate stations", err)
	}
	return items, nil
}
