package schedule

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"

	"railbook/internal/infra/db"
	"railbook/internal/infra/repository"
	"railbook/internal/infra/uow"
	"railbook/internal/pkg/errs"
)

//go:embed seed/stations.csv
var stationsCSV []byte

//go:embed seed/trains.csv
var trainsCSV []byte

//go:embed seed/routes.csv
var routesCSV []byte

// Importer loads the embedded timetable into the database at startup.
// Upserts make it safe to run on every boot.
type Importer struct {
	uow    uow.UnitOfWork
	trains *repository.TrainRepository
}

func NewImporter(u uow.UnitOfWork, trains *repository.TrainRepository) *Importer {
	return &Importer{uow: u, trains: trains}
}

func (i *Importer) Run(ctx context.Context) error {
	stations, err := ParseStations(bytes.NewReader(stationsCSV))
	if err != nil {
		return errs.Wrap(err, "failed to parse station feed")
	}
	trains, err := ParseTrains(bytes.NewReader(trainsCSV), bytes.NewReader(routesCSV))
	if err != nil {
		return errs.Wrap(err, "failed to parse timetable feed")
	}

	err = i.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, s := range stations {
			if err := i.trains.UpsertStation(ctx, tx, s); err != nil {
				return err
			}
		}
		for _, t := range trains {
			if err := i.trains.Upsert(ctx, tx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("timetable imported", "stations", len(stations), "trains", len(trains))
	return nil
}
