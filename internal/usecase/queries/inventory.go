package queries

import (
	"context"
	"errors"
	"slices"
	"time"

	"railbook/internal/domain/fare"
	"railbook/internal/domain/inventory"
	"railbook/internal/domain/train"
	"railbook/internal/infra"
)

var (
	ErrInvalidClass    = errors.New("unknown travel class")
	ErrInvalidQuota    = errors.New("unknown quota")
	ErrClassQuota      = errors.New("quota is not offered for this class")
	ErrClassNotOffered = errors.New("class is not offered on this train")
	ErrTrainNotRunning = errors.New("train does not run on the requested date")
)

type AvailabilityQueries interface {
	Availability(ctx context.Context, trainNumber string, date time.Time, class train.Class, quota train.Quota) (*AvailabilityView, error)
}

type AvailabilityViewRepo interface {
	FindSnapshot(ctx context.Context, key inventory.UnitKey) (inventory.Snapshot, error)
}

type availabilityQueriesImpl struct {
	repo   AvailabilityViewRepo
	trains TrainViewRepo
	caps   *inventory.CapacityPlan
	fares  *fare.Table
}

func NewAvailabilityQueries(repo AvailabilityViewRepo, trains TrainViewRepo, caps *inventory.CapacityPlan, fares *fare.Table) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, trains: trains, caps: caps, fares: fares}
}

func (q *availabilityQueriesImpl) Availability(ctx context.Context, trainNumber string, date time.Time, class train.Class, quota train.Quota) (*AvailabilityView, error) {
	if !class.IsValid() {
		return nil, ErrInvalidClass
	}
	if !quota.IsValid() {
		return nil, ErrInvalidQuota
	}
	if !q.fares.Offered(class, quota) {
		return nil, ErrClassQuota
	}

	// A unit row only materializes on the first quote, so an absent row
	// alone says nothing about the train. Validate the journey against
	// the timetable before reporting anything.
	view, err := q.trains.FindByNumber(ctx, trainNumber)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(view.Classes, class.String()) {
		return nil, ErrClassNotOffered
	}
	if !slices.Contains(view.RunningDays, date.UTC().Weekday().String()[:3]) {
		return nil, ErrTrainNotRunning
	}

	key := inventory.NewUnitKey(trainNumber, date, class, quota)

	snap, err := q.repo.FindSnapshot(ctx, key)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		// No bookings yet for this key: the pool is untouched, so
		// availability equals the full capacity plan.
		caps := q.caps.For(class, quota)
		snap = inventory.Snapshot{
			ConfirmedAvailable: caps.Confirmed,
			RACAvailable:       caps.RAC,
			WaitlistAvailable:  caps.Waitlist,
		}
	}

	return &AvailabilityView{
		TrainNumber:        key.TrainNumber,
		ServiceDate:        key.ServiceDate,
		Class:              class.String(),
		Quota:              quota.String(),
		Status:             string(snap.StatusFor(1)),
		ConfirmedAvailable: snap.ConfirmedAvailable,
		RACAvailable:       snap.RACAvailable,
		WaitlistAvailable:  snap.WaitlistAvailable,
	}, nil
}
