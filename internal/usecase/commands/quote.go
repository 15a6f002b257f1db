package commands

import (
	"context"
	"errors"
	"time"

	"railbook/internal/domain/booking"
	"railbook/internal/domain/fare"
	"railbook/internal/domain/inventory"
	"railbook/internal/domain/train"
	"railbook/internal/infra"
	"railbook/internal/infra/db"
	"railbook/internal/infra/quotestore"
	"railbook/internal/infra/uow"
	"railbook/internal/pkg/clock"
	"railbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTrainNotFound     = errs.New("train not found")
	ErrTrainNotRunning   = errs.New("train does not run on the requested date")
	ErrClassNotOffered   = errs.New("class is not offered on this train")
	ErrInvalidSegment    = errs.New("invalid journey segment")
	ErrInvalidClassQuota = errs.New("invalid class or quota code")
	ErrInvalidParty      = errs.New("passenger count must be between 1 and 6")
	ErrDateInPast        = errs.New("service date is in the past")
)

type CreateQuoteInput struct {
	TrainNumber string
	ServiceDate time.Time
	Class       train.Class
	Quota       train.Quota
	FromStation string
	ToStation   string
	Passengers  int32
}

type QuoteResult struct {
	Token        uuid.UUID
	TrainNumber  string
	ServiceDate  time.Time
	Class        string
	Quota        string
	FromStation  string
	ToStation    string
	DistanceKm   int32
	Passengers   int32
	FarePaise    int64
	FareVersion  string
	Availability string
	ExpiresAt    time.Time
}

type QuoteCommands interface {
	CreateQuote(ctx context.Context, userID uuid.UUID, in CreateQuoteInput) (*QuoteResult, error)
}

type quoteUseCaseImpl struct {
	uow       uow.UnitOfWork
	trains    TrainRepository
	inventory InventoryRepository
	quotes    quotestore.Store
	fares     *fare.Table
	caps      *inventory.CapacityPlan
	ttl       time.Duration
	clock     clock.Clock
}

func NewQuoteUseCase(
	u uow.UnitOfWork,
	trains TrainRepository,
	inv InventoryRepository,
	quotes quotestore.Store,
	fares *fare.Table,
	caps *inventory.CapacityPlan,
	ttl time.Duration,
	clk clock.Clock,
) QuoteCommands {
	return &quoteUseCaseImpl{
		uow:       u,
		trains:    trains,
		inventory: inv,
		quotes:    quotes,
		fares:     fares,
		caps:      caps,
		ttl:       ttl,
		clock:     clk,
	}
}

// CreateQuote validates the journey, prices it and captures an
// availability snapshot behind a one-shot token. Inventory counters are
// never debited here; the first quote for a unit only materializes its
// row.
func (q *quoteUseCaseImpl) CreateQuote(ctx context.Context, userID uuid.UUID, in CreateQuoteInput) (*QuoteResult, error) {
	if !in.Class.IsValid() || !in.Quota.IsValid() || !q.fares.Offered(in.Class, in.Quota) {
		return nil, ErrInvalidClassQuota
	}
	if in.Passengers <= 0 || in.Passengers > booking.MaxPassengers {
		return nil, ErrInvalidParty
	}

	serviceDate := clock.Midnight(in.ServiceDate)
	if serviceDate.Before(clock.Today(q.clock)) {
		return nil, ErrDateInPast
	}

	var (
		segment train.Segment
		price   fare.Money
		snap    inventory.Snapshot
	)
	err := q.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		t, err := q.trains.FindByNumber(ctx, tx, in.TrainNumber)
		if err != nil {
			return err
		}
		if !t.RunsOn(serviceDate) {
			return ErrTrainNotRunning
		}
		if !t.Offers(in.Class) {
			return ErrClassNotOffered
		}

		segment, err = t.Segment(in.FromStation, in.ToStation)
		if err != nil {
			return errs.Mark(err, ErrInvalidSegment)
		}

		price, err = q.fares.Fare(in.Class, in.Quota, segment.DistanceKm)
		if err != nil {
			return err
		}

		key := inventory.NewUnitKey(in.TrainNumber, serviceDate, in.Class, in.Quota)
		unit, err := q.inventory.GetOrCreate(ctx, tx, key, q.caps.For(in.Class, in.Quota))
		if err != nil {
			return err
		}
		snap = unit.Snapshot()
		return nil
	})
	if err != nil {
		return nil, translateQuoteErr(err)
	}

	now := q.clock.Now()
	result := &QuoteResult{
		Token:        uuid.New(),
		TrainNumber:  in.TrainNumber,
		ServiceDate:  serviceDate,
		Class:        in.Class.String(),
		Quota:        in.Quota.String(),
		FromStation:  in.FromStation,
		ToStation:    in.ToStation,
		DistanceKm:   segment.DistanceKm,
		Passengers:   in.Passengers,
		FarePaise:    price.Paise(),
		FareVersion:  q.fares.Version(),
		Availability: string(snap.StatusFor(in.Passengers)),
		ExpiresAt:    now.Add(q.ttl),
	}

	rec := &quotestore.Record{
		Token:        result.Token,
		TrainNumber:  result.TrainNumber,
		ServiceDate:  result.ServiceDate,
		Class:        result.Class,
		Quota:        result.Quota,
		FromStation:  result.FromStation,
		ToStation:    result.ToStation,
		Passengers:   result.Passengers,
		FarePaise:    result.FarePaise,
		FareVersion:  result.FareVersion,
		Availability: result.Availability,
		UserID:       userID,
		ExpiresAt:    result.ExpiresAt,
	}
	if err := q.quotes.Save(ctx, rec); err != nil {
		return nil, err
	}

	return result, nil
}

func translateQuoteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrTrainNotFound)
	case errors.Is(err, train.ErrUnknownStation),
		errors.Is(err, train.ErrInvalidSegment):
		return errs.Mark(err, ErrInvalidSegment)
	case errors.Is(err, train.ErrClassNotOffered):
		return errs.Mark(err, ErrClassNotOffered)
	default:
		return err
	}
}
