package commands

import (
	"context"
	"errors"
	"log/slog"

	"railbook/internal/domain/booking"
	"railbook/internal/domain/fare"
	"railbook/internal/domain/inventory"
	"railbook/internal/domain/train"
	"railbook/internal/infra"
	"railbook/internal/infra/db"
	"railbook/internal/infra/notification"
	"railbook/internal/infra/quotestore"
	"railbook/internal/infra/uow"
	"railbook/internal/pkg/clock"
	"railbook/internal/pkg/errs"
	"railbook/internal/pkg/pnr"

	"github.com/google/uuid"
)

var (
	ErrQuoteExpired           = errs.New("quote token expired or unknown")
	ErrQuoteAlreadyConsumed   = errs.New("quote token was already consumed")
	ErrQuoteOwnerMismatch     = errs.New("quote belongs to another user")
	ErrPassengerCountMismatch = errs.New("passenger list does not match the quoted party size")
	ErrInventoryExhausted     = errs.New("no seats left in any tier")
	ErrBookingTimeout         = errs.New("booking timed out waiting for the seat pool")
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrNotReservationOwner    = errs.New("reservation belongs to another user")
	ErrAlreadyCancelled       = errs.New("reservation is already cancelled")
	ErrPNRGenerationExhausted = errs.New("could not generate a unique pnr")
)

// maxPNRAttempts bounds collision retries; each retry reruns the whole
// booking transaction with a fresh PNR.
const maxPNRAttempts = 3

type PassengerInput struct {
	Name      string
	Age       int16
	Gender    string
	BerthPref string
}

type BookResult struct {
	PNR       string
	Status    string
	FarePaise int64
}

type CancelResult struct {
	PNR          string
	PromotedPNRs []string
}

type BookingCommands interface {
	Book(ctx context.Context, userID uuid.UUID, quoteToken uuid.UUID, passengers []PassengerInput) (*BookResult, error)
	Cancel(ctx context.Context, userID uuid.UUID, pnrCode string) (*CancelResult, error)
}

type bookingUseCaseImpl struct {
	uow          uow.UnitOfWork
	inventory    InventoryRepository
	reservations ReservationRepository
	quotes       quotestore.Store
	events       notification.EventPublisher
	clock        clock.Clock
}

func NewBookingUseCase(
	u uow.UnitOfWork,
	inv InventoryRepository,
	reservations ReservationRepository,
	quotes quotestore.Store,
	events notification.EventPublisher,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:          u,
		inventory:    inv,
		reservations: reservations,
		quotes:       quotes,
		events:       events,
		clock:        clk,
	}
}

// Book redeems a quote token into a durable reservation. The token is
// consumed exactly once up front; if the transaction then fails the
// quote is restored with its remaining TTL so the client can retry.
// The whole party lands in a single tier or not at all.
func (b *bookingUseCaseImpl) Book(ctx context.Context, userID uuid.UUID, quoteToken uuid.UUID, passengers []PassengerInput) (*BookResult, error) {
	rec, err := b.quotes.Consume(ctx, quoteToken)
	if err != nil {
		switch {
		case errors.Is(err, quotestore.ErrQuoteNotFound):
			return nil, errs.Mark(err, ErrQuoteExpired)
		case errors.Is(err, quotestore.ErrQuoteConsumed):
			return nil, errs.Mark(err, ErrQuoteAlreadyConsumed)
		default:
			return nil, err
		}
	}

	result, err := b.bookConsumed(ctx, userID, rec, passengers)
	if err != nil {
		if restoreErr := b.quotes.Restore(ctx, rec); restoreErr != nil {
			slog.Warn("failed to restore quote after booking failure",
				"token", rec.Token.String(), "error", restoreErr.Error())
		}
		return nil, err
	}
	return result, nil
}

func (b *bookingUseCaseImpl) bookConsumed(ctx context.Context, userID uuid.UUID, rec *quotestore.Record, inputs []PassengerInput) (*BookResult, error) {
	if rec.UserID != userID {
		return nil, ErrQuoteOwnerMismatch
	}
	if int32(len(inputs)) != rec.Passengers {
		return nil, ErrPassengerCountMismatch
	}

	passengers := make([]booking.Passenger, 0, len(inputs))
	for _, in := range inputs {
		p, err := booking.NewPassenger(in.Name, in.Age, booking.Gender(in.Gender), in.BerthPref)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}

	key := inventory.NewUnitKey(rec.TrainNumber, rec.ServiceDate,
		train.Class(rec.Class), train.Quota(rec.Quota))

	for attempt := 0; attempt < maxPNRAttempts; attempt++ {
		code := pnr.Generate()

		var res *booking.Reservation
		err := b.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
			unit, err := b.inventory.LockForUpdate(ctx, tx, key)
			if err != nil {
				return err
			}

			tier, err := unit.Reserve(rec.Passengers)
			if err != nil {
				return err
			}

			r, err := booking.NewReservation(code, key, rec.FromStation, rec.ToStation,
				passengers, fare.NewMoney(rec.FarePaise), userID, b.clock.Now())
			if err != nil {
				return err
			}
			if err := r.Assign(tier); err != nil {
				return err
			}

			if err := b.reservations.Create(ctx, tx, r); err != nil {
				return err
			}
			if err := b.inventory.UpdateCounts(ctx, tx, unit); err != nil {
				return err
			}
			res = r
			return nil
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				slog.Warn("pnr collision, retrying booking",
					"attempt", attempt+1, "pnr", code)
				continue
			}
			return nil, translateBookingErr(err)
		}

		if err := b.events.BookingConfirmed(ctx, res); err != nil {
			// Events are advisory; a broker outage must not void bookings.
			slog.Warn("failed to publish booking event",
				"pnr", res.PNR(), "error", err.Error())
		}

		return &BookResult{
			PNR:       res.PNR(),
			Status:    res.Status().String(),
			FarePaise: res.Fare().Paise(),
		}, nil
	}

	return nil, ErrPNRGenerationExhausted
}

// Cancel releases the reservation's seats and runs the FIFO promotion
// cascade inside the same per-key serialization as booking.
func (b *bookingUseCaseImpl) Cancel(ctx context.Context, userID uuid.UUID, pnrCode string) (*CancelResult, error) {
	if !pnr.IsValid(pnrCode) {
		return nil, ErrReservationNotFound
	}

	var (
		res      *booking.Reservation
		promoted []string
	)
	err := b.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		promoted = nil

		r, err := b.reservations.FindByPNR(ctx, tx, pnrCode, true)
		if err != nil {
			return err
		}
		if r.UserID() != userID {
			return ErrNotReservationOwner
		}

		tier, ok := r.Status().Tier()
		if !ok {
			return booking.ErrAlreadyCancelled
		}

		unit, err := b.inventory.LockForUpdate(ctx, tx, r.UnitKey())
		if err != nil {
			return err
		}

		now := b.clock.Now()
		if err := r.Cancel(now); err != nil {
			return err
		}
		if err := unit.Release(tier, r.PassengerCount()); err != nil {
			return err
		}
		if err := b.reservations.MarkCancelled(ctx, tx, pnrCode, now); err != nil {
			return err
		}

		racQueue, err := b.reservations.QueueFor(ctx, tx, r.UnitKey(), inventory.TierRAC)
		if err != nil {
			return err
		}
		waitQueue, err := b.reservations.QueueFor(ctx, tx, r.UnitKey(), inventory.TierWaitlisted)
		if err != nil {
			return err
		}

		for _, p := range inventory.PlanPromotions(unit, racQueue, waitQueue) {
			pr, err := b.reservations.FindByPNR(ctx, tx, p.PNR, false)
			if err != nil {
				return err
			}
			if err := pr.Promote(p.To); err != nil {
				return err
			}
			if err := b.reservations.UpdateStatus(ctx, tx, p.PNR, pr.Status()); err != nil {
				return err
			}
			promoted = append(promoted, p.PNR)
		}

		if err := b.inventory.UpdateCounts(ctx, tx, unit); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, translateBookingErr(err)
	}

	if err := b.events.BookingCancelled(ctx, res, promoted); err != nil {
		slog.Warn("failed to publish cancellation event",
			"pnr", res.PNR(), "error", err.Error())
	}

	return &CancelResult{PNR: res.PNR(), PromotedPNRs: promoted}, nil
}

func translateBookingErr(err error) error {
	switch {
	case errors.Is(err, inventory.ErrInventoryExhausted):
		return errs.Mark(err, ErrInventoryExhausted)
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return errs.Mark(err, ErrAlreadyCancelled)
	case infra.IsKind(err, infra.KindLockTimeout):
		return errs.Mark(err, ErrBookingTimeout)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	default:
		return err
	}
}
