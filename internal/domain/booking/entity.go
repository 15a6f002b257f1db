package booking

import (
	"errors"
	"strings"
	"time"

	"railbook/internal/domain/fare"
	"railbook/internal/domain/inventory"

	"github.com/google/uuid"
)

const MaxPassengers = 6

var (
	ErrNoPassengers      = errors.New("at least one passenger is required")
	ErrTooManyPassengers = errors.New("a booking holds at most six passengers")
	ErrInvalidPassenger  = errors.New("invalid passenger details")
	ErrNotActive         = errors.New("reservation is not active")
	ErrInvalidTransition = errors.New("invalid reservation state transition")
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
)

// Passenger is one traveller on a reservation.
type Passenger struct {
	Name      string
	Age       int16
	Gender    Gender
	BerthPref string
}

func NewPassenger(name string, age int16, gender Gender, berthPref string) (Passenger, error) {
	name = strings.TrimSpace(name)
	if name == "" || age <= 0 || age > 120 || !gender.IsValid() {
		return Passenger{}, ErrInvalidPassenger
	}
	return Passenger{
		Name:      name,
		Age:       age,
		Gender:    gender,
		BerthPref: strings.TrimSpace(berthPref),
	}, nil
}

// Reservation is the durable, append-only record of a booking. The
// inventory unit it debits is referenced by key only; seat counts live
// solely in the ledger.
type Reservation struct {
	pnr        string
	unitKey    inventory.UnitKey
	fromCode   string
	toCode     string
	passengers []Passenger
	status     Status
	fare       fare.Money
	userID     uuid.UUID
	createdAt  time.Time
	cancelled  *time.Time
}

// NewReservation assembles a PENDING reservation. It becomes visible
// only after Assign moves it to the tier the ledger allocated.
func NewReservation(
	pnr string,
	key inventory.UnitKey,
	fromCode, toCode string,
	passengers []Passenger,
	charged fare.Money,
	userID uuid.UUID,
	createdAt time.Time,
) (*Reservation, error) {
	if len(passengers) == 0 {
		return nil, ErrNoPassengers
	}
	if len(passengers) > MaxPassengers {
		return nil, ErrTooManyPassengers
	}

	return &Reservation{
		pnr:        pnr,
		unitKey:    key,
		fromCode:   fromCode,
		toCode:     toCode,
		passengers: passengers,
		status:     StatusPending,
		fare:       charged,
		userID:     userID,
		createdAt:  createdAt,
	}, nil
}

func ReconstructReservation(
	pnr string,
	key inventory.UnitKey,
	fromCode, toCode string,
	passengers []Passenger,
	status Status,
	charged fare.Money,
	userID uuid.UUID,
	createdAt time.Time,
	cancelledAt *time.Time,
) *Reservation {
	return &Reservation{
		pnr:        pnr,
		unitKey:    key,
		fromCode:   fromCode,
		toCode:     toCode,
		passengers: passengers,
		status:     status,
		fare:       charged,
		userID:     userID,
		createdAt:  createdAt,
		cancelled:  cancelledAt,
	}
}

// Assign moves a PENDING reservation into the tier the ledger chose.
func (r *Reservation) Assign(tier inventory.Tier) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	next := StatusForTier(tier)
	if next == StatusPending {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

// Cancel is the only transition out of an active state and is terminal.
func (r *Reservation) Cancel(at time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !r.status.IsActive() {
		return ErrNotActive
	}
	r.status = StatusCancelled
	r.cancelled = &at
	return nil
}

// Promote lifts an active reservation one tier up during the FIFO
// promotion cascade.
func (r *Reservation) Promote(to inventory.Tier) error {
	if !r.status.IsActive() {
		return ErrNotActive
	}
	next := StatusForTier(to)
	switch {
	case r.status == StatusWaitlisted && (next == StatusRAC || next == StatusConfirmed):
	case r.status == StatusRAC && next == StatusConfirmed:
	default:
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) PNR() string                { return r.pnr }
func (r *Reservation) UnitKey() inventory.UnitKey { return r.unitKey }
func (r *Reservation) FromCode() string           { return r.fromCode }
func (r *Reservation) ToCode() string             { return r.toCode }
func (r *Reservation) Passengers() []Passenger    { return r.passengers }
func (r *Reservation) PassengerCount() int32      { return int32(len(r.passengers)) }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) Fare() fare.Money           { return r.fare }
func (r *Reservation) UserID() uuid.UUID          { return r.userID }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) CancelledAt() *time.Time    { return r.cancelled }
