package inventory

import (
	"fmt"
	"time"

	"railbook/internal/domain/train"
)

// Tier is a seat allocation tier, in precedence order.
type Tier string

const (
	TierConfirmed  Tier = "CONFIRMED"
	TierRAC        Tier = "RAC"
	TierWaitlisted Tier = "WAITLISTED"
)

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierConfirmed, TierRAC, TierWaitlisted:
		return true
	default:
		return false
	}
}

// UnitKey identifies one seat pool: a train on a service date, for one
// class and quota. All ledger serialization is scoped to this key.
type UnitKey struct {
	TrainNumber string
	ServiceDate time.Time // midnight UTC
	Class       train.Class
	Quota       train.Quota
}

func NewUnitKey(trainNumber string, serviceDate time.Time, class train.Class, quota train.Quota) UnitKey {
	y, m, d := serviceDate.UTC().Date()
	return UnitKey{
		TrainNumber: trainNumber,
		ServiceDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Class:       class,
		Quota:       quota,
	}
}

func (k UnitKey) DateString() string {
	return k.ServiceDate.Format("2006-01-02")
}

func (k UnitKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.TrainNumber, k.DateString(), k.Class, k.Quota)
}

// Counts are the occupied seats per tier.
type Counts struct {
	Confirmed int32
	RAC       int32
	Waitlist  int32
}

// Capacities are the fixed per-tier limits for a class/quota pool.
type Capacities struct {
	Confirmed int32
	RAC       int32
	Waitlist  int32
}

// Snapshot is a consistent point-in-time view of free seats per tier.
type Snapshot struct {
	ConfirmedAvailable int32
	RACAvailable       int32
	WaitlistAvailable  int32
}

// AvailabilityStatus is the quote-facing summary of a snapshot.
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "AVAILABLE"
	StatusRAC         AvailabilityStatus = "RAC"
	StatusWaitlist    AvailabilityStatus = "WAITLIST"
	StatusUnavailable AvailabilityStatus = "UNAVAILABLE"
)

// StatusFor reports which tier could hold a party of n, in precedence
// order, without reserving anything.
func (s Snapshot) StatusFor(n int32) AvailabilityStatus {
	switch {
	case s.ConfirmedAvailable >= n:
		return StatusAvailable
	case s.RACAvailable >= n:
		return StatusRAC
	case s.WaitlistAvailable >= n:
		return StatusWaitlist
	default:
		return StatusUnavailable
	}
}
