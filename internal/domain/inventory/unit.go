package inventory

import "errors"

var (
	ErrInventoryExhausted = errors.New("all tiers exhausted for the requested party size")
	ErrCapacityExceeded   = errors.New("tier count would exceed capacity")
	ErrNegativeCount      = errors.New("tier count would go negative")
	ErrInvalidParty       = errors.New("passenger count must be positive")
)

// Unit is the authoritative seat pool for one UnitKey. The three
// counters are only ever mutated through Reserve and Release, which the
// infrastructure layer runs under a per-key row lock.
type Unit struct {
	Key        UnitKey
	Counts     Counts
	Capacities Capacities
}

func NewUnit(key UnitKey, caps Capacities) *Unit {
	return &Unit{Key: key, Capacities: caps}
}

func (u *Unit) Snapshot() Snapshot {
	return Snapshot{
		ConfirmedAvailable: u.Capacities.Confirmed - u.Counts.Confirmed,
		RACAvailable:       u.Capacities.RAC - u.Counts.RAC,
		WaitlistAvailable:  u.Capacities.Waitlist - u.Counts.Waitlist,
	}
}

// Reserve allocates n seats into the best tier that can hold the whole
// party: confirmed, then RAC, then waitlist. A party is never split
// across tiers; if no tier fits, nothing changes and
// ErrInventoryExhausted is returned.
func (u *Unit) Reserve(n int32) (Tier, error) {
	if n <= 0 {
		return "", ErrInvalidParty
	}

	switch u.Snapshot().StatusFor(n) {
	case StatusAvailable:
		u.Counts.Confirmed += n
		return TierConfirmed, nil
	case StatusRAC:
		u.Counts.RAC += n
		return TierRAC, nil
	case StatusWaitlist:
		u.Counts.Waitlist += n
		return TierWaitlisted, nil
	default:
		return "", ErrInventoryExhausted
	}
}

// Release frees n seats from a tier, as happens on cancellation.
func (u *Unit) Release(tier Tier, n int32) error {
	if n <= 0 {
		return ErrInvalidParty
	}

	switch tier {
	case TierConfirmed:
		if u.Counts.Confirmed-n < 0 {
			return ErrNegativeCount
		}
		u.Counts.Confirmed -= n
	case TierRAC:
		if u.Counts.RAC-n < 0 {
			return ErrNegativeCount
		}
		u.Counts.RAC -= n
	case TierWaitlisted:
		if u.Counts.Waitlist-n < 0 {
			return ErrNegativeCount
		}
		u.Counts.Waitlist -= n
	default:
		return ErrNegativeCount
	}
	return nil
}

// move shifts n seats between tiers during promotion.
func (u *Unit) move(from, to Tier, n int32) error {
	if err := u.Release(from, n); err != nil {
		return err
	}
	switch to {
	case TierConfirmed:
		if u.Counts.Confirmed+n > u.Capacities.Confirmed {
			return ErrCapacityExceeded
		}
		u.Counts.Confirmed += n
	case TierRAC:
		if u.Counts.RAC+n > u.Capacities.RAC {
			return ErrCapacityExceeded
		}
		u.Counts.RAC += n
	default:
		return ErrCapacityExceeded
	}
	return nil
}
