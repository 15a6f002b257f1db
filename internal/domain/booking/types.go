package booking

import "railbook/internal/domain/inventory"

// Status is the externally visible reservation state. PENDING exists
// only inside the booking transaction and is never persisted.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusRAC        Status = "RAC"
	StatusWaitlisted Status = "WAITLISTED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsActive() bool {
	switch s {
	case StatusConfirmed, StatusRAC, StatusWaitlisted:
		return true
	default:
		return false
	}
}

func StatusForTier(tier inventory.Tier) Status {
	switch tier {
	case inventory.TierConfirmed:
		return StatusConfirmed
	case inventory.TierRAC:
		return StatusRAC
	case inventory.TierWaitlisted:
		return StatusWaitlisted
	default:
		return StatusPending
	}
}

func (s Status) Tier() (inventory.Tier, bool) {
	switch s {
	case StatusConfirmed:
		return inventory.TierConfirmed, true
	case StatusRAC:
		return inventory.TierRAC, true
	case StatusWaitlisted:
		return inventory.TierWaitlisted, true
	default:
		return "", false
	}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}
