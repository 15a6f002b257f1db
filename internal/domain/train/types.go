package train

import "time"

// Class is a travel class code as printed on Indian Railways tickets.
type Class string

const (
	ClassSleeper    Class = "SL"
	ClassThirdAC    Class = "3A"
	ClassSecondAC   Class = "2A"
	ClassFirstAC    Class = "1A"
	ClassChairCar   Class = "CC"
	ClassSecondSeat Class = "2S"
)

func (c Class) String() string { return string(c) }

func (c Class) IsValid() bool {
	switch c {
	case ClassSleeper, ClassThirdAC, ClassSecondAC, ClassFirstAC, ClassChairCar, ClassSecondSeat:
		return true
	default:
		return false
	}
}

// Quota is a reserved sub-pool of seats with independent capacity.
type Quota string

const (
	QuotaGeneral       Quota = "GN"
	QuotaTatkal        Quota = "TQ"
	QuotaLadies        Quota = "LD"
	QuotaSeniorCitizen Quota = "SS"
)

func (q Quota) String() string { return string(q) }

func (q Quota) IsValid() bool {
	switch q {
	case QuotaGeneral, QuotaTatkal, QuotaLadies, QuotaSeniorCitizen:
		return true
	default:
		return false
	}
}

// RunningDays is a weekday bitmask, bit position = time.Weekday
// (Sunday = bit 0).
type RunningDays uint8

const RunsDaily RunningDays = 0x7F

func NewRunningDays(days ...time.Weekday) RunningDays {
	var mask RunningDays
	for _, d := range days {
		mask |= 1 << uint(d)
	}
	return mask
}

func (r RunningDays) RunsOn(day time.Weekday) bool {
	return r&(1<<uint(day)) != 0
}

// Strings renders the running days as three-letter weekday codes in
// Sunday-first order.
func (r RunningDays) Strings() []string {
	var days []string
	for d := time.Sunday; d <= time.Saturday; d++ {
		if r.RunsOn(d) {
			days = append(days, d.String()[:3])
		}
	}
	return days
}
