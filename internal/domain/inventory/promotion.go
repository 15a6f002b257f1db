package inventory

// QueueEntry is an active reservation waiting in a tier, ordered
// oldest-first by creation time.
type QueueEntry struct {
	PNR        string
	Passengers int32
}

// Promotion records one reservation moving up a tier.
type Promotion struct {
	PNR  string
	From Tier
	To   Tier
}

// PlanPromotions computes the deterministic FIFO promotion cascade
// after seats have been released. racQueue and waitQueue are the active
// reservations of the unit in those tiers, oldest first. The unit's
// counts are updated to reflect the plan.
//
// Promotion is strictly oldest-first within a tier: if the head of a
// queue does not fit in the freed capacity, nothing behind it is
// considered. Freed confirmed seats pull from RAC (or directly from the
// waitlist when no RAC reservation waits); freed RAC seats pull from
// the waitlist.
func PlanPromotions(u *Unit, racQueue, waitQueue []QueueEntry) []Promotion {
	var plan []Promotion

	for {
		snap := u.Snapshot()

		if len(racQueue) > 0 && racQueue[0].Passengers <= snap.ConfirmedAvailable {
			head := racQueue[0]
			if err := u.move(TierRAC, TierConfirmed, head.Passengers); err != nil {
				return plan
			}
			plan = append(plan, Promotion{PNR: head.PNR, From: TierRAC, To: TierConfirmed})
			racQueue = racQueue[1:]
			continue
		}

		if len(racQueue) == 0 && len(waitQueue) > 0 && waitQueue[0].Passengers <= snap.ConfirmedAvailable {
			head := waitQueue[0]
			if err := u.move(TierWaitlisted, TierConfirmed, head.Passengers); err != nil {
				return plan
			}
			plan = append(plan, Promotion{PNR: head.PNR, From: TierWaitlisted, To: TierConfirmed})
			waitQueue = waitQueue[1:]
			continue
		}

		if len(waitQueue) > 0 && waitQueue[0].Passengers <= snap.RACAvailable {
			head := waitQueue[0]
			if err := u.move(TierWaitlisted, TierRAC, head.Passengers); err != nil {
				return plan
			}
			plan = append(plan, Promotion{PNR: head.PNR, From: TierWaitlisted, To: TierRAC})
			waitQueue = waitQueue[1:]
			continue
		}

		return plan
	}
}
