package inventory

import "railbook/internal/domain/train"

// CapacityPlan fixes the per-class, per-quota tier capacities used when
// a unit is lazily created for a service date. Confirmed seats per
// class follow the usual single-rake coach composition; each quota owns
// an independent share of them.
type CapacityPlan struct {
	confirmedByClass map[train.Class]int32
	quotaSharePct    map[train.Quota]int32
}

func DefaultCapacityPlan() *CapacityPlan {
	return &CapacityPlan{
		confirmedByClass: map[train.Class]int32{
			train.ClassSleeper:    72,
			train.ClassThirdAC:    64,
			train.ClassSecondAC:   46,
			train.ClassFirstAC:    24,
			train.ClassChairCar:   78,
			train.ClassSecondSeat: 108,
		},
		quotaSharePct: map[train.Quota]int32{
			train.QuotaGeneral:       70,
			train.QuotaTatkal:        20,
			train.QuotaLadies:        5,
			train.QuotaSeniorCitizen: 5,
		},
	}
}

// Override replaces the confirmed capacity for a class, e.g. for trains
// running doubled rakes. Unknown class codes are ignored.
func (p *CapacityPlan) Override(class train.Class, confirmed int32) {
	if _, ok := p.confirmedByClass[class]; ok && confirmed > 0 {
		p.confirmedByClass[class] = confirmed
	}
}

// For resolves the capacities of one class/quota pool. RAC berths exist
// only for the sleeper classes; the waitlist holds half the quota's
// confirmed pool, with a floor of ten.
func (p *CapacityPlan) For(class train.Class, quota train.Quota) Capacities {
	confirmedTotal := p.confirmedByClass[class]
	share := p.quotaSharePct[quota]

	confirmed := confirmedTotal * share / 100
	if confirmed < 1 && confirmedTotal > 0 && share > 0 {
		confirmed = 1
	}

	var rac int32
	switch class {
	case train.ClassSleeper, train.ClassThirdAC, train.ClassSecondAC:
		rac = (confirmed + 7) / 8
	}

	waitlist := confirmed / 2
	if waitlist < 10 {
		waitlist = 10
	}

	return Capacities{
		Confirmed: confirmed,
		RAC:       rac,
		Waitlist:  waitlist,
	}
}
