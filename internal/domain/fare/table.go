package fare

import (
	"errors"

	"railbook/internal/domain/train"
)

var ErrFareNotFound = errors.New("no fare rule for class/quota")

// DistanceBand is an inclusive upper bound in kilometres. Fares are
// priced per band, not per kilometre, matching the published chart.
type DistanceBand struct {
	UpToKm int32
}

var bands = []DistanceBand{
	{UpToKm: 100},
	{UpToKm: 250},
	{UpToKm: 500},
	{UpToKm: 1000},
	{UpToKm: 2000},
	{UpToKm: 1 << 30}, // open-ended
}

// Table is the versioned static pricing chart. Base fares are rupees
// per class per distance band and must be non-decreasing along the
// bands; quota adjustments are flat percentages.
type Table struct {
	version string
	base    map[train.Class][]int64 // rupees, one entry per band
	quota   map[train.Quota]int64   // percent of base fare
	offered map[train.Class]map[train.Quota]bool
}

const CurrentVersion = "2024.2"

func NewTable() *Table {
	t := &Table{
		version: CurrentVersion,
		base: map[train.Class][]int64{
			train.ClassSleeper:    {140, 210, 305, 420, 650, 870},
			train.ClassThirdAC:    {370, 550, 800, 1100, 1700, 2250},
			train.ClassSecondAC:   {530, 800, 1160, 1600, 2450, 3300},
			train.ClassFirstAC:    {920, 1400, 2030, 2800, 4300, 5800},
			train.ClassChairCar:   {185, 280, 400, 550, 850, 1150},
			train.ClassSecondSeat: {60, 90, 130, 180, 280, 380},
		},
		quota: map[train.Quota]int64{
			train.QuotaGeneral:       100,
			train.QuotaTatkal:        130,
			train.QuotaLadies:        100,
			train.QuotaSeniorCitizen: 75,
		},
		offered: map[train.Class]map[train.Quota]bool{},
	}

	// Tatkal is not sold for AC First Class; every other class/quota
	// combination is priced.
	for class := range t.base {
		t.offered[class] = map[train.Quota]bool{
			train.QuotaGeneral:       true,
			train.QuotaTatkal:        class != train.ClassFirstAC,
			train.QuotaLadies:        true,
			train.QuotaSeniorCitizen: true,
		}
	}

	return t
}

func (t *Table) Version() string { return t.version }

// Offered reports whether the class/quota combination is sold at all.
func (t *Table) Offered(class train.Class, quota train.Quota) bool {
	return t.offered[class][quota]
}

// Fare looks up the price for a class/quota over a distance. It is a
// pure function over the chart: no side effects, deterministic, and
// non-decreasing in distance for a fixed class and quota.
func (t *Table) Fare(class train.Class, quota train.Quota, distanceKm int32) (Money, error) {
	baseRow, ok := t.base[class]
	if !ok {
		return Money{}, ErrFareNotFound
	}
	pct, ok := t.quota[quota]
	if !ok {
		return Money{}, ErrFareNotFound
	}
	if !t.offered[class][quota] {
		return Money{}, ErrFareNotFound
	}

	band := bandIndex(distanceKm)
	return FromRupees(baseRow[band]).MultiplyPercent(pct), nil
}

func bandIndex(distanceKm int32) int {
	for i, b := range bands {
		if distanceKm <= b.UpToKm {
			return i
		}
	}
	return len(bands) - 1
}
