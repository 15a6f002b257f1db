//go:build unit

package inventory_test

import (
	"testing"

	"railbook/internal/domain/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(pnr string, n int32) inventory.QueueEntry {
	return inventory.QueueEntry{PNR: pnr, Passengers: n}
}

func TestPlanPromotions(t *testing.T) {
	t.Run("cancellation cascade through every tier", func(t *testing.T) {
		// Tiny pool: 2 confirmed, 1 RAC, 1 waitlist. Four single
		// passengers fill it, then the first confirmed one cancels.
		u := newUnit(2, 1, 1)
		for range 4 {
			_, err := u.Reserve(1)
			require.NoError(t, err)
		}
		_, err := u.Reserve(1)
		require.ErrorIs(t, err, inventory.ErrInventoryExhausted)

		require.NoError(t, u.Release(inventory.TierConfirmed, 1))

		plan := inventory.PlanPromotions(u,
			[]inventory.QueueEntry{entry("3000000001", 1)},
			[]inventory.QueueEntry{entry("4000000001", 1)},
		)

		require.Len(t, plan, 2)
		assert.Equal(t, inventory.Promotion{PNR: "3000000001", From: inventory.TierRAC, To: inventory.TierConfirmed}, plan[0])
		assert.Equal(t, inventory.Promotion{PNR: "4000000001", From: inventory.TierWaitlisted, To: inventory.TierRAC}, plan[1])

		snap := u.Snapshot()
		assert.Equal(t, int32(0), snap.ConfirmedAvailable)
		assert.Equal(t, int32(0), snap.RACAvailable)
		assert.Equal(t, int32(1), snap.WaitlistAvailable)
	})

	t.Run("waitlist promotes straight to confirmed when rac is empty", func(t *testing.T) {
		u := newUnit(2, 0, 3)
		u.Counts = inventory.Counts{Confirmed: 1, Waitlist: 1}

		plan := inventory.PlanPromotions(u, nil,
			[]inventory.QueueEntry{entry("4000000001", 1)})

		require.Len(t, plan, 1)
		assert.Equal(t, inventory.TierConfirmed, plan[0].To)
		assert.Equal(t, inventory.TierWaitlisted, plan[0].From)
	})

	t.Run("a rac reservation in queue forces the waitlist to wait", func(t *testing.T) {
		// One confirmed seat frees but the RAC head holds two
		// passengers. The waitlist may not jump past it into the
		// confirmed tier, and no RAC berth is free either.
		u := newUnit(3, 2, 2)
		u.Counts = inventory.Counts{Confirmed: 2, RAC: 2, Waitlist: 1}

		plan := inventory.PlanPromotions(u,
			[]inventory.QueueEntry{entry("3000000001", 2)},
			[]inventory.QueueEntry{entry("4000000001", 1)},
		)

		assert.Empty(t, plan)
	})

	t.Run("head of queue blocks everyone behind it", func(t *testing.T) {
		// Strict FIFO: the four-passenger head does not fit, so the
		// single passenger behind it stays put too.
		u := newUnit(6, 2, 6)
		u.Counts = inventory.Counts{Confirmed: 4, RAC: 0, Waitlist: 5}

		plan := inventory.PlanPromotions(u, nil, []inventory.QueueEntry{
			entry("4000000001", 4),
			entry("4000000002", 1),
		})

		assert.Empty(t, plan)
	})

	t.Run("cascade keeps pulling until nothing fits", func(t *testing.T) {
		u := newUnit(4, 2, 4)
		u.Counts = inventory.Counts{Confirmed: 1, RAC: 2, Waitlist: 3}

		plan := inventory.PlanPromotions(u,
			[]inventory.QueueEntry{entry("3000000001", 1), entry("3000000002", 1)},
			[]inventory.QueueEntry{entry("4000000001", 1), entry("4000000002", 1), entry("4000000003", 1)},
		)

		require.Len(t, plan, 5)
		assert.Equal(t, "3000000001", plan[0].PNR)
		assert.Equal(t, "3000000002", plan[1].PNR)
		for _, p := range plan[:3] {
			assert.Equal(t, inventory.TierConfirmed, p.To)
		}
		assert.Equal(t, inventory.TierRAC, plan[3].To)
		assert.Equal(t, inventory.TierRAC, plan[4].To)

		snap := u.Snapshot()
		assert.Equal(t, int32(0), snap.ConfirmedAvailable)
		assert.Equal(t, int32(0), snap.RACAvailable)
		assert.Equal(t, int32(4), snap.WaitlistAvailable)
	})

	t.Run("no free seats means no plan", func(t *testing.T) {
		u := newUnit(2, 1, 2)
		u.Counts = inventory.Counts{Confirmed: 2, RAC: 1, Waitlist: 1}

		plan := inventory.PlanPromotions(u,
			[]inventory.QueueEntry{entry("3000000001", 1)},
			[]inventory.QueueEntry{entry("4000000001", 1)},
		)
		assert.Empty(t, plan)
	})
}
