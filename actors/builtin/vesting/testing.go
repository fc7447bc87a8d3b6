package vesting

import (
	"github.com/filecoin-project/go-state-types/big"

	"github.com/filecoin-project/vesting-actors/actors/builtin"
	"github.com/filecoin-project/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	ScheduleCount    int
	TotalUnreleased  big.Int
	RevokedSchedules int
}

// Checks internal invariants of vesting holder state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator, error) {
	acc := &builtin.MessageAccumulator{}

	schedules := adt.AsMap(store, st.Schedules)

	count := 0
	revoked := 0
	totalUnreleased := big.Zero()
	var sched Schedule
	err := schedules.ForEach(&sched, func(assetKey string) error {
		acc.Require(sched.Duration > 0, "schedule %x has non-positive duration %d", assetKey, sched.Duration)
		acc.Require(sched.TotalAmount.Sign() >= 0, "schedule %x has negative total %v", assetKey, sched.TotalAmount)
		acc.Require(sched.Released.Sign() >= 0, "schedule %x has negative released %v", assetKey, sched.Released)
		acc.Require(sched.Released.LessThanEqual(sched.TotalAmount),
			"schedule %x released %v exceeds total %v", assetKey, sched.Released, sched.TotalAmount)
		if sched.Revoked {
			acc.Require(sched.Revocable, "schedule %x revoked but not revocable", assetKey)
			acc.Require(sched.Released.Equals(sched.TotalAmount),
				"revoked schedule %x not settled: released %v, total %v", assetKey, sched.Released, sched.TotalAmount)
			revoked++
		}

		count++
		totalUnreleased = big.Add(totalUnreleased, big.Sub(sched.TotalAmount, sched.Released))
		return nil
	})
	if err != nil {
		return nil, acc, err
	}

	return &StateSummary{
		ScheduleCount:    count,
		TotalUnreleased:  totalUnreleased,
		RevokedSchedules: revoked,
	}, acc, nil
}
