package token

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/filecoin-project/vesting-actors/actors/builtin"
	"github.com/filecoin-project/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	AccountCount  int
	ScheduleCount int
	TotalLocked   big.Int
}

// Checks internal invariants of token ledger state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator, error) {
	acc := &builtin.MessageAccumulator{}

	balances := adt.AsBalanceTable(store, st.Balances)
	lockedTable := adt.AsBalanceTable(store, st.LockedTable)

	// Supply covers all balances.
	totalBalance, err := balances.Total()
	if err != nil {
		return nil, acc, err
	}
	acc.Require(totalBalance.Equals(st.Supply), "sum of balances %v does not equal supply %v", totalBalance, st.Supply)

	// Locked amounts are backed by balances.
	accountCount := 0
	totalLocked := big.Zero()
	var balance abi.TokenAmount
	err = (*adt.Map)(balances).ForEach(&balance, func(key string) error {
		a, err := addr.NewFromBytes([]byte(key))
		if err != nil {
			return err
		}
		locked, err := lockedTable.Get(a)
		if err != nil {
			return err
		}
		acc.Require(locked.LessThanEqual(balance), "locked %v exceeds balance %v for %v", locked, balance, a)
		accountCount++
		return nil
	})
	if err != nil {
		return nil, acc, err
	}

	tableTotal, err := lockedTable.Total()
	if err != nil {
		return nil, acc, err
	}
	acc.Require(tableTotal.Equals(st.TotalVestingBalance),
		"sum of locked balances %v does not equal total vesting balance %v", tableTotal, st.TotalVestingBalance)

	// Schedules account exactly for the locked amounts.
	scheduleCount := 0
	vestings := adt.AsMap(store, st.Vestings)
	var list ScheduleList
	err = vestings.ForEach(&list, func(key string) error {
		a, err := addr.NewFromBytes([]byte(key))
		if err != nil {
			return err
		}
		acc.Require(len(list.Schedules) > 0, "empty schedule list for %v not pruned", a)

		outstanding := big.Zero()
		for i, vs := range list.Schedules {
			acc.Require(vs.Amount.Sign() > 0, "schedule %d of %v has non-positive amount %v", i, a, vs.Amount)
			acc.Require(vs.Released.Sign() >= 0, "schedule %d of %v has negative released %v", i, a, vs.Released)
			acc.Require(vs.Released.LessThan(vs.Amount),
				"fully released schedule %d of %v not removed (released %v of %v)", i, a, vs.Released, vs.Amount)
			outstanding = big.Add(outstanding, big.Sub(vs.Amount, vs.Released))
			scheduleCount++
		}

		locked, err := lockedTable.Get(a)
		if err != nil {
			return err
		}
		acc.Require(outstanding.Equals(locked),
			"outstanding schedules %v do not match locked balance %v for %v", outstanding, locked, a)
		totalLocked = big.Add(totalLocked, outstanding)
		return nil
	})
	if err != nil {
		return nil, acc, err
	}
	acc.Require(totalLocked.Equals(st.TotalVestingBalance),
		"outstanding schedules %v do not match total vesting balance %v", totalLocked, st.TotalVestingBalance)

	return &StateSummary{
		AccountCount:  accountCount,
		ScheduleCount: scheduleCount,
		TotalLocked:   totalLocked,
	}, acc, nil
}
