package token

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	errors "github.com/pkg/errors"

	"github.com/filecoin-project/vesting-actors/actors/builtin"
	"github.com/filecoin-project/vesting-actors/actors/util/adt"
)

// State of the token ledger. Accounts hold balances; any account may earmark
// part of its balance into vesting schedules. An earmarked amount stays on the
// account but is locked: it cannot be spent until withdrawn back, and
// withdrawal unlocks linearly over the ledger-wide unlock duration.
type State struct {
	// Admin may mint new supply and revoke vesting schedules.
	Admin addr.Address

	// Supply is the total amount minted and not yet burned.
	Supply abi.TokenAmount

	// UnlockDuration is the linear ramp applied to every vesting schedule,
	// fixed at construction.
	UnlockDuration abi.ChainEpoch

	// TotalVestingBalance is the sum of all locked amounts across accounts.
	TotalVestingBalance abi.TokenAmount

	// Balances maps each account to its full balance, locked portion included.
	Balances cid.Cid // BalanceTable, HAMT[address]TokenAmount

	// LockedTable maps each account to the portion of its balance currently
	// locked under vesting schedules. Never exceeds the account's balance.
	LockedTable cid.Cid // BalanceTable, HAMT[address]TokenAmount

	// Vestings maps each account to its open vesting schedules.
	Vestings cid.Cid // Map, HAMT[address]ScheduleList
}

// VestingSchedule is one earmarked amount unlocking linearly from Start.
type VestingSchedule struct {
	// Amount is the quantity locked by this schedule.
	Amount abi.TokenAmount

	// Start is the epoch the schedule was created; unlock ramps from here.
	Start abi.ChainEpoch

	// Released is the portion already withdrawn back to spendable balance.
	Released abi.TokenAmount
}

// ScheduleList is an account's open schedules. Removal swaps the last element
// into the vacated slot, so indices of later schedules are not stable across
// a completed withdrawal.
type ScheduleList struct {
	Schedules []VestingSchedule
}

func ConstructState(emptyBalancesCid, emptyLockedCid, emptyVestingsCid cid.Cid, admin addr.Address, unlockDuration abi.ChainEpoch) *State {
	return &State{
		Admin:               admin,
		Supply:              big.Zero(),
		UnlockDuration:      unlockDuration,
		TotalVestingBalance: big.Zero(),
		Balances:            emptyBalancesCid,
		LockedTable:         emptyLockedCid,
		Vestings:            emptyVestingsCid,
	}
}

// Unlocked returns the portion of the schedule vested by `now` and not yet
// withdrawn, under the ledger's unlock duration.
func (vs *VestingSchedule) Unlocked(now abi.ChainEpoch, unlockDuration abi.ChainEpoch) abi.TokenAmount {
	vested := builtin.LinearVested(vs.Amount, vs.Start, unlockDuration, now)
	return big.Max(big.Sub(vested, vs.Released), big.Zero())
}

// Spendable returns an account's balance net of its locked portion.
func (st *State) Spendable(store adt.Store, a addr.Address) (abi.TokenAmount, error) {
	balance, err := adt.AsBalanceTable(store, st.Balances).Get(a)
	if err != nil {
		return big.Zero(), errors.Wrapf(err, "failed to load balance of %v", a)
	}
	locked, err := adt.AsBalanceTable(store, st.LockedTable).Get(a)
	if err != nil {
		return big.Zero(), errors.Wrapf(err, "failed to load locked balance of %v", a)
	}
	return big.Sub(balance, locked), nil
}

func (st *State) loadScheduleList(vestings *adt.Map, a addr.Address) (ScheduleList, bool, error) {
	var list ScheduleList
	found, err := vestings.Get(adt.AddrKey(a), &list)
	return list, found, err
}

// Persists an account's schedule list, deleting the map entry when the last
// schedule is gone.
func (st *State) putScheduleList(vestings *adt.Map, a addr.Address, list *ScheduleList) error {
	if len(list.Schedules) == 0 {
		if err := vestings.Delete(adt.AddrKey(a)); err != nil {
			return err
		}
	} else {
		if err := vestings.Put(adt.AddrKey(a), list); err != nil {
			return err
		}
	}
	st.Vestings = vestings.Root()
	return nil
}
