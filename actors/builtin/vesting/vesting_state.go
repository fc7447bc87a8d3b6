package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"

	"github.com/filecoin-project/vesting-actors/actors/builtin"
	"github.com/filecoin-project/vesting-actors/actors/util/adt"
)

// State of a vesting holder: a pool of value earmarked for beneficiaries,
// released linearly per asset kind. Each asset (the native balance or a token
// actor) carries an independent schedule with its own released counter.
type State struct {
	// Owner may initialize schedules and revoke revocable ones.
	Owner addr.Address

	// Schedules maps an asset to that asset's vesting schedule.
	Schedules cid.Cid // Map, HAMT[address]Schedule
}

// Schedule describes one linear vesting grant and its payout progress.
type Schedule struct {
	// Beneficiary may trigger release and receives all payouts.
	Beneficiary addr.Address

	// TotalAmount is the quantity that will eventually be releasable.
	// Immutable after initialization, except that revocation freezes it at the
	// amount vested so far.
	TotalAmount abi.TokenAmount

	// Start is the epoch at which linear accrual begins.
	Start abi.ChainEpoch

	// Cliff is an epoch before which nothing releases, even if accrual from
	// Start has begun. Start and Cliff are independent gates; both must pass.
	Cliff abi.ChainEpoch

	// Duration is the length of the linear ramp, in epochs. Always positive.
	Duration abi.ChainEpoch

	// Released is the cumulative amount already paid out. Monotonically
	// non-decreasing, never exceeding TotalAmount.
	Released abi.TokenAmount

	// Revocable is fixed at initialization. Revoke is rejected when false.
	Revocable bool

	// Revoked marks the terminal state. No further accrual once set.
	Revoked bool
}

// NativeAsset identifies the holder's own (native) balance as the vested
// asset. It reuses the system actor address, which can never host a token.
var NativeAsset = builtin.SystemActorAddr

func ConstructState(emptySchedulesCid cid.Cid, owner addr.Address) *State {
	return &State{
		Owner:     owner,
		Schedules: emptySchedulesCid,
	}
}

// Releasable returns the amount that has vested by `now` and not yet been
// paid out. Zero before the cliff and forever after revocation.
func (s *Schedule) Releasable(now abi.ChainEpoch) abi.TokenAmount {
	if s.Revoked {
		return big.Zero()
	}
	if now < s.Cliff {
		return big.Zero()
	}
	vested := builtin.LinearVested(s.TotalAmount, s.Start, s.Duration, now)
	return big.Max(big.Sub(vested, s.Released), big.Zero())
}

func (st *State) loadSchedule(schedules *adt.Map, asset addr.Address) (Schedule, bool, error) {
	var sched Schedule
	found, err := schedules.Get(adt.AddrKey(asset), &sched)
	return sched, found, err
}

func (st *State) putSchedule(schedules *adt.Map, asset addr.Address, sched *Schedule) error {
	if err := schedules.Put(adt.AddrKey(asset), sched); err != nil {
		return err
	}
	st.Schedules = schedules.Root()
	return nil
}
