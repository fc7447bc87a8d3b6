package token

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"

	"github.com/filecoin-project/vesting-actors/actors/builtin"
	vmr "github.com/filecoin-project/vesting-actors/actors/runtime"
	"github.com/filecoin-project/vesting-actors/actors/util/adt"
)

// The token actor is a balance ledger with self-service vesting. Any account
// may lock part of its balance into a vesting schedule; the locked amount
// stays on the account but cannot be spent, and unlocks linearly over the
// ledger's fixed unlock duration as the account withdraws it back.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Mint,
		3:                         a.Burn,
		4:                         a.Transfer,
		5:                         a.BalanceOf,
		6:                         a.Vest,
		7:                         a.Withdraw,
		8:                         a.GetUserVestingSchedule,
		9:                         a.GetVestingLength,
		10:                        a.VestingBalanceOf,
		11:                        a.TotalVestingBalance,
		12:                        a.VestingStatus,
		13:                        a.RevokeSchedule,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.TokenActorCodeID
}

func (a Actor) IsSingleton() bool {
	return false
}

func (a Actor) State() cbor.Er {
	return new(State)
}

var _ vmr.VMActor = Actor{}

type ConstructorParams struct {
	Admin          addr.Address
	UnlockDuration abi.ChainEpoch
}

func (a Actor) Constructor(rt vmr.Runtime, params *ConstructorParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	if params.UnlockDuration <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "unlock duration must be positive, got %v", params.UnlockDuration)
	}

	emptyBalances, err := adt.MakeEmptyMap(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create empty balances table")
	emptyLocked, err := adt.MakeEmptyMap(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create empty locked table")
	emptyVestings, err := adt.MakeEmptyMap(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create empty vestings map")

	st := ConstructState(emptyBalances.Root(), emptyLocked.Root(), emptyVestings.Root(), params.Admin, params.UnlockDuration)
	rt.State().Create(st)
	return nil
}

type MintParams struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// Mint credits new supply to an account. Admin-only.
func (a Actor) Mint(rt vmr.Runtime, params *MintParams) *adt.EmptyValue {
	if params.Amount.Sign() <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "mint amount must be positive, got %v", params.Amount)
	}

	var st State
	rt.State().Transaction(&st, func() {
		rt.ValidateImmediateCallerIs(st.Admin)

		balances := adt.AsBalanceTable(adt.AsStore(rt), st.Balances)
		err := balances.Add(params.To, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to credit %v", params.To)
		st.Balances = balances.Root()
		st.Supply = big.Add(st.Supply, params.Amount)
	})

	rt.Log(rtt.INFO, "minted %v to %v", params.Amount, params.To)
	return nil
}

type BurnParams struct {
	Amount abi.TokenAmount
}

// Burn destroys part of the caller's spendable balance.
func (a Actor) Burn(rt vmr.Runtime, params *BurnParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	caller := rt.Message().Caller()

	if params.Amount.Sign() <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "burn amount must be positive, got %v", params.Amount)
	}

	var st State
	rt.State().Transaction(&st, func() {
		spendable, err := st.Spendable(adt.AsStore(rt), caller)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to compute spendable balance of %v", caller)
		if spendable.LessThan(params.Amount) {
			rt.Abortf(exitcode.ErrInsufficientFunds, "burn of %v exceeds spendable balance %v of %v", params.Amount, spendable, caller)
		}

		balances := adt.AsBalanceTable(adt.AsStore(rt), st.Balances)
		err = balances.MustSubtract(caller, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to debit %v", caller)
		st.Balances = balances.Root()
		st.Supply = big.Sub(st.Supply, params.Amount)
	})

	rt.Log(rtt.INFO, "burned %v from %v", params.Amount, caller)
	return nil
}

type TransferParams struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// Transfer moves spendable balance from the caller to another account. Locked
// amounts never move: the transfer is capped by balance minus locked.
func (a Actor) Transfer(rt vmr.Runtime, params *TransferParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	caller := rt.Message().Caller()

	if params.Amount.Sign() < 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "transfer amount must not be negative, got %v", params.Amount)
	}

	var st State
	rt.State().Transaction(&st, func() {
		spendable, err := st.Spendable(adt.AsStore(rt), caller)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to compute spendable balance of %v", caller)
		if spendable.LessThan(params.Amount) {
			rt.Abortf(exitcode.ErrInsufficientFunds, "transfer of %v exceeds spendable balance %v of %v", params.Amount, spendable, caller)
		}

		balances := adt.AsBalanceTable(adt.AsStore(rt), st.Balances)
		err = balances.MustSubtract(caller, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to debit %v", caller)
		err = balances.Add(params.To, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to credit %v", params.To)
		st.Balances = balances.Root()
	})

	rt.Log(rtt.INFO, "transferred %v from %v to %v", params.Amount, caller, params.To)
	return nil
}

type AddressParams struct {
	Address addr.Address
}

type BalanceReturn struct {
	Balance abi.TokenAmount
}

// BalanceOf reports an account's full balance, locked portion included.
func (a Actor) BalanceOf(rt vmr.Runtime, params *AddressParams) *BalanceReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	balance, err := adt.AsBalanceTable(adt.AsStore(rt), st.Balances).Get(params.Address)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load balance of %v", params.Address)
	return &BalanceReturn{Balance: balance}
}

type VestParams struct {
	Amount abi.TokenAmount
}

type VestReturn struct {
	// Index of the new schedule in the caller's list. Valid until a completed
	// withdrawal compacts the list.
	Index uint64
}

// Vest locks part of the caller's spendable balance under a new vesting
// schedule starting now. The balance does not move; it becomes unspendable
// until withdrawn back after unlocking.
func (a Actor) Vest(rt vmr.Runtime, params *VestParams) *VestReturn {
	rt.ValidateImmediateCallerAcceptAny()
	caller := rt.Message().Caller()

	if params.Amount.Sign() <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "vest amount must be positive, got %v", params.Amount)
	}

	var index uint64
	var st State
	rt.State().Transaction(&st, func() {
		spendable, err := st.Spendable(adt.AsStore(rt), caller)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to compute spendable balance of %v", caller)
		if spendable.LessThan(params.Amount) {
			rt.Abortf(exitcode.ErrInsufficientFunds, "vest of %v exceeds spendable balance %v of %v", params.Amount, spendable, caller)
		}

		vestings := adt.AsMap(adt.AsStore(rt), st.Vestings)
		list, _, err := st.loadScheduleList(vestings, caller)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedules of %v", caller)

		index = uint64(len(list.Schedules))
		list.Schedules = append(list.Schedules, VestingSchedule{
			Amount:   params.Amount,
			Start:    rt.CurrEpoch(),
			Released: big.Zero(),
		})
		err = st.putScheduleList(vestings, caller, &list)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store schedules of %v", caller)

		locked := adt.AsBalanceTable(adt.AsStore(rt), st.LockedTable)
		err = locked.Add(caller, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to lock %v for %v", params.Amount, caller)
		st.LockedTable = locked.Root()
		st.TotalVestingBalance = big.Add(st.TotalVestingBalance, params.Amount)
	})

	rt.Log(rtt.INFO, "vested %v for %v at index %d", params.Amount, caller, index)
	return &VestReturn{Index: index}
}

type ScheduleParams struct {
	Address addr.Address
	Index   uint64
}

type AmountReturn struct {
	Amount abi.TokenAmount
}

type WithdrawReturn struct {
	// Unlocked is the amount returned to spendable balance by this call.
	Unlocked abi.TokenAmount
	// Locked is the schedule's still-locked remainder, zero when the
	// schedule was exhausted and removed.
	Locked abi.TokenAmount
}

// Withdraw moves the unlocked portion of one schedule back to the account's
// spendable balance. Anyone may trigger it; the credit always lands on the
// schedule's account. A schedule withdrawn in full is removed, swapping the
// last schedule into its slot.
func (a Actor) Withdraw(rt vmr.Runtime, params *ScheduleParams) *WithdrawReturn {
	rt.ValidateImmediateCallerAcceptAny()

	unlocked := big.Zero()
	stillLocked := big.Zero()
	var st State
	rt.State().Transaction(&st, func() {
		vestings := adt.AsMap(adt.AsStore(rt), st.Vestings)
		list, found, err := st.loadScheduleList(vestings, params.Address)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedules of %v", params.Address)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no vesting schedules for %v", params.Address)
		}
		if params.Index >= uint64(len(list.Schedules)) {
			rt.Abortf(exitcode.ErrIllegalArgument, "vesting index %d out of range for %v (%d schedules)",
				params.Index, params.Address, len(list.Schedules))
		}

		sched := &list.Schedules[params.Index]
		unlocked = sched.Unlocked(rt.CurrEpoch(), st.UnlockDuration)
		if unlocked.Sign() == 0 {
			stillLocked = big.Sub(sched.Amount, sched.Released)
			return
		}

		sched.Released = big.Add(sched.Released, unlocked)
		if sched.Released.Equals(sched.Amount) {
			last := len(list.Schedules) - 1
			list.Schedules[params.Index] = list.Schedules[last]
			list.Schedules = list.Schedules[:last]
		} else {
			stillLocked = big.Sub(sched.Amount, sched.Released)
		}
		err = st.putScheduleList(vestings, params.Address, &list)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store schedules of %v", params.Address)

		locked := adt.AsBalanceTable(adt.AsStore(rt), st.LockedTable)
		err = locked.MustSubtract(params.Address, unlocked)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to unlock %v for %v", unlocked, params.Address)
		st.LockedTable = locked.Root()
		st.TotalVestingBalance = big.Sub(st.TotalVestingBalance, unlocked)
	})

	if unlocked.Sign() > 0 {
		rt.Log(rtt.INFO, "withdrew %v of vesting for %v", unlocked, params.Address)
	}
	return &WithdrawReturn{Unlocked: unlocked, Locked: stillLocked}
}

type UserScheduleReturn struct {
	TotalAmount abi.TokenAmount
	Start       abi.ChainEpoch
	Unlocked    abi.TokenAmount
	Locked      abi.TokenAmount
}

// GetUserVestingSchedule reports one schedule of an account: its size, start,
// the portion withdrawable now, and the portion still locked by the ramp.
func (a Actor) GetUserVestingSchedule(rt vmr.Runtime, params *ScheduleParams) *UserScheduleReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	sched := requireSchedule(rt, &st, params.Address, params.Index)

	now := rt.CurrEpoch()
	vested := builtin.LinearVested(sched.Amount, sched.Start, st.UnlockDuration, now)
	return &UserScheduleReturn{
		TotalAmount: sched.Amount,
		Start:       sched.Start,
		Unlocked:    big.Max(big.Sub(vested, sched.Released), big.Zero()),
		Locked:      big.Sub(sched.Amount, vested),
	}
}

type LengthReturn struct {
	Length uint64
}

// GetVestingLength reports how many open schedules an account has.
func (a Actor) GetVestingLength(rt vmr.Runtime, params *AddressParams) *LengthReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	vestings := adt.AsMap(adt.AsStore(rt), st.Vestings)
	list, _, err := st.loadScheduleList(vestings, params.Address)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedules of %v", params.Address)
	return &LengthReturn{Length: uint64(len(list.Schedules))}
}

// VestingBalanceOf reports the locked portion of an account's balance.
func (a Actor) VestingBalanceOf(rt vmr.Runtime, params *AddressParams) *AmountReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	locked, err := adt.AsBalanceTable(adt.AsStore(rt), st.LockedTable).Get(params.Address)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load locked balance of %v", params.Address)
	return &AmountReturn{Amount: locked}
}

// TotalVestingBalance reports the sum of locked amounts across all accounts.
func (a Actor) TotalVestingBalance(rt vmr.Runtime, _ *adt.EmptyValue) *AmountReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	return &AmountReturn{Amount: st.TotalVestingBalance}
}

type VestingStatusParams struct {
	Amount abi.TokenAmount
	Start  abi.ChainEpoch
}

type StatusReturn struct {
	Unlocked abi.TokenAmount
	Locked   abi.TokenAmount
}

// VestingStatus previews the unlock split of a hypothetical schedule under
// the ledger's unlock duration, without reference to any stored schedule.
func (a Actor) VestingStatus(rt vmr.Runtime, params *VestingStatusParams) *StatusReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	unlocked := builtin.LinearVested(params.Amount, params.Start, st.UnlockDuration, rt.CurrEpoch())
	return &StatusReturn{
		Unlocked: unlocked,
		Locked:   big.Sub(params.Amount, unlocked),
	}
}

type RevokeScheduleReturn struct {
	// Unlocked is the vested portion left with the account as spendable balance.
	Unlocked abi.TokenAmount
	// Revoked is the still-locked portion moved to the admin.
	Revoked abi.TokenAmount
}

// RevokeSchedule terminates one schedule. The portion already vested unlocks
// to the account; the remainder moves to the admin. Admin-only.
func (a Actor) RevokeSchedule(rt vmr.Runtime, params *ScheduleParams) *RevokeScheduleReturn {
	unlocked := big.Zero()
	revoked := big.Zero()
	var st State
	rt.State().Transaction(&st, func() {
		rt.ValidateImmediateCallerIs(st.Admin)

		vestings := adt.AsMap(adt.AsStore(rt), st.Vestings)
		list, found, err := st.loadScheduleList(vestings, params.Address)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedules of %v", params.Address)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no vesting schedules for %v", params.Address)
		}
		if params.Index >= uint64(len(list.Schedules)) {
			rt.Abortf(exitcode.ErrIllegalArgument, "vesting index %d out of range for %v (%d schedules)",
				params.Index, params.Address, len(list.Schedules))
		}

		sched := list.Schedules[params.Index]
		unlocked = sched.Unlocked(rt.CurrEpoch(), st.UnlockDuration)
		revoked = big.Sub(sched.Amount, big.Add(sched.Released, unlocked))
		stillLocked := big.Add(unlocked, revoked)

		last := len(list.Schedules) - 1
		list.Schedules[params.Index] = list.Schedules[last]
		list.Schedules = list.Schedules[:last]
		err = st.putScheduleList(vestings, params.Address, &list)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store schedules of %v", params.Address)

		locked := adt.AsBalanceTable(adt.AsStore(rt), st.LockedTable)
		err = locked.MustSubtract(params.Address, stillLocked)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to unlock %v for %v", stillLocked, params.Address)
		st.LockedTable = locked.Root()
		st.TotalVestingBalance = big.Sub(st.TotalVestingBalance, stillLocked)

		if revoked.Sign() > 0 {
			balances := adt.AsBalanceTable(adt.AsStore(rt), st.Balances)
			err = balances.MustSubtract(params.Address, revoked)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to debit %v", params.Address)
			err = balances.Add(st.Admin, revoked)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to credit %v", st.Admin)
			st.Balances = balances.Root()
		}
	})

	rt.Log(rtt.INFO, "revoked vesting schedule %d of %v: %v unlocked, %v reclaimed", params.Index, params.Address, unlocked, revoked)
	return &RevokeScheduleReturn{Unlocked: unlocked, Revoked: revoked}
}

func requireSchedule(rt vmr.Runtime, st *State, a addr.Address, index uint64) VestingSchedule {
	vestings := adt.AsMap(adt.AsStore(rt), st.Vestings)
	list, found, err := st.loadScheduleList(vestings, a)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedules of %v", a)
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no vesting schedules for %v", a)
	}
	if index >= uint64(len(list.Schedules)) {
		rt.Abortf(exitcode.ErrIllegalArgument, "vesting index %d out of range for %v (%d schedules)", index, a, len(list.Schedules))
	}
	return list.Schedules[index]
}
