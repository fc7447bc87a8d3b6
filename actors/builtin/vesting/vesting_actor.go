package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"

	"github.com/filecoin-project/vesting-actors/actors/builtin"
	"github.com/filecoin-project/vesting-actors/actors/builtin/token"
	vmr "github.com/filecoin-project/vesting-actors/actors/runtime"
	"github.com/filecoin-project/vesting-actors/actors/util/adt"
)

// The vesting actor holds a pool of value and releases it to a beneficiary
// linearly over time. The native balance and each token asset vest under
// independent schedules, each initialized once by the owner.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Initialize,
		3:                         a.Releasable,
		4:                         a.Release,
		5:                         a.Revoke,
		6:                         a.GetVestingSchedule,
		7:                         a.Released,
		8:                         a.Assets,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.VestingActorCodeID
}

func (a Actor) IsSingleton() bool {
	return false
}

func (a Actor) State() cbor.Er {
	return new(State)
}

var _ vmr.VMActor = Actor{}

type ConstructorParams struct {
	Owner addr.Address
}

func (a Actor) Constructor(rt vmr.Runtime, params *ConstructorParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	emptySchedules, err := adt.MakeEmptyMap(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create empty schedules map")

	st := ConstructState(emptySchedules.Root(), params.Owner)
	rt.State().Create(st)
	return nil
}

type InitializeParams struct {
	// Asset is the token actor whose balance vests, or NativeAsset for the
	// holder's own balance.
	Asset       addr.Address
	Beneficiary addr.Address
	TotalAmount abi.TokenAmount
	Start       abi.ChainEpoch
	Cliff       abi.ChainEpoch
	Duration    abi.ChainEpoch
	Revocable   bool
}

// Initialize creates the schedule for one asset kind. Owner-only, and at most
// once per asset: re-initialization is rejected rather than overwriting an
// in-flight grant.
func (a Actor) Initialize(rt vmr.Runtime, params *InitializeParams) *adt.EmptyValue {
	if params.Duration <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "vesting duration must be positive, got %v", params.Duration)
	}
	if params.TotalAmount.Sign() <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "vesting amount must be positive, got %v", params.TotalAmount)
	}

	var st State
	rt.State().Transaction(&st, func() {
		rt.ValidateImmediateCallerIs(st.Owner)

		schedules := adt.AsMap(adt.AsStore(rt), st.Schedules)
		_, found, err := st.loadSchedule(schedules, params.Asset)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedule for asset %v", params.Asset)
		if found {
			rt.Abortf(exitcode.ErrForbidden, "schedule for asset %v already initialized", params.Asset)
		}

		sched := Schedule{
			Beneficiary: params.Beneficiary,
			TotalAmount: params.TotalAmount,
			Start:       params.Start,
			Cliff:       params.Cliff,
			Duration:    params.Duration,
			Released:    big.Zero(),
			Revocable:   params.Revocable,
		}
		err = st.putSchedule(schedules, params.Asset, &sched)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put schedule for asset %v", params.Asset)
	})
	return nil
}

type AssetParams struct {
	Asset addr.Address
}

type AmountReturn struct {
	Amount abi.TokenAmount
}

// Releasable reports the amount currently vested and unpaid for an asset.
func (a Actor) Releasable(rt vmr.Runtime, params *AssetParams) *AmountReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	sched := requireSchedule(rt, &st, params.Asset)
	return &AmountReturn{Amount: sched.Releasable(rt.CurrEpoch())}
}

// Release pays everything newly vested to the beneficiary. Rejects when
// nothing has accrued since the last payout, so an immediate second call
// always fails rather than paying twice.
func (a Actor) Release(rt vmr.Runtime, params *AssetParams) *AmountReturn {
	var st State
	var sched Schedule
	var amount abi.TokenAmount
	rt.State().Transaction(&st, func() {
		schedules := adt.AsMap(adt.AsStore(rt), st.Schedules)
		var found bool
		var err error
		sched, found, err = st.loadSchedule(schedules, params.Asset)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedule for asset %v", params.Asset)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no vesting schedule for asset %v", params.Asset)
		}
		rt.ValidateImmediateCallerIs(sched.Beneficiary)

		amount = sched.Releasable(rt.CurrEpoch())
		if amount.Sign() == 0 {
			rt.Abortf(exitcode.ErrInsufficientFunds, "nothing vested to release for asset %v", params.Asset)
		}

		sched.Released = big.Add(sched.Released, amount)
		err = st.putSchedule(schedules, params.Asset, &sched)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update schedule for asset %v", params.Asset)
	})

	transferAsset(rt, params.Asset, sched.Beneficiary, amount)
	rt.Log(rtt.INFO, "released %v of asset %v to %v", amount, params.Asset, sched.Beneficiary)
	return &AmountReturn{Amount: amount}
}

type RevokeReturn struct {
	// Released is the vested remainder paid to the beneficiary on revocation.
	Released abi.TokenAmount
	// Refunded is the never-to-vest remainder returned to the owner.
	Refunded abi.TokenAmount
}

// Revoke terminates a revocable schedule: the vested remainder is paid to the
// beneficiary, the rest refunded to the owner, and accrual frozen. Revoking an
// already-revoked schedule moves nothing.
func (a Actor) Revoke(rt vmr.Runtime, params *AssetParams) *RevokeReturn {
	var st State
	var sched Schedule
	vested := big.Zero()
	refund := big.Zero()
	rt.State().Transaction(&st, func() {
		rt.ValidateImmediateCallerIs(st.Owner)

		schedules := adt.AsMap(adt.AsStore(rt), st.Schedules)
		var found bool
		var err error
		sched, found, err = st.loadSchedule(schedules, params.Asset)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedule for asset %v", params.Asset)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no vesting schedule for asset %v", params.Asset)
		}
		if !sched.Revocable {
			rt.Abortf(exitcode.ErrForbidden, "schedule for asset %v is not revocable", params.Asset)
		}
		if sched.Revoked {
			// Terminal state; a repeated revoke releases and refunds nothing.
			return
		}

		vested = sched.Releasable(rt.CurrEpoch())
		frozenTotal := big.Add(sched.Released, vested)
		refund = big.Sub(sched.TotalAmount, frozenTotal)
		sched.TotalAmount = frozenTotal
		sched.Released = frozenTotal
		sched.Revoked = true
		err = st.putSchedule(schedules, params.Asset, &sched)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update schedule for asset %v", params.Asset)
	})

	if vested.Sign() > 0 {
		transferAsset(rt, params.Asset, sched.Beneficiary, vested)
		rt.Log(rtt.INFO, "released %v of asset %v to %v", vested, params.Asset, sched.Beneficiary)
	}
	if refund.Sign() > 0 {
		transferAsset(rt, params.Asset, st.Owner, refund)
	}
	rt.Log(rtt.INFO, "revoked schedule for asset %v", params.Asset)
	return &RevokeReturn{Released: vested, Refunded: refund}
}

// GetVestingSchedule returns the stored schedule for an asset.
func (a Actor) GetVestingSchedule(rt vmr.Runtime, params *AssetParams) *Schedule {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	sched := requireSchedule(rt, &st, params.Asset)
	return &sched
}

// Released reports the cumulative amount already paid out for an asset.
func (a Actor) Released(rt vmr.Runtime, params *AssetParams) *AmountReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	sched := requireSchedule(rt, &st, params.Asset)
	return &AmountReturn{Amount: sched.Released}
}

type AssetsReturn struct {
	Assets []addr.Address
}

// Assets lists the asset kinds with an initialized schedule.
func (a Actor) Assets(rt vmr.Runtime, _ *adt.EmptyValue) *AssetsReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	schedules := adt.AsMap(adt.AsStore(rt), st.Schedules)
	keys, err := schedules.CollectKeys()
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to list schedules")

	assets := make([]addr.Address, 0, len(keys))
	for _, k := range keys {
		asset, err := addr.NewFromBytes([]byte(k))
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to parse asset key")
		assets = append(assets, asset)
	}
	return &AssetsReturn{Assets: assets}
}

func requireSchedule(rt vmr.Runtime, st *State, asset addr.Address) Schedule {
	schedules := adt.AsMap(adt.AsStore(rt), st.Schedules)
	sched, found, err := st.loadSchedule(schedules, asset)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedule for asset %v", asset)
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no vesting schedule for asset %v", asset)
	}
	return sched
}

// Moves value to a recipient: a bare send for the native asset, a token
// transfer drawn on this actor's token balance otherwise. A failed transfer
// aborts the calling method, rolling back all of its state changes.
func transferAsset(rt vmr.Runtime, asset addr.Address, to addr.Address, amount abi.TokenAmount) {
	if asset == NativeAsset {
		_, code := rt.Send(to, builtin.MethodSend, nil, amount)
		builtin.RequireSuccess(rt, code, "failed to transfer %v to %v", amount, to)
		return
	}
	_, code := rt.Send(asset, builtin.MethodsToken.Transfer, &token.TransferParams{To: to, Amount: amount}, big.Zero())
	builtin.RequireSuccess(rt, code, "failed to transfer %v of token %v to %v", amount, asset, to)
}
