package token_test

import (
	"context"
	"strings"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/vesting-actors/actors/builtin"
	"github.com/filecoin-project/vesting-actors/actors/builtin/token"
	"github.com/filecoin-project/vesting-actors/support/mock"
)

const unlockDuration = abi.ChainEpoch(100)

func TestConstruction(t *testing.T) {
	actor := token.Actor{}

	receiver := newIDAddr(t, 100)
	admin := newIDAddr(t, 101)

	builder := mock.NewBuilder(context.Background(), receiver).
		WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID)

	t.Run("simple construction", func(t *testing.T) {
		rt := builder.Build(t)

		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		ret := rt.Call(actor.Constructor, &token.ConstructorParams{Admin: admin, UnlockDuration: unlockDuration})
		assert.Nil(t, ret)
		rt.Verify()

		var st token.State
		rt.GetState(&st)
		assert.Equal(t, admin, st.Admin)
		assert.Equal(t, unlockDuration, st.UnlockDuration)
		assert.Equal(t, big.Zero(), st.Supply)
		assert.Equal(t, big.Zero(), st.TotalVestingBalance)
	})

	t.Run("rejects non-positive unlock duration", func(t *testing.T) {
		rt := builder.Build(t)

		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(actor.Constructor, &token.ConstructorParams{Admin: admin, UnlockDuration: 0})
		})
		rt.Verify()
	})
}

func TestMintAndBurn(t *testing.T) {
	receiver := newIDAddr(t, 100)
	admin := newIDAddr(t, 101)
	alice := newIDAddr(t, 102)

	builder := mock.NewBuilder(context.Background(), receiver).
		WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID)

	t.Run("mint credits balance and supply", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)

		h.mint(rt, alice, abi.NewTokenAmount(100))

		assert.Equal(t, abi.NewTokenAmount(100), h.balanceOf(rt, alice))

		var st token.State
		rt.GetState(&st)
		assert.Equal(t, abi.NewTokenAmount(100), st.Supply)
		h.checkState(rt)
	})

	t.Run("mint rejects caller other than admin", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)

		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(admin)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.Mint, &token.MintParams{To: alice, Amount: abi.NewTokenAmount(100)})
		})
		rt.Verify()
	})

	t.Run("burn debits balance and supply", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))

		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.Call(h.Burn, &token.BurnParams{Amount: abi.NewTokenAmount(30)})
		rt.Verify()

		assert.Equal(t, abi.NewTokenAmount(70), h.balanceOf(rt, alice))

		var st token.State
		rt.GetState(&st)
		assert.Equal(t, abi.NewTokenAmount(70), st.Supply)
		h.checkState(rt)
	})

	t.Run("burn rejects amounts beyond spendable balance", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))
		h.vest(rt, alice, abi.NewTokenAmount(60))

		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(h.Burn, &token.BurnParams{Amount: abi.NewTokenAmount(50)})
		})
		rt.Verify()
	})
}

func TestTransfer(t *testing.T) {
	receiver := newIDAddr(t, 100)
	admin := newIDAddr(t, 101)
	alice := newIDAddr(t, 102)
	bob := newIDAddr(t, 103)

	builder := mock.NewBuilder(context.Background(), receiver).
		WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID)

	t.Run("moves spendable balance", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))

		h.transfer(rt, alice, bob, abi.NewTokenAmount(40))

		assert.Equal(t, abi.NewTokenAmount(60), h.balanceOf(rt, alice))
		assert.Equal(t, abi.NewTokenAmount(40), h.balanceOf(rt, bob))
		h.checkState(rt)
	})

	t.Run("locked balance cannot be transferred", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))
		h.vest(rt, alice, abi.NewTokenAmount(70))

		// Spendable is only 30 of the 100 balance.
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(h.Transfer, &token.TransferParams{To: bob, Amount: abi.NewTokenAmount(40)})
		})
		rt.Verify()

		h.transfer(rt, alice, bob, abi.NewTokenAmount(30))
		assert.Equal(t, abi.NewTokenAmount(70), h.balanceOf(rt, alice))
		h.checkState(rt)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))

		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Transfer, &token.TransferParams{To: bob, Amount: abi.NewTokenAmount(-1)})
		})
		rt.Verify()
	})
}

func TestVest(t *testing.T) {
	receiver := newIDAddr(t, 100)
	admin := newIDAddr(t, 101)
	alice := newIDAddr(t, 102)

	builder := mock.NewBuilder(context.Background(), receiver).
		WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID)

	t.Run("locks balance under a new schedule", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))

		index := h.vest(rt, alice, abi.NewTokenAmount(100))
		assert.Equal(t, uint64(0), index)

		// Balance is unchanged but fully locked.
		assert.Equal(t, abi.NewTokenAmount(100), h.balanceOf(rt, alice))
		assert.Equal(t, abi.NewTokenAmount(100), h.vestingBalanceOf(rt, alice))
		assert.Equal(t, uint64(1), h.vestingLength(rt, alice))
		h.checkState(rt)
	})

	t.Run("returns successive indices", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))

		assert.Equal(t, uint64(0), h.vest(rt, alice, abi.NewTokenAmount(10)))
		assert.Equal(t, uint64(1), h.vest(rt, alice, abi.NewTokenAmount(20)))
		assert.Equal(t, uint64(2), h.vest(rt, alice, abi.NewTokenAmount(30)))
		assert.Equal(t, abi.NewTokenAmount(60), h.vestingBalanceOf(rt, alice))
		h.checkState(rt)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))

		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Vest, &token.VestParams{Amount: big.Zero()})
		})
		rt.Verify()
	})

	t.Run("rejects amount beyond spendable balance", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))
		h.vest(rt, alice, abi.NewTokenAmount(80))

		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(h.Vest, &token.VestParams{Amount: abi.NewTokenAmount(30)})
		})
		rt.Verify()
	})
}

func TestWithdraw(t *testing.T) {
	receiver := newIDAddr(t, 100)
	admin := newIDAddr(t, 101)
	alice := newIDAddr(t, 102)
	bob := newIDAddr(t, 103)

	builder := mock.NewBuilder(context.Background(), receiver).
		WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID)

	setup := func(t *testing.T) (*mock.Runtime, *tActorHarness) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))
		h.vest(rt, alice, abi.NewTokenAmount(100))
		return rt, h
	}

	t.Run("unlocks the vested portion", func(t *testing.T) {
		rt, h := setup(t)

		rt.SetEpoch(50)
		ret := h.withdraw(rt, alice, alice, 0)
		assert.Equal(t, abi.NewTokenAmount(50), ret.Unlocked)
		assert.Equal(t, abi.NewTokenAmount(50), ret.Locked)

		assert.Equal(t, abi.NewTokenAmount(100), h.balanceOf(rt, alice))
		assert.Equal(t, abi.NewTokenAmount(50), h.vestingBalanceOf(rt, alice))
		assert.Equal(t, uint64(1), h.vestingLength(rt, alice))
		h.checkState(rt)

		// The unlocked half is spendable again.
		h.transfer(rt, alice, bob, abi.NewTokenAmount(50))
		h.checkState(rt)
	})

	t.Run("nothing unlocked is a no-op", func(t *testing.T) {
		rt, h := setup(t)

		// Same epoch as the vest, nothing has unlocked yet.
		ret := h.withdraw(rt, alice, alice, 0)
		assert.Equal(t, big.Zero(), ret.Unlocked)
		assert.Equal(t, abi.NewTokenAmount(100), ret.Locked)
		assert.Equal(t, uint64(1), h.vestingLength(rt, alice))
		h.checkState(rt)
	})

	t.Run("full withdrawal removes the schedule", func(t *testing.T) {
		rt, h := setup(t)

		rt.SetEpoch(100)
		ret := h.withdraw(rt, alice, alice, 0)
		assert.Equal(t, abi.NewTokenAmount(100), ret.Unlocked)
		assert.Equal(t, big.Zero(), ret.Locked)

		assert.Equal(t, big.Zero(), h.vestingBalanceOf(rt, alice))
		assert.Equal(t, uint64(0), h.vestingLength(rt, alice))
		h.checkState(rt)

		// The pruned list is gone entirely.
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.Withdraw, &token.ScheduleParams{Address: alice, Index: 0})
		})
		rt.Verify()
	})

	t.Run("removal swaps the last schedule into the slot", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))
		h.vest(rt, alice, abi.NewTokenAmount(10)) // index 0, start 0
		rt.SetEpoch(5)
		h.vest(rt, alice, abi.NewTokenAmount(20)) // index 1, start 5
		rt.SetEpoch(10)
		h.vest(rt, alice, abi.NewTokenAmount(30)) // index 2, start 10

		// Fully unlock and withdraw schedule 0.
		rt.SetEpoch(100)
		ret := h.withdraw(rt, alice, alice, 0)
		assert.Equal(t, abi.NewTokenAmount(10), ret.Unlocked)
		assert.Equal(t, big.Zero(), ret.Locked)

		// The last schedule (start 10) now occupies index 0.
		assert.Equal(t, uint64(2), h.vestingLength(rt, alice))
		sched := h.getUserSchedule(rt, alice, 0)
		assert.Equal(t, abi.ChainEpoch(10), sched.Start)
		assert.Equal(t, abi.NewTokenAmount(30), sched.TotalAmount)
		h.checkState(rt)
	})

	t.Run("anyone may trigger a withdrawal", func(t *testing.T) {
		rt, h := setup(t)

		rt.SetEpoch(50)
		ret := h.withdraw(rt, bob, alice, 0)
		assert.Equal(t, abi.NewTokenAmount(50), ret.Unlocked)

		// The credit lands on the schedule's account, not the caller.
		assert.Equal(t, abi.NewTokenAmount(100), h.balanceOf(rt, alice))
		assert.Equal(t, big.Zero(), h.balanceOf(rt, bob))
		h.checkState(rt)
	})

	t.Run("rejects index out of range", func(t *testing.T) {
		rt, h := setup(t)

		rt.SetEpoch(50)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Withdraw, &token.ScheduleParams{Address: alice, Index: 1})
		})
		rt.Verify()
	})

	t.Run("not found for account without schedules", func(t *testing.T) {
		rt, h := setup(t)

		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.Withdraw, &token.ScheduleParams{Address: bob, Index: 0})
		})
		rt.Verify()
	})
}

func TestViews(t *testing.T) {
	receiver := newIDAddr(t, 100)
	admin := newIDAddr(t, 101)
	alice := newIDAddr(t, 102)

	builder := mock.NewBuilder(context.Background(), receiver).
		WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID)

	t.Run("user schedule reports unlock progress", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))
		h.vest(rt, alice, abi.NewTokenAmount(100))

		rt.SetEpoch(50)
		sched := h.getUserSchedule(rt, alice, 0)
		assert.Equal(t, abi.NewTokenAmount(100), sched.TotalAmount)
		assert.Equal(t, abi.ChainEpoch(0), sched.Start)
		assert.Equal(t, abi.NewTokenAmount(50), sched.Unlocked)
		assert.Equal(t, abi.NewTokenAmount(50), sched.Locked)

		// After a withdrawal only the locked remainder is reported.
		h.withdraw(rt, alice, alice, 0)
		sched = h.getUserSchedule(rt, alice, 0)
		assert.Equal(t, big.Zero(), sched.Unlocked)
		assert.Equal(t, abi.NewTokenAmount(50), sched.Locked)
	})

	t.Run("total vesting balance sums accounts", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		bob := newIDAddr(t, 103)
		h.mint(rt, alice, abi.NewTokenAmount(100))
		h.mint(rt, bob, abi.NewTokenAmount(100))
		h.vest(rt, alice, abi.NewTokenAmount(60))
		h.vest(rt, bob, abi.NewTokenAmount(40))

		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.TotalVestingBalance, nil).(*token.AmountReturn)
		rt.Verify()
		assert.Equal(t, abi.NewTokenAmount(100), ret.Amount)
	})

	t.Run("vesting status previews a hypothetical schedule", func(t *testing.T) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)

		status := func(amount abi.TokenAmount, start abi.ChainEpoch) *token.StatusReturn {
			rt.ExpectValidateCallerAny()
			ret := rt.Call(h.VestingStatus, &token.VestingStatusParams{Amount: amount, Start: start}).(*token.StatusReturn)
			rt.Verify()
			return ret
		}

		// Halfway through the unlock duration the split is even.
		rt.SetEpoch(50)
		ret := status(abi.NewTokenAmount(1000), 0)
		assert.Equal(t, abi.NewTokenAmount(500), ret.Unlocked)
		assert.Equal(t, abi.NewTokenAmount(500), ret.Locked)

		// A schedule that has not started is fully locked.
		ret = status(abi.NewTokenAmount(1000), 60)
		assert.Equal(t, big.Zero(), ret.Unlocked)
		assert.Equal(t, abi.NewTokenAmount(1000), ret.Locked)

		// No stored state is consulted; any amount may be previewed.
		rt.SetEpoch(200)
		ret = status(abi.NewTokenAmount(7), 0)
		assert.Equal(t, abi.NewTokenAmount(7), ret.Unlocked)
		assert.Equal(t, big.Zero(), ret.Locked)
	})
}

func TestRevokeSchedule(t *testing.T) {
	receiver := newIDAddr(t, 100)
	admin := newIDAddr(t, 101)
	alice := newIDAddr(t, 102)

	builder := mock.NewBuilder(context.Background(), receiver).
		WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID)

	setup := func(t *testing.T) (*mock.Runtime, *tActorHarness) {
		rt := builder.Build(t)
		h := newHarness(t, admin)
		h.constructAndVerify(rt)
		h.mint(rt, alice, abi.NewTokenAmount(100))
		h.vest(rt, alice, abi.NewTokenAmount(100))
		return rt, h
	}

	t.Run("unlocks vested portion and reclaims the rest", func(t *testing.T) {
		rt, h := setup(t)

		rt.SetEpoch(50)
		rt.SetCaller(admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(admin)
		ret := rt.Call(h.RevokeSchedule, &token.ScheduleParams{Address: alice, Index: 0}).(*token.RevokeScheduleReturn)
		rt.Verify()

		assert.Equal(t, abi.NewTokenAmount(50), ret.Unlocked)
		assert.Equal(t, abi.NewTokenAmount(50), ret.Revoked)

		// Vested half stays with the account as spendable; the rest moved to the admin.
		assert.Equal(t, abi.NewTokenAmount(50), h.balanceOf(rt, alice))
		assert.Equal(t, abi.NewTokenAmount(50), h.balanceOf(rt, admin))
		assert.Equal(t, big.Zero(), h.vestingBalanceOf(rt, alice))
		assert.Equal(t, uint64(0), h.vestingLength(rt, alice))
		h.checkState(rt)
	})

	t.Run("rejects caller other than admin", func(t *testing.T) {
		rt, h := setup(t)

		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(admin)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.RevokeSchedule, &token.ScheduleParams{Address: alice, Index: 0})
		})
		rt.Verify()
	})

	t.Run("rejects index out of range", func(t *testing.T) {
		rt, h := setup(t)

		rt.SetCaller(admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(admin)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.RevokeSchedule, &token.ScheduleParams{Address: alice, Index: 3})
		})
		rt.Verify()
	})
}

type tActorHarness struct {
	token.Actor
	t     testing.TB
	admin addr.Address
}

func newHarness(t testing.TB, admin addr.Address) *tActorHarness {
	return &tActorHarness{t: t, admin: admin}
}

func (h *tActorHarness) constructAndVerify(rt *mock.Runtime) {
	rt.SetCaller(builtin.InitActorAddr, builtin.InitActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
	ret := rt.Call(h.Constructor, &token.ConstructorParams{Admin: h.admin, UnlockDuration: unlockDuration})
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *tActorHarness) mint(rt *mock.Runtime, to addr.Address, amount abi.TokenAmount) {
	rt.SetCaller(h.admin, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAddr(h.admin)
	rt.Call(h.Mint, &token.MintParams{To: to, Amount: amount})
	rt.Verify()
}

func (h *tActorHarness) transfer(rt *mock.Runtime, from, to addr.Address, amount abi.TokenAmount) {
	rt.SetCaller(from, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	rt.Call(h.Transfer, &token.TransferParams{To: to, Amount: amount})
	rt.Verify()
}

func (h *tActorHarness) vest(rt *mock.Runtime, from addr.Address, amount abi.TokenAmount) uint64 {
	rt.SetCaller(from, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.Vest, &token.VestParams{Amount: amount}).(*token.VestReturn)
	rt.Verify()
	return ret.Index
}

func (h *tActorHarness) withdraw(rt *mock.Runtime, caller, address addr.Address, index uint64) *token.WithdrawReturn {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.Withdraw, &token.ScheduleParams{Address: address, Index: index}).(*token.WithdrawReturn)
	rt.Verify()
	return ret
}

func (h *tActorHarness) balanceOf(rt *mock.Runtime, a addr.Address) abi.TokenAmount {
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.BalanceOf, &token.AddressParams{Address: a}).(*token.BalanceReturn)
	rt.Verify()
	return ret.Balance
}

func (h *tActorHarness) vestingBalanceOf(rt *mock.Runtime, a addr.Address) abi.TokenAmount {
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.VestingBalanceOf, &token.AddressParams{Address: a}).(*token.AmountReturn)
	rt.Verify()
	return ret.Amount
}

func (h *tActorHarness) vestingLength(rt *mock.Runtime, a addr.Address) uint64 {
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.GetVestingLength, &token.AddressParams{Address: a}).(*token.LengthReturn)
	rt.Verify()
	return ret.Length
}

func (h *tActorHarness) getUserSchedule(rt *mock.Runtime, a addr.Address, index uint64) *token.UserScheduleReturn {
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.GetUserVestingSchedule, &token.ScheduleParams{Address: a, Index: index}).(*token.UserScheduleReturn)
	rt.Verify()
	return ret
}

func (h *tActorHarness) checkState(rt *mock.Runtime) {
	var st token.State
	rt.GetState(&st)
	_, msgs, err := token.CheckStateInvariants(&st, rt.AdtStore())
	require.NoError(h.t, err)
	assert.True(h.t, msgs.IsEmpty(), strings.Join(msgs.Messages(), "\n"))
}

func newIDAddr(t testing.TB, id uint64) addr.Address {
	a, err := addr.NewIDAddress(id)
	require.NoError(t, err)
	return a
}
