package builtin_test

import (
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"

	"github.com/filecoin-project/vesting-actors/actors/builtin"
)

func TestLinearVested(t *testing.T) {
	total := abi.NewTokenAmount(1000)

	t.Run("zero before start", func(t *testing.T) {
		assert.Equal(t, big.Zero(), builtin.LinearVested(total, 10, 100, 9))
		assert.Equal(t, big.Zero(), builtin.LinearVested(total, 10, 100, -5))
	})

	t.Run("zero at start", func(t *testing.T) {
		assert.Equal(t, big.Zero(), builtin.LinearVested(total, 10, 100, 10))
	})

	t.Run("ramps linearly", func(t *testing.T) {
		assert.Equal(t, abi.NewTokenAmount(330), builtin.LinearVested(total, 0, 100, 33))
		assert.Equal(t, abi.NewTokenAmount(500), builtin.LinearVested(total, 0, 100, 50))
		assert.Equal(t, abi.NewTokenAmount(990), builtin.LinearVested(total, 0, 100, 99))
	})

	t.Run("total at and after end", func(t *testing.T) {
		assert.Equal(t, total, builtin.LinearVested(total, 0, 100, 100))
		assert.Equal(t, total, builtin.LinearVested(total, 0, 100, 500))
	})

	t.Run("truncates in favour of the locked side", func(t *testing.T) {
		// 100 * 1 / 3 = 33, remainder discarded.
		assert.Equal(t, abi.NewTokenAmount(33), builtin.LinearVested(abi.NewTokenAmount(100), 0, 3, 1))
		assert.Equal(t, abi.NewTokenAmount(66), builtin.LinearVested(abi.NewTokenAmount(100), 0, 3, 2))
		// A one-unit grant yields nothing until the very end.
		assert.Equal(t, big.Zero(), builtin.LinearVested(abi.NewTokenAmount(1), 0, 100, 99))
		assert.Equal(t, abi.NewTokenAmount(1), builtin.LinearVested(abi.NewTokenAmount(1), 0, 100, 100))
	})

	t.Run("monotonically non-decreasing", func(t *testing.T) {
		prev := big.Zero()
		for now := abi.ChainEpoch(-10); now <= 110; now++ {
			vested := builtin.LinearVested(total, 0, 100, now)
			assert.True(t, vested.GreaterThanEqual(prev), "vested %v at %d below %v", vested, now, prev)
			assert.True(t, vested.LessThanEqual(total))
			prev = vested
		}
	})
}

func TestLinearLocked(t *testing.T) {
	total := abi.NewTokenAmount(1000)

	t.Run("complements vested at every epoch", func(t *testing.T) {
		for now := abi.ChainEpoch(-10); now <= 110; now += 7 {
			vested := builtin.LinearVested(total, 0, 100, now)
			locked := builtin.LinearLocked(total, 0, 100, now)
			assert.Equal(t, total, big.Add(vested, locked))
		}
	})
}
