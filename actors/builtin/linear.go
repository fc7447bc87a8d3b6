package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
)

// LinearVested computes the amount of a linear vesting grant that has unlocked by `now`.
// Nothing unlocks before `start`; the whole of `total` is unlocked at or after `start+duration`;
// in between the unlocked amount ramps as floor(total * elapsed / duration).
//
// The multiplication happens before the division so that integer truncation always
// rounds down, in favour of the still-locked side. Big-integer arithmetic makes the
// intermediate product safe for any realistic token amount and duration.
// The result is monotonically non-decreasing in `now` for a fixed grant.
func LinearVested(total abi.TokenAmount, start, duration, now abi.ChainEpoch) abi.TokenAmount {
	if now < start {
		return big.Zero()
	}
	if now >= start+duration {
		return total
	}
	elapsed := big.NewInt(int64(now - start))
	return big.Div(big.Mul(total, elapsed), big.NewInt(int64(duration)))
}

// LinearLocked is the complement of LinearVested: the portion of the grant still locked at `now`.
func LinearLocked(total abi.TokenAmount, start, duration, now abi.ChainEpoch) abi.TokenAmount {
	return big.Sub(total, LinearVested(total, start, duration, now))
}
