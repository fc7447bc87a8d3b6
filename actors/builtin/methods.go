package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type vestingMethods struct {
	Constructor        abi.MethodNum
	Initialize         abi.MethodNum
	Releasable         abi.MethodNum
	Release            abi.MethodNum
	Revoke             abi.MethodNum
	GetVestingSchedule abi.MethodNum
	Released           abi.MethodNum
	Assets             abi.MethodNum
}

var MethodsVesting = vestingMethods{MethodConstructor, 2, 3, 4, 5, 6, 7, 8}

type tokenMethods struct {
	Constructor            abi.MethodNum
	Mint                   abi.MethodNum
	Burn                   abi.MethodNum
	Transfer               abi.MethodNum
	BalanceOf              abi.MethodNum
	Vest                   abi.MethodNum
	Withdraw               abi.MethodNum
	GetUserVestingSchedule abi.MethodNum
	GetVestingLength       abi.MethodNum
	VestingBalanceOf       abi.MethodNum
	TotalVestingBalance    abi.MethodNum
	VestingStatus          abi.MethodNum
	RevokeSchedule         abi.MethodNum
}

var MethodsToken = tokenMethods{MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
