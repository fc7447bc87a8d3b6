package main

import (
	token "github.com/filecoin-project/vesting-actors/actors/builtin/token"
	vesting "github.com/filecoin-project/vesting-actors/actors/builtin/vesting"

	gen "github.com/whyrusleeping/cbor-gen"
)

func main() {
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.Schedule{},
		// method params and returns
		vesting.ConstructorParams{},
		vesting.InitializeParams{},
		vesting.AssetParams{},
		vesting.AmountReturn{},
		vesting.RevokeReturn{},
		vesting.AssetsReturn{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/token/cbor_gen.go", "token",
		// actor state
		token.State{},
		token.VestingSchedule{},
		token.ScheduleList{},
		// method params and returns
		token.ConstructorParams{},
		token.MintParams{},
		token.BurnParams{},
		token.TransferParams{},
		token.AddressParams{},
		token.BalanceReturn{},
		token.VestParams{},
		token.VestReturn{},
		token.ScheduleParams{},
		token.WithdrawReturn{},
		token.AmountReturn{},
		token.UserScheduleReturn{},
		token.LengthReturn{},
		token.VestingStatusParams{},
		token.StatusReturn{},
		token.RevokeScheduleReturn{},
	); err != nil {
		panic(err)
	}
}
