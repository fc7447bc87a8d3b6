package builtin

import (
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// The built-in actor code IDs
var (
	SystemActorCodeID   cid.Cid
	InitActorCodeID     cid.Cid
	AccountActorCodeID  cid.Cid
	VestingActorCodeID  cid.Cid
	TokenActorCodeID    cid.Cid
	CallerTypesSignable []cid.Cid
)

func init() {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	makeBuiltin := func(s string) cid.Cid {
		c, err := builder.Sum([]byte(s))
		if err != nil {
			panic(err)
		}
		return c
	}

	SystemActorCodeID = makeBuiltin("fil/1/system")
	InitActorCodeID = makeBuiltin("fil/1/init")
	AccountActorCodeID = makeBuiltin("fil/1/account")
	VestingActorCodeID = makeBuiltin("fil/1/vesting")
	TokenActorCodeID = makeBuiltin("fil/1/token")

	// Set of actor code types that can represent external signing parties.
	CallerTypesSignable = []cid.Cid{AccountActorCodeID}
}
