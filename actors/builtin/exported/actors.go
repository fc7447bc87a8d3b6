package exported

import (
	rtt "github.com/filecoin-project/go-state-types/rt"

	"github.com/filecoin-project/vesting-actors/actors/builtin/token"
	"github.com/filecoin-project/vesting-actors/actors/builtin/vesting"
)

// BuiltinActors returns the actors registered by this module, for installation
// in a VM's actor registry.
func BuiltinActors() []rtt.VMActor {
	return []rtt.VMActor{
		vesting.Actor{},
		token.Actor{},
	}
}
