package components

import (
	"math/rand"

	"github.com/automoto/kaipoche/shared/ids"
	"github.com/yohamta/donburi"
)

// EnvData carries the injected randomness and identity source.
type EnvData struct {
	Rand *rand.Rand
	IDs  ids.Generator
}

var Env = donburi.NewComponentType[EnvData]()
