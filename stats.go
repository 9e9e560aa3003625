package splithash

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// unlikelyHashDerivations counts how often BinaryNode.HashAt consumed more
// than the 64 bits a single SipHash call supplies (i.e. index >= 2). Given
// the exponential-decay invariant on Hash.HashAt, this should be vanishingly
// rare; the counter exists purely for observability (spec's open question:
// there is no documented behavior for this happening pathologically often,
// only a requirement that it be observable).
var unlikelyHashDerivations atomic.Int64

// UnlikelyHashDerivations returns the process-wide count of >=2-indexed hash
// derivations taken across every BinaryNode. It is safe to call from any
// goroutine at any time.
func UnlikelyHashDerivations() int64 {
	return unlikelyHashDerivations.Load()
}

func recordUnlikelyHashDerivation(index int) {
	unlikelyHashDerivations.Add(1)
	if ce := log.Check(zap.DebugLevel, "deep hash derivation"); ce != nil {
		ce.Write(zap.Int("index", index), zap.Int64("total", unlikelyHashDerivations.Load()))
	}
}
