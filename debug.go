package sapling

import (
	"time"

	"github.com/golang/glog"
)

// frameStats holds per-tick dispatch metrics. Only collected in debug mode.
type frameStats struct {
	frame        uint64
	eventCount   int
	spriteCount  int
	firedCount   int
	dispatchTime time.Duration
}

func (w *Window) debugLog(stats frameStats) {
	glog.Infof("sapling: frame %d | events: %d | sprites: %d | callbacks: %d | dispatch: %v",
		stats.frame, stats.eventCount, stats.spriteCount, stats.firedCount, stats.dispatchTime)
}

// debugMaxSpriteCount is the registry size past which debug mode warns.
// Sprites are never removed, so a registry that keeps growing usually means
// sprites are being created every frame.
const debugMaxSpriteCount = 1000

func debugCheckSpriteCount(n int) {
	if n > debugMaxSpriteCount {
		glog.Warningf("sapling: registry holds %d sprites (threshold %d)", n, debugMaxSpriteCount)
	}
}
