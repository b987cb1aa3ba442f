package sim

import "time"

// NominalFrame is the frame duration the tuning constants are expressed in.
const NominalFrame = 16670 * time.Microsecond

// NormalizeDelta converts elapsed wall time into nominal ticks, capped at
// maxDelta. A non-positive elapsed time (the first frame) counts as one tick.
func NormalizeDelta(elapsed time.Duration, maxDelta float64) float64 {
	if elapsed <= 0 {
		return 1
	}
	dt := float64(elapsed) / float64(NominalFrame)
	if maxDelta > 0 && dt > maxDelta {
		return maxDelta
	}
	return dt
}
