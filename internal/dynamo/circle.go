package dynamo

import (
	"math"
	"sync"
)

var (
	circleMu    sync.Mutex
	circleCache = make(map[int][]Vec2)
)

// UnitCircle returns n points evenly spaced on the unit circle, starting at
// angle zero. Results are cached per n and must not be modified.
func UnitCircle(n int) []Vec2 {
	if n < 3 {
		n = 3
	}

	circleMu.Lock()
	defer circleMu.Unlock()

	if pts, ok := circleCache[n]; ok {
		return pts
	}

	pts := make([]Vec2, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	circleCache[n] = pts
	return pts
}

// CircleSamples picks a sample count that leaves no gaps when a circle of
// the given radius (in pixels) is rasterised point by point.
func CircleSamples(radius float64) int {
	n := int(math.Ceil(2 * math.Pi * radius * 1.5))
	if n < 12 {
		n = 12
	}
	return n
}
