package components

import "github.com/yohamta/donburi"

// SegmentData identifies one tile of the lane ring. Two segments per lane
// leapfrog each other to fake an infinite corridor.
type SegmentData struct {
	Lane int
}

var Segment = donburi.NewComponentType[SegmentData]()
