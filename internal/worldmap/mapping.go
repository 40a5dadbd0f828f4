// Package worldmap holds the declarative location catalog consumed by the
// world-generation system, plus the position-hint mapping that turns designer
// hints into world coordinates.
package worldmap

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// Sector is a compass octant naming the angular window of a hint.
type Sector string

const (
	SectorNorth     Sector = "north"
	SectorNortheast Sector = "northeast"
	SectorEast      Sector = "east"
	SectorSoutheast Sector = "southeast"
	SectorSouth     Sector = "south"
	SectorSouthwest Sector = "southwest"
	SectorWest      Sector = "west"
	SectorNorthwest Sector = "northwest"
	SectorCenter    Sector = "center"
)

var sectorAngles = map[Sector]float64{
	SectorNorth:     -math.Pi / 2,
	SectorNortheast: -math.Pi / 4,
	SectorEast:      0,
	SectorSoutheast: math.Pi / 4,
	SectorSouth:     math.Pi / 2,
	SectorSouthwest: 3 * math.Pi / 4,
	SectorWest:      math.Pi,
	SectorNorthwest: -3 * math.Pi / 4,
}

// Band names the radial window of a hint relative to the map half-extent.
type Band string

const (
	BandNear Band = "near"
	BandMid  Band = "mid"
	BandFar  Band = "far"
)

var bandRanges = map[Band][2]float64{
	BandNear: {0.10, 0.35},
	BandMid:  {0.35, 0.65},
	BandFar:  {0.65, 0.92},
}

// Hint is a designer-facing position hint. Jitter widens the angular window
// in radians; zero keeps the sector axis exact.
type Hint struct {
	Sector Sector  `json:"sector"`
	Band   Band    `json:"band"`
	Jitter float64 `json:"jitter,omitempty"`
}

// Valid reports whether the hint names a known sector and band.
func (h Hint) Valid() bool {
	if h.Sector == SectorCenter {
		return true
	}
	_, sectorOK := sectorAngles[h.Sector]
	_, bandOK := bandRanges[h.Band]
	return sectorOK && bandOK
}

// Resolve maps a hint onto world coordinates inside a width×height map. The
// transform is pure: the same hint, dimensions, and rng stream always produce
// the same point. A nil rng takes the midpoint of each window, so randomness
// is optional. Invalid hints resolve to the map center.
func Resolve(hint Hint, width, height float64, rng *rand.Rand) (float64, float64) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	cx := width / 2
	cy := height / 2

	if !hint.Valid() || hint.Sector == SectorCenter {
		if hint.Sector == SectorCenter && rng != nil {
			limit := math.Min(width, height) * 0.05
			return cx + (rng.Float64()*2-1)*limit, cy + (rng.Float64()*2-1)*limit
		}
		return cx, cy
	}

	angle := sectorAngles[hint.Sector]
	if hint.Jitter > 0 {
		halfWindow := math.Min(hint.Jitter, math.Pi/8)
		if rng != nil {
			angle += (rng.Float64()*2 - 1) * halfWindow
		}
	}

	window := bandRanges[hint.Band]
	fraction := (window[0] + window[1]) / 2
	if rng != nil {
		fraction = window[0] + rng.Float64()*(window[1]-window[0])
	}
	radius := fraction * math.Min(cx, cy)

	x := clamp(cx+radius*math.Cos(angle), 0, width)
	y := clamp(cy+radius*math.Sin(angle), 0, height)
	return x, y
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// DeterministicSeed derives a stable seed from a root seed and a label so
// each subsystem draws from an independent stream.
func DeterministicSeed(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// NewRNG builds a deterministic RNG for the given root seed and label.
func NewRNG(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeed(rootSeed, label)))
}
