package brailler

import (
	"image"
	"math"
	"math/rand"
	"time"
)

// Defaults for PoissonDisk.
const (
	DefaultMinRadius = 0.8
	DefaultMaxRadius = 3
	DefaultAttempts  = 30

	// radiusCurve shapes how fast the exclusion radius grows with the field value.
	radiusCurve = 1.5
	// acceptance scales the odds of keeping a candidate on a zero-valued sample.
	acceptance = 0.95
	// seedStep is the stride of the coarse scan for the starting point.
	seedStep = 10
)

// Rand is a source of uniform values in [0,1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// PoissonDisk grows a variable-radius Poisson-disk point set over a field.
// Low field values get small exclusion radii and high acceptance odds, so
// dots crowd together there and thin out as values rise toward 255.
//
// Zero fields take the package defaults. A nil Rand gets a fresh time-seeded
// source on every Sample call; a PoissonDisk with a non-nil Rand must not be
// shared between goroutines.
type PoissonDisk struct {
	MinRadius float64
	MaxRadius float64
	Attempts  int
	Rand      Rand
}

func (p *PoissonDisk) params() (rmin, rmax float64, k int) {
	rmin, rmax, k = p.MinRadius, p.MaxRadius, p.Attempts
	if rmin <= 0 {
		rmin = DefaultMinRadius
	}
	if rmax < rmin {
		rmax = DefaultMaxRadius
		if rmax < rmin {
			rmax = rmin
		}
	}
	if k <= 0 {
		k = DefaultAttempts
	}
	return rmin, rmax, k
}

// Radius returns the exclusion radius at x,y:
// min + (max-min) * (v/255)^1.5 where v is the field sample under the point.
func (p *PoissonDisk) Radius(field *image.Gray, x, y float64) float64 {
	rmin, rmax, _ := p.params()
	return radiusAt(field, x, y, rmin, rmax)
}

func radiusAt(field *image.Gray, x, y, rmin, rmax float64) float64 {
	gray := float64(sampleAt(field, x, y)) / 255
	return rmin + (rmax-rmin)*math.Pow(gray, radiusCurve)
}

func sampleAt(field *image.Gray, x, y float64) uint8 {
	return field.Pix[int(math.Floor(y))*field.Rect.Dx()+int(math.Floor(x))]
}

// Sample returns the generated dots in the order they were accepted. The
// first dot is the lowest-valued pixel found by a coarse scan.
//
// Every dot lies at least its own radius, measured when it was accepted,
// from every dot accepted before it.
func (p *PoissonDisk) Sample(field *image.Gray) []Dot {
	width, height := field.Rect.Dx(), field.Rect.Dy()
	if width == 0 || height == 0 {
		return nil
	}
	rmin, rmax, k := p.params()
	rnd := p.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := newSampleGrid(width, height, rmin/math.Sqrt2)
	dots := []Dot{seedDot(field)}
	g.put(dots[0], 0)
	active := []int{0}

	for len(active) > 0 {
		pick := int(rnd.Float64() * float64(len(active)))
		point := dots[active[pick]]
		radius := radiusAt(field, point.X, point.Y, rmin, rmax)

		found := false
		for n := 0; n < k; n++ {
			angle := rnd.Float64() * math.Pi * 2
			distance := radius + rnd.Float64()*radius
			candidate := Dot{
				X: point.X + math.Cos(angle)*distance,
				Y: point.Y + math.Sin(angle)*distance,
			}
			if candidate.X < 0 || candidate.X >= float64(width) ||
				candidate.Y < 0 || candidate.Y >= float64(height) {
				continue
			}

			odds := 1 - float64(sampleAt(field, candidate.X, candidate.Y))/255
			if rnd.Float64() >= odds*acceptance {
				continue
			}
			candidateRadius := radiusAt(field, candidate.X, candidate.Y, rmin, rmax)
			if !g.clear(dots, candidate, candidateRadius) {
				continue
			}
			g.put(candidate, len(dots))
			dots = append(dots, candidate)
			active = append(active, len(dots)-1)
			found = true
			break
		}

		if !found {
			active = append(active[:pick], active[pick+1:]...)
		}
	}
	return dots
}

// seedDot scans every tenth pixel of every tenth row for the lowest value,
// keeping the first one found. A field with nothing below 255 on the scan
// starts from its center.
func seedDot(field *image.Gray) Dot {
	width, height := field.Rect.Dx(), field.Rect.Dy()
	darkest := uint8(255)
	seed := Dot{X: float64(width) / 2, Y: float64(height) / 2}
	for y := 0; y < height; y += seedStep {
		for x := 0; x < width; x += seedStep {
			if v := field.Pix[y*width+x]; v < darkest {
				darkest = v
				seed = Dot{X: float64(x), Y: float64(y)}
			}
		}
	}
	return seed
}

// sampleGrid is the acceleration grid of accepted dots. Its cells are small
// enough that no two accepted dots share one, so each holds a single index.
type sampleGrid struct {
	size          float64
	width, height int
	cells         []int
}

func newSampleGrid(width, height int, size float64) *sampleGrid {
	g := &sampleGrid{
		size:   size,
		width:  int(math.Ceil(float64(width) / size)),
		height: int(math.Ceil(float64(height) / size)),
	}
	g.cells = make([]int, g.width*g.height)
	for i := range g.cells {
		g.cells[i] = -1
	}
	return g
}

func (g *sampleGrid) cellOf(d Dot) (int, int) {
	return int(math.Floor(d.X / g.size)), int(math.Floor(d.Y / g.size))
}

func (g *sampleGrid) put(d Dot, index int) {
	gx, gy := g.cellOf(d)
	if gx < 0 || gx >= g.width || gy < 0 || gy >= g.height {
		return
	}
	g.cells[gy*g.width+gx] = index
}

// clear reports whether no accepted dot lies closer than radius to candidate.
func (g *sampleGrid) clear(dots []Dot, candidate Dot, radius float64) bool {
	gx, gy := g.cellOf(candidate)
	reach := int(math.Ceil(radius / g.size))
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			nx, ny := gx+dx, gy+dy
			if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
				continue
			}
			index := g.cells[ny*g.width+nx]
			if index == -1 {
				continue
			}
			neighbor := dots[index]
			ox, oy := candidate.X-neighbor.X, candidate.Y-neighbor.Y
			if math.Sqrt(ox*ox+oy*oy) < radius {
				return false
			}
		}
	}
	return true
}
