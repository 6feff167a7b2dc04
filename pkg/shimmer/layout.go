package shimmer

// Direction is the ambient reading order the sweep adapts to.
type Direction int

const (
	// LeftToRight sweeps the band from the top-left toward the
	// bottom-right corner.
	LeftToRight Direction = iota
	// RightToLeft mirrors the same motion horizontally: the band enters
	// beyond the top-right corner and exits past the bottom-left.
	RightToLeft
)

// String returns the direction name for flags and logs.
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Point is a coordinate in the unit square covering the content. Values
// outside [0, 1] place the band beyond the visible region, which is how it
// enters and exits smoothly.
type Point struct {
	X, Y float64
}

// Coordinates maps a discrete controller state onto the band's start/end
// unit-square coordinates. For LeftToRight the resting band sits beyond the
// top-left corner by the band size and the running band has fully exited
// past the bottom-right; RightToLeft mirrors the x axis. Pure function,
// recomputed whenever direction or state changes.
func Coordinates(dir Direction, state State, band float64) (start, end Point) {
	if state == Running {
		start = Point{X: 1, Y: 1}
		end = Point{X: 1 + band, Y: 1 + band}
	} else {
		start = Point{X: -band, Y: -band}
		end = Point{X: 0, Y: 0}
	}
	if dir == RightToLeft {
		start.X = 1 - start.X
		end.X = 1 - end.X
	}
	return start, end
}

// CoordinatesAt interpolates the band placement between its resting and
// running coordinates by progress in [0, 1].
func CoordinatesAt(dir Direction, progress, band float64) (start, end Point) {
	rs, re := Coordinates(dir, Resting, band)
	ss, se := Coordinates(dir, Running, band)
	return lerpPoint(rs, ss, progress), lerpPoint(re, se, progress)
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
