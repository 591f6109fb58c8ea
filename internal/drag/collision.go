package drag

import "math"

// Point is a terminal cell coordinate.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle in terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X, r.Y + r.Height},
		{r.X + r.Width, r.Y + r.Height},
	}
}

func (r Rect) centerY() float64 {
	return float64(r.Y) + float64(r.Height)/2
}

// cornerDistance sums the distances between the matching corners of two
// rectangles. The candidate with the smallest sum is the nearest-corner
// collision winner.
func cornerDistance(a, b Rect) float64 {
	ac, bc := a.corners(), b.corners()
	var total float64
	for i := range ac {
		dx := float64(ac[i].X - bc[i].X)
		dy := float64(ac[i].Y - bc[i].Y)
		total += math.Hypot(dx, dy)
	}
	return total
}

// CardRect is the rendered bounding box of one card.
type CardRect struct {
	ID     string
	Bounds Rect
}

// ColumnRect is the rendered bounding box of one column and its cards.
type ColumnRect struct {
	ID     string
	Bounds Rect
	Cards  []CardRect
}

// Layout mirrors the geometry of the last render pass. The view binder
// rebuilds it whenever columns, cards, or the window size change, so the
// collision test always runs against what the user actually sees.
type Layout struct {
	Columns []ColumnRect
}

// ClosestColumnIndex returns the index of the column whose corners are
// nearest to the probe rectangle, or -1 when the layout is empty.
func (l *Layout) ClosestColumnIndex(probe Rect) int {
	best := -1
	bestDist := math.Inf(1)
	for i, col := range l.Columns {
		if d := cornerDistance(probe, col.Bounds); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// cardTarget resolves the probe to a card slot: the target column plus the
// insertion index within it. Index len(cards) means "past the last card".
func (l *Layout) cardTarget(probe Rect) (Target, bool) {
	ci := l.ClosestColumnIndex(probe)
	if ci == -1 {
		return Target{}, false
	}
	col := l.Columns[ci]

	if len(col.Cards) == 0 {
		return Target{ColumnID: col.ID, Index: 0}, true
	}

	best := 0
	bestDist := math.Inf(1)
	for i, card := range col.Cards {
		if d := cornerDistance(probe, card.Bounds); d < bestDist {
			bestDist = d
			best = i
		}
	}

	// Below the midpoint of the last card counts as an append.
	last := col.Cards[len(col.Cards)-1]
	if best == len(col.Cards)-1 && probe.centerY() > last.Bounds.centerY() {
		return Target{ColumnID: col.ID, Index: len(col.Cards)}, true
	}

	return Target{ColumnID: col.ID, Index: best}, true
}

func pointProbe(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, Width: 1, Height: 1}
}
