// Package shape builds the skewed card silhouette used as a clip mask on
// the shelf cards.
//
// Coordinates are y-down: (0,0) is the top-left corner of the rectangle and
// angles grow clockwise on screen, so 270° points up and 0° points right.
package shape

import (
	"math"

	"gioui.org/f32"
)

// DefaultCornerRadius is the corner radius of the rounded outline.
const DefaultCornerRadius = 12

// Size is the rectangle an outline is built in.
type Size struct {
	W, H float32
}

// SegmentKind identifies a path segment.
type SegmentKind int

const (
	MoveTo SegmentKind = iota
	LineTo
	ArcTo
	Close
)

// Segment is one step of a Path. To is used by MoveTo and LineTo, Arc by ArcTo.
type Segment struct {
	Kind SegmentKind
	To   f32.Point
	Arc  Arc
}

// Arc is a circular arc swept from Start to End degrees around Center.
type Arc struct {
	Center     f32.Point
	Radius     float32
	Start, End float32 // degrees
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max f32.Point
}

// Path is a closed outline.
type Path []Segment

// Outline returns the parallelogram silhouette of a card of the given size.
//
// Unflipped it is a sharp quadrilateral skewed by depth on the top and bottom
// edges. Flipped it is built from four quarter arcs of cornerRadius joined by
// straight edges. depth and cornerRadius are not validated; values larger
// than the rectangle give degenerate geometry.
func Outline(size Size, depth float32, flipped bool, cornerRadius float32) Path {
	w, h, r := size.W, size.H, cornerRadius

	if !flipped {
		return Path{
			{Kind: MoveTo, To: f32.Pt(0, depth)},
			{Kind: LineTo, To: f32.Pt(w, 0)},
			{Kind: LineTo, To: f32.Pt(w, h-depth)},
			{Kind: LineTo, To: f32.Pt(0, h)},
			{Kind: Close},
		}
	}

	arcs := [4]Arc{
		{Center: f32.Pt(r, r), Radius: r, Start: 180, End: 270},
		{Center: f32.Pt(w-r, depth+r), Radius: r, Start: -90, End: 0},
		{Center: f32.Pt(w-r, h-r), Radius: r, Start: 0, End: 90},
		{Center: f32.Pt(r, h-depth-r), Radius: r, Start: 90, End: 180},
	}

	p := Path{{Kind: MoveTo, To: f32.Pt(0, 0)}}
	for _, a := range arcs {
		p = append(p,
			Segment{Kind: LineTo, To: a.StartPoint()},
			Segment{Kind: ArcTo, Arc: a},
		)
	}
	return append(p, Segment{Kind: Close})
}

// End returns the point a segment leaves the pen at. Close has no end point
// of its own and reports the zero point.
func (s Segment) End() f32.Point {
	if s.Kind == ArcTo {
		return s.Arc.EndPoint()
	}
	return s.To
}

// Vertices returns the end point of every non-Close segment in order.
func (p Path) Vertices() []f32.Point {
	pts := make([]f32.Point, 0, len(p))
	for _, s := range p {
		if s.Kind == Close {
			continue
		}
		pts = append(pts, s.End())
	}
	return pts
}

// Bounds returns the smallest rectangle holding every vertex and arc extreme.
func (p Path) Bounds() Rect {
	first := true
	var b Rect
	add := func(pt f32.Point) {
		if first {
			b = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		b.Min.X = min(b.Min.X, pt.X)
		b.Min.Y = min(b.Min.Y, pt.Y)
		b.Max.X = max(b.Max.X, pt.X)
		b.Max.Y = max(b.Max.Y, pt.Y)
	}
	for _, s := range p {
		switch s.Kind {
		case MoveTo, LineTo:
			add(s.To)
		case ArcTo:
			add(s.Arc.StartPoint())
			add(s.Arc.EndPoint())
			// Quarter arcs that cross an axis reach the circle's extreme there.
			for deg := float32(-270); deg <= 360; deg += 90 {
				if s.Arc.sweeps(deg) {
					add(s.Arc.pointAt(deg))
				}
			}
		}
	}
	return b
}

// StartPoint is where the arc begins.
func (a Arc) StartPoint() f32.Point { return a.pointAt(a.Start) }

// EndPoint is where the arc ends.
func (a Arc) EndPoint() f32.Point { return a.pointAt(a.End) }

func (a Arc) pointAt(deg float32) f32.Point {
	rad := float64(deg) * math.Pi / 180
	return f32.Pt(
		a.Center.X+a.Radius*float32(math.Cos(rad)),
		a.Center.Y+a.Radius*float32(math.Sin(rad)),
	)
}

func (a Arc) sweeps(deg float32) bool {
	lo, hi := min(a.Start, a.End), max(a.Start, a.End)
	return deg > lo && deg < hi
}

// Cubic is a cubic Bézier segment; the start point is the previous pen
// position.
type Cubic struct {
	Ctrl0, Ctrl1, To f32.Point
}

// Cubics approximates the arc with one cubic Bézier per quarter turn or less.
func (a Arc) Cubics() []Cubic {
	sweep := a.End - a.Start
	n := int(math.Ceil(math.Abs(float64(sweep)) / 90))
	if n == 0 {
		return nil
	}
	step := sweep / float32(n)
	// Control distance for a unit circle arc of angle θ is 4/3·tan(θ/4).
	k := float32(4.0 / 3.0 * math.Tan(float64(step)*math.Pi/180/4))

	out := make([]Cubic, 0, n)
	for i := 0; i < n; i++ {
		a0 := a.Start + step*float32(i)
		a1 := a0 + step
		p0, p1 := a.pointAt(a0), a.pointAt(a1)
		t0, t1 := tangent(a0), tangent(a1)
		r := a.Radius * k
		out = append(out, Cubic{
			Ctrl0: p0.Add(t0.Mul(r)),
			Ctrl1: p1.Sub(t1.Mul(r)),
			To:    p1,
		})
	}
	return out
}

// tangent is the unit direction of increasing angle at deg.
func tangent(deg float32) f32.Point {
	rad := float64(deg) * math.Pi / 180
	return f32.Pt(float32(-math.Sin(rad)), float32(math.Cos(rad)))
}
