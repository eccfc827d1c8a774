package shape

import (
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Op records the outline as a Gio clip operation.
func (p Path) Op(ops *op.Ops) clip.Op {
	var path clip.Path
	path.Begin(ops)
	for _, s := range p {
		switch s.Kind {
		case MoveTo:
			path.MoveTo(s.To)
		case LineTo:
			path.LineTo(s.To)
		case ArcTo:
			for _, c := range s.Arc.Cubics() {
				path.CubeTo(c.Ctrl0, c.Ctrl1, c.To)
			}
		case Close:
			path.Close()
		}
	}
	return clip.Outline{Path: path.End()}.Op()
}
