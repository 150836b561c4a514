package mlist

import (
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
)

// makeScripts attaches the subscript and superscript of q to its translated
// nucleus. delta is the italic correction of the nucleus, which moves the
// superscript to the right.
func (cv *conversion) makeScripts(q *noad.Noad, delta dimen.Dimen, mc mathContext) {
	sy := mc.sy
	p := q.Result
	var shiftUp, shiftDown dimen.Dimen
	if _, isChar := p.(*node.Char); !isChar {
		z := node.HPack(p, node.Natural, node.Additional)
		t := font.ScriptScriptSize
		if mc.style < noad.Script {
			t = font.ScriptSize
		}
		st := cv.symbols(t)
		shiftUp = z.Height - st.SupDrop
		shiftDown = z.Depth + st.SubDrop
	}
	var x *node.Box
	if q.Sup.IsEmpty() {
		// subscript only
		x = cv.cleanBox(q.Sub, mc.style.Sub())
		x.Width += cv.params.ScriptSpace
		shiftDown = dimen.Max(shiftDown, sy.Sub1)
		shiftDown = dimen.Max(shiftDown, x.Height-dimen.Abs(sy.XHeight*4)/5)
		x.Shift = shiftDown
	} else {
		x = cv.cleanBox(q.Sup, mc.style.Sup())
		x.Width += cv.params.ScriptSpace
		clr := sy.Sup2
		if mc.style.IsCramped() {
			clr = sy.Sup3
		} else if mc.style < noad.Text {
			clr = sy.Sup1
		}
		shiftUp = dimen.Max(shiftUp, clr)
		shiftUp = dimen.Max(shiftUp, x.Depth+dimen.Abs(sy.XHeight)/4)
		if q.Sub.IsEmpty() {
			x.Shift = -shiftUp
		} else {
			// both scripts: keep a gap of at least four rule thicknesses
			// between them
			y := cv.cleanBox(q.Sub, mc.style.Sub())
			y.Width += cv.params.ScriptSpace
			shiftDown = dimen.Max(shiftDown, sy.Sub2)
			t := mc.ex.DefaultRuleThickness
			clr = 4*t - ((shiftUp - x.Depth) - (y.Height - shiftDown))
			if clr > 0 {
				shiftDown += clr
				clr = dimen.Abs(sy.XHeight*4)/5 - (shiftUp - x.Depth)
				if clr > 0 {
					shiftUp += clr
					shiftDown -= clr
				}
			}
			x.Shift = delta // superscript is delta to the right of the subscript
			list := node.List(x, node.NewKern((shiftUp-x.Depth)-(y.Height-shiftDown)), y)
			x = node.VPack(list, node.Natural, node.Additional)
			x.Shift = shiftDown
		}
	}
	q.Result = node.Append(q.Result, x)
}

// makeLeftRight sizes the delimiter of a \left or \right noad to cover the
// maximum height and depth of the mlist, symmetrically around the axis. It
// returns the kind of atom the delimiter is spaced as.
func (cv *conversion) makeLeftRight(q *noad.Noad, style noad.Style, maxD, maxH dimen.Dimen) noad.Kind {
	mc := cv.in(style)
	delta2 := maxD + mc.sy.AxisHeight
	delta1 := maxH + maxD - delta2
	if delta2 > delta1 {
		delta1 = delta2 // delta1 is max distance from axis
	}
	delta := (delta1 / 500) * dimen.Dimen(cv.params.DelimiterFactor)
	delta2 = delta1 + delta1 - cv.params.DelimiterShortfall
	if delta < delta2 {
		delta = delta2
	}
	q.Result = cv.varDelimiter(q.Delim, mc.size, delta)
	if q.Kind == noad.Left {
		return noad.Open
	}
	return noad.Close
}
