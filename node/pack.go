package node

import "github.com/npillmayer/mathlist/dimen"

// PackMode tells how the size argument of HPack and VPack is interpreted.
type PackMode uint8

// Pack modes.
const (
	Exactly    PackMode = iota // the box gets exactly the given size
	Additional                 // the given size is added to the natural size
)

// Natural is the size argument for a box of natural size, used together
// with Additional.
const Natural dimen.Dimen = 0

type glueTotals struct {
	stretch [4]dimen.Dimen
	shrink  [4]dimen.Dimen
}

func (t *glueTotals) add(g GlueSpec) {
	t.stretch[g.StretchOrder] += g.Stretch
	t.shrink[g.ShrinkOrder] += g.Shrink
}

// HPack packs an hlist into a box. Ordinary glue is set so that the box
// gets width w (Exactly) or its natural width plus w (Additional).
func HPack(list Node, w dimen.Dimen, mode PackMode) *Box {
	b := &Box{Kind: HListType, List: list}
	var x, h, d dimen.Dimen
	var totals glueTotals
	for p := list; p != nil; p = p.Link() {
		switch n := p.(type) {
		case *Char:
			x += n.Width
			h = dimen.Max(h, n.Height)
			d = dimen.Max(d, n.Depth)
		case *Box:
			x += n.Width
			h = dimen.Max(h, n.Height-n.Shift)
			d = dimen.Max(d, n.Depth+n.Shift)
		case *Rule:
			x += n.Width
			h = dimen.Max(h, n.Height)
			d = dimen.Max(d, n.Depth)
		case *Glue:
			x += n.Spec.Width
			totals.add(n.Spec)
		case *Kern:
			x += n.Width
		case *Math:
			x += n.Width
		}
	}
	b.Height, b.Depth = h, d
	if mode == Additional {
		w += x
	}
	b.Width = w
	setGlue(b, w-x, &totals)
	return b
}

// VPack packs a vlist into a box of height h (Exactly) or of natural height
// plus h (Additional). The depth of the box is the depth of its last item.
func VPack(list Node, h dimen.Dimen, mode PackMode) *Box {
	return vpackage(list, h, mode, dimen.MaxDimen)
}

func vpackage(list Node, h dimen.Dimen, mode PackMode, maxDepth dimen.Dimen) *Box {
	b := &Box{Kind: VListType, List: list}
	var w, x, d dimen.Dimen
	var totals glueTotals
	for p := list; p != nil; p = p.Link() {
		switch n := p.(type) {
		case *Box:
			x += d + n.Height
			d = n.Depth
			w = dimen.Max(w, n.Width+n.Shift)
		case *Rule:
			x += d + n.Height
			d = n.Depth
			w = dimen.Max(w, n.Width)
		case *Glue:
			x += d + n.Spec.Width
			d = 0
			totals.add(n.Spec)
		case *Kern:
			x += d + n.Width
			d = 0
		case *Char:
			tracer().Errorf("vpack: character %#x in vertical list", n.Code)
		}
	}
	b.Width = w
	if d > maxDepth {
		x += d - maxDepth
		b.Depth = maxDepth
	} else {
		b.Depth = d
	}
	if mode == Additional {
		h += x
	}
	b.Height = h
	setGlue(b, h-x, &totals)
	return b
}

// setGlue determines the glue setting of a box, given the excess of its
// target size over its natural size.
func setGlue(b *Box, excess dimen.Dimen, totals *glueTotals) {
	b.GlueSign, b.GlueOrder, b.GlueSet = GlueNormal, OrderNormal, 0
	if excess == 0 {
		return
	}
	if excess > 0 {
		o := highestOrder(&totals.stretch)
		b.GlueOrder = o
		if totals.stretch[o] != 0 {
			b.GlueSign = Stretching
			b.GlueSet = float64(excess) / float64(totals.stretch[o])
		}
		return
	}
	o := highestOrder(&totals.shrink)
	b.GlueOrder = o
	if totals.shrink[o] != 0 {
		b.GlueSign = Shrinking
		b.GlueSet = float64(-excess) / float64(totals.shrink[o])
		if o == OrderNormal && totals.shrink[o] < -excess && b.List != nil {
			b.GlueSet = 1.0 // overfull
		}
	}
}

func highestOrder(t *[4]dimen.Dimen) Order {
	for o := Filll; o > OrderNormal; o-- {
		if t[o] != 0 {
			return o
		}
	}
	return OrderNormal
}
