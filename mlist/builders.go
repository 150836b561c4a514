package mlist

import (
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
)

// makeOver puts a bar over the nucleus.
func (cv *conversion) makeOver(q *noad.Noad, mc mathContext) {
	t := mc.ex.DefaultRuleThickness
	x := cv.cleanBox(q.Nucleus, mc.style.Cramped())
	q.Nucleus = noad.BoxField(overbar(x, 3*t, t))
}

// makeUnder puts a bar under the nucleus.
func (cv *conversion) makeUnder(q *noad.Noad, mc mathContext) {
	t := mc.ex.DefaultRuleThickness
	x := cv.cleanBox(q.Nucleus, mc.style)
	y := node.VPack(node.List(x, node.NewKern(3*t), fractionRule(t)), node.Natural, node.Additional)
	delta := y.Height + y.Depth + t
	y.Height = x.Height
	y.Depth = delta - y.Height
	q.Nucleus = noad.BoxField(y)
}

// makeVCenter centers a vbox on the math axis.
func (cv *conversion) makeVCenter(q *noad.Noad, mc mathContext) {
	v := q.Nucleus.Box
	if q.Nucleus.Type != noad.SubBox || v == nil || !v.IsVList() {
		confusion("vcenter")
	}
	delta := v.Height + v.Depth
	v.Height = mc.sy.AxisHeight + dimen.Half(delta)
	v.Depth = delta - v.Height
}

// makeRadical puts a radical sign in front of the nucleus, with a bar on top
// extending from the sign.
func (cv *conversion) makeRadical(q *noad.Noad, mc mathContext) {
	t := mc.ex.DefaultRuleThickness
	x := cv.cleanBox(q.Nucleus, mc.style.Cramped())
	var clr dimen.Dimen
	if mc.style < noad.Text {
		clr = t + dimen.Abs(mc.sy.XHeight)/4
	} else {
		clr = t + dimen.Abs(t)/4
	}
	y := cv.varDelimiter(q.Delim, mc.size, x.Height+x.Depth+clr+t)
	if delta := y.Depth - (x.Height + x.Depth + clr); delta > 0 {
		clr += dimen.Half(delta) // increase the actual clearance
	}
	y.Shift = -(x.Height + clr)
	y.SetLink(overbar(x, clr, y.Height))
	q.Nucleus = noad.BoxField(node.HPack(y, node.Natural, node.Additional))
}

// makeMathAccent puts an accent over the nucleus. The accent is moved right
// by the kern between the nucleus character and the skew character of its
// font; a wider accent is chosen from the accent's charlist if the nucleus
// is wide enough.
func (cv *conversion) makeMathAccent(q *noad.Noad, mc mathContext) {
	acc, ok := cv.fetch(&q.Accent, mc.size)
	if !ok {
		return
	}
	var s dimen.Dimen // amount to skew the accent to the right
	if q.Nucleus.Type == noad.MathChar {
		if g, ok := cv.fetch(&q.Nucleus, mc.size); ok && g.cm.Tag == font.LigTag {
			skew := g.m.Params().SkewChar
			if step, found := font.FindLigKern(g.m.LigKernProgram(g.c), skew); found && step.IsKern {
				s = step.Kern
			}
		}
	}
	x := cv.cleanBox(q.Nucleus, mc.style.Cramped())
	w, h := x.Width, x.Height
	c, i := acc.c, acc.cm
	for steps := 0; i.Tag == font.ListTag && steps < maxCharlist; steps++ {
		y := i.Remainder
		if !acc.m.CharExists(y) {
			break
		}
		i = acc.m.CharMetrics(y)
		if i.Width > w {
			break
		}
		c = y
	}
	delta := h
	if xh := acc.m.Params().XHeight; h >= xh {
		delta = xh
	}
	if q.HasScripts() && q.Nucleus.Type == noad.MathChar {
		// the scripts go to the accentee, so that the accent is placed
		// over the nucleus together with its scripts
		n := noad.New()
		n.Nucleus, n.Sup, n.Sub = q.Nucleus, q.Sup, q.Sub
		q.Sup, q.Sub = noad.Field{}, noad.Field{}
		q.Nucleus = noad.ListField(n)
		x = cv.cleanBox(q.Nucleus, mc.style)
		delta = delta + x.Height - h
		h = x.Height
	}
	y := charBox(acc.fid, acc.m, c)
	y.Shift = s + dimen.Half(w-y.Width)
	y.Width = 0
	y.SetLink(node.List(node.NewKern(-delta), x))
	yb := node.VPack(y, node.Natural, node.Additional)
	yb.Width = x.Width
	if yb.Height < h {
		k := node.NewKern(h - yb.Height)
		k.SetLink(yb.List)
		yb.List = k
		yb.Height = h
	}
	q.Nucleus = noad.BoxField(yb)
}

// makeFraction typesets a generalized fraction.
func (cv *conversion) makeFraction(q *noad.Fraction, mc mathContext) {
	t := mc.ex.DefaultRuleThickness
	if q.Thickness == noad.DefaultThickness {
		q.Thickness = t
	}
	x := cv.cleanBox(q.Numerator, mc.style.Num())
	z := cv.cleanBox(q.Denominator, mc.style.Denom())
	if x.Width < z.Width {
		x = rebox(x, z.Width)
	} else {
		z = rebox(z, x.Width)
	}
	var shiftUp, shiftDown dimen.Dimen
	switch {
	case mc.style < noad.Text:
		shiftUp, shiftDown = mc.sy.Num1, mc.sy.Denom1
	case q.Thickness != 0:
		shiftUp, shiftDown = mc.sy.Num2, mc.sy.Denom2
	default:
		shiftUp, shiftDown = mc.sy.Num3, mc.sy.Denom2
	}
	axis := mc.sy.AxisHeight
	var delta dimen.Dimen // half the rule thickness
	if q.Thickness == 0 {
		clr := 3 * t
		if mc.style < noad.Text {
			clr = 7 * t
		}
		if d := dimen.Half(clr - ((shiftUp - x.Depth) - (z.Height - shiftDown))); d > 0 {
			shiftUp += d
			shiftDown += d
		}
	} else {
		clr := q.Thickness
		if mc.style < noad.Text {
			clr = 3 * q.Thickness
		}
		delta = dimen.Half(q.Thickness)
		if d := clr - ((shiftUp - x.Depth) - (axis + delta)); d > 0 {
			shiftUp += d
		}
		if d := clr - ((axis - delta) - (z.Height - shiftDown)); d > 0 {
			shiftDown += d
		}
	}
	v := &node.Box{Kind: node.VListType}
	v.Height = shiftUp + x.Height
	v.Depth = z.Depth + shiftDown
	v.Width = x.Width
	if q.Thickness == 0 {
		v.List = node.List(x, node.NewKern((shiftUp-x.Depth)-(z.Height-shiftDown)), z)
	} else {
		v.List = node.List(x,
			node.NewKern((shiftUp-x.Depth)-(axis+delta)),
			fractionRule(q.Thickness),
			node.NewKern((axis-delta)-(z.Height-shiftDown)),
			z)
	}
	size := mc.sy.Delim2
	if mc.style < noad.Text {
		size = mc.sy.Delim1
	}
	left := cv.varDelimiter(q.LeftDelim, mc.size, size)
	right := cv.varDelimiter(q.RightDelim, mc.size, size)
	q.Result = node.HPack(node.List(left, v, right), node.Natural, node.Additional)
}

// makeOp typesets a large operator. In display style a larger variant of an
// operator character is used, if there is one. The operator is centered on
// the axis. With limits, the scripts are stacked above and below the
// operator and the vbox becomes the result of q. Otherwise the italic
// correction of the operator is returned, for the placement of scripts.
func (cv *conversion) makeOp(q *noad.Noad, mc mathContext) dimen.Dimen {
	if q.Limits == noad.DisplayLimits && mc.style < noad.Text {
		q.Limits = noad.WithLimits
	}
	var delta dimen.Dimen
	if q.Nucleus.Type == noad.MathChar {
		g, ok := cv.fetch(&q.Nucleus, mc.size)
		if ok && mc.style < noad.Text && g.cm.Tag == font.ListTag {
			if c := g.cm.Remainder; g.m.CharExists(c) {
				q.Nucleus.Char = c
				g.cm = g.m.CharMetrics(c)
			}
		}
		delta = g.cm.Italic
		x := cv.cleanBox(q.Nucleus, mc.style)
		if !q.Sub.IsEmpty() && q.Limits != noad.WithLimits {
			x.Width -= delta // remove italic correction
		}
		x.Shift = dimen.Half(x.Height-x.Depth) - mc.sy.AxisHeight
		q.Nucleus = noad.BoxField(x)
	}
	if q.Limits == noad.WithLimits {
		cv.stackLimits(q, delta, mc)
	}
	return delta
}

// stackLimits puts the superscript of an operator above and the subscript
// below it, offset horizontally by the operator's italic correction.
func (cv *conversion) stackLimits(q *noad.Noad, delta dimen.Dimen, mc mathContext) {
	ex := mc.ex
	x := cv.cleanBox(q.Sup, mc.style.Sup())
	y := cv.cleanBox(q.Nucleus, mc.style)
	z := cv.cleanBox(q.Sub, mc.style.Sub())
	v := &node.Box{Kind: node.VListType}
	v.Width = dimen.Max(dimen.Max(y.Width, x.Width), z.Width)
	x = rebox(x, v.Width)
	y = rebox(y, v.Width)
	z = rebox(z, v.Width)
	x.Shift = dimen.Half(delta)
	z.Shift = -x.Shift
	v.Height, v.Depth = y.Height, y.Depth
	if q.Sup.IsEmpty() {
		v.List = y
	} else {
		shiftUp := dimen.Max(ex.BigOpSpacing3-x.Depth, ex.BigOpSpacing1)
		v.List = node.List(node.NewKern(ex.BigOpSpacing5), x, node.NewKern(shiftUp), y)
		v.Height += ex.BigOpSpacing5 + x.Height + x.Depth + shiftUp
	}
	if !q.Sub.IsEmpty() {
		shiftDown := dimen.Max(ex.BigOpSpacing4-z.Height, ex.BigOpSpacing2)
		y.SetLink(node.List(node.NewKern(shiftDown), z, node.NewKern(ex.BigOpSpacing5)))
		v.Depth += ex.BigOpSpacing5 + z.Height + z.Depth + shiftDown
	}
	q.Result = v
}

// makeOrd looks at an ordinary character and the character following it.
// If both come from the same family, the ligature/kern program of the first
// character is run: a kern is inserted, or the characters are replaced by a
// ligature. Ligature programs are bounded by Params.MaxLigatureSteps.
func (cv *conversion) makeOrd(q *noad.Noad, mc mathContext) {
	steps := 0
restart:
	for {
		if q.HasScripts() || q.Nucleus.Type != noad.MathChar {
			return
		}
		p, ok := q.Link().(*noad.Noad)
		if !ok || p.Kind > noad.Punct || p.Nucleus.Type != noad.MathChar ||
			p.Nucleus.Fam != q.Nucleus.Fam {
			return
		}
		q.Nucleus.Type = noad.MathTextChar
		g, ok := cv.fetch(&q.Nucleus, mc.size)
		if !ok || g.cm.Tag != font.LigTag {
			return
		}
		cur := p.Nucleus.Char
		for _, step := range g.m.LigKernProgram(g.c) {
			if step.Next != cur {
				continue
			}
			if step.IsKern {
				k := node.NewKern(step.Kern)
				k.SetLink(p)
				q.SetLink(k)
				return
			}
			cv.checkInterrupt()
			if steps++; steps > cv.params.MaxLigatureSteps {
				tracer().Errorf("ligature program of %#x in family %d loops", g.c, q.Nucleus.Fam)
				panic(abort{err: ErrLigatureLoop})
			}
			switch step.Op {
			case font.LigKeepRight, font.LigKeepRightSkip: // =:| and =:|>
				q.Nucleus.Char = step.Remainder
			case font.LigKeepLeft, font.LigKeepLeftSkip: // |=: and |=:>
				p.Nucleus.Char = step.Remainder
			case font.LigInsert, font.LigInsertSkip, font.LigInsertSkipTwice: // |=:|, |=:|>, |=:|>>
				r := noad.NewChar(noad.Ord, q.Nucleus.Fam, step.Remainder)
				if step.Op == font.LigInsertSkipTwice {
					r.Nucleus.Type = noad.MathTextChar
				}
				r.SetLink(p)
				q.SetLink(r)
			default: // =:
				q.SetLink(p.Link())
				q.Nucleus.Char = step.Remainder
				q.Sup, q.Sub = p.Sup, p.Sub
			}
			if step.Op > font.LigInsert {
				return
			}
			q.Nucleus.Type = noad.MathChar
			continue restart
		}
		return
	}
}
