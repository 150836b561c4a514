package mlist

import (
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
)

// outcome tells the first pass how to continue after an item has been
// dispatched.
type outcome uint8

const (
	convertNucleus  outcome = iota // typeset the nucleus and attach scripts
	checkDimensions                // the result is complete, measure it
	doneWithNoad                   // remember the noad as the previous one
	doneWithNode                   // not a noad, go on
)

// firstPass is the state of the first pass over an mlist.
type firstPass struct {
	style      noad.Style  // style the mlist is typeset in
	mc         mathContext // current style
	r          node.Node   // most recent noad
	rKind      noad.Kind   // kind of r, Op at the start
	maxH, maxD dimen.Dimen
}

// kindOf returns the kind of a noad. A fraction counts as an inner atom.
func kindOf(q node.Node) noad.Kind {
	if n, ok := q.(*noad.Noad); ok {
		return n.Kind
	}
	return noad.Inner
}

// finalBinToOrd turns the previous noad into an ordinary atom if it is a
// binary operator, as there is no operand following it.
func (fp *firstPass) finalBinToOrd() {
	if fp.rKind == noad.Bin {
		fp.r.(*noad.Noad).Kind = noad.Ord
	}
}

// mlistToHList is the recursive workhorse of Convert.
func (cv *conversion) mlistToHList(mlist node.Node, style noad.Style, penalties bool) node.Node {
	cv.checkInterrupt()
	head := node.NewKern(0) // temporary head
	head.SetLink(mlist)
	fp := cv.firstPass(head, style)
	return cv.secondPass(head.Link(), style, penalties, fp.maxH, fp.maxD)
}

// firstPass typesets every noad of the list following head and measures
// the results.
func (cv *conversion) firstPass(head node.Node, style noad.Style) *firstPass {
	fp := &firstPass{style: style, mc: cv.in(style), rKind: noad.Op}
	for prev, q := head, head.Link(); q != nil; prev, q = q, q.Link() {
		if c, ok := q.(*noad.Choice); ok {
			q = choose(c, prev, fp.mc.style)
		}
		var delta dimen.Dimen
		var out outcome
		switch n := q.(type) {
		case *noad.Noad:
			out, delta = cv.dispatch(n, fp)
		case *noad.Fraction:
			cv.makeFraction(n, fp.mc)
			out = checkDimensions
		case *noad.StyleNode:
			fp.mc = cv.in(n.Style)
			out = doneWithNode
		case *node.Ins, *node.Mark, *node.Adjust, *node.Whatsit, *node.Penalty, *node.Disc:
			out = doneWithNode
		case *node.Rule:
			fp.maxH = dimen.Max(fp.maxH, n.Height)
			fp.maxD = dimen.Max(fp.maxD, n.Depth)
			out = doneWithNode
		case *node.Glue:
			cv.glueInMath(n, fp.mc)
			out = doneWithNode
		case *node.Kern:
			mathKern(n, fp.mc.mu)
			out = doneWithNode
		default:
			tracer().Errorf("unexpected %s in math list", q.Type())
			confusion("mlist1")
		}
		switch out {
		case convertNucleus:
			cv.convertNucleus(q.(*noad.Noad), delta, fp.mc)
			fallthrough
		case checkDimensions:
			z := node.HPack(resultOf(q), node.Natural, node.Additional)
			fp.maxH = dimen.Max(fp.maxH, z.Height)
			fp.maxD = dimen.Max(fp.maxD, z.Depth)
			fallthrough
		case doneWithNoad:
			fp.r, fp.rKind = q, kindOf(q)
			if fp.rKind == noad.Right {
				// a \right acts like a \left for what follows it
				fp.rKind = noad.Left
				fp.mc = cv.in(style)
			}
		}
	}
	fp.finalBinToOrd()
	return fp
}

// dispatch decides how to typeset a noad, building radicals, accents,
// operators and the like.
func (cv *conversion) dispatch(q *noad.Noad, fp *firstPass) (outcome, dimen.Dimen) {
	mc := fp.mc
	switch q.Kind {
	case noad.Bin:
		switch fp.rKind {
		case noad.Bin, noad.Op, noad.Rel, noad.Open, noad.Punct, noad.Left:
			q.Kind = noad.Ord
			return cv.dispatch(q, fp)
		}
	case noad.Rel, noad.Close, noad.Punct, noad.Right:
		fp.finalBinToOrd()
		if q.Kind == noad.Right {
			return doneWithNoad, 0
		}
	case noad.Left:
		return doneWithNoad, 0
	case noad.Op:
		delta := cv.makeOp(q, mc)
		if q.Limits == noad.WithLimits {
			return checkDimensions, delta
		}
		return convertNucleus, delta
	case noad.Ord:
		cv.makeOrd(q, mc)
	case noad.Open, noad.Inner:
	case noad.Radical:
		cv.makeRadical(q, mc)
	case noad.Over:
		cv.makeOver(q, mc)
	case noad.Under:
		cv.makeUnder(q, mc)
	case noad.Accent:
		cv.makeMathAccent(q, mc)
	case noad.VCenter:
		cv.makeVCenter(q, mc)
	default:
		confusion("mlist1")
	}
	return convertNucleus, 0
}

// choose replaces choice node c, which follows prev, by a style node of the
// current style followed by the alternative for style s.
func choose(c *noad.Choice, prev node.Node, s noad.Style) node.Node {
	next := c.Link()
	alt := c.Select(s)
	sn := noad.NewStyle(s)
	sn.SetLink(node.Append(alt, next))
	prev.SetLink(sn)
	tracer().Debugf("choice resolved for %s", s)
	return sn
}

// glueInMath converts math glue and removes glue or a kern following a
// \nonscript glue in script styles.
func (cv *conversion) glueInMath(g *node.Glue, mc mathContext) {
	if g.Subtype == node.MuGlue {
		g.Spec = mathGlue(g.Spec, mc.mu)
		g.Subtype = node.GlueNormalType
		return
	}
	if mc.size == font.TextSize || g.Subtype != node.CondMath {
		return
	}
	switch p := g.Link().(type) {
	case *node.Glue:
		g.SetLink(p.Link())
	case *node.Kern:
		g.SetLink(p.Link())
	}
}

// convertNucleus typesets the nucleus of q into its result and attaches the
// scripts.
func (cv *conversion) convertNucleus(q *noad.Noad, delta dimen.Dimen, mc mathContext) {
	var p node.Node
	switch q.Nucleus.Type {
	case noad.MathChar, noad.MathTextChar:
		if g, ok := cv.fetch(&q.Nucleus, mc.size); ok {
			delta = g.cm.Italic
			c := node.NewChar(g.fid, g.m, g.c)
			p = c
			if q.Nucleus.Type == noad.MathTextChar && g.m.Params().Space != 0 {
				delta = 0 // no italic correction in mid-word of text font
			}
			if q.Sub.IsEmpty() && delta != 0 {
				c.SetLink(node.NewKern(delta))
				delta = 0
			}
		}
	case noad.Empty:
	case noad.SubBox:
		if b := q.Nucleus.Box; b != nil {
			p = b
		}
	case noad.SubMList:
		hlist := cv.mlistToHList(q.Nucleus.List, mc.style, false)
		p = node.HPack(hlist, node.Natural, node.Additional)
	default:
		confusion("mlist2")
	}
	q.Result = p
	if q.HasScripts() {
		cv.makeScripts(q, delta, mc)
	}
}

func resultOf(q node.Node) node.Node {
	switch n := q.(type) {
	case *noad.Noad:
		return n.Result
	case *noad.Fraction:
		return n.Result
	}
	return nil
}

// secondPass assembles the hlist from the results of the first pass,
// inserting inter-atom glue and penalties.
func (cv *conversion) secondPass(mlist node.Node, style noad.Style, penalties bool,
	maxH, maxD dimen.Dimen) node.Node {
	//
	head := node.NewKern(0)
	var tail node.Node = head
	mc := cv.in(style)
	var rKind noad.Kind
	first := true
	for q := mlist; q != nil; {
		next := q.Link()
		t, pen := noad.Ord, node.InfPenalty
		var result node.Node
		switch n := q.(type) {
		case *noad.Noad:
			result = n.Result
			switch n.Kind {
			case noad.Op, noad.Open, noad.Close, noad.Punct, noad.Inner:
				t = n.Kind
			case noad.Bin:
				t, pen = noad.Bin, cv.params.BinOpPenalty
			case noad.Rel:
				t, pen = noad.Rel, cv.params.RelPenalty
			case noad.Ord, noad.VCenter, noad.Over, noad.Under, noad.Radical, noad.Accent:
			case noad.Left, noad.Right:
				t = cv.makeLeftRight(n, style, maxD, maxH)
				result = n.Result
				mc = cv.in(style)
			default:
				confusion("mlist3")
			}
		case *noad.Fraction:
			t, result = noad.Inner, n.Result
		case *noad.StyleNode:
			mc = cv.in(n.Style)
			q = next
			continue
		case *node.Whatsit, *node.Penalty, *node.Rule, *node.Disc, *node.Adjust,
			*node.Ins, *node.Mark, *node.Glue, *node.Kern:
			q.SetLink(nil)
			tail.SetLink(q)
			tail = q
			q = next
			continue
		default:
			confusion("mlist3")
		}
		if !first {
			if g := cv.interAtomGlue(rKind, t, mc); g != nil {
				tail.SetLink(g)
				tail = g
			}
		}
		if result != nil {
			tail.SetLink(result)
			tail = node.Last(result)
		}
		if penalties && next != nil && pen < node.InfPenalty && !breaksAnyway(next) {
			p := node.NewPenalty(pen)
			tail.SetLink(p)
			tail = p
		}
		if n, ok := q.(*noad.Noad); ok && n.Kind == noad.Right {
			t = noad.Open
		}
		rKind, first = t, false
		q.SetLink(nil)
		q = next
	}
	return head.Link()
}

// breaksAnyway is true if no penalty is needed in front of n.
func breaksAnyway(n node.Node) bool {
	switch x := n.(type) {
	case *node.Penalty:
		return true
	case *noad.Noad:
		return x.Kind == noad.Rel
	}
	return false
}
