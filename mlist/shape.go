package mlist

import (
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
)

// maxCharlist bounds the walk along a charlist of successively larger
// characters. Font loaders are expected to reject cyclic charlists, but in
// memory fonts are not checked.
const maxCharlist = 256

// glyph is a character fetched from a math family.
type glyph struct {
	fid font.ID
	m   font.Metrics
	c   font.Code
	cm  font.CharMetrics
}

// fetch looks up the character of a math field in the current size. If the
// family has no font or the font lacks the character, a diagnostic is
// recorded and f is made empty.
func (cv *conversion) fetch(f *noad.Field, s font.Size) (glyph, bool) {
	g := glyph{c: f.Char}
	g.fid = cv.fonts.FontForFamily(f.Fam, s)
	if g.fid != font.NullFont {
		g.m = cv.fonts.Font(g.fid)
	}
	if g.m == nil {
		cv.undefinedFamily(f.Fam, s, f.Char)
		f.Type = noad.Empty
		return glyph{}, false
	}
	if !g.m.CharExists(g.c) {
		cv.missingCharacter(f.Fam, s, g.fid, g.c)
		f.Type = noad.Empty
		return glyph{}, false
	}
	g.cm = g.m.CharMetrics(g.c)
	return g, true
}

// fractionRule is a horizontal rule of thickness t, as wide as its box.
func fractionRule(t dimen.Dimen) *node.Rule {
	r := node.NewRule()
	r.Height, r.Depth = t, 0
	return r
}

// overbar puts a rule of thickness t above box b, separated by clearance k,
// with additional space t above the rule.
func overbar(b *node.Box, k, t dimen.Dimen) *node.Box {
	list := node.List(node.NewKern(t), fractionRule(t), node.NewKern(k), b)
	return node.VPack(list, node.Natural, node.Additional)
}

// charBox packs a single character into an hbox. The width of the box
// includes the italic correction, the character node does not.
func charBox(fid font.ID, m font.Metrics, c font.Code) *node.Box {
	cm := m.CharMetrics(c)
	b := node.NewNullBox()
	b.Width = cm.Width + cm.Italic
	b.Height, b.Depth = cm.Height, cm.Depth
	b.List = node.NewChar(fid, m, c)
	return b
}

// stackIntoBox puts a character box on top of the contents of vbox b.
func stackIntoBox(b *node.Box, fid font.ID, m font.Metrics, c font.Code) {
	p := charBox(fid, m, c)
	p.SetLink(b.List)
	b.List = p
	b.Height = p.Height
}

func heightPlusDepth(m font.Metrics, c font.Code) dimen.Dimen {
	cm := m.CharMetrics(c)
	return cm.Height + cm.Depth
}

// varDelimiter builds a delimiter of total size at least v, if the fonts
// allow for it, and centers it on the math axis. The small variant of d is
// tried first, then the large one; for each, all sizes from s down to text
// size are searched, following charlists towards larger characters. An
// extensible character ends the search.
func (cv *conversion) varDelimiter(d noad.Delimiter, s font.Size, v dimen.Dimen) *node.Box {
	var best glyph
	var ext bool
	var w dimen.Dimen
	fam, c := d.SmallFam, d.SmallChar
	large := false
search:
	for {
		if fam != 0 || c != 0 {
			for z := s; ; z-- {
				fid := cv.fonts.FontForFamily(fam, z)
				if m := cv.fonts.Font(fid); m != nil {
					y := c
					for steps := 0; steps < maxCharlist && m.CharExists(y); steps++ {
						cm := m.CharMetrics(y)
						if cm.Tag == font.ExtTag {
							best, ext = glyph{fid: fid, m: m, c: y, cm: cm}, true
							break search
						}
						if u := cm.Height + cm.Depth; u > w {
							best, w = glyph{fid: fid, m: m, c: y, cm: cm}, u
							if u >= v {
								break search
							}
						}
						if cm.Tag != font.ListTag {
							break
						}
						y = cm.Remainder
					}
				}
				if z == font.TextSize {
					break
				}
			}
		}
		if large {
			break
		}
		large = true
		fam, c = d.LargeFam, d.LargeChar
	}
	var b *node.Box
	switch {
	case best.m == nil:
		b = node.NewNullBox()
		b.Width = cv.params.NullDelimiterSpace
	case ext:
		b = buildExtensible(best, v)
	default:
		b = charBox(best.fid, best.m, best.c)
	}
	b.Shift = dimen.Half(b.Height-b.Depth) - cv.symbols(s).AxisHeight
	tracer().Debugf("delimiter %s for %s is %s+%s", d, v, b.Height, b.Depth)
	return b
}

// buildExtensible stacks the pieces of an extensible character into a vbox
// of height plus depth at least v.
func buildExtensible(g glyph, v dimen.Dimen) *node.Box {
	r := g.m.ExtensibleRecipe(g.c)
	b := &node.Box{Kind: node.VListType}
	rep := g.m.CharMetrics(r.Rep)
	b.Width = rep.Width + rep.Italic
	u := rep.Height + rep.Depth
	var w dimen.Dimen
	for _, piece := range []font.Code{r.Bot, r.Mid, r.Top} {
		if piece != 0 {
			w += heightPlusDepth(g.m, piece)
		}
	}
	n := 0
	if u > 0 {
		for w < v {
			w += u
			n++
			if r.Mid != 0 {
				w += u
			}
		}
	}
	if r.Bot != 0 {
		stackIntoBox(b, g.fid, g.m, r.Bot)
	}
	for i := 0; i < n; i++ {
		stackIntoBox(b, g.fid, g.m, r.Rep)
	}
	if r.Mid != 0 {
		stackIntoBox(b, g.fid, g.m, r.Mid)
		for i := 0; i < n; i++ {
			stackIntoBox(b, g.fid, g.m, r.Rep)
		}
	}
	if r.Top != 0 {
		stackIntoBox(b, g.fid, g.m, r.Top)
	}
	b.Depth = w - b.Height
	return b
}

// rebox centers the contents of box b in a new hbox of width w. A box
// holding a single character gets a kern for the character's italic
// correction first, so that the correction is not lost.
func rebox(b *node.Box, w dimen.Dimen) *node.Box {
	if b.Width == w || b.List == nil {
		b.Width = w
		return b
	}
	if b.IsVList() {
		b = node.HPack(b, node.Natural, node.Additional)
	}
	p := b.List
	if c, ok := p.(*node.Char); ok && c.Link() == nil {
		c.SetLink(node.NewKern(b.Width - c.Width))
	}
	left := node.NewGlue(node.SSGlue)
	left.SetLink(p)
	node.Last(p).SetLink(node.NewGlue(node.SSGlue))
	return node.HPack(left, w, node.Exactly)
}

// mathGlue converts glue in math units to ordinary glue, with m the width
// of 1mu.
func mathGlue(g node.GlueSpec, m dimen.Dimen) node.GlueSpec {
	r := g
	r.Width = dimen.MuMult(g.Width, m)
	if g.StretchOrder == node.OrderNormal {
		r.Stretch = dimen.MuMult(g.Stretch, m)
	}
	if g.ShrinkOrder == node.OrderNormal {
		r.Shrink = dimen.MuMult(g.Shrink, m)
	}
	return r
}

// mathKern converts a kern in math units to an explicit kern.
func mathKern(k *node.Kern, m dimen.Dimen) {
	if k.Subtype == node.MuKern {
		k.Width = dimen.MuMult(k.Width, m)
		k.Subtype = node.KernExplicit
	}
}

// cleanBox typesets a math field in style s and returns a box with shift
// zero.
func (cv *conversion) cleanBox(f noad.Field, s noad.Style) *node.Box {
	var q node.Node
	switch f.Type {
	case noad.MathChar, noad.MathTextChar:
		n := noad.New()
		n.Nucleus = f
		q = cv.mlistToHList(n, s, false)
	case noad.SubBox:
		if f.Box != nil {
			q = f.Box
		}
	case noad.SubMList:
		q = cv.mlistToHList(f.List, s, false)
	default:
		q = node.NewNullBox()
	}
	var x *node.Box
	if b, ok := q.(*node.Box); ok && b.Link() == nil && b.Shift == 0 {
		x = b
	} else {
		x = node.HPack(q, node.Natural, node.Additional)
	}
	// a lone character does not need its italic correction as a kern
	if c, ok := x.List.(*node.Char); ok {
		if r := c.Link(); r != nil && r.Link() == nil {
			if _, isKern := r.(*node.Kern); isKern {
				c.SetLink(nil)
			}
		}
	}
	return x
}
