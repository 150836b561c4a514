/*
Package memfont provides fonts described entirely in memory.

A memfont.Font behaves like a font read from a TeX font metric file, without
needing one: characters, ligature/kern programs, charlists and extensible
recipes are set up programmatically. This is handy for tests and for
experimenting with the math list converter; see Demo for a small font set
modelled after Computer Modern.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package memfont

import (
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.math'
func tracer() tracing.Trace {
	return tracing.Select("tyse.math")
}

// Font is an in-memory font.
type Font struct {
	Name    string
	chars   map[font.Code]font.CharMetrics
	ligkern map[font.Code][]font.LigKern
	ext     map[font.Code]font.Recipe
	params  font.Params
}

var _ font.Metrics = (*Font)(nil)

// NewFont creates an empty font without a skew character.
func NewFont(name string) *Font {
	return &Font{
		Name:    name,
		chars:   make(map[font.Code]font.CharMetrics),
		ligkern: make(map[font.Code][]font.LigKern),
		ext:     make(map[font.Code]font.Recipe),
		params:  font.Params{SkewChar: font.NoSkewChar},
	}
}

// SetChar defines (or redefines) character c. Any tag is cleared.
func (f *Font) SetChar(c font.Code, w, h, d, ic dimen.Dimen) *Font {
	f.chars[c] = font.CharMetrics{Width: w, Height: h, Depth: d, Italic: ic}
	delete(f.ligkern, c)
	delete(f.ext, c)
	return f
}

// SetNextLarger links c to a larger variant next.
func (f *Font) SetNextLarger(c, next font.Code) *Font {
	if cm, ok := f.tagged(c, font.ListTag); ok {
		cm.Remainder = next
		f.chars[c] = cm
	}
	return f
}

// SetLigKern sets the ligature/kern program of c.
func (f *Font) SetLigKern(c font.Code, steps ...font.LigKern) *Font {
	if _, ok := f.tagged(c, font.LigTag); ok {
		f.ligkern[c] = steps
	}
	return f
}

// SetExtensible makes c an extensible character built from recipe r.
func (f *Font) SetExtensible(c font.Code, r font.Recipe) *Font {
	if _, ok := f.tagged(c, font.ExtTag); ok {
		f.ext[c] = r
	}
	return f
}

// SetParams sets the font parameters.
func (f *Font) SetParams(p font.Params) *Font {
	f.params = p
	return f
}

func (f *Font) tagged(c font.Code, tag font.Tag) (font.CharMetrics, bool) {
	cm, ok := f.chars[c]
	if !ok {
		tracer().Errorf("font %s: cannot tag undefined character %#x", f.Name, c)
		return cm, false
	}
	if cm.Tag != font.NoTag && cm.Tag != tag {
		tracer().Infof("font %s: tag of character %#x changes from %d to %d", f.Name, c, cm.Tag, tag)
		delete(f.ligkern, c)
		delete(f.ext, c)
		cm.Remainder = 0
	}
	cm.Tag = tag
	f.chars[c] = cm
	return cm, true
}

// CharExists is part of interface font.Metrics.
func (f *Font) CharExists(c font.Code) bool {
	_, ok := f.chars[c]
	return ok
}

// CharMetrics is part of interface font.Metrics.
func (f *Font) CharMetrics(c font.Code) font.CharMetrics {
	return f.chars[c]
}

// LigKernProgram is part of interface font.Metrics.
func (f *Font) LigKernProgram(c font.Code) []font.LigKern {
	return f.ligkern[c]
}

// ExtensibleRecipe is part of interface font.Metrics.
func (f *Font) ExtensibleRecipe(c font.Code) font.Recipe {
	return f.ext[c]
}

// Params is part of interface font.Metrics.
func (f *Font) Params() font.Params {
	return f.params
}

// Scaled returns a copy of f with every dimension multiplied by num/denom,
// the way a font at design size is loaded "at" a different size.
func (f *Font) Scaled(name string, num, denom int) *Font {
	sc := func(d dimen.Dimen) dimen.Dimen {
		v, _ := dimen.XnOverD(d, num, denom)
		return v
	}
	g := NewFont(name)
	for c, cm := range f.chars {
		cm.Width, cm.Height, cm.Depth, cm.Italic = sc(cm.Width), sc(cm.Height), sc(cm.Depth), sc(cm.Italic)
		g.chars[c] = cm
	}
	for c, prog := range f.ligkern {
		steps := make([]font.LigKern, len(prog))
		for i, step := range prog {
			step.Kern = sc(step.Kern)
			steps[i] = step
		}
		g.ligkern[c] = steps
	}
	for c, r := range f.ext {
		g.ext[c] = r
	}
	p := f.params
	p.Space, p.XHeight, p.Quad = sc(p.Space), sc(p.XHeight), sc(p.Quad)
	if p.Sy != nil {
		sy := *p.Sy
		for _, d := range []*dimen.Dimen{&sy.XHeight, &sy.Quad, &sy.Num1, &sy.Num2, &sy.Num3,
			&sy.Denom1, &sy.Denom2, &sy.Sup1, &sy.Sup2, &sy.Sup3, &sy.Sub1, &sy.Sub2,
			&sy.SupDrop, &sy.SubDrop, &sy.Delim1, &sy.Delim2, &sy.AxisHeight} {
			*d = sc(*d)
		}
		p.Sy = &sy
	}
	if p.Ex != nil {
		ex := *p.Ex
		for _, d := range []*dimen.Dimen{&ex.DefaultRuleThickness, &ex.BigOpSpacing1,
			&ex.BigOpSpacing2, &ex.BigOpSpacing3, &ex.BigOpSpacing4, &ex.BigOpSpacing5} {
			*d = sc(*d)
		}
		p.Ex = &ex
	}
	g.params = p
	return g
}
