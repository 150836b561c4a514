/*
Package sfntfont presents a parsed TrueType or OpenType font as font.Metrics.

SFNT fonts do not know about TeX's ligature/kern programs, charlists or
extensible recipes. Kerning pairs are read from the font's kern table and
converted into per-character kern programs, restricted to a probe alphabet.
Charlists and extensible recipes may be supplied by clients, as may the math
parameter sets needed for fonts in families 2 and 3.

A Font is not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sfntfont

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'tyse.math'
func tracer() tracing.Trace {
	return tracing.Select("tyse.math")
}

func errSFNT(format string, args ...interface{}) error {
	return fmt.Errorf("sfnt metrics: "+format, args...)
}

// DefaultProbeAlphabet is the set of characters searched for kerning pairs.
const DefaultProbeAlphabet = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// Font wraps an SFNT font at a given size.
type Font struct {
	otf      *sfnt.Font
	buf      sfnt.Buffer
	ppem     fixed.Int26_6
	size     dimen.Dimen
	params   font.Params
	probe    []font.Code
	chars    map[font.Code]font.CharMetrics
	programs map[font.Code][]font.LigKern
	larger   map[font.Code]font.Code
	recipes  map[font.Code]font.Recipe
}

var _ font.Metrics = (*Font)(nil)

// Option configures a Font.
type Option func(*Font)

// WithSymbolParams makes the font usable in math family 2.
func WithSymbolParams(sy *font.SymbolParams) Option {
	return func(f *Font) { f.params.Sy = sy }
}

// WithExtensionParams makes the font usable in math family 3.
func WithExtensionParams(ex *font.ExtensionParams) Option {
	return func(f *Font) { f.params.Ex = ex }
}

// WithSkewChar sets the skew character used for placing math accents.
func WithSkewChar(c font.Code) Option {
	return func(f *Font) { f.params.SkewChar = c }
}

// WithProbeAlphabet sets the characters searched for kerning pairs.
func WithProbeAlphabet(alphabet string) Option {
	return func(f *Font) {
		f.probe = f.probe[:0]
		for _, r := range alphabet {
			f.probe = append(f.probe, font.Code(r))
		}
	}
}

// WithNextLarger links character c to a larger variant next.
func WithNextLarger(c, next font.Code) Option {
	return func(f *Font) { f.larger[c] = next }
}

// WithExtensible makes character c extensible, built from recipe r.
func WithExtensible(c font.Code, r font.Recipe) Option {
	return func(f *Font) { f.recipes[c] = r }
}

// New wraps otf at size (the size of one em).
func New(otf *sfnt.Font, size dimen.Dimen, opts ...Option) (*Font, error) {
	if otf == nil {
		return nil, errors.New("sfnt metrics: no font")
	}
	if size <= 0 {
		return nil, errSFNT("illegal font size %s", size)
	}
	f := &Font{
		otf:      otf,
		ppem:     size.Fixed(),
		size:     size,
		chars:    make(map[font.Code]font.CharMetrics),
		programs: make(map[font.Code][]font.LigKern),
		larger:   make(map[font.Code]font.Code),
		recipes:  make(map[font.Code]font.Recipe),
	}
	f.params.SkewChar = font.NoSkewChar
	WithProbeAlphabet(DefaultProbeAlphabet)(f)
	for _, opt := range opts {
		opt(f)
	}
	if f.params.SkewChar != font.NoSkewChar {
		f.probe = append(f.probe, f.params.SkewChar)
	}
	m, err := otf.Metrics(&f.buf, f.ppem, xfont.HintingNone)
	if err != nil {
		return nil, errSFNT("cannot read font metrics: %w", err)
	}
	f.params.XHeight = dimen.FromFixed(m.XHeight)
	f.params.Quad = size
	if gid, err := otf.GlyphIndex(&f.buf, ' '); err == nil && gid != 0 {
		if adv, err := otf.GlyphAdvance(&f.buf, gid, f.ppem, xfont.HintingNone); err == nil {
			f.params.Space = dimen.FromFixed(adv)
		}
	}
	if post := otf.PostTable(); post != nil && post.ItalicAngle != 0 {
		slant := math.Tan(-post.ItalicAngle * math.Pi / 180)
		f.params.Slant = dimen.Dimen(math.Round(slant * float64(dimen.PT)))
	}
	tracer().Debugf("SFNT font at %s: x-height %s, space %s", size, f.params.XHeight, f.params.Space)
	return f, nil
}

// Size returns the size the font is scaled to.
func (f *Font) Size() dimen.Dimen {
	return f.size
}

func (f *Font) glyph(c font.Code) sfnt.GlyphIndex {
	gid, err := f.otf.GlyphIndex(&f.buf, rune(c))
	if err != nil {
		return 0
	}
	return gid
}

// CharExists is part of interface font.Metrics.
func (f *Font) CharExists(c font.Code) bool {
	return f.glyph(c) != 0
}

// CharMetrics is part of interface font.Metrics. Height and depth are taken
// from the glyph's bounding box, the italic correction is the amount by which
// the glyph's ink extends beyond its advance width.
func (f *Font) CharMetrics(c font.Code) font.CharMetrics {
	if cm, ok := f.chars[c]; ok {
		return cm
	}
	var cm font.CharMetrics
	gid := f.glyph(c)
	if gid == 0 {
		return cm
	}
	bounds, adv, err := f.otf.GlyphBounds(&f.buf, gid, f.ppem, xfont.HintingNone)
	if err != nil {
		tracer().Errorf("cannot measure glyph for %#U: %v", rune(c), err)
		return cm
	}
	cm.Width = dimen.FromFixed(adv)
	cm.Height = dimen.Max(0, dimen.FromFixed(-bounds.Min.Y))
	cm.Depth = dimen.Max(0, dimen.FromFixed(bounds.Max.Y))
	cm.Italic = dimen.Max(0, dimen.FromFixed(bounds.Max.X-adv))
	switch {
	case f.recipes[c] != (font.Recipe{}):
		cm.Tag = font.ExtTag
	case f.larger[c] != 0:
		cm.Tag, cm.Remainder = font.ListTag, f.larger[c]
	case len(f.LigKernProgram(c)) > 0:
		cm.Tag = font.LigTag
	}
	f.chars[c] = cm
	return cm
}

// LigKernProgram is part of interface font.Metrics. SFNT fonts have no
// ligature instructions, therefore the program consists of kerns only.
func (f *Font) LigKernProgram(c font.Code) []font.LigKern {
	if prog, ok := f.programs[c]; ok {
		return prog
	}
	var prog []font.LigKern
	if left := f.glyph(c); left != 0 {
		for _, next := range f.probe {
			right := f.glyph(next)
			if right == 0 {
				continue
			}
			k, err := f.otf.Kern(&f.buf, left, right, f.ppem, xfont.HintingNone)
			if err == nil && k != 0 {
				prog = append(prog, font.LigKern{Next: next, IsKern: true, Kern: dimen.FromFixed(k)})
			}
		}
	}
	f.programs[c] = prog
	return prog
}

// ExtensibleRecipe is part of interface font.Metrics.
func (f *Font) ExtensibleRecipe(c font.Code) font.Recipe {
	return f.recipes[c]
}

// Params is part of interface font.Metrics.
func (f *Font) Params() font.Params {
	return f.params
}
