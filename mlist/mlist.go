/*
Package mlist converts math lists into horizontal lists.

A math list (mlist) is a linked list of noads, style and choice nodes,
generalized fractions and ordinary nodes, as collected by a parser from a
formula. Converting it into an hlist is done in two passes, as described in
"TeX: The Program", §719 ff.

The first pass walks the mlist, typesets every noad into a box or a list of
nodes (its result) and tracks the maximum height and depth of the results.
Radicals, accents, fractions, large operators, over- and underlines and
scripts are built here, using the parameters of the math fonts in families 2
and 3. Binary operators are turned into ordinary atoms where their context
makes a binary reading impossible.

The second pass sizes \left and \right delimiters, inserts inter-atom glue
from the spacing table and adds penalties after binary operators and
relations, if requested.

# Usage

	conv := mlist.NewConverter(fonts, mlist.DefaultParams())
	hlist, err := conv.Convert(ctx, list, noad.Text, true)

A Converter is not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package mlist

import (
	"context"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.math'
func tracer() tracing.Trace {
	return tracing.Select("tyse.math")
}

// Converter converts mlists to hlists, using the fonts of a font provider.
type Converter struct {
	fonts  font.Provider
	params Params
	diags  []Diagnostic
}

// NewConverter creates a converter for fonts from provider p.
func NewConverter(p font.Provider, params Params) *Converter {
	return &Converter{fonts: p, params: params}
}

// Params returns the parameters of the converter.
func (c *Converter) Params() Params {
	return c.params
}

// Diagnostics returns the diagnostics of the most recent call to Convert.
func (c *Converter) Diagnostics() []Diagnostic {
	return c.diags
}

// Convert translates mlist, typeset in style, into an hlist. If penalties is
// true, penalties are inserted after binary operators and relations.
//
// The noads of mlist are consumed: their result fields are overwritten and
// the nodes they contain are re-linked into the hlist returned.
//
// Missing characters and undefined families do not stop the conversion.
// They are reported as diagnostics (see Diagnostics) and the affected fields
// are treated as empty. Convert returns an error if the parameters or the
// math fonts are insufficient, if the mlist is malformed (ErrConfusion), if a ligature
// program does not terminate (ErrLigatureLoop) or if ctx is cancelled.
func (c *Converter) Convert(ctx context.Context, mlist node.Node, style noad.Style,
	penalties bool) (hlist node.Node, err error) {
	//
	c.diags = nil
	if style > noad.ScriptScriptCramped {
		return nil, errMath("illegal style %d", style)
	}
	if c.params.MaxLigatureSteps <= 0 {
		return nil, errMath("parameter %s must be positive", KeyMaxLigatureSteps)
	}
	if err = font.CheckMathFonts(c.fonts); err != nil {
		return nil, err
	}
	cv := &conversion{ctx: ctx, fonts: c.fonts, params: &c.params}
	defer func() {
		c.diags = cv.diags
		if r := recover(); r != nil {
			switch x := r.(type) {
			case ConfusionError:
				tracer().Errorf("%v", x)
				hlist, err = nil, x
			case abort:
				tracer().Errorf("math list conversion aborted: %v", x.err)
				hlist, err = nil, x.err
			default:
				panic(r)
			}
		}
	}()
	tracer().Debugf("converting mlist in %s", style)
	hlist = cv.mlistToHList(mlist, style, penalties)
	return hlist, nil
}

// --- Conversion state ------------------------------------------------------

// conversion holds the state of a single call to Convert.
type conversion struct {
	ctx    context.Context
	fonts  font.Provider
	params *Params
	diags  []Diagnostic
}

// abort carries an error out of a deeply nested conversion.
type abort struct {
	err error
}

func (cv *conversion) checkInterrupt() {
	if cv.ctx == nil {
		return
	}
	if err := cv.ctx.Err(); err != nil {
		panic(abort{err: err})
	}
}

func confusion(where string) {
	panic(ConfusionError{Where: where})
}

// mathContext is the current style together with everything derived from it.
type mathContext struct {
	style noad.Style
	size  font.Size
	mu    dimen.Dimen // width of 1mu
	sy    *font.SymbolParams
	ex    *font.ExtensionParams
}

// in returns the math context for style s. CheckMathFonts guarantees that
// families 2 and 3 carry parameters in every size.
func (cv *conversion) in(s noad.Style) mathContext {
	mc := mathContext{style: s, size: s.Size()}
	mc.sy = cv.symbols(mc.size)
	mc.ex = cv.fonts.Font(cv.fonts.FontForFamily(3, mc.size)).Params().Ex
	mc.mu, _ = dimen.XOverN(mc.sy.Quad, 18)
	return mc
}

func (cv *conversion) symbols(s font.Size) *font.SymbolParams {
	return cv.fonts.Font(cv.fonts.FontForFamily(2, s)).Params().Sy
}
