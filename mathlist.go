package mathlist

import (
	"context"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/mlist"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
)

type options struct {
	params   mlist.Params
	surround dimen.Dimen
	style    noad.Style
}

// Option configures ToHList and FormulaBox.
type Option func(*options)

// WithParams sets the math parameters. The default is mlist.DefaultParams().
func WithParams(p mlist.Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithMathSurround sets the width of the math nodes around an inline formula
// (TeX's \mathsurround).
func WithMathSurround(d dimen.Dimen) Option {
	return func(o *options) {
		o.surround = d
	}
}

// WithStyle sets the starting style of a formula. Inline formulas start in
// text style, displayed formulas in display style.
func WithStyle(s noad.Style) Option {
	return func(o *options) {
		o.style = s
	}
}

func collect(style noad.Style, opts []Option) options {
	o := options{params: mlist.DefaultParams(), style: style}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToHList converts an inline formula into an hlist. Penalties are inserted
// after binary operators and relations, and the result is enclosed in a pair
// of math nodes, as TeX does for formulas within a paragraph.
//
// Diagnostics for missing characters or undefined families are returned
// alongside the hlist; they do not make the conversion fail.
func ToHList(ctx context.Context, fonts font.Provider, list node.Node,
	opts ...Option) (node.Node, []mlist.Diagnostic, error) {
	//
	o := collect(noad.Text, opts)
	conv := mlist.NewConverter(fonts, o.params)
	hlist, err := conv.Convert(ctx, list, o.style, true)
	if err != nil {
		return nil, conv.Diagnostics(), err
	}
	before := node.NewMath(o.surround, node.MathBefore)
	after := node.NewMath(o.surround, node.MathAfter)
	node.Append(before, hlist)
	node.Append(before, after)
	tracer().Debugf("inline formula with %d items", node.Length(hlist))
	return before, conv.Diagnostics(), nil
}

// FormulaBox converts a displayed formula and packs it into a box of natural
// width. No penalties are inserted, as a display is never broken.
func FormulaBox(ctx context.Context, fonts font.Provider, list node.Node,
	opts ...Option) (*node.Box, []mlist.Diagnostic, error) {
	//
	o := collect(noad.Display, opts)
	conv := mlist.NewConverter(fonts, o.params)
	hlist, err := conv.Convert(ctx, list, o.style, false)
	if err != nil {
		return nil, conv.Diagnostics(), err
	}
	b := node.HPack(hlist, node.Natural, node.Additional)
	tracer().Debugf("display formula box %s x %s + %s", b.Width, b.Height, b.Depth)
	return b, conv.Diagnostics(), nil
}
