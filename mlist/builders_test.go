package mlist

import (
	"testing"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var theta = pt(0.4) // default rule thickness of the demo extension font

func fraction(t dimen.Dimen, left, right noad.Delimiter) *noad.Fraction {
	l := &noad.List{}
	l.Append(noad.NewChar(noad.Ord, 1, 'x'))
	if err := l.Over(t, left, right); err != nil {
		panic(err)
	}
	l.Append(noad.NewChar(noad.Ord, 1, 'n'), noad.NewChar(noad.Ord, 1, 'y'))
	return l.Finish().(*noad.Fraction)
}

func TestFractionClearance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cv, _ := newConversion(t)
	for _, style := range []noad.Style{noad.Display, noad.Text, noad.ScriptCramped} {
		q := fraction(noad.DefaultThickness, noad.NullDelimiter, noad.NullDelimiter)
		cv.makeFraction(q, cv.in(style))
		assert.Equal(t, theta, q.Thickness)
		box := q.Result.(*node.Box)
		require.Equal(t, []node.Type{node.HListType, node.VListType, node.HListType}, types(box.List))
		v := box.List.Link().(*node.Box)
		require.Equal(t, []node.Type{node.HListType, node.KernType, node.RuleType, node.KernType,
			node.HListType}, types(v.List))
		clr := theta
		if style < noad.Text {
			clr = 3 * theta
		}
		items := node.Nodes(v.List)
		assert.GreaterOrEqual(t, items[1].(*node.Kern).Width, clr, "numerator too close in %s", style)
		assert.GreaterOrEqual(t, items[3].(*node.Kern).Width, clr, "denominator too close in %s", style)
		assert.Equal(t, theta, items[2].(*node.Rule).Height)
		assert.Equal(t, items[0].(*node.Box).Width, items[4].(*node.Box).Width, "parts not reboxed")
		vp := node.VPack(v.List, node.Natural, node.Additional)
		assert.Equal(t, v.Height+v.Depth, vp.Height+vp.Depth)
	}
}

func TestFractionWithoutRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cv, _ := newConversion(t)
	q := fraction(0, parens, noad.Delimiter{SmallFam: 0, SmallChar: ')', LargeFam: 3, LargeChar: 0x01})
	mc := cv.in(noad.Display)
	cv.makeFraction(q, mc)
	box := q.Result.(*node.Box)
	items := node.Nodes(box.List)
	require.Len(t, items, 3)
	v := items[1].(*node.Box)
	require.Equal(t, []node.Type{node.HListType, node.KernType, node.HListType}, types(v.List))
	assert.GreaterOrEqual(t, v.List.Link().(*node.Kern).Width, 7*theta)
	left := items[0].(*node.Box)
	assert.GreaterOrEqual(t, left.Height+left.Depth, mc.sy.Delim1)
}

func TestScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cv, _ := newConversion(t)
	mc := cv.in(noad.Text)
	// both scripts
	q := noad.NewChar(noad.Ord, 1, 'x')
	q.Sup, q.Sub = noad.CharField(0, '2'), noad.CharField(1, 'i')
	cv.convertNucleus(q, 0, mc)
	require.Equal(t, []node.Type{node.CharType, node.VListType}, types(q.Result))
	v := q.Result.Link().(*node.Box)
	require.Equal(t, []node.Type{node.HListType, node.KernType, node.HListType}, types(v.List))
	assert.GreaterOrEqual(t, v.List.Link().(*node.Kern).Width, 4*theta, "scripts too close")
	assert.GreaterOrEqual(t, v.Shift, mc.sy.Sub2)
	// superscript only
	for _, style := range []noad.Style{noad.Display, noad.Text, noad.TextCramped} {
		mc := cv.in(style)
		q = noad.NewChar(noad.Ord, 1, 'x')
		q.Sup = noad.CharField(0, '2')
		cv.convertNucleus(q, 0, mc)
		sup := q.Result.Link().(*node.Box)
		expected := mc.sy.Sup2
		if style.IsCramped() {
			expected = mc.sy.Sup3
		} else if style < noad.Text {
			expected = mc.sy.Sup1
		}
		assert.Equal(t, -expected, sup.Shift, "superscript in %s", style)
	}
	// subscript only
	q = noad.NewChar(noad.Ord, 1, 'x')
	q.Sub = noad.CharField(1, 'i')
	cv.convertNucleus(q, 0, mc)
	sub := q.Result.Link().(*node.Box)
	assert.Equal(t, mc.sy.Sub1, sub.Shift)
	i := cv.fonts.Font(cv.fonts.FontForFamily(1, font.ScriptSize)).CharMetrics('i')
	assert.Equal(t, i.Width+i.Italic+DefaultParams().ScriptSpace, sub.Width)
}

func TestScriptsOfBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cv, _ := newConversion(t)
	mc := cv.in(noad.Text)
	b := &node.Box{Kind: node.HListType, Width: 10 * dimen.PT, Height: 20 * dimen.PT, Depth: 5 * dimen.PT}
	q := noad.NewAtom(noad.Ord, noad.BoxField(b))
	q.Sup = noad.CharField(0, '2')
	cv.convertNucleus(q, 0, mc)
	sup := q.Result.Link().(*node.Box)
	drop := cv.symbols(font.ScriptSize).SupDrop
	assert.Equal(t, -(20*dimen.PT - drop), sup.Shift, "superscript hangs from the top of the box")
}

func TestLargeOperatorWithLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cv, _ := newConversion(t)
	q := noad.NewChar(noad.Op, 3, 0x50)
	q.Sub, q.Sup = noad.CharField(1, 'n'), noad.CharField(1, 'n')
	delta := cv.makeOp(q, cv.in(noad.Display))
	assert.Equal(t, dimen.Zero, delta)
	assert.Equal(t, noad.WithLimits, q.Limits)
	assert.Equal(t, font.Code(0x58), q.Nucleus.Char, "expected display size summation sign")
	v, ok := q.Result.(*node.Box)
	require.True(t, ok)
	assert.True(t, v.IsVList())
	assert.Equal(t, pt(14.44446), v.Width)
	require.Equal(t, []node.Type{node.KernType, node.HListType, node.KernType, node.HListType,
		node.KernType, node.HListType, node.KernType}, types(v.List))
	assert.Equal(t, pt(1.0), v.List.(*node.Kern).Width)
	for _, n := range node.Nodes(v.List) {
		if b, ok := n.(*node.Box); ok {
			assert.Equal(t, v.Width, b.Width, "limits are centered")
		}
	}
	// in text style, limits are placed as scripts
	q = noad.NewChar(noad.Op, 3, 0x50)
	q.Sub = noad.CharField(1, 'n')
	cv.makeOp(q, cv.in(noad.Text))
	assert.Equal(t, noad.DisplayLimits, q.Limits)
	assert.Nil(t, q.Result)
	assert.Equal(t, noad.SubBox, q.Nucleus.Type)
}

func TestLargeOperatorItalicCorrection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cv, _ := newConversion(t)
	mc := cv.in(noad.Text)
	q := noad.NewChar(noad.Op, 3, 0x52)
	q.Sub, q.Sup = noad.CharField(1, 'n'), noad.CharField(1, 'n')
	delta := cv.makeOp(q, mc)
	assert.Equal(t, pt(1.38893), delta)
	x := q.Nucleus.Box
	assert.Equal(t, pt(5.55557), x.Width, "italic correction removed for subscript")
	assert.Equal(t, dimen.Half(x.Height-x.Depth)-mc.sy.AxisHeight, x.Shift)
	cv.convertNucleus(q, delta, mc)
	scripts := q.Result.Link().(*node.Box)
	assert.Equal(t, delta, scripts.List.(*node.Box).Shift, "superscript moved right")
}

func TestRadical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cv, _ := newConversion(t)
	q := noad.NewDelim(noad.Radical, noad.Delimiter{SmallFam: 2, SmallChar: 0x70, LargeFam: 3, LargeChar: 0x70})
	q.Nucleus = noad.CharField(1, 'x')
	cv.makeRadical(q, cv.in(noad.Text))
	require.Equal(t, noad.SubBox, q.Nucleus.Type)
	box := q.Nucleus.Box
	require.Equal(t, []node.Type{node.HListType, node.VListType}, types(box.List))
	y := box.List.(*node.Box)
	bar := y.Link().(*node.Box)
	require.Equal(t, []node.Type{node.KernType, node.RuleType, node.KernType, node.HListType},
		types(bar.List))
	assert.Equal(t, y.Height, bar.List.Link().(*node.Rule).Height, "rule as thick as the sign")
	// the rule continues the top of the radical sign
	assert.Equal(t, y.Height-y.Shift, bar.Height-y.Height)
}

func TestMathAccent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cv, _ := newConversion(t)
	mc := cv.in(noad.Text)
	q := noad.NewAtom(noad.Accent, noad.CharField(1, 'a'))
	q.Accent = noad.CharField(0, '^')
	cv.makeMathAccent(q, mc)
	yb := q.Nucleus.Box
	require.NotNil(t, yb)
	require.Equal(t, []node.Type{node.HListType, node.KernType, node.HListType}, types(yb.List))
	acc := yb.List.(*node.Box)
	skew := pt(0.27779)
	assert.Equal(t, skew+dimen.Half(pt(5.28588)-pt(5.00002)), acc.Shift)
	assert.Equal(t, dimen.Zero, acc.Width)
	assert.Equal(t, pt(5.28588), yb.Width)
	assert.Equal(t, -pt(4.30555), acc.Link().(*node.Kern).Width)
	// a wider nucleus gets a wider accent
	q = noad.NewAtom(noad.Accent, noad.ListField(node.List(
		noad.NewChar(noad.Ord, 1, 'a'), noad.NewChar(noad.Ord, 1, 'n'))))
	q.Accent = noad.CharField(3, 0x62)
	cv.makeMathAccent(q, mc)
	acc = q.Nucleus.Box.List.(*node.Box)
	assert.Equal(t, font.Code(0x63), acc.List.(*node.Char).Code)
	// scripts move to the accentee
	q = noad.NewAtom(noad.Accent, noad.CharField(1, 'a'))
	q.Accent = noad.CharField(0, '^')
	q.Sup = noad.CharField(0, '2')
	cv.makeMathAccent(q, mc)
	assert.False(t, q.HasScripts())
	assert.Equal(t, noad.SubBox, q.Nucleus.Type)
}

func TestOverUnderAndVCenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cv, _ := newConversion(t)
	mc := cv.in(noad.Text)
	xh := pt(4.30555)
	q := noad.NewAtom(noad.Over, noad.CharField(1, 'x'))
	cv.makeOver(q, mc)
	b := q.Nucleus.Box
	assert.Equal(t, []node.Type{node.KernType, node.RuleType, node.KernType, node.HListType}, types(b.List))
	assert.Equal(t, xh+5*theta, b.Height)
	q = noad.NewAtom(noad.Under, noad.CharField(1, 'x'))
	cv.makeUnder(q, mc)
	b = q.Nucleus.Box
	assert.Equal(t, []node.Type{node.HListType, node.KernType, node.RuleType}, types(b.List))
	assert.Equal(t, xh, b.Height)
	assert.Equal(t, 5*theta, b.Depth)
	v := &node.Box{Kind: node.VListType, Height: 10 * dimen.PT}
	q = noad.NewAtom(noad.VCenter, noad.BoxField(v))
	cv.makeVCenter(q, mc)
	assert.Equal(t, 7*dimen.PT+dimen.PT/2, v.Height)
	assert.Equal(t, 2*dimen.PT+dimen.PT/2, v.Depth)
	assert.PanicsWithValue(t, ConfusionError{Where: "vcenter"}, func() {
		cv.makeVCenter(noad.NewAtom(noad.VCenter, noad.BoxField(node.NewNullBox())), mc)
	})
}
