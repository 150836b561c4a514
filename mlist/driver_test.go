package mlist

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/font/memfont"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ConverterTestEnviron struct {
	suite.Suite
	fonts *font.Table
	conv  *Converter
}

// listen for 'go test' command --> run test methods
func TestConverterFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	suite.Run(t, new(ConverterTestEnviron))
}

// run once, before test suite methods
func (env *ConverterTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("tyse.math").SetTraceLevel(tracing.LevelError)
	env.fonts = memfont.Demo()
	tracing.Select("tyse.math").SetTraceLevel(tracing.LevelInfo)
}

// run before every test, as conversions modify the converter's diagnostics
func (env *ConverterTestEnviron) SetupTest() {
	env.conv = NewConverter(env.fonts, DefaultParams())
}

func (env *ConverterTestEnviron) convert(style noad.Style, penalties bool, items ...node.Node) node.Node {
	hlist, err := env.conv.Convert(context.Background(), node.List(items...), style, penalties)
	env.Require().NoError(err)
	return hlist
}

func (env *ConverterTestEnviron) mu(s font.Size) dimen.Dimen {
	quad := env.fonts.Font(env.fonts.FontForFamily(2, s)).Params().Sy.Quad
	mu, _ := dimen.XOverN(quad, 18)
	return mu
}

func ord(fam int, c font.Code) *noad.Noad { return noad.NewChar(noad.Ord, fam, c) }
func bin(c font.Code) *noad.Noad          { return noad.NewChar(noad.Bin, 0, c) }
func rel(c font.Code) *noad.Noad          { return noad.NewChar(noad.Rel, 0, c) }

// --- Tests -----------------------------------------------------------------

func (env *ConverterTestEnviron) TestSingleCharacter() {
	hlist := env.convert(noad.Text, false, ord(1, 'x'))
	env.Equal(1, node.Length(hlist))
	c, ok := hlist.(*node.Char)
	env.Require().True(ok)
	env.Equal(font.Code('x'), c.Code)
	env.Equal(env.fonts.FontForFamily(1, font.TextSize), c.Font)
	env.Empty(env.conv.Diagnostics())
}

func (env *ConverterTestEnviron) TestItalicCorrection() {
	hlist := env.convert(noad.Text, false, ord(1, 'f'))
	env.Equal([]node.Type{node.CharType, node.KernType}, types(hlist))
	env.Equal(pt(1.0764), hlist.Link().(*node.Kern).Width)
}

func (env *ConverterTestEnviron) TestBinarySpacing() {
	hlist := env.convert(noad.Text, false, ord(1, 'x'), bin('+'), ord(1, 'n'))
	env.Equal([]node.Type{node.CharType, node.GlueType, node.CharType, node.GlueType, node.CharType},
		types(hlist))
	g := hlist.Link().(*node.Glue)
	env.Equal(node.MedMuSkip, g.Subtype)
	env.Equal(mathGlue(DefaultParams().MedMuSkip, env.mu(font.TextSize)), g.Spec)
	// medium space is conditional
	hlist = env.convert(noad.Script, false, ord(1, 'x'), bin('+'), ord(1, 'n'))
	env.Equal([]node.Type{node.CharType, node.CharType, node.CharType}, types(hlist))
}

func (env *ConverterTestEnviron) TestBinBecomesOrd() {
	// leading binary operator
	hlist := env.convert(noad.Text, false, bin('+'), ord(1, 'x'))
	env.Equal([]node.Type{node.CharType, node.CharType}, types(hlist))
	// trailing binary operator
	hlist = env.convert(noad.Text, false, ord(1, 'x'), bin('+'))
	env.Equal([]node.Type{node.CharType, node.CharType}, types(hlist))
	// binary operator followed by a relation
	q := bin('+')
	hlist = env.convert(noad.Text, false, ord(1, 'x'), q, rel('='), ord(1, 'n'))
	env.Equal(noad.Ord, q.Kind)
	env.Equal([]node.Type{node.CharType, node.CharType, node.GlueType, node.CharType,
		node.GlueType, node.CharType}, types(hlist))
	// two binary operators in a row
	q1, q2 := bin('+'), bin('+')
	hlist = env.convert(noad.Text, false, ord(1, 'x'), q1, q2, ord(1, 'n'))
	env.Equal(noad.Bin, q1.Kind)
	env.Equal(noad.Ord, q2.Kind)
	env.Equal([]node.Type{node.CharType, node.GlueType, node.CharType, node.GlueType,
		node.CharType, node.CharType}, types(hlist))
}

func (env *ConverterTestEnviron) TestPenalties() {
	hlist := env.convert(noad.Text, true, ord(1, 'x'), rel('='), ord(1, 'n'), bin('+'), ord(1, 'a'))
	expected := []node.Type{node.CharType, node.GlueType, node.CharType, node.PenaltyType,
		node.GlueType, node.CharType, node.GlueType, node.CharType, node.PenaltyType,
		node.GlueType, node.CharType}
	env.Equal(expected, types(hlist))
	nodes := node.Nodes(hlist)
	env.Equal(500, nodes[3].(*node.Penalty).Value)
	env.Equal(700, nodes[8].(*node.Penalty).Value)
	// no penalty in front of another relation or at the end
	hlist = env.convert(noad.Text, true, ord(1, 'x'), rel('='), rel('='), ord(1, 'n'), rel('='))
	count := 0
	for _, n := range node.Nodes(hlist) {
		if n.Type() == node.PenaltyType {
			count++
		}
	}
	env.Equal(1, count)
}

func (env *ConverterTestEnviron) TestLigatureAndKern() {
	hlist := env.convert(noad.Text, false, ord(0, 'f'), ord(0, 'i'))
	env.Equal(1, node.Length(hlist))
	env.Equal(font.Code(0x0C), hlist.(*node.Char).Code, "expected fi ligature")
	hlist = env.convert(noad.Text, false, ord(0, 'f'), ord(0, 'f'), ord(0, 'i'))
	env.Equal([]node.Type{node.CharType, node.CharType}, types(hlist))
	env.Equal(font.Code(0x0B), hlist.(*node.Char).Code, "expected ff ligature")
	// no italic correction within a word of a text font, but a font kern
	hlist = env.convert(noad.Text, false, ord(0, 'f'), ord(0, ')'))
	env.Equal([]node.Type{node.CharType, node.KernType, node.CharType}, types(hlist))
	env.Equal(pt(0.77779), hlist.Link().(*node.Kern).Width)
}

func (env *ConverterTestEnviron) TestDisplayOperatorWithLimits() {
	op := noad.NewChar(noad.Op, 3, 0x50)
	op.Limits = noad.WithLimits
	op.Sub = noad.CharField(1, 'n')
	hlist := env.convert(noad.Display, true, ord(1, 'x'), op, ord(1, 'y'))
	env.Equal([]node.Type{node.CharType, node.GlueType, node.VListType, node.GlueType,
		node.CharType, node.KernType}, types(hlist))
	nodes := node.Nodes(hlist)
	for _, i := range []int{1, 3} {
		g := nodes[i].(*node.Glue)
		env.Equal(node.ThinMuSkip, g.Subtype)
		env.Equal(mathGlue(DefaultParams().ThinMuSkip, env.mu(font.TextSize)), g.Spec)
	}
	env.Equal(font.Code(0x58), op.Nucleus.Char, "expected display size summation sign")
	// the operator is centered on the axis of the text size
	v := nodes[2].(*node.Box)
	y, ok := v.List.(*node.Box)
	env.Require().True(ok)
	var x *node.Box
	for _, n := range node.Nodes(y.List) {
		if b, ok := n.(*node.Box); ok {
			x = b
			break
		}
	}
	env.Require().NotNil(x)
	axis := env.fonts.Font(env.fonts.FontForFamily(2, font.TextSize)).Params().Sy.AxisHeight
	env.Equal(dimen.Half(x.Height-x.Depth)-axis, x.Shift)
}

func (env *ConverterTestEnviron) TestUndefinedOperator() {
	op := noad.NewChar(noad.Op, 9, 0x50)
	hlist, err := env.conv.Convert(context.Background(), node.List(ord(1, 'x'), op), noad.Display, false)
	env.Require().NoError(err)
	env.Require().Len(env.conv.Diagnostics(), 1)
	env.Equal(UndefinedFamily, env.conv.Diagnostics()[0].Kind)
	env.Equal(node.CharType, hlist.Type())
}

func (env *ConverterTestEnviron) TestLigatureStepsMustBePositive() {
	conv := NewConverter(env.fonts, Params{})
	_, err := conv.Convert(context.Background(), ord(1, 'x'), noad.Text, false)
	env.Error(err)
	params := DefaultParams()
	params.MaxLigatureSteps = -1
	conv = NewConverter(env.fonts, params)
	_, err = conv.Convert(context.Background(), ord(1, 'x'), noad.Text, false)
	env.Error(err)
}

func (env *ConverterTestEnviron) TestLigatureLoop() {
	f := memfont.NewFont("loop")
	f.SetChar('a', dimen.PT, dimen.PT, 0, 0).SetChar('b', dimen.PT, dimen.PT, 0, 0)
	f.SetLigKern('a', font.LigKern{Next: 'b', Op: font.LigKeepRight, Remainder: 'a'})
	tab := memfont.Demo()
	id := tab.Register(f)
	for s := font.TextSize; s <= font.ScriptScriptSize; s++ {
		tab.SetFamily(4, s, id)
	}
	params := DefaultParams()
	params.MaxLigatureSteps = 50
	conv := NewConverter(tab, params)
	_, err := conv.Convert(context.Background(), node.List(ord(4, 'a'), ord(4, 'b')), noad.Text, false)
	env.ErrorIs(err, ErrLigatureLoop)
}

func (env *ConverterTestEnviron) TestDiagnostics() {
	hlist := env.convert(noad.Text, false, ord(1, 'x'), ord(9, 'x'), ord(1, 'Q'))
	env.Equal(1, node.Length(hlist), "undefined characters are dropped")
	expected := []Diagnostic{
		{Kind: UndefinedFamily, Size: font.TextSize, Fam: 9, Char: 'x'},
		{Kind: MissingCharacter, Size: font.TextSize, Fam: 1, Char: 'Q'},
	}
	if diff := cmp.Diff(expected, env.conv.Diagnostics(), cmpopts.IgnoreFields(Diagnostic{}, "Message")); diff != "" {
		env.T().Errorf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

func (env *ConverterTestEnviron) TestConfusion() {
	q := noad.NewAtom(noad.VCenter, noad.CharField(1, 'x'))
	_, err := env.conv.Convert(context.Background(), q, noad.Text, false)
	env.ErrorIs(err, ErrConfusion)
	var ce ConfusionError
	env.Require().True(errors.As(err, &ce))
	env.Equal("vcenter", ce.Where)
	_, err = env.conv.Convert(context.Background(), noad.NewChoice(), noad.Text, false)
	env.NoError(err, "an empty choice is fine")
	_, err = env.conv.Convert(context.Background(), &node.Box{Kind: node.HListType}, noad.Text, false)
	env.ErrorIs(err, ErrConfusion)
}

func (env *ConverterTestEnviron) TestPreconditions() {
	_, err := env.conv.Convert(context.Background(), ord(1, 'x'), noad.Style(8), false)
	env.Error(err)
	conv := NewConverter(font.NewTable(), DefaultParams())
	_, err = conv.Convert(context.Background(), ord(1, 'x'), noad.Text, false)
	env.ErrorIs(err, font.ErrInsufficientSymbolFonts)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = env.conv.Convert(ctx, ord(1, 'x'), noad.Text, false)
	env.ErrorIs(err, context.Canceled)
}

func (env *ConverterTestEnviron) TestChoice() {
	c := noad.NewChoice()
	c.Display, c.Text = ord(1, 'a'), ord(1, 'n')
	c.Script, c.ScriptScript = ord(1, 'x'), ord(1, 'b')
	hlist := env.convert(noad.TextCramped, false, ord(1, 'x'), c)
	env.Equal(2, node.Length(hlist))
	env.Equal(font.Code('n'), hlist.Link().(*node.Char).Code)
}

func (env *ConverterTestEnviron) TestStyleChange() {
	hlist := env.convert(noad.Text, false, ord(1, 'x'), noad.NewStyle(noad.Script), ord(1, 'x'))
	env.Equal(2, node.Length(hlist), "style nodes are removed")
	env.Equal(env.fonts.FontForFamily(1, font.ScriptSize), hlist.Link().(*node.Char).Font)
}

func (env *ConverterTestEnviron) TestMuGlue() {
	g := node.NewGlue(node.GlueSpec{Width: 18 * dimen.MU})
	g.Subtype = node.MuGlue
	k := &node.Kern{Width: 9 * dimen.MU, Subtype: node.MuKern}
	env.convert(noad.Script, false, ord(1, 'x'), g, k, ord(1, 'x'))
	env.Equal(node.GlueNormalType, g.Subtype)
	env.Equal(18*env.mu(font.ScriptSize), g.Spec.Width)
	env.Equal(node.KernExplicit, k.Subtype)
	env.Equal(9*env.mu(font.ScriptSize), k.Width)
}

func (env *ConverterTestEnviron) TestNonScriptGlue() {
	mk := func() (*node.Glue, *node.Kern) {
		g := node.NewGlue(node.ZeroGlue)
		g.Subtype = node.CondMath
		return g, node.NewKern(dimen.PT)
	}
	g, k := mk()
	hlist := env.convert(noad.Text, false, ord(1, 'x'), g, k, ord(1, 'x'))
	env.Equal(4, node.Length(hlist))
	g, k = mk()
	hlist = env.convert(noad.Script, false, ord(1, 'x'), g, k, ord(1, 'x'))
	env.Equal([]node.Type{node.CharType, node.GlueType, node.CharType}, types(hlist))
}

func (env *ConverterTestEnviron) TestLeftRight() {
	left := noad.NewDelim(noad.Left, parens)
	right := noad.NewDelim(noad.Right, noad.Delimiter{SmallFam: 0, SmallChar: ')', LargeFam: 3, LargeChar: 0x01})
	inner := noad.NewAtom(noad.Inner, noad.ListField(node.List(left, ord(1, 'x'), right)))
	hlist := env.convert(noad.Text, false, ord(1, 'n'), inner)
	env.Equal([]node.Type{node.CharType, node.GlueType, node.HListType}, types(hlist))
	env.Equal(node.ThinMuSkip, hlist.Link().(*node.Glue).Subtype)
	box := node.Last(hlist).(*node.Box)
	env.Equal([]node.Type{node.HListType, node.CharType, node.HListType}, types(box.List))
	c := box.List.(*node.Box).List.(*node.Char)
	env.Equal(font.Code('('), c.Code)
}

func (env *ConverterTestEnviron) TestRightActsLikeLeft() {
	left := noad.NewDelim(noad.Left, parens)
	right := noad.NewDelim(noad.Right, parens)
	q := bin('+')
	env.convert(noad.Text, false, left, ord(1, 'x'), right, q, ord(1, 'x'))
	env.Equal(noad.Ord, q.Kind)
}
