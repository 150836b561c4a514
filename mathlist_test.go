package mathlist

import (
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/font/memfont"
	"github.com/npillmayer/mathlist/mlist"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// x + y
func sum() node.Node {
	return node.List(
		noad.NewChar(noad.Ord, 1, 'x'),
		noad.NewChar(noad.Bin, 0, '+'),
		noad.NewChar(noad.Ord, 1, 'y'),
	)
}

func TestInlineFormula(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	hlist, diags, err := ToHList(context.Background(), memfont.Demo(), sum(),
		WithMathSurround(dimen.PT))
	require.NoError(t, err)
	assert.Empty(t, diags)
	items := node.Nodes(hlist)
	require.Greater(t, len(items), 2)
	first, ok := items[0].(*node.Math)
	require.True(t, ok)
	assert.Equal(t, node.MathBefore, first.Subtype)
	assert.Equal(t, dimen.PT, first.Width)
	last, ok := items[len(items)-1].(*node.Math)
	require.True(t, ok)
	assert.Equal(t, node.MathAfter, last.Subtype)
	penalties := 0
	for _, n := range items {
		if p, ok := n.(*node.Penalty); ok {
			assert.Equal(t, 700, p.Value)
			penalties++
		}
	}
	assert.Equal(t, 1, penalties, "expected a penalty after the binary operator")
}

func TestInlineFormulaParams(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	params := mlist.DefaultParams()
	params.BinOpPenalty = 10000
	hlist, _, err := ToHList(context.Background(), memfont.Demo(), sum(), WithParams(params))
	require.NoError(t, err)
	for _, n := range node.Nodes(hlist) {
		assert.NotEqual(t, node.PenaltyType, n.Type(), "penalty of 10000 is not inserted")
	}
	// in script style there is no medium space around binary operators
	hlist, _, err = ToHList(context.Background(), memfont.Demo(), sum(), WithStyle(noad.Script))
	require.NoError(t, err)
	for _, n := range node.Nodes(hlist) {
		assert.NotEqual(t, node.GlueType, n.Type())
	}
}

func TestFormulaBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	b, diags, err := FormulaBox(context.Background(), memfont.Demo(), sum())
	require.NoError(t, err)
	assert.Empty(t, diags)
	var w dimen.Dimen
	for _, n := range node.Nodes(b.List) {
		switch x := n.(type) {
		case *node.Char:
			w += x.Width
		case *node.Kern:
			w += x.Width
		case *node.Glue:
			w += x.Spec.Width
		case *node.Penalty:
			t.Errorf("display formula contains a penalty")
		}
	}
	assert.Equal(t, w, b.Width)
	assert.Equal(t, node.GlueNormal, b.GlueSign)
	assert.Greater(t, b.Height, dimen.Zero)
}

func TestFormulaErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	_, _, err := FormulaBox(context.Background(), font.NewTable(), sum())
	assert.Error(t, err, "fonts without math parameters must be rejected")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = ToHList(ctx, memfont.Demo(), sum())
	assert.True(t, errors.Is(err, context.Canceled))
	tab := memfont.Demo()
	b, diags, err := FormulaBox(context.Background(), tab, node.List(noad.NewChar(noad.Ord, 9, 'x')))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, mlist.UndefinedFamily, diags[0].Kind)
	assert.Equal(t, dimen.Zero, b.Width)
}
