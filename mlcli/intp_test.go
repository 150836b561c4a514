package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/internal/fontload"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	cmd, err := parseCommand("ord:x sup:2  bin:+ op:0x50:3 show")
	require.NoError(t, err)
	require.Len(t, cmd.op, 5)
	assert.Equal(t, []int{ATOM, SUP, ATOM, ATOM, SHOW},
		[]int{cmd.op[0].code, cmd.op[1].code, cmd.op[2].code, cmd.op[3].code, cmd.op[4].code})
	assert.Equal(t, "x", cmd.op[0].arg)
	assert.Equal(t, "ord:", cmd.op[0].format)
	assert.Equal(t, "op:3", cmd.op[3].format)
	cmd, err = parseCommand("clear quit ord:x")
	require.NoError(t, err)
	assert.Len(t, cmd.op, 2, "steps after quit are ignored")
	_, err = parseCommand("ord:x frobnicate")
	assert.True(t, errors.Is(err, ErrUnknownOp))
}

func TestArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	c, err := parseChar("0x50")
	require.NoError(t, err)
	assert.Equal(t, font.Code(0x50), c)
	c, err = parseChar("x")
	require.NoError(t, err)
	assert.Equal(t, font.Code('x'), c)
	_, err = parseChar("xy")
	assert.Error(t, err)
	_, err = parseChar("")
	assert.Error(t, err)
	f, _ := parseFamily("", 'x', noad.Ord)
	assert.Equal(t, 1, f)
	f, _ = parseFamily("", '+', noad.Bin)
	assert.Equal(t, 0, f)
	f, _ = parseFamily("", 0x50, noad.Op)
	assert.Equal(t, 3, f)
	f, _ = parseFamily("2", 'x', noad.Ord)
	assert.Equal(t, 2, f)
	_, err = parseFamily("16", 'x', noad.Ord)
	assert.Error(t, err)
	d, err := parseDelimiter("(")
	require.NoError(t, err)
	assert.Equal(t, noad.Delimiter{SmallFam: 0, SmallChar: '(', LargeFam: 3, LargeChar: 0}, d)
	d, err = parseDelimiter(".")
	require.NoError(t, err)
	assert.True(t, d.IsNull())
	_, err = parseDelimiter("<>")
	assert.Error(t, err)
}

func TestBuildList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	intp := NewIntp()
	require.NoError(t, intp.Eval("ord:x sup:2 bin:+ ord:y"))
	assert.Equal(t, 3, intp.count)
	ml := intp.list.Finish()
	require.Equal(t, 3, node.Length(ml))
	x := ml.(*noad.Noad)
	assert.Equal(t, noad.CharField(1, 'x'), x.Nucleus)
	assert.Equal(t, noad.CharField(0, '2'), x.Sup)
	assert.Equal(t, noad.Bin, x.Link().(*noad.Noad).Kind)
	intp.count = 0
	assert.True(t, errors.Is(intp.Eval("sub:i"), ErrNoNoad))
	require.NoError(t, intp.Eval("style:script:cramped"))
	assert.Equal(t, noad.ScriptCramped, intp.style)
	assert.Error(t, intp.Eval("style:huge"))
	assert.Error(t, intp.Eval("ord:a over ord:b over"), "second fraction is ambiguous")
	require.NoError(t, intp.Eval("clear"))
	assert.Equal(t, 0, intp.count)
	assert.Nil(t, intp.list.Finish())
}

func TestShow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	intp := NewIntp()
	for _, line := range []string{
		"ord:x sup:2 bin:+ ord:y show",
		"left:( ord:a bin:+ ord:b right:) show",
		"ord:a over ord:b show",
		"radical:x show",
		"style:display op:0x50 sub:i sup:n show",
		"ord:n over:0pt:() ord:b show",
	} {
		require.NoError(t, intp.Eval(line), line)
		assert.NotNil(t, intp.hlist, line)
		assert.Empty(t, intp.diags, line)
		assert.Equal(t, 0, intp.count)
	}
	require.NoError(t, intp.Eval("ord:x:9 show"))
	assert.Len(t, intp.diags, 1)
}

func TestParams(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	intp := NewIntp()
	require.NoError(t, intp.Eval("set:binoppenalty:100 set:math.medmuskip:3mu_plus_1mu"))
	assert.Equal(t, 100, intp.params.BinOpPenalty)
	assert.Equal(t, 3*dimen.MU, intp.params.MedMuSkip.Width)
	assert.Equal(t, dimen.MU, intp.params.MedMuSkip.Stretch)
	assert.Error(t, intp.Eval("set:maxligaturesteps:0"))
	assert.Equal(t, 1000, intp.params.MaxLigatureSteps, "invalid settings are discarded")
	assert.Error(t, intp.Eval("set:binoppenalty"))
	//
	filename := filepath.Join(t.TempDir(), "params.toml")
	toml := "[math]\nbinoppenalty = 42\nthinmuskip = \"2mu\"\n"
	require.NoError(t, os.WriteFile(filename, []byte(toml), 0o644))
	require.NoError(t, intp.loadParams(filename))
	assert.Equal(t, 42, intp.params.BinOpPenalty)
	assert.Equal(t, 2*dimen.MU, intp.params.ThinMuSkip.Width)
	assert.Equal(t, 3*dimen.MU, intp.params.MedMuSkip.Width, "earlier settings are kept")
	assert.Error(t, intp.loadParams(filepath.Join(t.TempDir(), "missing.toml")))
}

func TestTextFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	//
	intp := NewIntp()
	intp.setTextFont(fontload.GoRegular())
	id := intp.fonts.FontForFamily(1, font.TextSize)
	assert.NotEqual(t, id, intp.fonts.FontForFamily(1, font.ScriptSize))
	require.NoError(t, intp.Eval("ord:x bin:+ ord:y show"))
	assert.Empty(t, intp.diags)
	c, ok := intp.hlist.(*node.Char)
	require.True(t, ok)
	assert.Equal(t, id, c.Font)
}
