package sfntfont

import (
	"testing"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type MetricsTestEnviron struct {
	suite.Suite
	otf *sfnt.Font
	f   *Font
}

// listen for 'go test' command --> run test methods
func TestMetricsFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.math")
	defer teardown()
	suite.Run(t, new(MetricsTestEnviron))
}

// run once, before test suite methods
func (env *MetricsTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("tyse.math").SetTraceLevel(tracing.LevelError)
	env.otf = fontload.GoRegular().SFNT
	var err error
	env.f, err = New(env.otf, 10*dimen.PT,
		WithNextLarger('(', '['),
		WithExtensible('|', font.Recipe{Rep: '|'}),
	)
	env.Require().NoError(err)
	tracing.Select("tyse.math").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *MetricsTestEnviron) TestNew() {
	_, err := New(nil, 10*dimen.PT)
	env.Error(err)
	_, err = New(env.otf, 0)
	env.Error(err)
	env.Equal(10*dimen.PT, env.f.Size())
	p := env.f.Params()
	env.Equal(10*dimen.PT, p.Quad)
	env.Greater(p.XHeight, dimen.Zero, "expected Go Regular to have an x-height")
	env.Less(p.XHeight, 10*dimen.PT)
	env.Greater(p.Space, dimen.Zero)
	env.Equal(dimen.Zero, p.Slant, "Go Regular is upright")
	env.Nil(p.Sy)
	env.Equal(font.NoSkewChar, p.SkewChar)
}

func (env *MetricsTestEnviron) TestCharMetrics() {
	env.True(env.f.CharExists('x'))
	env.False(env.f.CharExists(0x1F600), "expected no emoji glyphs")
	cm := env.f.CharMetrics('x')
	var b sfnt.Buffer
	gid, err := env.otf.GlyphIndex(&b, 'x')
	env.Require().NoError(err)
	adv, err := env.otf.GlyphAdvance(&b, gid, env.f.ppem, xfont.HintingNone)
	env.Require().NoError(err)
	env.Equal(dimen.FromFixed(adv), cm.Width)
	env.Greater(cm.Height, dimen.Zero)
	env.LessOrEqual(cm.Depth, dimen.PT/10, "'x' sits on the baseline")
	env.Greater(env.f.CharMetrics('g').Depth, dimen.Zero, "'g' has a descender")
	env.Equal(font.CharMetrics{}, env.f.CharMetrics(0x1F600))
}

func (env *MetricsTestEnviron) TestTags() {
	cm := env.f.CharMetrics('(')
	env.Equal(font.ListTag, cm.Tag)
	env.Equal(font.Code('['), cm.Remainder)
	env.Equal(font.ExtTag, env.f.CharMetrics('|').Tag)
	env.Equal(font.Code('|'), env.f.ExtensibleRecipe('|').Rep)
}

func (env *MetricsTestEnviron) TestKernPrograms() {
	for _, step := range env.f.LigKernProgram('A') {
		env.True(step.IsKern, "SFNT programs contain kerns only")
		env.NotEqual(dimen.Zero, step.Kern)
	}
	env.Nil(env.f.LigKernProgram(0x1F600))
}
