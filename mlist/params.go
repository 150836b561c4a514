package mlist

import (
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/node"
	"github.com/npillmayer/schuko"
)

// Params are the TeX parameters the conversion depends on.
type Params struct {
	NullDelimiterSpace dimen.Dimen // width of an empty delimiter
	ScriptSpace        dimen.Dimen // added after sub- and superscripts
	DelimiterFactor    int         // ratio for \left and \right, in 1/1000
	DelimiterShortfall dimen.Dimen // maximum shortfall of \left and \right
	BinOpPenalty       int
	RelPenalty         int
	ThinMuSkip         node.GlueSpec // in math units
	MedMuSkip          node.GlueSpec
	ThickMuSkip        node.GlueSpec
	MaxLigatureSteps   int // bound for a single ligature program run
}

// DefaultParams returns the values of plain TeX.
func DefaultParams() Params {
	return Params{
		NullDelimiterSpace: dimen.FromPoints(1.2),
		ScriptSpace:        dimen.FromPoints(0.5),
		DelimiterFactor:    901,
		DelimiterShortfall: 5 * dimen.PT,
		BinOpPenalty:       700,
		RelPenalty:         500,
		ThinMuSkip:         node.GlueSpec{Width: 3 * dimen.MU},
		MedMuSkip:          node.GlueSpec{Width: 4 * dimen.MU, Stretch: 2 * dimen.MU, Shrink: 4 * dimen.MU},
		ThickMuSkip:        node.GlueSpec{Width: 5 * dimen.MU, Stretch: 5 * dimen.MU},
		MaxLigatureSteps:   1000,
	}
}

// Configuration keys read by ParamsFromConfig.
const (
	KeyNullDelimiterSpace = "math.nulldelimiterspace"
	KeyScriptSpace        = "math.scriptspace"
	KeyDelimiterFactor    = "math.delimiterfactor"
	KeyDelimiterShortfall = "math.delimitershortfall"
	KeyBinOpPenalty       = "math.binoppenalty"
	KeyRelPenalty         = "math.relpenalty"
	KeyThinMuSkip         = "math.thinmuskip"
	KeyMedMuSkip          = "math.medmuskip"
	KeyThickMuSkip        = "math.thickmuskip"
	KeyMaxLigatureSteps   = "math.maxligaturesteps"
)

// ParamsFromConfig starts with DefaultParams and overrides every parameter
// set in conf. Dimensions are given with units ("1.2pt"), glue in math units
// ("4mu plus 2mu minus 4mu").
func ParamsFromConfig(conf schuko.Configuration) (Params, error) {
	p := DefaultParams()
	if conf == nil {
		return p, nil
	}
	dimens := []struct {
		key string
		d   *dimen.Dimen
	}{
		{KeyNullDelimiterSpace, &p.NullDelimiterSpace},
		{KeyScriptSpace, &p.ScriptSpace},
		{KeyDelimiterShortfall, &p.DelimiterShortfall},
	}
	for _, x := range dimens {
		if !conf.IsSet(x.key) {
			continue
		}
		d, err := dimen.Parse(conf.GetString(x.key))
		if err != nil {
			return p, errMath("parameter %s: %w", x.key, err)
		}
		*x.d = d
	}
	ints := []struct {
		key string
		n   *int
	}{
		{KeyDelimiterFactor, &p.DelimiterFactor},
		{KeyBinOpPenalty, &p.BinOpPenalty},
		{KeyRelPenalty, &p.RelPenalty},
		{KeyMaxLigatureSteps, &p.MaxLigatureSteps},
	}
	for _, x := range ints {
		if conf.IsSet(x.key) {
			*x.n = conf.GetInt(x.key)
		}
	}
	glues := []struct {
		key string
		g   *node.GlueSpec
	}{
		{KeyThinMuSkip, &p.ThinMuSkip},
		{KeyMedMuSkip, &p.MedMuSkip},
		{KeyThickMuSkip, &p.ThickMuSkip},
	}
	for _, x := range glues {
		if !conf.IsSet(x.key) {
			continue
		}
		g, err := node.ParseGlue(conf.GetString(x.key))
		if err != nil {
			return p, errMath("parameter %s: %w", x.key, err)
		}
		*x.g = g
	}
	if p.MaxLigatureSteps <= 0 {
		return p, errMath("parameter %s must be positive", KeyMaxLigatureSteps)
	}
	tracer().Debugf("math parameters: thin=%s med=%s thick=%s", p.ThinMuSkip.Format("mu"),
		p.MedMuSkip.Format("mu"), p.ThickMuSkip.Format("mu"))
	return p, nil
}
