package mlist

import (
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
)

// spacing is an entry of the inter-atom spacing table.
type spacing uint8

const (
	noSpace    spacing = iota // 0
	condThin                  // 1: thin space in display and text styles only
	thinSpace                 // 2: thin space
	condMed                   // 3: medium space in display and text styles only
	condThick                 // 4: thick space in display and text styles only
	impossible                // *: cannot occur, a bin atom is never next to these
)

// spacingTable gives the space between atoms of kinds left and right, as in
// "The TeXbook", chapter 18. Rows and columns are ord, op, bin, rel, open,
// close, punct and inner.
var spacingTable = [8][8]spacing{
	noad.Ord:   {noSpace, thinSpace, condMed, condThick, noSpace, noSpace, noSpace, condThin},
	noad.Op:    {thinSpace, thinSpace, impossible, condThick, noSpace, noSpace, noSpace, condThin},
	noad.Bin:   {condMed, condMed, impossible, impossible, condMed, impossible, impossible, condMed},
	noad.Rel:   {condThick, condThick, impossible, noSpace, condThick, noSpace, noSpace, condThick},
	noad.Open:  {noSpace, noSpace, impossible, noSpace, noSpace, noSpace, noSpace, noSpace},
	noad.Close: {noSpace, thinSpace, condMed, condThick, noSpace, noSpace, noSpace, condThin},
	noad.Punct: {condThin, condThin, impossible, condThin, condThin, condThin, condThin, condThin},
	noad.Inner: {condThin, thinSpace, condMed, condThick, condThin, noSpace, condThin, condThin},
}

// interAtomGlue returns the glue between atoms of kinds left and right in
// the current style, or nil.
func (cv *conversion) interAtomGlue(left, right noad.Kind, mc mathContext) *node.Glue {
	if left > noad.Inner || right > noad.Inner {
		confusion("mlist4")
	}
	var spec node.GlueSpec
	var sub node.GlueSubtype
	switch spacingTable[left][right] {
	case noSpace:
		return nil
	case condThin:
		if mc.style >= noad.Script {
			return nil
		}
		spec, sub = cv.params.ThinMuSkip, node.ThinMuSkip
	case thinSpace:
		spec, sub = cv.params.ThinMuSkip, node.ThinMuSkip
	case condMed:
		if mc.style >= noad.Script {
			return nil
		}
		spec, sub = cv.params.MedMuSkip, node.MedMuSkip
	case condThick:
		if mc.style >= noad.Script {
			return nil
		}
		spec, sub = cv.params.ThickMuSkip, node.ThickMuSkip
	default:
		tracer().Errorf("no spacing between %s and %s", left, right)
		confusion("mlist4")
	}
	g := node.NewGlue(mathGlue(spec, mc.mu))
	g.Subtype = sub
	return g
}
