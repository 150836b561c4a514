package node

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathlist/dimen"
)

// Order is the order of infinity of stretch or shrink.
type Order uint8

// Glue orders.
const (
	OrderNormal Order = iota
	Fil
	Fill
	Filll
)

var orderUnits = [...]string{"", "fil", "fill", "filll"}

// GlueSpec describes the natural width of glue, its stretchability and
// shrinkability. Specs are values and are never shared between nodes.
type GlueSpec struct {
	Width        dimen.Dimen
	Stretch      dimen.Dimen
	Shrink       dimen.Dimen
	StretchOrder Order
	ShrinkOrder  Order
}

// ZeroGlue is glue without width, stretch or shrink.
var ZeroGlue = GlueSpec{}

// SSGlue is 0pt plus 1fil minus 1fil.
var SSGlue = GlueSpec{Stretch: dimen.PT, StretchOrder: Fil, Shrink: dimen.PT, ShrinkOrder: Fil}

// Format prints a glue spec the way TeX does, with unit u ("pt" or "mu").
func (g GlueSpec) Format(u string) string {
	var b strings.Builder
	b.WriteString(printValue(g.Width, OrderNormal, u))
	if g.Stretch != 0 {
		b.WriteString(" plus ")
		b.WriteString(printValue(g.Stretch, g.StretchOrder, u))
	}
	if g.Shrink != 0 {
		b.WriteString(" minus ")
		b.WriteString(printValue(g.Shrink, g.ShrinkOrder, u))
	}
	return b.String()
}

func (g GlueSpec) String() string {
	return g.Format("pt")
}

func printValue(d dimen.Dimen, o Order, u string) string {
	s := strings.TrimSuffix(d.String(), "pt")
	if o != OrderNormal {
		return s + orderUnits[o]
	}
	return s + u
}

// GlueSubtype tells where glue came from.
type GlueSubtype uint8

// Glue subtypes.
const (
	GlueNormalType GlueSubtype = iota // ordinary glue
	ThinMuSkip                        // \thinmuskip inserted between math items
	MedMuSkip                         // \medmuskip inserted between math items
	ThickMuSkip                       // \thickmuskip inserted between math items
	CondMath                          // \nonscript
	MuGlue                            // glue in math units, \mskip
)

// Glue is stretchable space.
type Glue struct {
	Linked
	Spec    GlueSpec
	Subtype GlueSubtype
}

// Type is part of interface Node.
func (g *Glue) Type() Type { return GlueType }

// NewGlue creates a normal glue node.
func NewGlue(spec GlueSpec) *Glue {
	return &Glue{Spec: spec}
}

// ParseGlue reads a glue specification like "4mu plus 2mu minus 4mu" or
// "0pt plus 1fil". Components in math units are scaled like points.
func ParseGlue(s string) (GlueSpec, error) {
	var g GlueSpec
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return g, fmt.Errorf("glue: empty specification")
	}
	var err error
	if g.Width, err = dimen.Parse(fields[0]); err != nil {
		return g, err
	}
	fields = fields[1:]
	for len(fields) > 0 {
		if len(fields) < 2 {
			return g, fmt.Errorf("glue: incomplete specification %q", s)
		}
		d, o, err := parseStretch(fields[1])
		if err != nil {
			return g, err
		}
		switch fields[0] {
		case "plus":
			g.Stretch, g.StretchOrder = d, o
		case "minus":
			g.Shrink, g.ShrinkOrder = d, o
		default:
			return g, fmt.Errorf("glue: unexpected %q in %q", fields[0], s)
		}
		fields = fields[2:]
	}
	return g, nil
}

func parseStretch(s string) (dimen.Dimen, Order, error) {
	for o := Filll; o > OrderNormal; o-- {
		if num, ok := strings.CutSuffix(s, orderUnits[o]); ok {
			d, err := dimen.Parse(num + "pt")
			return d, o, err
		}
	}
	d, err := dimen.Parse(s)
	return d, OrderNormal, err
}
