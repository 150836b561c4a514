package node

import (
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
)

// Char is a character of a font. Its dimensions are taken from the font
// metrics when the node is created.
type Char struct {
	Linked
	Font                 font.ID
	Code                 font.Code
	Width, Height, Depth dimen.Dimen
}

// Type is part of interface Node.
func (c *Char) Type() Type { return CharType }

// NewChar creates a character node with the metrics of character code in f.
func NewChar(fid font.ID, f font.Metrics, code font.Code) *Char {
	c := &Char{Font: fid, Code: code}
	if f != nil {
		cm := f.CharMetrics(code)
		c.Width, c.Height, c.Depth = cm.Width, cm.Height, cm.Depth
	}
	return c
}

// GlueSign tells whether the glue of a box is stretched or shrunk.
type GlueSign uint8

// Glue signs.
const (
	GlueNormal GlueSign = iota
	Stretching
	Shrinking
)

// Box is a horizontal or vertical box. A box is clean if Shift is zero.
type Box struct {
	Linked
	Kind                 Type // HListType or VListType
	Width, Height, Depth dimen.Dimen
	Shift                dimen.Dimen // shift down (hlist) or right (vlist)
	List                 Node
	GlueSet              float64
	GlueSign             GlueSign
	GlueOrder            Order
}

// Type is part of interface Node.
func (b *Box) Type() Type { return b.Kind }

// NewNullBox creates an empty hlist box.
func NewNullBox() *Box {
	return &Box{Kind: HListType}
}

// IsVList is true for vertical boxes.
func (b *Box) IsVList() bool {
	return b.Kind == VListType
}

// Running is the value of a rule dimension extending to the enclosing box.
const Running dimen.Dimen = -010000000000

// Rule is a black rectangle.
type Rule struct {
	Linked
	Width, Height, Depth dimen.Dimen
}

// Type is part of interface Node.
func (r *Rule) Type() Type { return RuleType }

// NewRule creates a rule with all dimensions running.
func NewRule() *Rule {
	return &Rule{Width: Running, Height: Running, Depth: Running}
}

// KernSubtype tells where a kern came from.
type KernSubtype uint8

// Kern subtypes.
const (
	KernNormal   KernSubtype = iota // inserted by the font or the formatter
	KernExplicit                    // \kern or italic correction
	AccKern                         // from an accent
	MuKern                          // width is in math units
)

// Kern is a fixed amount of space.
type Kern struct {
	Linked
	Width   dimen.Dimen
	Subtype KernSubtype
}

// Type is part of interface Node.
func (k *Kern) Type() Type { return KernType }

// NewKern creates a normal kern.
func NewKern(w dimen.Dimen) *Kern {
	return &Kern{Width: w}
}

// InfPenalty is infinite penalty; EjectPenalty forces a break.
const (
	InfPenalty   = 10000
	EjectPenalty = -InfPenalty
)

// Penalty is a possible breakpoint.
type Penalty struct {
	Linked
	Value int
}

// Type is part of interface Node.
func (p *Penalty) Type() Type { return PenaltyType }

// NewPenalty creates a penalty node.
func NewPenalty(v int) *Penalty {
	return &Penalty{Value: v}
}

// MathSubtype marks the beginning or end of a formula.
type MathSubtype uint8

// Math node subtypes.
const (
	MathBefore MathSubtype = iota
	MathAfter
)

// Math surrounds a formula within an hlist.
type Math struct {
	Linked
	Width   dimen.Dimen // math surround
	Subtype MathSubtype
}

// Type is part of interface Node.
func (m *Math) Type() Type { return MathType }

// NewMath creates a math node of width w.
func NewMath(w dimen.Dimen, s MathSubtype) *Math {
	return &Math{Width: w, Subtype: s}
}

// Disc is a discretionary break.
type Disc struct {
	Linked
	PreBreak, PostBreak Node
	ReplaceCount        int
}

// Type is part of interface Node.
func (d *Disc) Type() Type { return DiscType }

// Whatsit carries an extension item. List builders pass it through.
type Whatsit struct {
	Linked
	Payload interface{}
}

// Type is part of interface Node.
func (w *Whatsit) Type() Type { return WhatsitType }

// Mark carries a mark text.
type Mark struct {
	Linked
	Text string
}

// Type is part of interface Node.
func (m *Mark) Type() Type { return MarkType }

// Ins is an insertion.
type Ins struct {
	Linked
	Number        int
	Height, Depth dimen.Dimen
	List          Node
}

// Type is part of interface Node.
func (i *Ins) Type() Type { return InsType }

// Adjust carries vertical material to migrate out of an hlist.
type Adjust struct {
	Linked
	List Node
}

// Type is part of interface Node.
func (a *Adjust) Type() Type { return AdjustType }
