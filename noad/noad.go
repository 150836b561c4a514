/*
Package noad implements the items of math lists.

A math list (mlist) is a linked list of noads, interspersed with a few kinds
of ordinary nodes (glue, kern, penalty, rule and the like) and with style and
choice nodes. Noads carry up to three math fields: a nucleus, a subscript and
a superscript. Each field is either empty, a character of a math family, a
box, or an mlist in its own right, which makes an mlist a tree.

Package mlist converts mlists into horizontal lists.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package noad

import (
	"fmt"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/node"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.math'
func tracer() tracing.Trace {
	return tracing.Select("tyse.math")
}

// FieldType tells what a math field contains.
type FieldType uint8

// Field types.
const (
	Empty        FieldType = iota // nothing
	MathChar                      // a character of a math family
	MathTextChar                  // a math character followed by more characters of a text font
	SubBox                        // a box
	SubMList                      // an mlist
)

// Field is a math field.
type Field struct {
	Type FieldType
	Fam  int
	Char font.Code
	Box  *node.Box // for SubBox
	List node.Node // for SubMList
}

// CharField is a field holding character c of family fam.
func CharField(fam int, c font.Code) Field {
	return Field{Type: MathChar, Fam: fam, Char: c}
}

// BoxField is a field holding box b.
func BoxField(b *node.Box) Field {
	return Field{Type: SubBox, Box: b}
}

// ListField is a field holding mlist l.
func ListField(l node.Node) Field {
	return Field{Type: SubMList, List: l}
}

// IsEmpty is true for empty fields.
func (f Field) IsEmpty() bool {
	return f.Type == Empty
}

func (f Field) String() string {
	switch f.Type {
	case MathChar, MathTextChar:
		return fmt.Sprintf("\\fam%d %c", f.Fam, rune(f.Char))
	case SubBox:
		return "[]"
	case SubMList:
		if f.List == nil {
			return "{}"
		}
		return "{...}"
	}
	return ""
}

// Delimiter names a small and a large variant of a delimiter character.
type Delimiter struct {
	SmallFam  int
	SmallChar font.Code
	LargeFam  int
	LargeChar font.Code
}

// NullDelimiter is the delimiter with no variants.
var NullDelimiter = Delimiter{}

// DelimiterFromCode decodes the lower 24 bits of a delimiter code like
// "4028300, i.e. small family 0, small char "28, large family 3, large char 0.
func DelimiterFromCode(code int) Delimiter {
	return Delimiter{
		SmallFam:  (code >> 20) & 0xf,
		SmallChar: font.Code((code >> 12) & 0xff),
		LargeFam:  (code >> 8) & 0xf,
		LargeChar: font.Code(code & 0xff),
	}
}

// IsNull is true if d has no variants.
func (d Delimiter) IsNull() bool {
	return d == NullDelimiter
}

// String prints d as a 24-bit hex value.
func (d Delimiter) String() string {
	a := d.SmallFam*256 + int(d.SmallChar)
	a = a*0x1000 + d.LargeFam*256 + int(d.LargeChar)
	return fmt.Sprintf("\"%06X", a)
}

// Kind is the kind of a noad. The first eight kinds are the classes used
// for inter-atom spacing.
type Kind uint8

// Noad kinds.
const (
	Ord Kind = iota
	Op
	Bin
	Rel
	Open
	Close
	Punct
	Inner
	Radical
	Under
	Over
	Accent
	VCenter
	Left
	Right
)

var kindNames = [...]string{
	"mathord", "mathop", "mathbin", "mathrel", "mathopen", "mathclose", "mathpunct",
	"mathinner", "radical", "underline", "overline", "accent", "vcenter", "left", "right",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Limits is the placement of limits of an operator noad.
type Limits uint8

// Limit placements.
const (
	DisplayLimits Limits = iota // limits above/below in display style only
	WithLimits                  // \limits
	NoLimits                    // \nolimits
)

// Noad is a math atom.
type Noad struct {
	node.Linked
	Kind    Kind
	Limits  Limits // for Op
	Nucleus Field
	Sup     Field
	Sub     Field
	Delim   Delimiter // for Radical, Left and Right
	Accent  Field     // for Accent
	Result  node.Node // translation into an hlist, set during conversion
}

// Type is part of interface node.Node.
func (n *Noad) Type() node.Type { return node.NoadType }

// New creates an ord noad with empty fields.
func New() *Noad {
	return &Noad{Kind: Ord}
}

// NewAtom creates a noad of kind k with the given nucleus.
func NewAtom(k Kind, nucleus Field) *Noad {
	return &Noad{Kind: k, Nucleus: nucleus}
}

// NewChar creates a noad of kind k for character c of family fam.
func NewChar(k Kind, fam int, c font.Code) *Noad {
	return NewAtom(k, CharField(fam, c))
}

// NewDelim creates a radical, left or right noad for delimiter d.
func NewDelim(k Kind, d Delimiter) *Noad {
	return &Noad{Kind: k, Delim: d}
}

// HasScripts is true if the noad has a subscript or a superscript.
func (n *Noad) HasScripts() bool {
	return !n.Sub.IsEmpty() || !n.Sup.IsEmpty()
}

// DefaultThickness tells a fraction to use the default rule thickness of the
// extension font.
const DefaultThickness dimen.Dimen = 010000000000

// Fraction is a generalized fraction.
type Fraction struct {
	node.Linked
	Thickness   dimen.Dimen
	Numerator   Field
	Denominator Field
	LeftDelim   Delimiter
	RightDelim  Delimiter
	Result      node.Node // translation into an hlist, set during conversion
}

// Type is part of interface node.Node.
func (f *Fraction) Type() node.Type { return node.FractionType }

// NewFraction creates a fraction with rule thickness t.
func NewFraction(num, denom node.Node, t dimen.Dimen) *Fraction {
	return &Fraction{
		Thickness:   t,
		Numerator:   ListField(num),
		Denominator: ListField(denom),
	}
}
