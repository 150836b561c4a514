/*
Package font defines what the math list converter needs to know about fonts.

Loading fonts is not a concern of this package. Clients present fonts through
the Metrics interface, either from an in-memory description (package memfont)
or from a parsed OpenType font (package sfntfont), and assign them to math
families in three sizes through a Provider, usually a Table.

The data model follows TeX font metric files: every character has a width,
height, depth and italic correction, plus a tag telling whether it starts a
ligature/kern program, is followed by a larger variant, or can be built up
from extensible pieces.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.math'
func tracer() tracing.Trace {
	return tracing.Select("tyse.math")
}

// ID identifies a font registered with a Provider.
type ID int

// NullFont is the font id of "no font".
const NullFont ID = 0

// Code is a character code within a font.
type Code rune

// Size is a size class for math fonts.
type Size uint8

// Size classes, in order of decreasing size.
const (
	TextSize Size = iota
	ScriptSize
	ScriptScriptSize
)

// SizeCount is the number of size classes.
const SizeCount = 3

func (s Size) String() string {
	switch s {
	case TextSize:
		return "textfont"
	case ScriptSize:
		return "scriptfont"
	case ScriptScriptSize:
		return "scriptscriptfont"
	}
	return fmt.Sprintf("size(%d)", int(s))
}

// Tag classifies what else a font knows about a character.
type Tag uint8

// Character tags, as in TFM files.
const (
	NoTag   Tag = iota // nothing special
	LigTag             // character has a ligature/kern program
	ListTag            // character has a successor in a charlist (Remainder)
	ExtTag             // character is extensible (see Metrics.ExtensibleRecipe)
)

// CharMetrics holds the dimensions of a character.
type CharMetrics struct {
	Width, Height, Depth dimen.Dimen
	Italic               dimen.Dimen // italic correction
	Tag                  Tag
	Remainder            Code // next larger variant for ListTag
}

// LigOp is a ligature operation code.
type LigOp uint8

// Ligature operations. Names read like the TFM notation: a bar marks a
// character that is retained, '>' marks how far the cursor skips afterwards.
const (
	LigReplace         LigOp = 0  // =:
	LigKeepRight       LigOp = 1  // =:|
	LigKeepLeft        LigOp = 2  // |=:
	LigInsert          LigOp = 3  // |=:|
	LigKeepRightSkip   LigOp = 5  // =:|>
	LigKeepLeftSkip    LigOp = 6  // |=:>
	LigInsertSkip      LigOp = 7  // |=:|>
	LigInsertSkipTwice LigOp = 11 // |=:|>>
)

// LigKern is one step of a ligature/kern program. A step applies if the
// character following is Next.
type LigKern struct {
	Next      Code
	IsKern    bool
	Kern      dimen.Dimen // for kern steps
	Op        LigOp       // for ligature steps
	Remainder Code        // ligature character for ligature steps
}

// Recipe describes how to build an extensible character. A zero code for
// Top, Mid or Bot means the piece is absent.
type Recipe struct {
	Top, Mid, Bot, Rep Code
}

// NoSkewChar signals that a font has no skew character.
const NoSkewChar Code = -1

// Params are the font-wide parameters the converter needs. Sy is non-nil for
// fonts usable in math family 2, Ex for fonts usable in family 3.
type Params struct {
	Slant    dimen.Dimen
	Space    dimen.Dimen
	XHeight  dimen.Dimen
	Quad     dimen.Dimen
	SkewChar Code
	Sy       *SymbolParams
	Ex       *ExtensionParams
}

// SymbolParams are the parameters of a math symbol font (family 2).
type SymbolParams struct {
	XHeight    dimen.Dimen
	Quad       dimen.Dimen
	Num1       dimen.Dimen
	Num2       dimen.Dimen
	Num3       dimen.Dimen
	Denom1     dimen.Dimen
	Denom2     dimen.Dimen
	Sup1       dimen.Dimen
	Sup2       dimen.Dimen
	Sup3       dimen.Dimen
	Sub1       dimen.Dimen
	Sub2       dimen.Dimen
	SupDrop    dimen.Dimen
	SubDrop    dimen.Dimen
	Delim1     dimen.Dimen
	Delim2     dimen.Dimen
	AxisHeight dimen.Dimen
}

// ExtensionParams are the parameters of a math extension font (family 3).
type ExtensionParams struct {
	DefaultRuleThickness dimen.Dimen
	BigOpSpacing1        dimen.Dimen
	BigOpSpacing2        dimen.Dimen
	BigOpSpacing3        dimen.Dimen
	BigOpSpacing4        dimen.Dimen
	BigOpSpacing5        dimen.Dimen
}

// Metrics is the view of a single font.
type Metrics interface {
	CharExists(c Code) bool
	CharMetrics(c Code) CharMetrics
	LigKernProgram(c Code) []LigKern
	ExtensibleRecipe(c Code) Recipe
	Params() Params
}

// Provider maps math families and sizes to fonts.
type Provider interface {
	FontForFamily(fam int, size Size) ID // NullFont if undefined
	Font(id ID) Metrics                  // nil for NullFont
}

// Errors reported by CheckMathFonts.
var (
	ErrInsufficientSymbolFonts    = errors.New("math formula deleted: insufficient symbol fonts")
	ErrInsufficientExtensionFonts = errors.New("math formula deleted: insufficient extension fonts")
)

// CheckMathFonts makes sure that family 2 is assigned fonts with symbol
// parameters and family 3 fonts with extension parameters, in all sizes.
func CheckMathFonts(p Provider) error {
	for s := TextSize; s <= ScriptScriptSize; s++ {
		if f := p.Font(p.FontForFamily(2, s)); f == nil || f.Params().Sy == nil {
			tracer().Errorf("family 2 lacks symbol parameters in %s", s)
			return ErrInsufficientSymbolFonts
		}
	}
	for s := TextSize; s <= ScriptScriptSize; s++ {
		if f := p.Font(p.FontForFamily(3, s)); f == nil || f.Params().Ex == nil {
			tracer().Errorf("family 3 lacks extension parameters in %s", s)
			return ErrInsufficientExtensionFonts
		}
	}
	return nil
}

// FindLigKern searches a ligature/kern program for the first step applying
// to a following character next.
func FindLigKern(program []LigKern, next Code) (LigKern, bool) {
	for _, step := range program {
		if step.Next == next {
			return step, true
		}
	}
	return LigKern{}, false
}
