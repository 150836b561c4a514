package mlist

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mathlist/font"
)

// ErrConfusion is wrapped by errors signalling an inconsistent mlist, i.e.
// something a parser should never have produced.
var ErrConfusion = errors.New("this can't happen")

// ErrLigatureLoop is returned if a ligature program in a font does not
// terminate within Params.MaxLigatureSteps steps.
var ErrLigatureLoop = errors.New("infinite ligature loop")

// ConfusionError tells where an inconsistency was detected.
type ConfusionError struct {
	Where string
}

func (e ConfusionError) Error() string {
	return fmt.Sprintf("this can't happen (%s)", e.Where)
}

// Unwrap makes ConfusionError match ErrConfusion.
func (e ConfusionError) Unwrap() error {
	return ErrConfusion
}

func errMath(format string, args ...interface{}) error {
	return fmt.Errorf("math list: "+format, args...)
}

// DiagnosticKind classifies a diagnostic.
type DiagnosticKind uint8

// Kinds of diagnostics.
const (
	UndefinedFamily  DiagnosticKind = iota // no font assigned to a family in a size
	MissingCharacter                       // font lacks a character
)

func (k DiagnosticKind) String() string {
	if k == UndefinedFamily {
		return "undefined family"
	}
	return "missing character"
}

// Diagnostic reports a recoverable problem found during conversion. The
// character in question has been dropped from the output.
type Diagnostic struct {
	Kind    DiagnosticKind
	Size    font.Size
	Fam     int
	Char    font.Code
	Message string
}

func (d Diagnostic) String() string {
	return d.Message
}

func (cv *conversion) undefinedFamily(fam int, s font.Size, c font.Code) {
	d := Diagnostic{
		Kind: UndefinedFamily, Size: s, Fam: fam, Char: c,
		Message: fmt.Sprintf("\\%s %d is undefined (character %s)", s, fam, printable(c)),
	}
	tracer().Errorf("%s", d.Message)
	cv.diags = append(cv.diags, d)
}

func (cv *conversion) missingCharacter(fam int, s font.Size, fid font.ID, c font.Code) {
	d := Diagnostic{
		Kind: MissingCharacter, Size: s, Fam: fam, Char: c,
		Message: fmt.Sprintf("Missing character: There is no %s in font #%d!", printable(c), fid),
	}
	tracer().Errorf("%s", d.Message)
	cv.diags = append(cv.diags, d)
}

func printable(c font.Code) string {
	if c > ' ' && c < 0x7F {
		return string(rune(c))
	}
	return fmt.Sprintf("^^%02x", int(c))
}
