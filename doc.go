/*
Package mathlist typesets math formulas in the manner of TeX.

A formula is collected by a parser as a math list (mlist) and then converted
into a horizontal list (hlist) of boxes, glue, kerns and penalties, ready to be
broken into lines or packed into a box. We will stick to the nomenclature of
"The TeXbook":

▪︎ A "noad" is an item of a math list. Atoms (ord, op, bin, rel, open, close,
punct, inner and the more special ones like radicals or accents) are noads,
as are generalized fractions.

▪︎ A "field" is the nucleus, superscript or subscript of a noad. It is
either empty, a math character (a family and a character code), a box or a
sub-mlist.

▪︎ A "family" is a set of three fonts, one for each size class (text, script
and scriptscript). Families 2 and 3 have to carry the math parameters.

▪︎ A "style" is one of display, text, script or scriptscript, each in a
normal and a cramped variant.

Package structure:

▪︎ Package dimen contains scaled-point arithmetic.

▪︎ Package font describes the font metrics needed for math typesetting.
Packages memfont and sfntfont are implementations.

▪︎ Packages node and noad define the items of hlists and mlists.

▪︎ Package mlist performs the conversion.

This package contains convenience functions for the common cases of inline
and displayed formulas.

# Links

"TeX: The Program", part 36, Typesetting math formulas.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package mathlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.math'
func tracer() tracing.Trace {
	return tracing.Select("tyse.math")
}
