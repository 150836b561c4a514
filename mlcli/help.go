package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (bool, error) {
	help(op.arg)
	return false, nil
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "atom", "atoms", "ord", "op", "bin", "rel":
		pterm.Info.Println("Atoms")
		pterm.Println(`
	An atom is appended with  kind:char[:family]  where kind is one of
	ord, op, bin, rel, open, close, punct or inner.
	Characters are given literally (x) or in hex notation (0x50).
	Without a family, letters are taken from family 1 (math italic),
	large operators from family 3 (extension) and everything else
	from family 0 (roman).

	sup:char[:family] and sub:char[:family] attach scripts to the last atom.
	radical:char[:family] appends the square root of a character.
	`)
	case "delim", "delimiter", "delimiters", "left", "right", "over":
		pterm.Info.Println("Delimiters and fractions")
		pterm.Println(`
	left:d and right:d append \left and \right delimiters, where d is one of
	( ) { } | or . (the null delimiter), or a delimiter code like 0x028300.

	over[:thickness[:lr]] turns everything so far into the numerator of a
	fraction, e.g.  ord:a over ord:b  or  ord:n over:0pt:() ord:k
	`)
	case "params", "set", "parameters":
		pterm.Info.Println("Parameters")
		pterm.Println(`
	params prints the math parameters in effect.
	set:name:value changes one of them, e.g.  set:binoppenalty:10000
	Blanks in glue specifications are written as underscores:
	set:medmuskip:4mu_plus_2mu_minus_4mu
	`)
	default:
		pterm.Info.Println("General Help")
		pterm.Println(`
	Enter steps of the form op:arg:format, separated by blanks.

	ord, op, bin, rel, ... append atoms           (help:atoms)
	left, right, over      delimiters, fractions  (help:delimiters)
	style:name[:cramped]   starting style: display, text, script, scriptscript
	show                   convert the list, print the hlist and start anew
	clear                  discard the list
	params, set            math parameters        (help:params)
	png:file[:ppt]         draw the last hlist as a box diagram
	quit                   leave
	`)
	}
}
