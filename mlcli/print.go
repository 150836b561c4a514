package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/mlist"
	"github.com/npillmayer/mathlist/node"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

func printHList(hlist node.Node) {
	if hlist == nil {
		pterm.Println("hlist is empty")
		return
	}
	data := [][]string{
		{"Node", "Content", "Width", "Height", "Depth"},
	}
	data = appendRows(data, hlist, 0)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// appendRows adds a table row for every node of list and, indented, for the
// contents of boxes.
func appendRows(data [][]string, list node.Node, level int) [][]string {
	indent := strings.Repeat("  ", level)
	for _, n := range node.Nodes(list) {
		row := []string{indent + n.Type().String(), describe(n), "", "", ""}
		switch x := n.(type) {
		case *node.Char:
			row[2], row[3], row[4] = x.Width.String(), x.Height.String(), x.Depth.String()
		case *node.Box:
			row[2], row[3], row[4] = x.Width.String(), x.Height.String(), x.Depth.String()
		case *node.Rule:
			row[2], row[3], row[4] = formatRunning(x.Width), formatRunning(x.Height), formatRunning(x.Depth)
		case *node.Kern:
			row[2] = x.Width.String()
		case *node.Glue:
			row[2] = x.Spec.Width.String()
		case *node.Math:
			row[2] = x.Width.String()
		}
		data = append(data, row)
		if b, ok := n.(*node.Box); ok {
			data = appendRows(data, b.List, level+1)
		}
	}
	return data
}

func describe(n node.Node) string {
	switch x := n.(type) {
	case *node.Char:
		return fmt.Sprintf("%s (font #%d)", charName(x.Code), x.Font)
	case *node.Box:
		if x.Shift != 0 {
			return fmt.Sprintf("shifted %s", x.Shift)
		}
	case *node.Glue:
		return x.Spec.String()
	case *node.Kern:
		if x.Subtype == node.KernExplicit {
			return "explicit"
		}
	case *node.Penalty:
		return fmt.Sprintf("%d", x.Value)
	}
	return ""
}

// charName prints a character code together with its Unicode name. Codes of
// math fonts below the space character have no meaningful name.
func charName(c font.Code) string {
	if c <= ' ' {
		return fmt.Sprintf("\"%02X", int(c))
	}
	name := runenames.Name(rune(c))
	if name == "" {
		return fmt.Sprintf("U+%04X", int(c))
	}
	return fmt.Sprintf("%c U+%04X %s", rune(c), int(c), name)
}

func formatRunning(d dimen.Dimen) string {
	if d == node.Running {
		return "*"
	}
	return d.String()
}

func printDiagnostics(diags []mlist.Diagnostic) {
	for _, d := range diags {
		pterm.Warning.Println(d.Message)
	}
}

func printParams(p mlist.Params) {
	data := [][]string{
		{"Parameter", "Value"},
		{mlist.KeyNullDelimiterSpace, p.NullDelimiterSpace.String()},
		{mlist.KeyScriptSpace, p.ScriptSpace.String()},
		{mlist.KeyDelimiterFactor, fmt.Sprintf("%d", p.DelimiterFactor)},
		{mlist.KeyDelimiterShortfall, p.DelimiterShortfall.String()},
		{mlist.KeyBinOpPenalty, fmt.Sprintf("%d", p.BinOpPenalty)},
		{mlist.KeyRelPenalty, fmt.Sprintf("%d", p.RelPenalty)},
		{mlist.KeyThinMuSkip, p.ThinMuSkip.Format("mu")},
		{mlist.KeyMedMuSkip, p.MedMuSkip.Format("mu")},
		{mlist.KeyThickMuSkip, p.ThickMuSkip.Format("mu")},
		{mlist.KeyMaxLigatureSteps, fmt.Sprintf("%d", p.MaxLigatureSteps)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
