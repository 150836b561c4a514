package noad

import (
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/node"
)

// Style is a math style. Even numbers are the basic styles, odd numbers
// their cramped variants. A numerically smaller style renders larger.
type Style uint8

// Styles.
const (
	Display Style = iota
	DisplayCramped
	Text
	TextCramped
	Script
	ScriptCramped
	ScriptScript
	ScriptScriptCramped
)

// Cramped returns the cramped variant of s.
func (s Style) Cramped() Style {
	return 2*(s/2) + 1
}

// Sub returns the style for subscripts of a nucleus in style s.
func (s Style) Sub() Style {
	return 2*(s/4) + 5
}

// Sup returns the style for superscripts of a nucleus in style s.
func (s Style) Sup() Style {
	return 2*(s/4) + 4 + s%2
}

// Num returns the style for numerators of a fraction in style s.
func (s Style) Num() Style {
	return s + 2 - 2*(s/6)
}

// Denom returns the style for denominators of a fraction in style s.
func (s Style) Denom() Style {
	return 2*(s/2) + 1 + 2 - 2*(s/6)
}

// IsCramped is true for cramped styles.
func (s Style) IsCramped() bool {
	return s%2 == 1
}

// Size returns the font size class of style s.
func (s Style) Size() font.Size {
	switch {
	case s < Script:
		return font.TextSize
	case s < ScriptScript:
		return font.ScriptSize
	}
	return font.ScriptScriptSize
}

var styleNames = [...]string{"displaystyle", "textstyle", "scriptstyle", "scriptscriptstyle"}

func (s Style) String() string {
	if s > ScriptScriptCramped {
		return "Unknown style!"
	}
	if s.IsCramped() {
		return styleNames[s/2] + "'"
	}
	return styleNames[s/2]
}

// StyleNode changes the current style within an mlist.
type StyleNode struct {
	node.Linked
	Style Style
}

// Type is part of interface node.Node.
func (sn *StyleNode) Type() node.Type { return node.StyleType }

// NewStyle creates a style node.
func NewStyle(s Style) *StyleNode {
	return &StyleNode{Style: s}
}

// Choice holds four alternative mlists, one for every basic style.
type Choice struct {
	node.Linked
	Display, Text, Script, ScriptScript node.Node
}

// Type is part of interface node.Node.
func (c *Choice) Type() node.Type { return node.ChoiceType }

// NewChoice creates a choice node with empty alternatives.
func NewChoice() *Choice {
	return &Choice{}
}

// Select returns the alternative for style s. The choice node gives up
// ownership of all its alternatives.
func (c *Choice) Select(s Style) node.Node {
	var alt node.Node
	switch s / 2 {
	case 0:
		alt = c.Display
	case 1:
		alt = c.Text
	case 2:
		alt = c.Script
	default:
		alt = c.ScriptScript
	}
	c.Display, c.Text, c.Script, c.ScriptScript = nil, nil, nil, nil
	return alt
}
