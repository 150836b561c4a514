/*
Package node implements the nodes of horizontal and vertical lists.

Nodes are the "assembly language" of box-and-glue typesetting: characters,
boxes, rules, glue, kerns, penalties and a handful of nodes which are passed
through by list builders without inspection. Nodes are chained into singly
linked lists; the list head owns the chain.

Math lists (mlists) use the same chaining. Noads and the other math-only
items are defined in package noad, but their node types are enumerated here,
so that a single type switch can tell every item of an mlist apart.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package node

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.math'
func tracer() tracing.Trace {
	return tracing.Select("tyse.math")
}

// Type is the type of a node.
type Type uint8

// Node types. Types from StyleType on occur in math lists only.
const (
	CharType Type = iota
	HListType
	VListType
	RuleType
	InsType
	MarkType
	AdjustType
	DiscType
	WhatsitType
	MathType
	GlueType
	KernType
	PenaltyType
	StyleType
	ChoiceType
	NoadType
	FractionType
)

var typeNames = [...]string{
	"char", "hlist", "vlist", "rule", "ins", "mark", "adjust", "disc", "whatsit",
	"math", "glue", "kern", "penalty", "style", "choice", "noad", "fraction",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Node is an item of a list.
type Node interface {
	Type() Type
	Link() Node   // next node in the list, or nil
	SetLink(Node) // set the next node
}

// Linked implements the chaining part of interface Node. It is meant to be
// embedded into concrete node types.
type Linked struct {
	next Node
}

// Link returns the successor node.
func (l *Linked) Link() Node {
	return l.next
}

// SetLink sets the successor node.
func (l *Linked) SetLink(n Node) {
	l.next = n
}

// Last returns the last node of a list, or nil for an empty list.
func Last(list Node) Node {
	if list == nil {
		return nil
	}
	for list.Link() != nil {
		list = list.Link()
	}
	return list
}

// Length counts the nodes of a list.
func Length(list Node) int {
	n := 0
	for ; list != nil; list = list.Link() {
		n++
	}
	return n
}

// Append links list b after list a and returns the head of the combined list.
func Append(a, b Node) Node {
	if a == nil {
		return b
	}
	Last(a).SetLink(b)
	return a
}

// List links nodes together, in order, and returns the head.
func List(nodes ...Node) Node {
	var head, tail Node
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if head == nil {
			head = n
		} else {
			tail.SetLink(n)
		}
		tail = n
	}
	if tail != nil {
		tail.SetLink(nil)
	}
	return head
}

// Nodes collects the nodes of a list into a slice.
func Nodes(list Node) []Node {
	var nodes []Node
	for ; list != nil; list = list.Link() {
		nodes = append(nodes, list)
	}
	return nodes
}
