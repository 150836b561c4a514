package noad

import (
	"errors"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/node"
)

// ErrAmbiguousFraction is returned when a second generalized fraction is
// started within the same list.
var ErrAmbiguousFraction = errors.New("ambiguous; you need another { and }")

// List collects the items of an mlist, the way a parser would while reading
// a formula. A generalized fraction turns everything collected so far into
// the numerator; the items following it become the denominator when the list
// is finished.
type List struct {
	head, tail node.Node
	incompleat *Fraction
}

// Append adds items to the end of the list.
func (l *List) Append(items ...node.Node) *List {
	for _, item := range items {
		if item == nil {
			continue
		}
		if l.head == nil {
			l.head = item
		} else {
			l.tail.SetLink(item)
		}
		l.tail = node.Last(item)
	}
	return l
}

// Tail returns the last item collected, or nil.
func (l *List) Tail() node.Node {
	return l.tail
}

// Over starts a generalized fraction with rule thickness t (which may be
// DefaultThickness) and delimiters left and right. Items collected so far
// become the numerator.
func (l *List) Over(t dimen.Dimen, left, right Delimiter) error {
	if l.incompleat != nil {
		tracer().Errorf("ambiguous fraction, ignored")
		return ErrAmbiguousFraction
	}
	l.incompleat = &Fraction{
		Thickness:  t,
		Numerator:  ListField(l.head),
		LeftDelim:  left,
		RightDelim: right,
	}
	l.head, l.tail = nil, nil
	return nil
}

// Finish returns the completed mlist and resets l.
func (l *List) Finish() node.Node {
	list := l.head
	if l.incompleat != nil {
		l.incompleat.Denominator = ListField(l.head)
		list = l.incompleat
	}
	l.head, l.tail, l.incompleat = nil, nil, nil
	return list
}

// Flush discards the items collected, including an incomplete fraction.
func (l *List) Flush() {
	if l.incompleat != nil {
		tracer().Debugf("flushing incomplete fraction")
	}
	l.head, l.tail, l.incompleat = nil, nil, nil
}
