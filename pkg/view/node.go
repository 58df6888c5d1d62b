// Package view builds HTML as a tree of typed nodes. Text and attribute
// values are escaped only when the tree is rendered, so callers never
// concatenate markup by hand.
package view

import (
	"bufio"
	"io"
	"strings"
)

type Node interface {
	render(w *bufio.Writer)
}

// Text is user-visible character data. It is always escaped.
type Text string

type Attr struct {
	Key   string
	Value string
}

type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// E builds an element. attrs is a flat list of key, value pairs.
func E(tag string, attrs []string, children ...Node) *Element {
	el := &Element{Tag: tag, Children: children}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.Attrs = append(el.Attrs, Attr{Key: attrs[i], Value: attrs[i+1]})
	}
	return el
}

// A is shorthand for the attrs argument of E.
func A(kv ...string) []string {
	return kv
}

func (el *Element) Attr(key string) (string, bool) {
	for _, a := range el.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (el *Element) HasClass(class string) bool {
	v, _ := el.Attr("class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns every element below el, el included, that matches, in
// document order.
func (el *Element) Find(match func(*Element) bool) []*Element {
	var found []*Element
	var walk func(n Node)
	walk = func(n Node) {
		e, ok := n.(*Element)
		if !ok || e == nil {
			return
		}
		if match(e) {
			found = append(found, e)
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(el)
	return found
}

// ByClass matches elements carrying class.
func ByClass(class string) func(*Element) bool {
	return func(el *Element) bool {
		return el.HasClass(class)
	}
}

// ByID matches the element with the given id attribute.
func ByID(id string) func(*Element) bool {
	return func(el *Element) bool {
		v, ok := el.Attr("id")
		return ok && v == id
	}
}

// TextContent concatenates the unescaped text below el.
func (el *Element) TextContent() string {
	var sb strings.Builder
	var walk func(n Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case Text:
			sb.WriteString(string(v))
		case *Element:
			if v == nil {
				return
			}
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(el)
	return strings.TrimSpace(sb.String())
}

func (t Text) render(w *bufio.Writer) {
	w.WriteString(Escape(string(t)))
}

func (el *Element) render(w *bufio.Writer) {
	if el == nil {
		return
	}
	w.WriteByte('<')
	w.WriteString(el.Tag)
	for _, a := range el.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Key)
		w.WriteString(`="`)
		w.WriteString(Escape(a.Value))
		w.WriteByte('"')
	}
	w.WriteByte('>')
	if voidElements[el.Tag] {
		return
	}
	for _, c := range el.Children {
		if c != nil {
			c.render(w)
		}
	}
	w.WriteString("</")
	w.WriteString(el.Tag)
	w.WriteByte('>')
}

// Render writes n as HTML.
func Render(out io.Writer, n Node) error {
	w := bufio.NewWriter(out)
	if n != nil {
		n.render(w)
	}
	return w.Flush()
}

// Document writes an HTML5 doctype followed by root.
func Document(out io.Writer, root *Element) error {
	if _, err := io.WriteString(out, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return Render(out, root)
}

// String renders n into a string.
func String(n Node) string {
	var sb strings.Builder
	_ = Render(&sb, n)
	return sb.String()
}
