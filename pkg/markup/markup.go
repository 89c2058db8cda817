// Package markup composes sequences of text, style directives and
// nested sub-sequences into a single ANSI-styled string.
package markup

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/tinge/pkg/escape"
)

// Item is one element of a markup sequence. The four variants are
// Text, Directive, Group and Ref; the set is closed so composition can
// dispatch exhaustively.
type Item interface {
	markupItem()
}

// Text is a plain string segment, rendered with whatever directives
// are active when it is reached.
type Text string

// Directive names a style or directive to activate for the text that
// follows it. It emits nothing on its own.
type Directive string

// Group is a nested sequence. It composes with the directives active
// in the enclosing sequence already applied, but directives activated
// inside it never leak back out.
type Group []Item

// Ref is a named reference whose textual content is read through Value
// at compose time, styled by its attached directive names on top of
// the current context.
type Ref struct {
	Name       string
	Directives []string
	Value      func() string
}

func (Text) markupItem()      {}
func (Directive) markupItem() {}
func (Group) markupItem()     {}
func (Ref) markupItem()       {}

// Compose flattens items into one string. Directives accumulate left
// to right and are spent on every text-bearing item that follows; each
// emitted segment is wrapped in a style reset on both sides so styling
// never bleeds past it. Directives left accumulated at the end of the
// sequence, with no text after them, are dropped.
func Compose(items ...Item) string {
	return compose(nil, items)
}

func compose(active []Directive, items []Item) string {
	var out strings.Builder
	// Copy so growth here can never alias a caller's backing array.
	active = append([]Directive(nil), active...)
	for _, item := range items {
		switch v := item.(type) {
		case Directive:
			active = append(active, v)
		case Group:
			// The nested sequence starts styled as we currently are,
			// but whatever it activates stays inside it.
			out.WriteString(compose(active, v))
		case Ref:
			for _, d := range v.Directives {
				active = append(active, Directive(d))
			}
			flush(&out, active, derefValue(v))
		case Text:
			flush(&out, active, string(v))
		default:
			// Leniency: anything unrecognised renders as plain text.
			flush(&out, active, fmt.Sprint(item))
		}
	}
	return out.String()
}

// flush emits one reset-wrapped segment: reset, every active directive
// resolved through the style table in order, the text, reset again.
// The reset directive is an ordinary table entry here, so an explicit
// "reset" in the stream is additive rather than clearing the
// accumulator.
func flush(out *strings.Builder, active []Directive, text string) {
	out.WriteString(escape.Escape("reset"))
	for _, name := range active {
		for _, directive := range Resolve(string(name)) {
			out.WriteString(escape.Escape(directive))
		}
	}
	out.WriteString(text)
	out.WriteString(escape.Escape("reset"))
}

func derefValue(r Ref) string {
	if r.Value == nil {
		return r.Name
	}
	return r.Value()
}

// From converts loose values into Items for callers that hold mixed
// data rather than typed markup. Strings with a leading ':' become
// Directives (":red" activates red), other strings become Text, []any
// becomes a nested Group, Items pass through, and anything else is
// stringified to Text. Nothing is rejected.
func From(values ...any) []Item {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		switch t := v.(type) {
		case Item:
			items = append(items, t)
		case string:
			if strings.HasPrefix(t, ":") && len(t) > 1 {
				items = append(items, Directive(t[1:]))
			} else {
				items = append(items, Text(t))
			}
		case []any:
			items = append(items, Group(From(t...)))
		case []Item:
			items = append(items, Group(t))
		default:
			items = append(items, Text(fmt.Sprint(v)))
		}
	}
	return items
}

// Sprint composes loose values, combining From and Compose.
func Sprint(values ...any) string {
	return Compose(From(values...)...)
}
