package markup

import "github.com/beevik/etree"

// Parse converts tag markup like "<red>hi <bold>there</bold></red>"
// into Items. Each element becomes a Group opening with a Directive
// for its tag name, so tags nest with the same inherit-down semantics
// as hand-built Groups. Input that is not well-formed comes back as a
// single Text of the raw string rather than an error.
func Parse(input string) []Item {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<markup>" + input + "</markup>"); err != nil {
		return []Item{Text(input)}
	}
	root := doc.Root()
	if root == nil {
		return []Item{Text(input)}
	}
	return elementItems(root)
}

func elementItems(el *etree.Element) []Item {
	var items []Item
	for _, child := range el.Child {
		switch t := child.(type) {
		case *etree.CharData:
			if t.Data != "" {
				items = append(items, Text(t.Data))
			}
		case *etree.Element:
			group := Group{Directive(t.Tag)}
			items = append(items, append(group, elementItems(t)...))
		}
	}
	return items
}
