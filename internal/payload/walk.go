package payload

import "strings"

// Children returns the direct children of n in reading order.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Root:
		return v.Children
	case *Paragraph:
		return v.Children
	case *Heading:
		return v.Children
	case *Quote:
		return v.Children
	case *Code:
		return v.Children
	case *List:
		return asNodes(v.Children)
	case *ListItem:
		return asNodes(v.Children)
	case *Table:
		return asNodes(v.Children)
	case *TableRow:
		return asNodes(v.Children)
	case *TableCell:
		return asNodes(v.Children)
	case *Link:
		return asNodes(v.Children)
	}
	return nil
}

func asNodes[T Node](in []T) []Node {
	out := make([]Node, len(in))
	for i, c := range in {
		out[i] = c
	}
	return out
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// TextContent concatenates the literal text of every leaf under n, separating
// block-level nodes with a newline.
func TextContent(n Node) string {
	var b strings.Builder
	Walk(n, func(node Node) bool {
		switch v := node.(type) {
		case *Text:
			b.WriteString(v.Text)
		case *CodeHighlight:
			b.WriteString(v.Text)
		case *LineBreak:
			b.WriteString("\n")
		case *Paragraph, *Heading, *Quote, *Code:
			if b.Len() > 0 {
				b.WriteString("\n")
			}
		}
		return true
	})
	return b.String()
}
