package payload_test

import (
	"testing"

	"github.com/ivco-ai/blogsync/internal/payload"
)

func sampleDocument() *payload.Document {
	return payload.NewDocument([]payload.Node{
		payload.NewHeading(2, []payload.Node{payload.NewText("Title", 0)}),
		payload.NewParagraph([]payload.Node{
			payload.NewText("see ", 0),
			payload.NewLink("docs", "https://example.com/", 0),
		}),
		payload.NewList(payload.ListBullet, [][]payload.Node{
			{payload.NewText("one", 0)},
			{payload.NewText("two", 0)},
		}),
		payload.NewCode([]string{"a", "b"}, ""),
	})
}

func TestWalkVisitsEveryNode(t *testing.T) {
	counts := map[payload.Kind]int{}
	payload.Walk(sampleDocument().Root, func(n payload.Node) bool {
		counts[n.NodeType()]++
		return true
	})

	expected := map[payload.Kind]int{
		payload.KindRoot:          1,
		payload.KindHeading:       1,
		payload.KindParagraph:     3,
		payload.KindText:          5,
		payload.KindLink:          1,
		payload.KindList:          1,
		payload.KindListItem:      2,
		payload.KindCode:          1,
		payload.KindCodeHighlight: 2,
		payload.KindLineBreak:     1,
	}
	for kind, want := range expected {
		if counts[kind] != want {
			t.Fatalf("expected %d %s nodes, got %d", want, kind, counts[kind])
		}
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	var texts int
	payload.Walk(sampleDocument().Root, func(n payload.Node) bool {
		if n.NodeType() == payload.KindText {
			texts++
		}
		return n.NodeType() != payload.KindList
	})
	if texts != 3 {
		t.Fatalf("expected 3 text nodes outside the list, got %d", texts)
	}
}

func TestTextContent(t *testing.T) {
	got := payload.TextContent(sampleDocument().Root)
	want := "Title\nsee docs\none\ntwo\na\nb"
	if got != want {
		t.Fatalf("text mismatch, got %q want %q", got, want)
	}
}
