package metaext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
)

func render(t *testing.T, source string) (string, parser.Context) {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(Meta))
	pc := parser.NewContext()
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf, parser.WithContext(pc)); err != nil {
		t.Fatalf("Convert(%q) error = %v", source, err)
	}
	return buf.String(), pc
}

func TestMetadataBlock(t *testing.T) {
	body, pc := render(t, "Title: Hello, world!\nAuthor: Someone\n\nSome text here.")

	if got := Title(pc); got != "Hello, world!" {
		t.Errorf("Title() = %q, want %q", got, "Hello, world!")
	}
	if got := Get(pc)["author"]; got != "Someone" {
		t.Errorf("Get()[author] = %q, want %q", got, "Someone")
	}
	if strings.Contains(body, "Hello, world!") {
		t.Errorf("body %q still contains the metadata block", body)
	}
	if !strings.Contains(body, "Some text here.") {
		t.Errorf("body %q lost the document content", body)
	}
}

func TestContinuationLine(t *testing.T) {
	_, pc := render(t, "Title: first part\n    second part\n\nText")
	if got := Title(pc); got != "first part second part" {
		t.Errorf("Title() = %q, want folded continuation", got)
	}
}

func TestNonMetadataFirstParagraph(t *testing.T) {
	body, pc := render(t, "Just some text here\n\nMore text")
	if Get(pc) != nil {
		t.Errorf("Get() = %v, want nil", Get(pc))
	}
	if !strings.Contains(body, "Just some text here") {
		t.Errorf("body %q lost the first paragraph", body)
	}
}

func TestMixedBlockIsNotMetadata(t *testing.T) {
	body, pc := render(t, "Title: Hello\nnot a field line\n\nText")
	if Get(pc) != nil {
		t.Errorf("Get() = %v, want nil for a partially matching block", Get(pc))
	}
	if !strings.Contains(body, "Title: Hello") {
		t.Errorf("body %q dropped the non-metadata paragraph", body)
	}
}

func TestEmptyDocument(t *testing.T) {
	_, pc := render(t, "")
	if Get(pc) != nil {
		t.Errorf("Get() = %v, want nil", Get(pc))
	}
}

func TestKeysAreLowercased(t *testing.T) {
	_, pc := render(t, "TITLE: Upper\n\nText")
	if got := Get(pc)["title"]; got != "Upper" {
		t.Errorf("Get()[title] = %q, want %q", got, "Upper")
	}
}
