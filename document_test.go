package md2html

import (
	"strings"
	"testing"
)

func TestJavaScriptEmptyWithoutMath(t *testing.T) {
	doc := &ConvertedDocument{
		Body:            "<p>no math here</p>",
		mathJaxWebURL:   "https://cdn.example/MathJax.js",
		mathJaxLocalURL: "/usr/share/MathJax.js",
	}
	if got := doc.JavaScript(false); got != "" {
		t.Errorf("JavaScript() = %q, want empty", got)
	}
}

func TestJavaScriptURLSelection(t *testing.T) {
	doc := &ConvertedDocument{
		Body:            `<p><script type="math/tex">x</script></p>`,
		mathJaxWebURL:   "https://cdn.example/MathJax.js",
		mathJaxLocalURL: "/usr/share/MathJax.js",
	}

	local := doc.JavaScript(false)
	if !strings.Contains(local, `src="/usr/share/MathJax.js"`) {
		t.Errorf("JavaScript(false) = %q, want the local URL", local)
	}
	if !strings.Contains(local, "MathJax.Hub.Config") {
		t.Errorf("JavaScript(false) = %q, want the bootstrap block", local)
	}

	web := doc.JavaScript(true)
	if !strings.Contains(web, `src="https://cdn.example/MathJax.js"`) {
		t.Errorf("JavaScript(true) = %q, want the CDN URL", web)
	}
}
