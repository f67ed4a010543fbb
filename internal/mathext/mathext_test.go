package mathext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
)

func render(t *testing.T, md goldmark.Markdown, source string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		t.Fatalf("Convert(%q) error = %v", source, err)
	}
	return buf.String()
}

func TestDisplayDollar(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(New()))
	got := render(t, md, "Equation $$x^2$$ inline")
	want := `<script type="math/tex; mode=display">x^2</script>`
	if !strings.Contains(got, want) {
		t.Errorf("output %q does not contain %q", got, want)
	}
}

func TestInlineDollarDisabledByDefault(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(New()))
	got := render(t, md, "price is $x$ here")
	if strings.Contains(got, "math/tex") {
		t.Errorf("output %q contains a math marker, want none", got)
	}
	if !strings.Contains(got, "$x$") {
		t.Errorf("output %q does not keep the literal dollars", got)
	}
}

func TestInlineDollarEnabled(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(New(WithInlineDollar(true))))
	got := render(t, md, "sum $i_1$ and $i_2$")
	if n := strings.Count(got, `<script type="math/tex">`); n != 2 {
		t.Errorf("output %q has %d inline math markers, want 2", got, n)
	}
	if !strings.Contains(got, `<script type="math/tex">i_1</script>`) {
		t.Errorf("output %q misses the first span", got)
	}
}

func TestInlineDollarSkipsProse(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(New(WithInlineDollar(true))))
	got := render(t, md, "I paid $5 and $6 for it")
	if strings.Contains(got, "math/tex") {
		t.Errorf("output %q treats currency as math", got)
	}
}

func TestEscapedDollarStaysLiteral(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(New(WithInlineDollar(true))))
	got := render(t, md, `\$x$`)
	if strings.Contains(got, "math/tex") {
		t.Errorf("output %q treats an escaped dollar as math", got)
	}
	if !strings.Contains(got, "$x$") {
		t.Errorf("output %q does not keep the literal text", got)
	}
}

func TestBracketDelimiters(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "inline parentheses",
			source: `where \(\alpha > 0\) holds`,
			want:   `<script type="math/tex">\alpha > 0</script>`,
		},
		{
			name:   "display brackets",
			source: `then \[x = 1\] follows`,
			want:   `<script type="math/tex; mode=display">x = 1</script>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := goldmark.New(goldmark.WithExtensions(New()))
			got := render(t, md, tt.source)
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q does not contain %q", got, tt.want)
			}
		})
	}
}

func TestBlockMath(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(New()))
	got := render(t, md, "$$\nE = mc^2\n$$\n")
	if !strings.Contains(got, `<script type="math/tex; mode=display">`) {
		t.Fatalf("output %q misses the display marker", got)
	}
	if !strings.Contains(got, "E = mc^2") {
		t.Errorf("output %q misses the TeX body", got)
	}
}

func TestBlockMathDoesNotInterruptParagraph(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(New()))
	got := render(t, md, "text before\n$$\nx\n$$\n")
	if strings.Contains(got, `mode=display">`+"\nx") {
		t.Errorf("output %q opened a math block inside a paragraph", got)
	}
}
