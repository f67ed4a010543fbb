package md2html

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// chromaStylesheet renders the CSS for a chroma style with every class
// name prefixed by the highlighting wrapper class, so the rules match the
// classes the inline formatter emitted for the same configuration.
// Unknown style names fall back to chroma's default style.
func chromaStylesheet(class, styleName string) (string, error) {
	style := styles.Get(styleName)
	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.ClassPrefix(class+"-"),
	)

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStylesheet, err)
	}
	return buf.String(), nil
}
