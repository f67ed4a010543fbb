package md2html

import "strings"

// mathJaxConfig is the bootstrap configuration block emitted ahead of the
// MathJax loader script.
const mathJaxConfig = `<script type="text/x-mathjax-config">
MathJax.Hub.Config({
  config: ["MMLorHTML.js"],
  jax: ["input/TeX", "input/AsciiMath", "output/HTML-CSS", "output/NativeMML"],
  extensions: ["MathMenu.js", "MathZoom.js"],
  TeX: {
    extensions: ["AMSmath.js", "AMSsymbols.js"],
    equationNumbers: {autoNumber: "AMS"}
  }
});
</script>
`

// mathMarker is the opening signature the math renderer leaves in produced
// bodies; its presence is what decides whether a loader is needed.
const mathMarker = `<script type="math/`

// ConvertedDocument is the result of one conversion. It is owned by the
// caller and never mutated after Convert returns.
type ConvertedDocument struct {
	// Body is the produced HTML fragment.
	Body string

	// Title is the document title from metadata, or empty.
	Title string

	// Stylesheet is the syntax-highlighting CSS, or empty when no
	// highlighting extension was active.
	Stylesheet string

	mathJaxWebURL   string
	mathJaxLocalURL string
}

// JavaScript returns the MathJax bootstrap and loader tag needed to render
// the body, or an empty string when the body contains no math markers.
// webEnv selects the CDN URL over the local installation path.
func (d *ConvertedDocument) JavaScript(webEnv bool) string {
	if !strings.Contains(d.Body, mathMarker) {
		return ""
	}
	url := d.mathJaxLocalURL
	if webEnv {
		url = d.mathJaxWebURL
	}
	return mathJaxConfig + `<script type="text/javascript" src="` + url + `"></script>`
}
