package extcfg

import (
	"reflect"
	"testing"
)

func TestDocumentExtensions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "dash separator",
			text:     "Required-Extensions: mathjax\n\nbody",
			expected: []string{"mathjax"},
		},
		{
			name:     "space separator and comma list",
			text:     "required extensions: tables, smarty\n",
			expected: []string{"tables", "smarty"},
		},
		{
			name:     "uppercase directive",
			text:     "REQUIRED-EXTENSIONS: toc",
			expected: []string{"toc"},
		},
		{
			name:     "token with argument list",
			text:     "Required-Extensions: toc(permalink=True), tables\n\n# Title",
			expected: []string{"toc(permalink=True)", "tables"},
		},
		{
			name:     "directive inside a comment line",
			text:     "<!--- Type: markdown; Required extensions: mathjax --->\n\n$x$",
			expected: []string{"mathjax"},
		},
		{
			name:     "no directive",
			text:     "# Just a heading\n\nText",
			expected: nil,
		},
		{
			name:     "directive on second line is ignored",
			text:     "First line\nRequired-Extensions: tables\n",
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DocumentExtensions(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DocumentExtensions() = %#v, want %#v", got, tt.expected)
			}
		})
	}
}
